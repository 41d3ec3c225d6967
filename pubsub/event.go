package pubsub

import (
	"encoding/json"
	"time"
)

type Fields map[string]interface{}

type Event struct {
	Topic     string
	Timestamp time.Time
	Fields    Fields
}

func NewEvent(topic string, fields map[string]interface{}) *Event {
	timestamp := time.Now().UTC()
	if ts, ok := fields["timestamp"].(string); ok {
		delete(fields, "timestamp")
		timestamp, _ = time.Parse(TimeFormat, ts)
	}
	return &Event{Topic: topic, Timestamp: timestamp, Fields: fields}
}

// NewReading creates a sensor reading event as pushed by the IoT nodes.
func NewReading(device string, sensors map[string]float64, receivedAt string) *Event {
	fields := map[string]interface{}{
		"device":      device,
		"sensors":     sensors,
		"received_at": receivedAt,
	}
	return NewEvent("sensor/"+device, fields)
}

const TimeFormat = "2006-01-02 15:04:05"

func (event *Event) Map() map[string]interface{} {
	data := make(map[string]interface{})
	data["topic"] = event.Topic
	data["timestamp"] = event.Timestamp.Format(TimeFormat)
	for k, v := range event.Fields {
		data[k] = v
	}
	return data
}

func (event *Event) Bytes() []byte {
	v, _ := json.Marshal(event.Map())
	return v
}

func (event *Event) String() string {
	return string(event.Bytes())
}

func (event *Event) StringField(name string) string {
	ret, _ := event.Fields[name].(string)
	return ret
}

func (event *Event) FloatField(name string) (float64, bool) {
	ret, ok := event.Fields[name].(float64)
	return ret, ok
}

func (event *Event) SetField(name string, value interface{}) {
	event.Fields[name] = value
}

// Device of a reading. Republished events carry device, payloads straight
// off a node carry device_name.
func (event *Event) Device() string {
	if device := event.StringField("device"); device != "" {
		return device
	}
	return event.StringField("device_name")
}

// ReceivedAt stamp of a reading, falling back to the event timestamp for
// payloads that carry none.
func (event *Event) ReceivedAt() string {
	if ret := event.StringField("received_at"); ret != "" {
		return ret
	}
	return event.Timestamp.Format(TimeFormat)
}

// Sensors returns the sensor name to value map of a reading event. Readings
// arriving over the wire decode to map[string]interface{}, in-process ones
// carry map[string]float64.
func (event *Event) Sensors() map[string]float64 {
	switch t := event.Fields["sensors"].(type) {
	case map[string]float64:
		return t
	case map[string]interface{}:
		ret := map[string]float64{}
		for k, v := range t {
			if f, ok := v.(float64); ok {
				ret[k] = f
			}
		}
		return ret
	}
	return nil
}

// Parse extracts an event from its json encoding. topic applies when the
// encoding itself carries none (mqtt messages are keyed by mqtt topic).
func Parse(msg string, topic string) *Event {
	var fields map[string]interface{}
	err := json.Unmarshal([]byte(msg), &fields)
	if err != nil {
		return nil
	}
	if t, ok := fields["topic"].(string); ok {
		topic = t
		delete(fields, "topic")
	}
	if topic == "" {
		return nil
	}
	return NewEvent(topic, fields)
}
