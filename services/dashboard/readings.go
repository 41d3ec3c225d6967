package dashboard

import (
	"sort"
	"sync"

	"github.com/sharkmet/HomeHUB/pubsub"
)

// Reading is the latest sensor data a device pushed, as it appears on
// /latest and in the sensor log.
type Reading struct {
	DeviceName string             `json:"device_name"`
	Sensors    map[string]float64 `json:"sensors"`
	ReceivedAt string             `json:"received_at"`
}

func readingFromEvent(ev *pubsub.Event) (Reading, bool) {
	device := ev.Device()
	sensors := ev.Sensors()
	if device == "" || sensors == nil {
		return Reading{}, false
	}
	return Reading{DeviceName: device, Sensors: sensors, ReceivedAt: ev.ReceivedAt()}, true
}

// Registry keeps the latest reading per device.
type Registry struct {
	mutex  sync.RWMutex
	latest map[string]Reading
}

func NewRegistry() *Registry {
	return &Registry{latest: map[string]Reading{}}
}

func (self *Registry) Update(reading Reading) {
	self.mutex.Lock()
	self.latest[reading.DeviceName] = reading
	self.mutex.Unlock()
}

// Latest returns a copy of the registry contents.
func (self *Registry) Latest() map[string]Reading {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	ret := make(map[string]Reading, len(self.latest))
	for name, reading := range self.latest {
		ret[name] = reading
	}
	return ret
}

// RoomData is the merged view of all devices assigned to a room.
type RoomData struct {
	Sensors    map[string]float64 `json:"sensors"`
	ReceivedAt string             `json:"received_at"`
}

// Rooms merges device readings per the room configuration. Within a room
// devices merge in configured order, last write wins per sensor, and the
// newest (string-compared) timestamp is kept. Rooms with no data are left
// out.
func (self *Registry) Rooms(conf map[string][]string) map[string]RoomData {
	self.mutex.RLock()
	defer self.mutex.RUnlock()

	rooms := map[string]RoomData{}
	for room, devices := range conf {
		merged := map[string]float64{}
		latest := ""
		for _, device := range devices {
			reading, ok := self.latest[device]
			if !ok {
				continue
			}
			for key, value := range reading.Sensors {
				merged[key] = value
			}
			if reading.ReceivedAt > latest {
				latest = reading.ReceivedAt
			}
		}
		if len(merged) > 0 {
			rooms[room] = RoomData{Sensors: merged, ReceivedAt: latest}
		}
	}
	return rooms
}

// RoomNames returns the configured room names in display order.
func RoomNames(rooms map[string]RoomData) []string {
	names := make([]string, 0, len(rooms))
	for name := range rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InterpretLight turns a lux value into a label.
func InterpretLight(lux float64) string {
	switch {
	case lux < 50:
		return "Dark"
	case lux <= 500:
		return "Bright"
	default:
		return "Very Bright"
	}
}

// InterpretAudio turns an audio peak into a label.
func InterpretAudio(peak float64) string {
	switch {
	case peak <= 50:
		return "Quiet"
	case peak <= 500:
		return "Talking"
	default:
		return "Loud"
	}
}

var roomIcons = map[string]string{
	"Bedroom":     "🛏️",
	"Living Room": "🛋️",
	"Kitchen":     "🍳",
	"Office":      "💼",
	"Bathroom":    "🚿",
}

func roomIcon(room string) string {
	if icon, ok := roomIcons[room]; ok {
		return icon
	}
	return "🏠"
}
