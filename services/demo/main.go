// Service emitting fabricated sensor readings, for demos and recordings.
//
// It stands in for the real IoT nodes: every few seconds it publishes a
// reading for each fake device, so the dashboard fills with plausible
// data without any hardware attached. It also seeds a canned to-do list.
package demo

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sharkmet/HomeHUB/pubsub"
	"github.com/sharkmet/HomeHUB/services"
)

var readings = map[string]map[string]float64{
	"HomeHUB_Env_Node": {
		"temperature": 21.8,
		"humidity":    42.5,
		"audio_peak":  35,
	},
	"HomeHUB_Light_Node": {
		"light": 180,
	},
	"HomeHUB_Env_Node_2": {
		"temperature": 23.2,
		"humidity":    38.7,
		"audio_peak":  245,
	},
}

var todos = []map[string]interface{}{
	{"id": "1", "text": "Water the plants", "completed": true},
	{"id": "2", "text": "Check thermostat settings", "completed": false},
	{"id": "3", "text": "Replace living room sensor battery", "completed": false},
}

// Service demo
type Service struct {
	clock clockwork.Clock
}

// ID of the service
func (self *Service) ID() string {
	return "demo"
}

func (self *Service) Init() error {
	self.clock = clockwork.NewRealClock()
	return services.Stor.Save("todo_data", todos)
}

func (self *Service) emit() {
	stamp := self.clock.Now().Format(pubsub.TimeFormat)
	for device, sensors := range readings {
		services.Publisher.Emit(pubsub.NewReading(device, sensors, stamp))
	}
}

func (self *Service) Run() error {
	// let the dashboard subscribe before the first batch
	self.clock.Sleep(time.Second)
	self.emit()
	ticker := time.NewTicker(5 * time.Second)
	for range ticker.C {
		self.emit()
	}
	return nil
}
