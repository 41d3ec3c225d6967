// Service for logging sensor readings to a log file on disk.
//
// Each reading is appended as a JSON line to 'sensor_data.log' under the
// data directory, giving a replayable history of everything the nodes
// reported.
package datalogger

import (
	"encoding/json"
	"log"
	"os"
	"path"

	"github.com/sharkmet/HomeHUB/pubsub"
	"github.com/sharkmet/HomeHUB/services"
)

const logName = "sensor_data.log"

var logPath string

type entry struct {
	DeviceName string             `json:"device_name"`
	Sensors    map[string]float64 `json:"sensors"`
	ReceivedAt string             `json:"received_at"`
}

func writeToLogFile(ev *pubsub.Event) {
	device := ev.Device()
	sensors := ev.Sensors()
	if device == "" || sensors == nil {
		return
	}
	line, err := json.Marshal(entry{
		DeviceName: device,
		Sensors:    sensors,
		ReceivedAt: ev.ReceivedAt(),
	})
	if err != nil {
		log.Println("Couldn't encode event:", err)
		return
	}
	// reopen the log file each time, so that log rotation can happen in the
	// background.
	fio, err := os.OpenFile(logPath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0660)
	if err != nil {
		log.Println("Couldn't write file:", err)
		return
	}
	defer fio.Close()

	fio.Write(line)
	fio.WriteString("\n")
}

// Service datalogger
type Service struct{}

// ID of the service
func (self *Service) ID() string {
	return "datalogger"
}

func (self *Service) Run() error {
	logPath = path.Join(services.Config.Datadir(), logName)
	for ev := range services.Subscriber.Subscribe(pubsub.Prefix("sensor")) {
		writeToLogFile(ev)
	}
	return nil
}
