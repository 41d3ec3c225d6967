package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/sharkmet/HomeHUB/pubsub"
	"github.com/sharkmet/HomeHUB/services"
)

func errorResponse(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), 500)
}

func jsonResponse(w http.ResponseWriter, obj interface{}) {
	w.Header().Add("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	err := enc.Encode(obj)
	if err != nil {
		errorResponse(w, err)
	}
}

type sensorPost struct {
	DeviceName string              `json:"device_name"`
	Sensors    map[string]*float64 `json:"sensors"`
}

// apiSensorData ingests a reading pushed by a node. The reading is stamped,
// recorded and republished on the event bus for the datalogger (and, over
// mqtt, anything else listening).
func (self *Service) apiSensorData(w http.ResponseWriter, r *http.Request) {
	var post sensorPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		jsonResponse(w, map[string]string{"status": "error", "message": "no data received"})
		return
	}

	device := post.DeviceName
	if device == "" {
		device = "Unknown Device"
	}
	sensors := map[string]float64{}
	for key, value := range post.Sensors {
		if value != nil {
			sensors[key] = *value
		}
	}

	reading := Reading{
		DeviceName: device,
		Sensors:    sensors,
		ReceivedAt: self.clock.Now().Format(pubsub.TimeFormat),
	}
	self.readings.Update(reading)
	services.Publisher.Emit(pubsub.NewReading(device, sensors, reading.ReceivedAt))

	jsonResponse(w, map[string]string{"status": "success", "device_name": device})
}

func (self *Service) apiLatest(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, self.readings.Latest())
}

// apiWeather serves whatever the weather client has, nulls included: a
// failed fetch is not an error to the caller.
func (self *Service) apiWeather(w http.ResponseWriter, r *http.Request) {
	current, forecast, err := self.weather.Fetch()
	if err != nil {
		errorLog(err)
	}
	jsonResponse(w, map[string]interface{}{"current": current, "forecast": forecast})
}
