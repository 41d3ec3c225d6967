package dashboard

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sharkmet/HomeHUB/config"
	"github.com/sharkmet/HomeHUB/lib/openweather"
	"github.com/sharkmet/HomeHUB/pubsub/dummy"
	"github.com/sharkmet/HomeHUB/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *dummy.Publisher) {
	t.Helper()
	services.Config = config.ExampleConfig
	publisher := &dummy.Publisher{}
	services.Publisher = publisher
	service := &Service{
		store:    services.NewMockStore(),
		readings: NewRegistry(),
		clock:    clockwork.NewFakeClockAt(time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)),
	}
	return service, publisher
}

func TestSensorDataPost(t *testing.T) {
	service, publisher := newTestService(t)
	server := httptest.NewServer(service.router())
	defer server.Close()

	body := `{"device_name": "HomeHUB_Env_Node", "sensors": {"temperature": 21.8, "humidity": 42.5, "audio_peak": null}}`
	resp, err := http.Post(server.URL+"/sensor-data", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "success", result["status"])
	assert.Equal(t, "HomeHUB_Env_Node", result["device_name"])

	latest := service.readings.Latest()
	reading := latest["HomeHUB_Env_Node"]
	assert.Equal(t, 21.8, reading.Sensors["temperature"])
	// null sensor values are dropped
	_, present := reading.Sensors["audio_peak"]
	assert.False(t, present)
	assert.Equal(t, "2026-08-31 10:30:00", reading.ReceivedAt)

	// republished on the bus
	require.Len(t, publisher.Events, 1)
	assert.Equal(t, "sensor/HomeHUB_Env_Node", publisher.Events[0].Topic)
}

func TestSensorDataBadRequest(t *testing.T) {
	service, _ := newTestService(t)
	server := httptest.NewServer(service.router())
	defer server.Close()

	resp, err := http.Post(server.URL+"/sensor-data", "application/json", bytes.NewBufferString("not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 400, resp.StatusCode)

	var result map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "error", result["status"])
	assert.Equal(t, "no data received", result["message"])
}

func TestSensorDataUnknownDevice(t *testing.T) {
	service, _ := newTestService(t)
	server := httptest.NewServer(service.router())
	defer server.Close()

	resp, err := http.Post(server.URL+"/sensor-data", "application/json",
		bytes.NewBufferString(`{"sensors": {"temperature": 20}}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Unknown Device", result["device_name"])
}

func TestWeatherAPIUnavailable(t *testing.T) {
	service, _ := newTestService(t)
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer failing.Close()
	service.weather = openweather.New(openweather.Config{City: "Calgary"})
	service.weather.BaseURL = failing.URL

	server := httptest.NewServer(service.router())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/weather")
	require.NoError(t, err)
	defer resp.Body.Close()
	// a dead weather API is not an error to the caller
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Nil(t, result["current"])
	assert.Nil(t, result["forecast"])
}

func TestLatest(t *testing.T) {
	service, _ := newTestService(t)
	service.readings.Update(Reading{
		DeviceName: "HomeHUB_Light_Node",
		Sensors:    map[string]float64{"light": 180},
		ReceivedAt: "2026-08-31 10:00:00",
	})
	server := httptest.NewServer(service.router())
	defer server.Close()

	resp, err := http.Get(server.URL + "/latest")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var latest map[string]Reading
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&latest))
	assert.Equal(t, 180.0, latest["HomeHUB_Light_Node"].Sensors["light"])
}
