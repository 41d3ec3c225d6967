package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ExampleOpenRaw() {
	config, _ := OpenRaw([]byte(ExampleYaml))
	fmt.Println(config.Weather.City)
	fmt.Println(config.Dashboard.Port)
	// Output:
	// Calgary
	// 5000
}

func TestMqttEndpoint(t *testing.T) {
	config, err := OpenRaw([]byte("endpoints:\n  mqtt:\n    broker: tcp://127.0.0.1:1883\n"))
	assert.NoError(t, err)
	assert.Equal(t, "tcp://127.0.0.1:1883", config.Endpoints.Mqtt.Broker)

	// the built-in default config stays broker-less so a bare run uses
	// in-process events
	assert.Equal(t, "", ExampleConfig.Endpoints.Mqtt.Broker)
}

func TestRooms(t *testing.T) {
	config, err := OpenRaw([]byte(ExampleYaml))
	assert.NoError(t, err)
	assert.Equal(t, []string{"HomeHUB_Env_Node", "HomeHUB_Light_Node"}, config.Rooms["Bedroom"])
	assert.Equal(t, "Bedroom", config.DeviceRoom("HomeHUB_Light_Node"))
	assert.Equal(t, "", config.DeviceRoom("HomeHUB_Unknown"))
}

func TestDefaults(t *testing.T) {
	config, err := OpenRaw([]byte("rooms:\n  Kitchen: [node]\n"))
	assert.NoError(t, err)
	assert.Equal(t, 5000, config.Dashboard.Port)
	assert.Equal(t, "metric", config.Weather.Units)
	assert.Equal(t, 10*time.Minute, config.WeatherCache())
}

func TestWeatherCache(t *testing.T) {
	config, err := OpenRaw([]byte(ExampleYaml))
	assert.NoError(t, err)
	assert.Equal(t, 10*time.Minute, config.WeatherCache())
}

func TestBadDuration(t *testing.T) {
	_, err := OpenRaw([]byte("weather:\n  cache: nonsense\n"))
	assert.Error(t, err)
}
