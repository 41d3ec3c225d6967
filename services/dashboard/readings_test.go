package dashboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/sharkmet/HomeHUB/pubsub"
	"github.com/stretchr/testify/assert"
)

func ExampleInterpretLight() {
	fmt.Println(InterpretLight(10))
	fmt.Println(InterpretLight(180))
	fmt.Println(InterpretLight(800))
	// Output:
	// Dark
	// Bright
	// Very Bright
}

func ExampleInterpretAudio() {
	fmt.Println(InterpretAudio(35))
	fmt.Println(InterpretAudio(245))
	fmt.Println(InterpretAudio(900))
	// Output:
	// Quiet
	// Talking
	// Loud
}

func TestRegistryLatest(t *testing.T) {
	registry := NewRegistry()
	registry.Update(Reading{
		DeviceName: "HomeHUB_Env_Node",
		Sensors:    map[string]float64{"temperature": 21.5},
		ReceivedAt: "2026-08-31 10:00:00",
	})
	registry.Update(Reading{
		DeviceName: "HomeHUB_Env_Node",
		Sensors:    map[string]float64{"temperature": 22.0},
		ReceivedAt: "2026-08-31 10:01:00",
	})

	latest := registry.Latest()
	assert.Len(t, latest, 1)
	assert.Equal(t, 22.0, latest["HomeHUB_Env_Node"].Sensors["temperature"])
}

func TestRegistryRoomsMerge(t *testing.T) {
	conf := map[string][]string{
		"Bedroom":     {"HomeHUB_Env_Node", "HomeHUB_Light_Node"},
		"Living Room": {"HomeHUB_Env_Node_2"},
	}
	registry := NewRegistry()
	registry.Update(Reading{
		DeviceName: "HomeHUB_Env_Node",
		Sensors:    map[string]float64{"temperature": 21.8, "humidity": 42.5, "light": 300},
		ReceivedAt: "2026-08-31 10:05:00",
	})
	registry.Update(Reading{
		DeviceName: "HomeHUB_Light_Node",
		Sensors:    map[string]float64{"light": 180},
		ReceivedAt: "2026-08-31 10:02:00",
	})

	rooms := registry.Rooms(conf)
	assert.Len(t, rooms, 1)
	bedroom := rooms["Bedroom"]
	// later device in the room list wins per sensor
	assert.Equal(t, 180.0, bedroom.Sensors["light"])
	assert.Equal(t, 21.8, bedroom.Sensors["temperature"])
	// newest timestamp of the merged devices
	assert.Equal(t, "2026-08-31 10:05:00", bedroom.ReceivedAt)

	assert.Equal(t, []string{"Bedroom"}, RoomNames(rooms))
}

func TestRegistryRoomsEmpty(t *testing.T) {
	registry := NewRegistry()
	rooms := registry.Rooms(map[string][]string{"Bedroom": {"HomeHUB_Env_Node"}})
	assert.Empty(t, rooms)
}

func TestReadingFromEvent(t *testing.T) {
	ev := pubsub.NewReading("HomeHUB_Env_Node",
		map[string]float64{"temperature": 21.8}, "2026-08-31 10:00:00")
	reading, ok := readingFromEvent(ev)
	assert.True(t, ok)
	assert.Equal(t, "HomeHUB_Env_Node", reading.DeviceName)
	assert.Equal(t, 21.8, reading.Sensors["temperature"])
	assert.Equal(t, "2026-08-31 10:00:00", reading.ReceivedAt)

	_, ok = readingFromEvent(pubsub.NewEvent("sensor/x", pubsub.Fields{}))
	assert.False(t, ok)
}

func TestReadingFromMqttPayload(t *testing.T) {
	// a node publishing its HTTP document straight to mqtt must reach the
	// registry too
	ev := pubsub.Parse(`{"device_name":"HomeHUB_Env_Node","sensors":{"temperature":21.8}}`,
		"sensor/HomeHUB_Env_Node")
	reading, ok := readingFromEvent(ev)
	assert.True(t, ok)
	assert.Equal(t, "HomeHUB_Env_Node", reading.DeviceName)
	assert.Equal(t, 21.8, reading.Sensors["temperature"])
	// no received_at in the payload: stamped from the event timestamp
	_, err := time.Parse(pubsub.TimeFormat, reading.ReceivedAt)
	assert.NoError(t, err)
}

func TestRoomIcon(t *testing.T) {
	assert.Equal(t, "🛏️", roomIcon("Bedroom"))
	assert.Equal(t, "🏠", roomIcon("Garage"))
}
