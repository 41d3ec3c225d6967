package demo

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sharkmet/HomeHUB/pubsub/dummy"
	"github.com/sharkmet/HomeHUB/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit(t *testing.T) {
	publisher := &dummy.Publisher{}
	services.Publisher = publisher
	service := &Service{
		clock: clockwork.NewFakeClockAt(time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)),
	}

	service.emit()
	require.Len(t, publisher.Events, 3)

	devices := map[string]bool{}
	for _, ev := range publisher.Events {
		devices[ev.Device()] = true
		assert.Equal(t, "2026-08-31 09:00:00", ev.ReceivedAt())
	}
	assert.True(t, devices["HomeHUB_Env_Node"])
	assert.True(t, devices["HomeHUB_Light_Node"])
	assert.True(t, devices["HomeHUB_Env_Node_2"])
}

func TestInitSeedsTodos(t *testing.T) {
	store := services.NewMockStore()
	services.Stor = store
	service := &Service{}
	require.NoError(t, service.Init())

	var seeded []map[string]interface{}
	require.NoError(t, store.Load("todo_data", &seeded))
	assert.Len(t, seeded, 3)
	assert.Equal(t, "Water the plants", seeded[0]["text"])
}
