package datalogger

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/sharkmet/HomeHUB/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToLogFile(t *testing.T) {
	logPath = path.Join(t.TempDir(), "sensor_data.log")

	writeToLogFile(pubsub.NewReading("HomeHUB_Env_Node",
		map[string]float64{"temperature": 21.8}, "2026-08-31 10:00:00"))
	writeToLogFile(pubsub.NewReading("HomeHUB_Light_Node",
		map[string]float64{"light": 180}, "2026-08-31 10:00:05"))
	// events without a reading payload are skipped
	writeToLogFile(pubsub.NewEvent("sensor/x", pubsub.Fields{}))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"device_name":"HomeHUB_Env_Node"`)
	assert.Contains(t, lines[0], `"received_at":"2026-08-31 10:00:00"`)
	assert.Contains(t, lines[1], `"light":180`)
}
