package openweather

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const currentJSON = `{
	"main": {"temp": -3.5, "feels_like": -8.1, "humidity": 74},
	"weather": [{"description": "light snow", "icon": "13d"}],
	"wind": {"speed": 4.2},
	"name": "Calgary"
}`

func forecastJSON() string {
	// two days of 3-hourly points
	base := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	list := ""
	temps := []float64{-5, -2, 1, 3, -1, -4, -6, -7}
	for i, temp := range temps {
		at := base.Add(time.Duration(i) * 6 * time.Hour)
		if i > 0 {
			list += ","
		}
		list += fmt.Sprintf(`{"dt": %d, "main": {"temp": %v}, "weather": [{"icon": "01d"}]}`, at.Unix(), temp)
	}
	return `{"list": [` + list + `]}`
}

func testServer(t *testing.T, calls *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.Equal(t, "Calgary,CA", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		switch r.URL.Path {
		case "/weather":
			fmt.Fprint(w, currentJSON)
		case "/forecast":
			fmt.Fprint(w, forecastJSON())
		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestClient(url string, clock clockwork.Clock) *Client {
	client := NewWithClock(Config{
		Appid:    "key",
		City:     "Calgary",
		Country:  "CA",
		Units:    "metric",
		CacheFor: 10 * time.Minute,
	}, clock)
	client.BaseURL = url
	return client
}

func TestFetch(t *testing.T) {
	var calls int32
	server := testServer(t, &calls)
	defer server.Close()

	client := newTestClient(server.URL, clockwork.NewFakeClock())
	current, forecast, err := client.Fetch()
	require.NoError(t, err)
	assert.Equal(t, -3.5, current.Main.Temp)
	assert.Equal(t, "light snow", current.Description())
	assert.Equal(t, "13d", current.Icon())
	assert.Len(t, forecast.List, 8)
}

func TestFetchCached(t *testing.T) {
	var calls int32
	server := testServer(t, &calls)
	defer server.Close()

	clock := clockwork.NewFakeClock()
	client := newTestClient(server.URL, clock)

	_, _, err := client.Fetch()
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	// within the cache window no request goes out
	clock.Advance(5 * time.Minute)
	_, _, err = client.Fetch()
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	// expired, refetched
	clock.Advance(6 * time.Minute)
	_, _, err = client.Fetch()
	require.NoError(t, err)
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
}

func TestFetchStaleOnError(t *testing.T) {
	var calls int32
	server := testServer(t, &calls)

	clock := clockwork.NewFakeClock()
	client := newTestClient(server.URL, clock)
	_, _, err := client.Fetch()
	require.NoError(t, err)

	server.Close()
	clock.Advance(11 * time.Minute)
	current, _, err := client.Fetch()
	require.NoError(t, err)
	assert.Equal(t, -3.5, current.Main.Temp)
}

func TestFetchColdError(t *testing.T) {
	client := newTestClient("http://127.0.0.1:0", clockwork.NewFakeClock())
	_, _, err := client.Fetch()
	assert.Error(t, err)
}

func TestDays(t *testing.T) {
	var calls int32
	server := testServer(t, &calls)
	defer server.Close()

	client := newTestClient(server.URL, clockwork.NewFakeClock())
	_, forecast, err := client.Fetch()
	require.NoError(t, err)

	days := forecast.Days(5)
	require.Len(t, days, 2)
	assert.Equal(t, 3.0, days[0].High)
	assert.Equal(t, -5.0, days[0].Low)
	assert.Equal(t, -1.0, days[1].High)
	assert.Equal(t, -7.0, days[1].Low)
	assert.Equal(t, "01d", days[0].Icon)

	assert.Len(t, forecast.Days(1), 1)
}

func TestEmoji(t *testing.T) {
	assert.Equal(t, "❄️", Emoji("13d"))
	assert.Equal(t, "🌡️", Emoji("99x"))
}
