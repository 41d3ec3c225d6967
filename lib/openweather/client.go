// Package openweather is a client for the OpenWeatherMap current conditions
// and 5-day forecast APIs, with a time-based cache so the dashboard can
// re-render every few seconds without hammering the API.
package openweather

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

type Config struct {
	Appid    string
	City     string
	Country  string
	Units    string
	CacheFor time.Duration
}

type Client struct {
	conf    Config
	BaseURL string
	http    *http.Client
	clock   clockwork.Clock

	mutex     sync.Mutex
	current   *Current
	forecast  *Forecast
	fetchedAt time.Time
}

func New(conf Config) *Client {
	return NewWithClock(conf, clockwork.NewRealClock())
}

func NewWithClock(conf Config, clock clockwork.Clock) *Client {
	return &Client{
		conf:    conf,
		BaseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		clock:   clock,
	}
}

// Current conditions, as returned by /weather.
type Current struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

func (c *Current) Description() string {
	if len(c.Weather) == 0 {
		return ""
	}
	return c.Weather[0].Description
}

func (c *Current) Icon() string {
	if len(c.Weather) == 0 {
		return ""
	}
	return c.Weather[0].Icon
}

// Forecast is the 5-day/3-hour forecast, as returned by /forecast.
type Forecast struct {
	List []ForecastItem `json:"list"`
}

type ForecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Icon string `json:"icon"`
	} `json:"weather"`
}

// Day is a forecast reduced to a daily summary.
type Day struct {
	Name string
	Icon string
	High float64
	Low  float64
}

// Days reduces the 3-hourly points to at most n daily high/low summaries,
// keeping the icon of the first point of each day.
func (f *Forecast) Days(n int) []Day {
	var days []Day
	var last string
	for _, item := range f.List {
		at := time.Unix(item.Dt, 0).UTC()
		date := at.Format("2006-01-02")
		if date != last {
			if len(days) == n {
				break
			}
			last = date
			day := Day{Name: at.Format("Mon"), High: item.Main.Temp, Low: item.Main.Temp}
			if len(item.Weather) > 0 {
				day.Icon = item.Weather[0].Icon
			}
			days = append(days, day)
			continue
		}
		d := &days[len(days)-1]
		if item.Main.Temp > d.High {
			d.High = item.Main.Temp
		}
		if item.Main.Temp < d.Low {
			d.Low = item.Main.Temp
		}
	}
	return days
}

func (self *Client) get(endpoint string, v interface{}) error {
	vs := url.Values{
		"q":     []string{self.conf.City + "," + self.conf.Country},
		"appid": []string{self.conf.Appid},
		"units": []string{self.conf.Units},
	}
	uri := fmt.Sprintf("%s/%s?%s", self.BaseURL, endpoint, vs.Encode())
	resp, err := self.http.Get(uri)
	if err != nil {
		return errors.Wrapf(err, "fetching %s", endpoint)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("fetching %s: %s", endpoint, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrapf(err, "decoding %s", endpoint)
	}
	return nil
}

// Fetch returns current conditions and forecast, refreshing from the API
// when the cache has expired. On API errors the stale cache is served.
func (self *Client) Fetch() (*Current, *Forecast, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	now := self.clock.Now()
	if self.current != nil && now.Sub(self.fetchedAt) < self.conf.CacheFor {
		return self.current, self.forecast, nil
	}

	var current Current
	var forecast Forecast
	if err := self.get("weather", &current); err != nil {
		if self.current != nil {
			log.Println("Weather API error:", err)
			return self.current, self.forecast, nil
		}
		return nil, nil, err
	}
	if err := self.get("forecast", &forecast); err != nil {
		if self.current != nil {
			log.Println("Weather API error:", err)
			return self.current, self.forecast, nil
		}
		return nil, nil, err
	}

	self.current = &current
	self.forecast = &forecast
	self.fetchedAt = now
	return self.current, self.forecast, nil
}

var icons = map[string]string{
	"01d": "☀️", "01n": "🌙",
	"02d": "⛅", "02n": "☁️",
	"03d": "☁️", "03n": "☁️",
	"04d": "☁️", "04n": "☁️",
	"09d": "🌧️", "09n": "🌧️",
	"10d": "🌦️", "10n": "🌧️",
	"11d": "⛈️", "11n": "⛈️",
	"13d": "❄️", "13n": "❄️",
	"50d": "🌫️", "50n": "🌫️",
}

// Emoji maps an OpenWeatherMap icon code to an emoji.
func Emoji(icon string) string {
	if e, ok := icons[icon]; ok {
		return e
	}
	return "🌡️"
}
