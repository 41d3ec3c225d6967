package config

import (
	"io"
	"io/ioutil"
	"os"
	"path"
	"time"

	"github.com/sharkmet/HomeHUB/util"

	"gopkg.in/yaml.v2"
)

type DashboardConf struct {
	Port    int
	Datadir string
}

type EndpointsConf struct {
	Mqtt struct {
		Broker string
	}
}

// Duration accepts values like "10m" in the yaml.
type Duration struct {
	Duration time.Duration
}

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = val
	return nil
}

type WeatherConf struct {
	Appid   string
	City    string
	Country string
	Units   string
	Cache   *Duration
}

// Configuration structure
type Config struct {
	// yaml fields
	Dashboard DashboardConf
	Endpoints EndpointsConf
	Rooms     map[string][]string
	Weather   WeatherConf
}

// Open configuration from disk.
func Open() (*Config, error) {
	file, err := os.Open(ConfigPath("homehub.yml"))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return OpenReader(file)
}

// OpenFile opens configuration from the given path.
func OpenFile(p string) (*Config, error) {
	file, err := os.Open(util.ExpandUser(p))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return OpenReader(file)
}

// Open configuration from a reader.
func OpenReader(r io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return OpenRaw(data)
}

// Open configuration from []byte.
func OpenRaw(data []byte) (*Config, error) {
	self := &Config{}
	err := yaml.Unmarshal(data, self)
	if err != nil {
		return nil, err
	}
	if self.Dashboard.Port == 0 {
		self.Dashboard.Port = 5000
	}
	if self.Weather.Units == "" {
		self.Weather.Units = "metric"
	}
	return self, nil
}

// Datadir returns the directory app state and the sensor log are kept under.
func (self *Config) Datadir() string {
	if self.Dashboard.Datadir == "" {
		return ConfigPath("data")
	}
	return util.ExpandUser(self.Dashboard.Datadir)
}

// WeatherCache returns the weather cache expiry (default 10 minutes).
func (self *Config) WeatherCache() time.Duration {
	if self.Weather.Cache == nil {
		return 10 * time.Minute
	}
	return self.Weather.Cache.Duration
}

// DeviceRoom returns the room a device is assigned to, or "".
func (self *Config) DeviceRoom(device string) string {
	for room, devices := range self.Rooms {
		for _, d := range devices {
			if d == device {
				return room
			}
		}
	}
	return ""
}

// helpers

// Resolve a configuration file under .config/homehub
func ConfigPath(p string) string {
	config := os.Getenv("XDG_CONFIG_HOME")
	if config == "" {
		config = path.Join(os.Getenv("HOME"), ".config")
	}
	return path.Join(config, "homehub", p)
}
