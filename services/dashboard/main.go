// Package dashboard is the HomeHUB touch dashboard: a server-rendered HTML
// interface for a small wall display, fed by sensor readings the IoT nodes
// push over HTTP or mqtt.
//
// Pages:
//
// http://localhost:5000/ - home screen with app and room cards
//
// http://localhost:5000/weather - current conditions and 5-day forecast
//
// http://localhost:5000/room/{room} - merged sensor detail for a room
//
// http://localhost:5000/todo /notes /timers /music /system - the apps
//
// JSON endpoints:
//
// POST http://localhost:5000/sensor-data - sensor reading ingest
//
// http://localhost:5000/latest - latest reading per device
//
// http://localhost:5000/api/weather - current + forecast passthrough
package dashboard

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/sharkmet/HomeHUB/lib/openweather"
	"github.com/sharkmet/HomeHUB/pubsub"
	"github.com/sharkmet/HomeHUB/services"
)

// Service dashboard
type Service struct {
	store    services.Store
	readings *Registry
	weather  *openweather.Client
	clock    clockwork.Clock
	system   systemMonitor

	mutex  sync.Mutex
	todos  []TodoItem
	notes  []Note
	timers []Timer
	music  MusicQueue
}

// ID of the service
func (self *Service) ID() string {
	return "dashboard"
}

func (self *Service) Init() error {
	self.store = services.Stor
	self.clock = clockwork.NewRealClock()
	self.readings = NewRegistry()
	wc := services.Config.Weather
	self.weather = openweather.New(openweather.Config{
		Appid:    wc.Appid,
		City:     wc.City,
		Country:  wc.Country,
		Units:    wc.Units,
		CacheFor: services.Config.WeatherCache(),
	})
	self.loadApps()
	return nil
}

// loadApps reads each app's state back from its flat file, best-effort.
func (self *Service) loadApps() {
	self.store.Load(todoFile, &self.todos)
	self.store.Load(notesFile, &self.notes)
	self.store.Load(timersFile, &self.timers)
	self.store.Load(musicFile, &self.music)
}

func (self *Service) recordReadings() {
	for ev := range services.Subscriber.Subscribe(pubsub.Prefix("sensor")) {
		if reading, ok := readingFromEvent(ev); ok {
			self.readings.Update(reading)
		}
	}
}

func (self *Service) router() *mux.Router {
	router := mux.NewRouter()
	router.Path("/").HandlerFunc(self.homePage)
	router.Path("/weather").HandlerFunc(self.weatherPage)
	router.Path("/room/{room}").HandlerFunc(self.roomPage)

	router.Path("/todo").HandlerFunc(self.todoPage)
	router.Path("/todo/add").Methods("POST").HandlerFunc(self.todoAdd)
	router.Path("/todo/toggle/{id}").Methods("POST").HandlerFunc(self.todoToggle)
	router.Path("/todo/delete/{id}").Methods("POST").HandlerFunc(self.todoDelete)

	router.Path("/notes").HandlerFunc(self.notesPage)
	router.Path("/notes/add").Methods("POST").HandlerFunc(self.notesAdd)
	router.Path("/notes/view/{id}").HandlerFunc(self.notesView)
	router.Path("/notes/delete/{id}").Methods("POST").HandlerFunc(self.notesDelete)

	router.Path("/timers").HandlerFunc(self.timersPage)
	router.Path("/timers/add").Methods("POST").HandlerFunc(self.timersAdd)
	router.Path("/timers/start/{id}").Methods("POST").HandlerFunc(self.timersStart)
	router.Path("/timers/stop/{id}").Methods("POST").HandlerFunc(self.timersStop)
	router.Path("/timers/delete/{id}").Methods("POST").HandlerFunc(self.timersDelete)

	router.Path("/music").HandlerFunc(self.musicPage)
	router.Path("/music/add").Methods("POST").HandlerFunc(self.musicAdd)
	router.Path("/music/play").Methods("POST").HandlerFunc(self.musicPlay)
	router.Path("/music/pause").Methods("POST").HandlerFunc(self.musicPause)
	router.Path("/music/play/{index:[0-9]+}").Methods("POST").HandlerFunc(self.musicPlayIndex)
	router.Path("/music/next").Methods("POST").HandlerFunc(self.musicNext)
	router.Path("/music/previous").Methods("POST").HandlerFunc(self.musicPrevious)
	router.Path("/music/remove/{id}").Methods("POST").HandlerFunc(self.musicRemove)

	router.Path("/system").HandlerFunc(self.systemPage)

	router.Path("/sensor-data").Methods("POST").HandlerFunc(self.apiSensorData)
	router.Path("/latest").HandlerFunc(self.apiLatest)
	router.Path("/api/weather").HandlerFunc(self.apiWeather)
	return router
}

type loggingHandler struct {
	Handler http.Handler
}

func (handler loggingHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	log.Printf("%s %s\n", req.Method, req.RequestURI)
	handler.Handler.ServeHTTP(w, req)
}

func (self *Service) httpEndpoint() error {
	addr := fmt.Sprintf(":%d", services.Config.Dashboard.Port)
	log.Println("Listening on " + addr)
	return http.ListenAndServe(addr, loggingHandler{Handler: self.router()})
}

// Run the service
func (self *Service) Run() error {
	go self.recordReadings()
	return self.httpEndpoint()
}
