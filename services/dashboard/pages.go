package dashboard

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/sharkmet/HomeHUB/lib/openweather"
	"github.com/sharkmet/HomeHUB/services"
)

func errorLog(err error) {
	log.Println("Error:", err)
}

func renderTemplate(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	w.Header().Add("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		errorLog(err)
	}
}

func routeVar(req *http.Request, name string) string {
	return mux.Vars(req)[name]
}

type roomCard struct {
	Name     string
	Link     string
	Temp     string
	Humidity string
	Light    string
}

func (self *Service) roomCards() []roomCard {
	rooms := self.readings.Rooms(services.Config.Rooms)
	var cards []roomCard
	for _, name := range RoomNames(rooms) {
		room := rooms[name]
		card := roomCard{
			Name:     name,
			Link:     "/room/" + url.PathEscape(name),
			Temp:     "--",
			Humidity: "--",
			Light:    "--",
		}
		if temp, ok := room.Sensors["temperature"]; ok {
			card.Temp = fmt.Sprintf("%.1f°C", temp)
		}
		if humidity, ok := room.Sensors["humidity"]; ok {
			card.Humidity = fmt.Sprintf("%.0f%%", humidity)
		}
		if lux, ok := room.Sensors["light"]; ok {
			card.Light = InterpretLight(lux)
		}
		cards = append(cards, card)
	}
	return cards
}

func (self *Service) homePage(w http.ResponseWriter, req *http.Request) {
	now := self.clock.Now()
	data := struct {
		Time          string
		Date          string
		WeatherTemp   string
		WeatherDesc   string
		WeatherIcon   string
		TodoRemaining int
		TimersRunning int
		NoteCount     int
		MusicState    string
		MusicTrack    string
		CPUTemp       string
		Rooms         []roomCard
	}{
		Time:        now.Format("3:04 PM"),
		Date:        now.Format("Monday, January 2"),
		WeatherTemp: "--",
		WeatherDesc: "tap to refresh",
		WeatherIcon: "🌤️",
		MusicState:  "Paused",
		MusicTrack:  "Queue empty",
		CPUTemp:     "N/A",
		Rooms:       self.roomCards(),
	}

	if current, _, err := self.weather.Fetch(); err == nil {
		data.WeatherTemp = fmt.Sprintf("%.0f°", current.Main.Temp)
		data.WeatherDesc = current.Description()
		data.WeatherIcon = openweather.Emoji(current.Icon())
	}

	self.mutex.Lock()
	for _, todo := range self.todos {
		if !todo.Completed {
			data.TodoRemaining++
		}
	}
	for _, timer := range self.timers {
		if timer.Running {
			data.TimersRunning++
		}
	}
	data.NoteCount = len(self.notes)
	if self.music.IsPlaying {
		data.MusicState = "Playing"
	}
	if track := self.music.Current(); track != nil {
		data.MusicTrack = track.Title
	}
	if temp, ok := self.system.cpuTemp(); ok {
		data.CPUTemp = fmt.Sprintf("%.1f°C", temp)
	}
	self.mutex.Unlock()

	renderTemplate(w, homeTemplate, data)
}

type roomItem struct {
	Label    string
	Value    string
	Subtitle string
}

func (self *Service) roomPage(w http.ResponseWriter, req *http.Request) {
	name := routeVar(req, "room")
	rooms := self.readings.Rooms(services.Config.Rooms)
	room, ok := rooms[name]
	if !ok {
		http.Redirect(w, req, "/", http.StatusSeeOther)
		return
	}

	var items []roomItem
	if temp, ok := room.Sensors["temperature"]; ok {
		items = append(items, roomItem{Label: "Temperature", Value: fmt.Sprintf("%.1f°C", temp)})
	}
	if humidity, ok := room.Sensors["humidity"]; ok {
		items = append(items, roomItem{Label: "Humidity", Value: fmt.Sprintf("%.1f%%", humidity)})
	}
	if lux, ok := room.Sensors["light"]; ok {
		items = append(items, roomItem{
			Label:    "Light Level",
			Value:    fmt.Sprintf("%.0f lux", lux),
			Subtitle: InterpretLight(lux),
		})
	}
	if peak, ok := room.Sensors["audio_peak"]; ok {
		items = append(items, roomItem{
			Label:    "Audio Level",
			Value:    fmt.Sprintf("%.0f", peak),
			Subtitle: InterpretAudio(peak),
		})
	}

	data := struct {
		Name       string
		Items      []roomItem
		ReceivedAt string
	}{name, items, room.ReceivedAt}
	renderTemplate(w, roomTemplate, data)
}
