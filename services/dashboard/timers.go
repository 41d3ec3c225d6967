package dashboard

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const timersFile = "timers_data"

// Timer is a countdown timer. StartTime is a unix timestamp in seconds,
// recorded when the timer last started; the browser counts down from it.
type Timer struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Duration  int     `json:"duration"`
	Running   bool    `json:"running"`
	StartTime float64 `json:"start_time"`
}

// Remaining seconds on the timer as of now. Stopped timers report their
// full duration.
func (timer Timer) Remaining(now time.Time) int {
	if !timer.Running {
		return timer.Duration
	}
	elapsed := float64(now.UnixNano())/float64(time.Second) - timer.StartTime
	remaining := timer.Duration - int(elapsed)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func formatSeconds(seconds int) string {
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func (self *Service) saveTimers() {
	if err := self.store.Save(timersFile, self.timers); err != nil {
		errorLog(err)
	}
}

type timerView struct {
	Timer
	Index   int
	Display string
}

func (self *Service) timersPage(w http.ResponseWriter, req *http.Request) {
	now := self.clock.Now()
	self.mutex.Lock()
	views := make([]timerView, len(self.timers))
	for i, timer := range self.timers {
		views[i] = timerView{
			Timer:   timer,
			Index:   i,
			Display: formatSeconds(timer.Remaining(now)),
		}
	}
	encoded, _ := json.Marshal(self.timers)
	self.mutex.Unlock()
	data := struct {
		Timers     []timerView
		TimersJSON template.JS
	}{views, template.JS(encoded)}
	renderTemplate(w, timersTemplate, data)
}

func (self *Service) timersAdd(w http.ResponseWriter, req *http.Request) {
	name := strings.TrimSpace(req.FormValue("name"))
	minutes, _ := strconv.Atoi(req.FormValue("minutes"))
	seconds, _ := strconv.Atoi(req.FormValue("seconds"))
	duration := minutes*60 + seconds
	if name != "" && duration > 0 {
		self.mutex.Lock()
		self.timers = append(self.timers, Timer{
			ID:       uuid.NewString(),
			Name:     name,
			Duration: duration,
		})
		self.saveTimers()
		self.mutex.Unlock()
	}
	http.Redirect(w, req, "/timers", http.StatusSeeOther)
}

func (self *Service) timersStart(w http.ResponseWriter, req *http.Request) {
	id := routeVar(req, "id")
	now := self.clock.Now()
	self.mutex.Lock()
	for i := range self.timers {
		if self.timers[i].ID == id {
			self.timers[i].Running = true
			self.timers[i].StartTime = float64(now.UnixNano()) / float64(time.Second)
			self.saveTimers()
			break
		}
	}
	self.mutex.Unlock()
	http.Redirect(w, req, "/timers", http.StatusSeeOther)
}

func (self *Service) timersStop(w http.ResponseWriter, req *http.Request) {
	id := routeVar(req, "id")
	self.mutex.Lock()
	for i := range self.timers {
		if self.timers[i].ID == id {
			self.timers[i].Running = false
			self.timers[i].StartTime = 0
			self.saveTimers()
			break
		}
	}
	self.mutex.Unlock()
	http.Redirect(w, req, "/timers", http.StatusSeeOther)
}

func (self *Service) timersDelete(w http.ResponseWriter, req *http.Request) {
	id := routeVar(req, "id")
	self.mutex.Lock()
	for i := range self.timers {
		if self.timers[i].ID == id {
			self.timers = append(self.timers[:i], self.timers[i+1:]...)
			self.saveTimers()
			break
		}
	}
	self.mutex.Unlock()
	http.Redirect(w, req, "/timers", http.StatusSeeOther)
}
