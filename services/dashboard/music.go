package dashboard

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const musicFile = "music_queue"

// Track is one song in the queue.
type Track struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// MusicQueue is the play queue and playback position. Playback is a
// stub: state only, no audio output.
type MusicQueue struct {
	Queue        []Track `json:"queue"`
	CurrentIndex int     `json:"current_index"`
	IsPlaying    bool    `json:"is_playing"`
}

// Current returns the track at the playback position, or nil when the
// queue is empty.
func (queue *MusicQueue) Current() *Track {
	if queue.CurrentIndex < 0 || queue.CurrentIndex >= len(queue.Queue) {
		return nil
	}
	return &queue.Queue[queue.CurrentIndex]
}

// Next advances the playback position, wrapping to the start.
func (queue *MusicQueue) Next() {
	if len(queue.Queue) > 0 {
		queue.CurrentIndex = (queue.CurrentIndex + 1) % len(queue.Queue)
	}
}

// Previous moves the playback position back, wrapping to the end.
func (queue *MusicQueue) Previous() {
	if len(queue.Queue) > 0 {
		queue.CurrentIndex = (queue.CurrentIndex - 1 + len(queue.Queue)) % len(queue.Queue)
	}
}

// Remove drops the track with the given id, clamping the playback
// position to the shortened queue.
func (queue *MusicQueue) Remove(id string) {
	for i := range queue.Queue {
		if queue.Queue[i].ID == id {
			queue.Queue = append(queue.Queue[:i], queue.Queue[i+1:]...)
			if i < queue.CurrentIndex {
				queue.CurrentIndex--
			}
			break
		}
	}
	if queue.CurrentIndex >= len(queue.Queue) {
		queue.CurrentIndex = len(queue.Queue) - 1
	}
	if queue.CurrentIndex < 0 {
		queue.CurrentIndex = 0
	}
	if len(queue.Queue) == 0 {
		queue.IsPlaying = false
	}
}

func (self *Service) saveMusic() {
	if err := self.store.Save(musicFile, self.music); err != nil {
		errorLog(err)
	}
}

type trackView struct {
	Track
	Index   int
	Playing bool
}

func (self *Service) musicPage(w http.ResponseWriter, req *http.Request) {
	self.mutex.Lock()
	tracks := make([]trackView, len(self.music.Queue))
	for i, track := range self.music.Queue {
		tracks[i] = trackView{
			Track:   track,
			Index:   i,
			Playing: i == self.music.CurrentIndex && self.music.IsPlaying,
		}
	}
	var current *Track
	if cur := self.music.Current(); cur != nil {
		track := *cur
		current = &track
	}
	isPlaying := self.music.IsPlaying
	self.mutex.Unlock()
	data := struct {
		Current   *Track
		IsPlaying bool
		QueueLen  int
		Tracks    []trackView
	}{current, isPlaying, len(tracks), tracks}
	renderTemplate(w, musicTemplate, data)
}

func (self *Service) musicAdd(w http.ResponseWriter, req *http.Request) {
	title := strings.TrimSpace(req.FormValue("title"))
	artist := strings.TrimSpace(req.FormValue("artist"))
	if title != "" && artist != "" {
		self.mutex.Lock()
		self.music.Queue = append(self.music.Queue, Track{
			ID:     uuid.NewString(),
			Title:  title,
			Artist: artist,
		})
		self.saveMusic()
		self.mutex.Unlock()
	}
	http.Redirect(w, req, "/music", http.StatusSeeOther)
}

func (self *Service) musicPlay(w http.ResponseWriter, req *http.Request) {
	self.mutex.Lock()
	if len(self.music.Queue) > 0 {
		self.music.IsPlaying = true
		self.saveMusic()
	}
	self.mutex.Unlock()
	http.Redirect(w, req, "/music", http.StatusSeeOther)
}

func (self *Service) musicPause(w http.ResponseWriter, req *http.Request) {
	self.mutex.Lock()
	self.music.IsPlaying = false
	self.saveMusic()
	self.mutex.Unlock()
	http.Redirect(w, req, "/music", http.StatusSeeOther)
}

func (self *Service) musicPlayIndex(w http.ResponseWriter, req *http.Request) {
	index, _ := strconv.Atoi(routeVar(req, "index"))
	self.mutex.Lock()
	if index >= 0 && index < len(self.music.Queue) {
		self.music.CurrentIndex = index
		self.music.IsPlaying = true
		self.saveMusic()
	}
	self.mutex.Unlock()
	http.Redirect(w, req, "/music", http.StatusSeeOther)
}

func (self *Service) musicNext(w http.ResponseWriter, req *http.Request) {
	self.mutex.Lock()
	self.music.Next()
	self.saveMusic()
	self.mutex.Unlock()
	http.Redirect(w, req, "/music", http.StatusSeeOther)
}

func (self *Service) musicPrevious(w http.ResponseWriter, req *http.Request) {
	self.mutex.Lock()
	self.music.Previous()
	self.saveMusic()
	self.mutex.Unlock()
	http.Redirect(w, req, "/music", http.StatusSeeOther)
}

func (self *Service) musicRemove(w http.ResponseWriter, req *http.Request) {
	id := routeVar(req, "id")
	self.mutex.Lock()
	self.music.Remove(id)
	self.saveMusic()
	self.mutex.Unlock()
	http.Redirect(w, req, "/music", http.StatusSeeOther)
}
