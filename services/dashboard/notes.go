package dashboard

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sharkmet/HomeHUB/pubsub"
)

const notesFile = "notes_data"

// Note is a saved note with a creation timestamp.
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Created string `json:"created"`
}

// Preview returns the first 100 characters of the note body.
func (note Note) Preview() string {
	runes := []rune(note.Content)
	if len(runes) <= 100 {
		return note.Content
	}
	return string(runes[:100]) + "..."
}

func (self *Service) saveNotes() {
	if err := self.store.Save(notesFile, self.notes); err != nil {
		errorLog(err)
	}
}

func (self *Service) notesPage(w http.ResponseWriter, req *http.Request) {
	self.mutex.Lock()
	// newest first
	notes := make([]Note, 0, len(self.notes))
	for i := len(self.notes) - 1; i >= 0; i-- {
		notes = append(notes, self.notes[i])
	}
	self.mutex.Unlock()
	data := struct {
		Notes []Note
	}{notes}
	renderTemplate(w, notesTemplate, data)
}

func (self *Service) notesAdd(w http.ResponseWriter, req *http.Request) {
	title := strings.TrimSpace(req.FormValue("title"))
	content := strings.TrimSpace(req.FormValue("content"))
	if title != "" && content != "" {
		self.mutex.Lock()
		self.notes = append(self.notes, Note{
			ID:      uuid.NewString(),
			Title:   title,
			Content: content,
			Created: self.clock.Now().Format(pubsub.TimeFormat),
		})
		self.saveNotes()
		self.mutex.Unlock()
	}
	http.Redirect(w, req, "/notes", http.StatusSeeOther)
}

func (self *Service) notesView(w http.ResponseWriter, req *http.Request) {
	id := routeVar(req, "id")
	self.mutex.Lock()
	var found *Note
	for i := range self.notes {
		if self.notes[i].ID == id {
			note := self.notes[i]
			found = &note
			break
		}
	}
	self.mutex.Unlock()
	if found == nil {
		http.Redirect(w, req, "/notes", http.StatusSeeOther)
		return
	}
	renderTemplate(w, noteViewTemplate, found)
}

func (self *Service) notesDelete(w http.ResponseWriter, req *http.Request) {
	id := routeVar(req, "id")
	self.mutex.Lock()
	for i := range self.notes {
		if self.notes[i].ID == id {
			self.notes = append(self.notes[:i], self.notes[i+1:]...)
			self.saveNotes()
			break
		}
	}
	self.mutex.Unlock()
	http.Redirect(w, req, "/notes", http.StatusSeeOther)
}
