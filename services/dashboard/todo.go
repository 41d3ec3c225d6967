package dashboard

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const todoFile = "todo_data"

// TodoItem is a single entry on the to-do list.
type TodoItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func (self *Service) saveTodos() {
	if err := self.store.Save(todoFile, self.todos); err != nil {
		errorLog(err)
	}
}

func (self *Service) todoPage(w http.ResponseWriter, req *http.Request) {
	self.mutex.Lock()
	data := struct {
		Todos []TodoItem
	}{append([]TodoItem{}, self.todos...)}
	self.mutex.Unlock()
	renderTemplate(w, todoTemplate, data)
}

func (self *Service) todoAdd(w http.ResponseWriter, req *http.Request) {
	text := strings.TrimSpace(req.FormValue("text"))
	if text != "" {
		self.mutex.Lock()
		self.todos = append(self.todos, TodoItem{
			ID:   uuid.NewString(),
			Text: text,
		})
		self.saveTodos()
		self.mutex.Unlock()
	}
	http.Redirect(w, req, "/todo", http.StatusSeeOther)
}

func (self *Service) todoToggle(w http.ResponseWriter, req *http.Request) {
	id := routeVar(req, "id")
	self.mutex.Lock()
	for i := range self.todos {
		if self.todos[i].ID == id {
			self.todos[i].Completed = !self.todos[i].Completed
			self.saveTodos()
			break
		}
	}
	self.mutex.Unlock()
	http.Redirect(w, req, "/todo", http.StatusSeeOther)
}

func (self *Service) todoDelete(w http.ResponseWriter, req *http.Request) {
	id := routeVar(req, "id")
	self.mutex.Lock()
	for i := range self.todos {
		if self.todos[i].ID == id {
			self.todos = append(self.todos[:i], self.todos[i+1:]...)
			self.saveTodos()
			break
		}
	}
	self.mutex.Unlock()
	http.Redirect(w, req, "/todo", http.StatusSeeOther)
}
