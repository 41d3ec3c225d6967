package dashboard

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(t *testing.T, server *httptest.Server, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := http.PostForm(server.URL+path, form)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func TestTodoFlow(t *testing.T) {
	service, _ := newTestService(t)
	server := httptest.NewServer(service.router())
	defer server.Close()

	postForm(t, server, "/todo/add", url.Values{"text": {"Water the plants"}})
	require.Len(t, service.todos, 1)
	assert.Equal(t, "Water the plants", service.todos[0].Text)
	assert.False(t, service.todos[0].Completed)
	assert.NotEmpty(t, service.todos[0].ID)

	// blank or whitespace-only text is ignored
	postForm(t, server, "/todo/add", url.Values{"text": {""}})
	postForm(t, server, "/todo/add", url.Values{"text": {"   "}})
	assert.Len(t, service.todos, 1)

	id := service.todos[0].ID
	postForm(t, server, "/todo/toggle/"+id, nil)
	assert.True(t, service.todos[0].Completed)
	postForm(t, server, "/todo/toggle/"+id, nil)
	assert.False(t, service.todos[0].Completed)

	postForm(t, server, "/todo/delete/"+id, nil)
	assert.Empty(t, service.todos)

	// persisted through the store
	var stored []TodoItem
	require.NoError(t, service.store.Load(todoFile, &stored))
	assert.Empty(t, stored)
}

func TestTodoRedirects(t *testing.T) {
	service, _ := newTestService(t)
	server := httptest.NewServer(service.router())
	defer server.Close()

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.PostForm(server.URL+"/todo/add", url.Values{"text": {"task"}})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/todo", resp.Header.Get("Location"))
}

func TestNotesFlow(t *testing.T) {
	service, _ := newTestService(t)
	server := httptest.NewServer(service.router())
	defer server.Close()

	postForm(t, server, "/notes/add", url.Values{
		"title":   {"Shopping"},
		"content": {"Milk\nEggs"},
	})
	require.Len(t, service.notes, 1)
	note := service.notes[0]
	assert.Equal(t, "Shopping", note.Title)
	assert.Equal(t, "2026-08-31 10:30:00", note.Created)

	// whitespace-only fields are rejected
	postForm(t, server, "/notes/add", url.Values{"title": {"  "}, "content": {"body"}})
	assert.Len(t, service.notes, 1)

	resp, err := http.Get(server.URL + "/notes/view/" + note.ID)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)

	// unknown note redirects back to the list
	resp, err = http.Get(server.URL + "/notes/view/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "/notes", resp.Request.URL.Path)

	postForm(t, server, "/notes/delete/"+note.ID, nil)
	assert.Empty(t, service.notes)
}

func TestNotePreview(t *testing.T) {
	short := Note{Content: "short"}
	assert.Equal(t, "short", short.Preview())

	long := Note{Content: strings.Repeat("é", 150)}
	assert.Equal(t, strings.Repeat("é", 100)+"...", long.Preview())
}

func TestTimersFlow(t *testing.T) {
	service, _ := newTestService(t)
	server := httptest.NewServer(service.router())
	defer server.Close()

	postForm(t, server, "/timers/add", url.Values{
		"name": {"Pizza"}, "minutes": {"5"}, "seconds": {"30"},
	})
	require.Len(t, service.timers, 1)
	timer := service.timers[0]
	assert.Equal(t, "Pizza", timer.Name)
	assert.Equal(t, 330, timer.Duration)
	assert.False(t, timer.Running)

	// zero duration and blank or whitespace-only name are rejected
	postForm(t, server, "/timers/add", url.Values{"name": {"x"}, "minutes": {"0"}, "seconds": {"0"}})
	postForm(t, server, "/timers/add", url.Values{"name": {""}, "minutes": {"5"}})
	postForm(t, server, "/timers/add", url.Values{"name": {"  "}, "minutes": {"5"}})
	assert.Len(t, service.timers, 1)

	postForm(t, server, "/timers/start/"+timer.ID, nil)
	assert.True(t, service.timers[0].Running)
	assert.NotZero(t, service.timers[0].StartTime)

	postForm(t, server, "/timers/stop/"+timer.ID, nil)
	assert.False(t, service.timers[0].Running)
	assert.Zero(t, service.timers[0].StartTime)

	postForm(t, server, "/timers/delete/"+timer.ID, nil)
	assert.Empty(t, service.timers)
}

func TestTimerRemaining(t *testing.T) {
	start := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	timer := Timer{
		Duration:  300,
		Running:   true,
		StartTime: float64(start.Unix()),
	}
	assert.Equal(t, 240, timer.Remaining(start.Add(time.Minute)))
	assert.Equal(t, 0, timer.Remaining(start.Add(time.Hour)))

	timer.Running = false
	assert.Equal(t, 300, timer.Remaining(start.Add(time.Hour)))
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0:45", formatSeconds(45))
	assert.Equal(t, "5:30", formatSeconds(330))
	assert.Equal(t, "1:02:05", formatSeconds(3725))
}

func TestMusicQueueWraparound(t *testing.T) {
	queue := MusicQueue{Queue: []Track{
		{ID: "a", Title: "One"},
		{ID: "b", Title: "Two"},
		{ID: "c", Title: "Three"},
	}}

	queue.Next()
	assert.Equal(t, 1, queue.CurrentIndex)
	queue.Next()
	queue.Next()
	assert.Equal(t, 0, queue.CurrentIndex)

	queue.Previous()
	assert.Equal(t, 2, queue.CurrentIndex)
}

func TestMusicQueueRemove(t *testing.T) {
	queue := MusicQueue{
		Queue: []Track{
			{ID: "a"}, {ID: "b"}, {ID: "c"},
		},
		CurrentIndex: 2,
		IsPlaying:    true,
	}

	// removing the playing tail track clamps to the new last track
	queue.Remove("c")
	assert.Equal(t, 1, queue.CurrentIndex)

	// removing before the playback position shifts it back
	queue.Remove("a")
	assert.Equal(t, 0, queue.CurrentIndex)

	queue.Remove("b")
	assert.Empty(t, queue.Queue)
	assert.Equal(t, 0, queue.CurrentIndex)
	assert.False(t, queue.IsPlaying)
}

func TestMusicHandlers(t *testing.T) {
	service, _ := newTestService(t)
	server := httptest.NewServer(service.router())
	defer server.Close()

	postForm(t, server, "/music/add", url.Values{"title": {"One"}, "artist": {"Band"}})
	postForm(t, server, "/music/add", url.Values{"title": {"Two"}, "artist": {"Band"}})
	postForm(t, server, "/music/add", url.Values{"title": {" "}, "artist": {"Band"}})
	require.Len(t, service.music.Queue, 2)

	// play on an empty form is ignored without a queue, allowed with one
	postForm(t, server, "/music/play", nil)
	assert.True(t, service.music.IsPlaying)

	postForm(t, server, "/music/play/1", nil)
	assert.Equal(t, 1, service.music.CurrentIndex)

	// out of range index is ignored
	postForm(t, server, "/music/play/9", nil)
	assert.Equal(t, 1, service.music.CurrentIndex)

	postForm(t, server, "/music/pause", nil)
	assert.False(t, service.music.IsPlaying)
}
