package dashboard

import (
	"html/template"
)

var funcs = template.FuncMap{
	"roomIcon": roomIcon,
}

func mustPage(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(shared + text))
}

var (
	homeTemplate     = mustPage("home", homeHTML)
	weatherTemplate  = mustPage("weather", weatherHTML)
	roomTemplate     = mustPage("room", roomHTML)
	todoTemplate     = mustPage("todo", todoHTML)
	notesTemplate    = mustPage("notes", notesHTML)
	noteViewTemplate = mustPage("noteview", noteViewHTML)
	timersTemplate   = mustPage("timers", timersHTML)
	musicTemplate    = mustPage("music", musicHTML)
	systemTemplate   = mustPage("system", systemHTML)
)

const shared = `
{{define "styles"}}
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1, user-scalable=no">
    <link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Noto+Color+Emoji&display=swap">
    <style>
        * { box-sizing: border-box; margin: 0; padding: 0; }
        html { font-size: 18px; }
        body {
            font-family: 'Segoe UI', -apple-system, Arial, sans-serif, 'Noto Color Emoji';
            background: linear-gradient(135deg, #0f0f1a 0%, #1a1a2e 50%, #16213e 100%);
            min-height: 100vh;
            color: #eee;
            padding: 20px;
            -webkit-tap-highlight-color: rgba(0,217,255,0.3);
            user-select: none;
            -webkit-user-select: none;
        }
        .section-title {
            font-size: 1rem;
            color: #888;
            margin: 24px 0 12px 0;
            text-transform: uppercase;
            letter-spacing: 1px;
        }

        /* Header */
        .header {
            display: flex;
            align-items: center;
            justify-content: space-between;
            margin-bottom: 24px;
            padding: 0 10px;
        }
        .back-btn {
            display: flex;
            align-items: center;
            justify-content: center;
            width: 60px;
            height: 60px;
            background: rgba(255,255,255,0.1);
            border: none;
            border-radius: 16px;
            color: #00d9ff;
            font-size: 1.5rem;
            cursor: pointer;
            text-decoration: none;
            transition: all 0.2s;
        }
        .back-btn:active {
            background: rgba(0,217,255,0.3);
            transform: scale(0.95);
        }
        .page-title {
            font-size: 1.8rem;
            font-weight: 600;
            background: linear-gradient(90deg, #00d9ff, #00ff88);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            background-clip: text;
        }
        .time-display {
            text-align: right;
            color: #888;
            font-size: 0.9rem;
        }
        .time-display .time {
            font-size: 1.4rem;
            color: #fff;
            font-weight: 300;
        }

        /* Card Grid */
        .grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(280px, 1fr));
            gap: 20px;
            max-width: 1400px;
            margin: 0 auto;
        }

        /* Tappable Cards */
        .card {
            background: rgba(255,255,255,0.05);
            border-radius: 20px;
            padding: 24px;
            backdrop-filter: blur(10px);
            border: 1px solid rgba(255,255,255,0.1);
            transition: all 0.15s ease;
            cursor: pointer;
            min-height: 140px;
            text-decoration: none;
            color: inherit;
            display: block;
        }
        .card:active {
            transform: scale(0.97);
            background: rgba(0,217,255,0.15);
            border-color: rgba(0,217,255,0.4);
        }

        .card-header {
            display: flex;
            justify-content: space-between;
            align-items: flex-start;
            margin-bottom: 16px;
        }
        .card-icon {
            font-size: 2.5rem;
        }
        .card-title {
            font-size: 1.1rem;
            color: #888;
            margin-bottom: 4px;
        }
        .card-value {
            font-size: 2.8rem;
            font-weight: 300;
            color: #fff;
        }
        .card-subtitle {
            font-size: 0.85rem;
            color: #666;
            margin-top: 8px;
        }
        .card-arrow {
            color: #00d9ff;
            font-size: 1.5rem;
            opacity: 0.6;
        }

        /* Sensor Rows */
        .sensor-grid {
            display: grid;
            grid-template-columns: repeat(2, 1fr);
            gap: 16px;
            margin-top: 16px;
        }
        .sensor-item {
            background: rgba(255,255,255,0.03);
            border-radius: 12px;
            padding: 16px;
            text-align: center;
        }
        .sensor-label {
            font-size: 0.8rem;
            color: #888;
            margin-bottom: 6px;
        }
        .sensor-value {
            font-size: 1.4rem;
            font-weight: 500;
            color: #00ff88;
        }

        /* Detail Card */
        .detail-card {
            background: rgba(255,255,255,0.05);
            border-radius: 20px;
            padding: 30px;
            margin-bottom: 20px;
        }
        .big-temp {
            font-size: 5rem;
            font-weight: 200;
            color: #fff;
            text-align: center;
        }
        .big-icon {
            font-size: 4rem;
            text-align: center;
            margin-bottom: 10px;
        }
        .condition {
            text-align: center;
            font-size: 1.3rem;
            color: #888;
            margin-bottom: 30px;
        }

        /* Forecast */
        .forecast-row {
            display: flex;
            justify-content: space-between;
            overflow-x: auto;
            gap: 12px;
            padding: 10px 0;
        }
        .forecast-day {
            flex: 0 0 auto;
            text-align: center;
            padding: 16px 20px;
            background: rgba(255,255,255,0.05);
            border-radius: 16px;
            min-width: 90px;
        }
        .forecast-day .day {
            font-size: 0.85rem;
            color: #888;
            margin-bottom: 8px;
        }
        .forecast-day .icon {
            font-size: 1.8rem;
            margin-bottom: 8px;
        }
        .forecast-day .temps {
            font-size: 0.9rem;
        }
        .forecast-day .high { color: #fff; }
        .forecast-day .low { color: #666; margin-left: 6px; }

        /* Status */
        .status-dot {
            display: inline-block;
            width: 10px;
            height: 10px;
            background: #00ff88;
            border-radius: 50%;
            margin-right: 8px;
            animation: pulse 2s infinite;
        }
        @keyframes pulse {
            0%, 100% { opacity: 1; }
            50% { opacity: 0.5; }
        }

        .no-data {
            text-align: center;
            padding: 60px;
            color: #666;
            font-size: 1.2rem;
        }

        /* To-Do & Notes Lists */
        .item-list {
            margin-top: 20px;
        }
        .item {
            background: rgba(255,255,255,0.05);
            border-radius: 12px;
            padding: 16px 20px;
            margin-bottom: 12px;
            display: flex;
            justify-content: space-between;
            align-items: center;
            gap: 12px;
        }
        .item-text {
            flex: 1;
            font-size: 1.1rem;
            word-break: break-word;
        }
        .item.completed .item-text {
            text-decoration: line-through;
            opacity: 0.5;
        }
        .item-actions {
            display: flex;
            gap: 8px;
            flex-shrink: 0;
        }
        .btn {
            padding: 12px 24px;
            border: none;
            border-radius: 12px;
            font-size: 1rem;
            cursor: pointer;
            transition: all 0.2s;
            text-decoration: none;
            display: inline-block;
            text-align: center;
        }
        .btn-primary {
            background: linear-gradient(90deg, #00d9ff, #00ff88);
            color: #000;
            font-weight: 600;
        }
        .btn-primary:active {
            transform: scale(0.95);
        }
        .btn-secondary {
            background: rgba(255,255,255,0.1);
            color: #fff;
        }
        .btn-secondary:active {
            background: rgba(255,255,255,0.2);
            transform: scale(0.95);
        }
        .btn-icon {
            width: 48px;
            height: 48px;
            padding: 0;
            font-size: 1.2rem;
            display: flex;
            align-items: center;
            justify-content: center;
        }
        .btn-large {
            width: 80px;
            height: 80px;
            font-size: 2rem;
        }

        /* Forms */
        .input-group {
            display: flex;
            gap: 12px;
            margin-bottom: 20px;
        }
        .input, .textarea {
            flex: 1;
            padding: 16px;
            border: 1px solid rgba(255,255,255,0.1);
            border-radius: 12px;
            background: rgba(255,255,255,0.05);
            color: #fff;
            font-size: 1rem;
            font-family: inherit;
        }
        .textarea {
            min-height: 120px;
            resize: vertical;
        }
        .input:focus, .textarea:focus {
            outline: none;
            border-color: rgba(0,217,255,0.5);
            background: rgba(255,255,255,0.08);
        }

        /* Timer Display */
        .timer-item {
            background: rgba(255,255,255,0.05);
            border-radius: 16px;
            padding: 20px;
            margin-bottom: 16px;
        }
        .timer-name {
            font-size: 1.2rem;
            margin-bottom: 12px;
            color: #888;
        }
        .timer-time {
            font-size: 2.5rem;
            font-weight: 300;
            margin-bottom: 12px;
            font-variant-numeric: tabular-nums;
        }
        .timer-controls {
            display: flex;
            gap: 8px;
        }
        .timer-running {
            color: #00ff88;
        }
        .timer-finished {
            color: #ff4444;
            animation: blink 1s infinite;
        }
        @keyframes blink {
            0%, 50% { opacity: 1; }
            51%, 100% { opacity: 0.3; }
        }

        /* Music Player */
        .now-playing {
            background: rgba(0,217,255,0.1);
            border: 2px solid rgba(0,217,255,0.3);
            border-radius: 20px;
            padding: 30px;
            margin-bottom: 20px;
            text-align: center;
        }
        .album-art {
            font-size: 6rem;
            margin-bottom: 20px;
        }
        .track-title {
            font-size: 1.8rem;
            font-weight: 600;
            margin-bottom: 8px;
        }
        .track-artist {
            font-size: 1.2rem;
            color: #888;
            margin-bottom: 20px;
        }
        .playback-controls {
            display: flex;
            justify-content: center;
            align-items: center;
            gap: 20px;
            margin-top: 30px;
        }
        .track-item {
            background: rgba(255,255,255,0.05);
            border-radius: 12px;
            padding: 16px;
            margin-bottom: 12px;
            display: flex;
            justify-content: space-between;
            align-items: center;
        }
        .track-item.playing {
            background: rgba(0,217,255,0.15);
            border: 1px solid rgba(0,217,255,0.3);
        }

        /* Stats Gauges */
        .gauge {
            position: relative;
            text-align: center;
            padding: 20px;
        }
        .gauge-value {
            font-size: 3rem;
            font-weight: 300;
            color: #00ff88;
        }
        .gauge-label {
            font-size: 0.9rem;
            color: #888;
            margin-top: 8px;
        }
        .progress-bar {
            width: 100%;
            height: 12px;
            background: rgba(255,255,255,0.1);
            border-radius: 6px;
            overflow: hidden;
            margin-top: 12px;
        }
        .progress-fill {
            height: 100%;
            background: linear-gradient(90deg, #00d9ff, #00ff88);
            transition: width 0.3s;
        }
    </style>
{{end}}

{{define "refresh"}}
        <script>
            setTimeout(() => location.reload(), {{.}});
        </script>
{{end}}
`

const homeHTML = `<!DOCTYPE html>
<html>
<head>
    <title>HomeHUB Dashboard</title>
    {{template "styles"}}
</head>
<body>
    <div class="header">
        <div class="page-title">🏠 HomeHUB</div>
        <div class="time-display">
            <div class="time">{{.Time}}</div>
            <div>{{.Date}}</div>
        </div>
    </div>

    <div class="section-title">Apps</div>
    <div class="grid">
        <a href="/weather" class="card">
            <div class="card-header">
                <div>
                    <div class="card-title">Weather</div>
                    <div class="card-value">{{.WeatherTemp}}</div>
                    <div class="card-subtitle">{{.WeatherDesc}}</div>
                </div>
                <div>
                    <div class="card-icon">{{.WeatherIcon}}</div>
                </div>
            </div>
        </a>

        <a href="/todo" class="card">
            <div class="card-header">
                <div>
                    <div class="card-title">To-Do List</div>
                    <div class="card-value">{{.TodoRemaining}}</div>
                    <div class="card-subtitle">tasks remaining</div>
                </div>
                <div class="card-icon">✅</div>
            </div>
        </a>

        <a href="/timers" class="card">
            <div class="card-header">
                <div>
                    <div class="card-title">Timers</div>
                    <div class="card-value">{{.TimersRunning}}</div>
                    <div class="card-subtitle">active timers</div>
                </div>
                <div class="card-icon">⏱️</div>
            </div>
        </a>

        <a href="/notes" class="card">
            <div class="card-header">
                <div>
                    <div class="card-title">Notes</div>
                    <div class="card-value">{{.NoteCount}}</div>
                    <div class="card-subtitle">saved notes</div>
                </div>
                <div class="card-icon">📝</div>
            </div>
        </a>

        <a href="/music" class="card">
            <div class="card-header">
                <div>
                    <div class="card-title">Music</div>
                    <div class="card-value" style="font-size: 1.5rem;">{{.MusicState}}</div>
                    <div class="card-subtitle">{{.MusicTrack}}</div>
                </div>
                <div class="card-icon">🎵</div>
            </div>
        </a>

        <a href="/system" class="card">
            <div class="card-header">
                <div>
                    <div class="card-title">System Stats</div>
                    <div class="card-value" style="font-size: 1.8rem;">{{.CPUTemp}}</div>
                    <div class="card-subtitle">CPU Temperature</div>
                </div>
                <div class="card-icon">📊</div>
            </div>
        </a>
    </div>

    <div class="section-title">Rooms</div>
    <div class="grid">
{{if not .Rooms}}
        <div class="no-data">⏳ Waiting for sensor data...</div>
{{else}}{{range .Rooms}}
        <a href="{{.Link}}" class="card">
            <div class="card-header">
                <div>
                    <div class="card-title">{{roomIcon .Name}} {{.Name}}</div>
                    <div class="card-value">{{.Temp}}</div>
                </div>
                <div class="card-arrow">→</div>
            </div>
            <div class="sensor-grid">
                <div class="sensor-item">
                    <div class="sensor-label">Humidity</div>
                    <div class="sensor-value">{{.Humidity}}</div>
                </div>
                <div class="sensor-item">
                    <div class="sensor-label">Light</div>
                    <div class="sensor-value">{{.Light}}</div>
                </div>
            </div>
        </a>
{{end}}{{end}}
    </div>
    {{template "refresh" 10000}}
</body>
</html>
`

const weatherHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Weather</title>
    {{template "styles"}}
</head>
<body>
    <div class="header">
        <a href="/" class="back-btn">←</a>
        <div class="page-title">Weather</div>
        <div style="width: 60px;"></div>
    </div>
{{if .Current}}
    <div class="detail-card">
        <div class="big-icon">{{.Icon}}</div>
        <div class="big-temp">{{.Temp}}</div>
        <div class="condition">{{.Description}}</div>
        <div class="sensor-grid">
            <div class="sensor-item">
                <div class="sensor-label">Feels Like</div>
                <div class="sensor-value">{{.FeelsLike}}</div>
            </div>
            <div class="sensor-item">
                <div class="sensor-label">Humidity</div>
                <div class="sensor-value">{{.Humidity}}</div>
            </div>
            <div class="sensor-item">
                <div class="sensor-label">Wind Speed</div>
                <div class="sensor-value">{{.Wind}}</div>
            </div>
            <div class="sensor-item">
                <div class="sensor-label">Location</div>
                <div class="sensor-value">{{.City}}</div>
            </div>
        </div>
    </div>
{{end}}
{{if .Days}}
    <div class="section-title">5-Day Forecast</div>
    <div class="forecast-row">
{{range .Days}}
        <div class="forecast-day">
            <div class="day">{{.Name}}</div>
            <div class="icon">{{.Icon}}</div>
            <div class="temps">
                <span class="high">{{.High}}</span>
                <span class="low">{{.Low}}</span>
            </div>
        </div>
{{end}}
    </div>
{{end}}
    {{template "refresh" 10000}}
</body>
</html>
`

const roomHTML = `<!DOCTYPE html>
<html>
<head>
    <title>{{.Name}}</title>
    {{template "styles"}}
</head>
<body>
    <div class="header">
        <a href="/" class="back-btn">←</a>
        <div class="page-title">{{roomIcon .Name}} {{.Name}}</div>
        <div style="width: 60px;"></div>
    </div>

    <div class="detail-card">
        <div class="section-title">Temperature & Humidity</div>
        <div class="sensor-grid">
{{range .Items}}
            <div class="sensor-item">
                <div class="sensor-label">{{.Label}}</div>
                <div class="sensor-value">{{.Value}}</div>
                {{if .Subtitle}}<div class="card-subtitle">{{.Subtitle}}</div>{{end}}
            </div>
{{end}}
        </div>
        <div class="card-subtitle" style="margin-top: 20px; text-align: center;">
            <span class="status-dot"></span>
            Last updated: {{.ReceivedAt}}
        </div>
    </div>
    {{template "refresh" 10000}}
</body>
</html>
`

const todoHTML = `<!DOCTYPE html>
<html>
<head>
    <title>To-Do List</title>
    {{template "styles"}}
</head>
<body>
    <div class="header">
        <a href="/" class="back-btn">←</a>
        <div class="page-title">✅ To-Do List</div>
        <div style="width: 60px;"></div>
    </div>

    <div class="detail-card">
        <form action="/todo/add" method="POST" class="input-group">
            <input type="text" name="text" class="input" placeholder="Add a new task..." required>
            <button type="submit" class="btn btn-primary">Add</button>
        </form>
    </div>

    <div class="item-list">
{{if not .Todos}}
        <div class="no-data">📝 No tasks yet. Add one above!</div>
{{else}}{{range .Todos}}
        <div class="item{{if .Completed}} completed{{end}}">
            <div class="item-text">{{.Text}}</div>
            <div class="item-actions">
                <form action="/todo/toggle/{{.ID}}" method="POST" style="display:inline;">
                    <button type="submit" class="btn btn-icon btn-secondary">{{if .Completed}}↩{{else}}✓{{end}}</button>
                </form>
                <form action="/todo/delete/{{.ID}}" method="POST" style="display:inline;">
                    <button type="submit" class="btn btn-icon btn-secondary">🗑️</button>
                </form>
            </div>
        </div>
{{end}}{{end}}
    </div>
</body>
</html>
`

const notesHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Notes</title>
    {{template "styles"}}
</head>
<body>
    <div class="header">
        <a href="/" class="back-btn">←</a>
        <div class="page-title">📝 Notes</div>
        <div style="width: 60px;"></div>
    </div>

    <div class="detail-card">
        <form action="/notes/add" method="POST">
            <input type="text" name="title" class="input" placeholder="Note title..." required style="margin-bottom: 12px; display: block; width: 100%;">
            <textarea name="content" class="textarea" placeholder="Write your note here..." required style="display: block; width: 100%;"></textarea>
            <button type="submit" class="btn btn-primary" style="width: 100%; margin-top: 12px;">Save Note</button>
        </form>
    </div>

    <div class="item-list">
{{if not .Notes}}
        <div class="no-data">📝 No notes yet. Create one above!</div>
{{else}}{{range .Notes}}
        <div class="item">
            <div style="flex: 1;">
                <div style="font-size: 1.2rem; font-weight: 600; margin-bottom: 8px;">{{.Title}}</div>
                <div style="color: #888; margin-bottom: 8px; white-space: pre-wrap;">{{.Preview}}</div>
                <div style="font-size: 0.8rem; color: #666;">{{.Created}}</div>
            </div>
            <div class="item-actions">
                <a href="/notes/view/{{.ID}}" class="btn btn-icon btn-secondary">👁️</a>
                <form action="/notes/delete/{{.ID}}" method="POST" style="display:inline;">
                    <button type="submit" class="btn btn-icon btn-secondary">🗑️</button>
                </form>
            </div>
        </div>
{{end}}{{end}}
    </div>
</body>
</html>
`

const noteViewHTML = `<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
    {{template "styles"}}
</head>
<body>
    <div class="header">
        <a href="/notes" class="back-btn">←</a>
        <div class="page-title">📝 {{.Title}}</div>
        <div style="width: 60px;"></div>
    </div>

    <div class="detail-card">
        <div style="color: #666; font-size: 0.9rem; margin-bottom: 20px;">
            Created: {{.Created}}
        </div>
        <div style="white-space: pre-wrap; font-size: 1.1rem; line-height: 1.6;">{{.Content}}</div>
    </div>

    <div style="margin-top: 20px;">
        <form action="/notes/delete/{{.ID}}" method="POST">
            <button type="submit" class="btn btn-secondary" style="width: 100%;">🗑️ Delete Note</button>
        </form>
    </div>
</body>
</html>
`

const timersHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Timers</title>
    {{template "styles"}}
    <script>
        function formatTime(seconds) {
            const hours = Math.floor(seconds / 3600);
            const mins = Math.floor((seconds % 3600) / 60);
            const secs = seconds % 60;
            if (hours > 0) {
                return hours + ':' + String(mins).padStart(2, '0') + ':' + String(secs).padStart(2, '0');
            }
            return mins + ':' + String(secs).padStart(2, '0');
        }

        function updateTimers() {
            const timers = {{.TimersJSON}};
            const now = Date.now() / 1000;

            timers.forEach((timer, index) => {
                if (!timer.running) return;

                const elapsed = now - timer.start_time;
                const remaining = Math.max(0, timer.duration - elapsed);

                const elem = document.getElementById('timer-' + index);
                if (elem) {
                    elem.textContent = formatTime(Math.floor(remaining));
                    if (remaining <= 0) {
                        elem.classList.add('timer-finished');
                        if ('vibrate' in navigator) navigator.vibrate(200);
                    } else {
                        elem.classList.remove('timer-finished');
                    }
                }
            });
        }

        setInterval(updateTimers, 1000);
        setTimeout(updateTimers, 100);
    </script>
</head>
<body>
    <div class="header">
        <a href="/" class="back-btn">←</a>
        <div class="page-title">⏱️ Timers</div>
        <div style="width: 60px;"></div>
    </div>

    <div class="detail-card">
        <form action="/timers/add" method="POST">
            <div class="input-group">
                <input type="text" name="name" class="input" placeholder="Timer name (e.g., Pizza)" required>
            </div>
            <div class="input-group">
                <input type="number" name="minutes" class="input" placeholder="Minutes" min="0" max="999" value="5" required>
                <input type="number" name="seconds" class="input" placeholder="Seconds" min="0" max="59" value="0">
                <button type="submit" class="btn btn-primary">Create</button>
            </div>
        </form>
    </div>

    <div class="item-list">
{{if not .Timers}}
        <div class="no-data">⏱️ No timers yet. Create one above!</div>
{{else}}{{range .Timers}}
        <div class="timer-item">
            <div class="timer-name">{{.Name}}</div>
            <div class="timer-time{{if .Running}} timer-running{{end}}" id="timer-{{.Index}}">{{.Display}}</div>
            <div class="timer-controls">
{{if .Running}}
                <form action="/timers/stop/{{.ID}}" method="POST" style="display:inline; flex:1;">
                    <button type="submit" class="btn btn-secondary" style="width:100%;">⏸ Stop</button>
                </form>
{{else}}
                <form action="/timers/start/{{.ID}}" method="POST" style="display:inline; flex:1;">
                    <button type="submit" class="btn btn-primary" style="width:100%;">▶ Start</button>
                </form>
{{end}}
                <form action="/timers/delete/{{.ID}}" method="POST" style="display:inline;">
                    <button type="submit" class="btn btn-icon btn-secondary">🗑️</button>
                </form>
            </div>
        </div>
{{end}}{{end}}
    </div>
</body>
</html>
`

const musicHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Music Player</title>
    {{template "styles"}}
</head>
<body>
    <div class="header">
        <a href="/" class="back-btn">←</a>
        <div class="page-title">🎵 Music Player</div>
        <div style="width: 60px;"></div>
    </div>

    <div class="now-playing">
        <div class="album-art">{{if .Current}}🎵{{else}}🎶{{end}}</div>
        <div class="track-title">{{if .Current}}{{.Current.Title}}{{else}}No Track Playing{{end}}</div>
        <div class="track-artist">{{if .Current}}{{.Current.Artist}}{{else}}Add songs to queue{{end}}</div>

        <div class="playback-controls">
            <form action="/music/previous" method="POST" style="display:inline;">
                <button type="submit" class="btn btn-icon btn-large btn-secondary">⏮</button>
            </form>
{{if .IsPlaying}}
            <form action="/music/pause" method="POST" style="display:inline;">
                <button type="submit" class="btn btn-icon btn-large btn-primary">⏸️</button>
            </form>
{{else}}
            <form action="/music/play" method="POST" style="display:inline;">
                <button type="submit" class="btn btn-icon btn-large btn-primary">▶️</button>
            </form>
{{end}}
            <form action="/music/next" method="POST" style="display:inline;">
                <button type="submit" class="btn btn-icon btn-large btn-secondary">⏭</button>
            </form>
        </div>
    </div>

    <div class="detail-card">
        <form action="/music/add" method="POST">
            <div class="input-group">
                <input type="text" name="title" class="input" placeholder="Song title..." required>
            </div>
            <div class="input-group">
                <input type="text" name="artist" class="input" placeholder="Artist name..." required>
                <button type="submit" class="btn btn-primary">Add to Queue</button>
            </div>
        </form>
    </div>

    <div class="section-title">Queue ({{.QueueLen}} songs)</div>
    <div class="item-list">
{{if not .Tracks}}
        <div class="no-data">🎵 Queue is empty. Add songs above!</div>
{{else}}{{range .Tracks}}
        <div class="track-item{{if .Playing}} playing{{end}}">
            <div style="flex: 1;">
                <div style="font-size: 1.2rem; font-weight: 600; margin-bottom: 4px;">{{if .Playing}} ▶️ {{end}}{{.Title}}</div>
                <div style="color: #888;">{{.Artist}}</div>
            </div>
            <div class="item-actions">
                <form action="/music/play/{{.Index}}" method="POST" style="display:inline;">
                    <button type="submit" class="btn btn-icon btn-secondary">▶️</button>
                </form>
                <form action="/music/remove/{{.ID}}" method="POST" style="display:inline;">
                    <button type="submit" class="btn btn-icon btn-secondary">🗑️</button>
                </form>
            </div>
        </div>
{{end}}{{end}}
    </div>
</body>
</html>
`

const systemHTML = `<!DOCTYPE html>
<html>
<head>
    <title>System Stats</title>
    {{template "styles"}}
</head>
<body>
    <div class="header">
        <a href="/" class="back-btn">←</a>
        <div class="page-title">📊 System Stats</div>
        <div style="width: 60px;"></div>
    </div>

    <div class="detail-card">
        <div class="big-icon">💻</div>
        <div style="text-align: center; font-size: 1.3rem; color: #888; margin-bottom: 30px;">
            Raspberry Pi Status
        </div>

        <div class="sensor-grid" style="grid-template-columns: repeat(2, 1fr);">
            <div class="sensor-item">
                <div class="sensor-label">🌡️ CPU Temp</div>
                <div class="sensor-value">{{.CPUTemp}}</div>
            </div>
            <div class="sensor-item">
                <div class="sensor-label">⚡ CPU Usage</div>
                <div class="sensor-value">{{.CPUUsage}}</div>
            </div>
        </div>
    </div>

    <div class="detail-card">
        <div class="section-title">Memory Usage</div>
{{if .Memory}}
        <div class="gauge">
            <div class="gauge-value">{{.Memory.Percent}}%</div>
            <div class="gauge-label">{{.Memory.UsedMB}} MB / {{.Memory.TotalMB}} MB</div>
            <div class="progress-bar">
                <div class="progress-fill" style="width: {{.Memory.Percent}}%;"></div>
            </div>
        </div>
{{else}}
        <div class="no-data">Memory info unavailable</div>
{{end}}
    </div>

    <div class="detail-card">
        <div class="section-title">Disk Usage</div>
{{if .Disk}}
        <div class="gauge">
            <div class="gauge-value">{{.Disk.Percent}}%</div>
            <div class="gauge-label">{{.Disk.Used}} / {{.Disk.Total}}</div>
            <div class="progress-bar">
                <div class="progress-fill" style="width: {{.Disk.Percent}}%;"></div>
            </div>
        </div>
{{else}}
        <div class="no-data">Disk info unavailable</div>
{{end}}
    </div>

    <div class="detail-card">
        <div class="sensor-grid" style="grid-template-columns: 1fr;">
            <div class="sensor-item">
                <div class="sensor-label">⏱️ Uptime</div>
                <div class="sensor-value" style="font-size: 1.2rem;">{{.Uptime}}</div>
            </div>
        </div>
    </div>
    {{template "refresh" 5000}}
</body>
</html>
`
