// HomeHUB is a touch dashboard for the home, designed for a small wall
// mounted display fed by DIY IoT sensor nodes.
//
// Features:
//   - Server-rendered touch interface (no client framework, works on a Pi)
//   - Sensor ingest over HTTP or mqtt, with per-room aggregation
//   - Local weather with a 5-day forecast (OpenWeatherMap)
//   - To-do list, notes, countdown timers and a music queue
//   - Host stats: CPU temperature and load, memory, disk, uptime
//   - Flat file persistence, survives restarts without a database
//   - Demo mode with fabricated readings for recordings
package homehub
