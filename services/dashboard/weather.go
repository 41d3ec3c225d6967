package dashboard

import (
	"fmt"
	"net/http"

	"github.com/sharkmet/HomeHUB/lib/openweather"
)

type dayView struct {
	Name string
	Icon string
	High string
	Low  string
}

func (self *Service) weatherPage(w http.ResponseWriter, req *http.Request) {
	data := struct {
		Current     bool
		Icon        string
		Temp        string
		Description string
		FeelsLike   string
		Humidity    string
		Wind        string
		City        string
		Days        []dayView
	}{}

	current, forecast, err := self.weather.Fetch()
	if err != nil {
		errorLog(err)
		renderTemplate(w, weatherTemplate, data)
		return
	}

	data.Current = true
	data.Icon = openweather.Emoji(current.Icon())
	data.Temp = fmt.Sprintf("%.1f°C", current.Main.Temp)
	data.Description = current.Description()
	data.FeelsLike = fmt.Sprintf("%.1f°C", current.Main.FeelsLike)
	data.Humidity = fmt.Sprintf("%.0f%%", current.Main.Humidity)
	data.Wind = fmt.Sprintf("%.1f m/s", current.Wind.Speed)
	data.City = current.Name

	for _, day := range forecast.Days(5) {
		data.Days = append(data.Days, dayView{
			Name: day.Name,
			Icon: openweather.Emoji(day.Icon),
			High: fmt.Sprintf("%.0f°", day.High),
			Low:  fmt.Sprintf("%.0f°", day.Low),
		})
	}
	renderTemplate(w, weatherTemplate, data)
}
