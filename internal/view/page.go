// Package view renders a WeatherLookup as HTML. Build is a pure function of
// the input text and query state; Render only executes the template.
package view

import (
	"strconv"

	"github.com/i474232898/weather-lookup/internal/lookup"
	"github.com/i474232898/weather-lookup/internal/weather"
)

const (
	InputLabel       = "Enter City"
	InputPlaceholder = "e.g. Mumbai"
	ButtonIdle       = "Get Weather"
	ButtonLoading    = "Loading..."
	ErrorTitle       = "Error"
	IconSize         = 128
)

// Page is everything the template needs for one render.
type Page struct {
	City           string
	ButtonLabel    string
	ButtonDisabled bool
	Loading        bool
	Error          string
	Result         *Panel
}

// Panel is the success card.
type Panel struct {
	IconURL string
	IconAlt string
	Rows    []Row
}

type Row struct {
	Label string
	Value string
}

// Build maps the component state onto a Page.
func Build(city string, state lookup.State) Page {
	loading := state.Mode() == lookup.Loading
	page := Page{
		City:           city,
		ButtonLabel:    ButtonIdle,
		ButtonDisabled: loading || city == "",
		Loading:        loading,
	}
	if loading {
		page.ButtonLabel = ButtonLoading
	}

	if msg, ok := state.Message(); ok {
		page.Error = msg
	}
	if snap, ok := state.Snapshot(); ok {
		page.Result = buildPanel(snap)
	}
	return page
}

func buildPanel(s weather.WeatherSnapshot) *Panel {
	return &Panel{
		IconURL: s.Condition.IconURL(),
		IconAlt: str(s.Condition.Text),
		Rows: []Row{
			{"Temperature", num(s.TemperatureC) + "°C / " + num(s.TemperatureF) + "°F"},
			{"Feels Like", num(s.FeelsLikeC) + "°C / " + num(s.FeelsLikeF) + "°F"},
			{"Wind Chill", num(s.WindChillC) + "°C / " + num(s.WindChillF) + "°F"},
			{"Heat Index", num(s.HeatIndexC) + "°C / " + num(s.HeatIndexF) + "°F"},
			{"Dew Point", num(s.DewPointC) + "°C / " + num(s.DewPointF) + "°F"},
			{"Humidity", num(s.Humidity) + "%"},
			{"Cloud Cover", num(s.Cloud) + "%"},
			{"Wind", num(s.WindKph) + " km/h (" + num(s.WindMph) + " mph) " + str(s.WindDir) + " (" + num(s.WindDegree) + "°)"},
			{"Gusts", num(s.GustKph) + " km/h (" + num(s.GustMph) + " mph)"},
			{"Pressure", num(s.PressureMb) + " mb / " + num(s.PressureIn) + " in"},
			{"Precipitation", num(s.PrecipMm) + " mm / " + num(s.PrecipIn) + " in"},
			{"Visibility", num(s.VisibilityKm) + " km / " + num(s.VisibilityMiles) + " miles"},
			{"UV Index", num(s.UVIndex)},
			{"Is Daytime", yesNo(s.IsDay)},
			{"Condition", str(s.Condition.Text)},
		},
	}
}

// num prints the shortest decimal that round-trips; absent values print "".
func num(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func str(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func yesNo(v *bool) string {
	switch {
	case v == nil:
		return ""
	case *v:
		return "Yes"
	default:
		return "No"
	}
}
