package weather

import "strings"

const (
	providerIconSize = "64x64"
	displayIconSize  = "128x128"
)

// WeatherCondition describes the current phenomena as reported by the provider.
type WeatherCondition struct {
	Text *string `json:"text"`
	Icon *string `json:"icon"`
	Code *int    `json:"code"`
}

// IconURL returns the icon reference ready for display: the provider's
// 64x64 size marker is swapped for 128x128 and a protocol-relative
// reference gets an https scheme. An absent icon yields "".
func (c WeatherCondition) IconURL() string {
	if c.Icon == nil || *c.Icon == "" {
		return ""
	}
	icon := strings.Replace(*c.Icon, providerIconSize, displayIconSize, 1)
	if strings.HasPrefix(icon, "//") {
		icon = "https:" + icon
	}
	return icon
}

// WeatherSnapshot is the normalized current-conditions record for one
// successful lookup. Both unit systems are taken verbatim from the provider;
// a nil field means the provider did not send it.
type WeatherSnapshot struct {
	TemperatureC *float64         `json:"temperatureC"`
	TemperatureF *float64         `json:"temperatureF"`
	IsDay        *bool            `json:"isDay"`
	Condition    WeatherCondition `json:"condition"`

	WindMph    *float64 `json:"windMph"`
	WindKph    *float64 `json:"windKph"`
	WindDegree *float64 `json:"windDegree"`
	WindDir    *string  `json:"windDir"`

	PressureMb *float64 `json:"pressureMb"`
	PressureIn *float64 `json:"pressureIn"`
	PrecipMm   *float64 `json:"precipMm"`
	PrecipIn   *float64 `json:"precipIn"`
	Humidity   *float64 `json:"humidity"`
	Cloud      *float64 `json:"cloud"`

	FeelsLikeC *float64 `json:"feelsLikeC"`
	FeelsLikeF *float64 `json:"feelsLikeF"`
	WindChillC *float64 `json:"windChillC"`
	WindChillF *float64 `json:"windChillF"`
	HeatIndexC *float64 `json:"heatIndexC"`
	HeatIndexF *float64 `json:"heatIndexF"`
	DewPointC  *float64 `json:"dewPointC"`
	DewPointF  *float64 `json:"dewPointF"`

	VisibilityKm    *float64 `json:"visibilityKm"`
	VisibilityMiles *float64 `json:"visibilityMiles"`
	UVIndex         *float64 `json:"uvIndex"`
	GustMph         *float64 `json:"gustMph"`
	GustKph         *float64 `json:"gustKph"`
}
