package weather

import "context"

// CurrentResponse is the subset of the provider's current.json body we consume.
type CurrentResponse struct {
	Current *CurrentConditions `json:"current"`
}

// CurrentConditions mirrors the provider's "current" object field for field.
type CurrentConditions struct {
	TempC      *float64          `json:"temp_c"`
	TempF      *float64          `json:"temp_f"`
	IsDay      *int              `json:"is_day"`
	Condition  *WeatherCondition `json:"condition"`
	WindMph    *float64          `json:"wind_mph"`
	WindKph    *float64          `json:"wind_kph"`
	WindDegree *float64          `json:"wind_degree"`
	WindDir    *string           `json:"wind_dir"`
	PressureMb *float64          `json:"pressure_mb"`
	PressureIn *float64          `json:"pressure_in"`
	PrecipMm   *float64          `json:"precip_mm"`
	PrecipIn   *float64          `json:"precip_in"`
	Humidity   *float64          `json:"humidity"`
	Cloud      *float64          `json:"cloud"`
	FeelsLikeC *float64          `json:"feelslike_c"`
	FeelsLikeF *float64          `json:"feelslike_f"`
	WindChillC *float64          `json:"windchill_c"`
	WindChillF *float64          `json:"windchill_f"`
	HeatIndexC *float64          `json:"heatindex_c"`
	HeatIndexF *float64          `json:"heatindex_f"`
	DewPointC  *float64          `json:"dewpoint_c"`
	DewPointF  *float64          `json:"dewpoint_f"`
	VisKm      *float64          `json:"vis_km"`
	VisMiles   *float64          `json:"vis_miles"`
	UV         *float64          `json:"uv"`
	GustMph    *float64          `json:"gust_mph"`
	GustKph    *float64          `json:"gust_kph"`
}

// Provider abstracts the current-conditions data source (WeatherAPI.com).
type Provider interface {
	Name() string
	Current(ctx context.Context, city string) (CurrentResponse, error)
}
