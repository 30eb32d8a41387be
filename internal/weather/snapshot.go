package weather

import "errors"

var (
	errMissingCurrent   = errors.New(`response has no "current" object`)
	errMissingCondition = errors.New(`response has no "current.condition" object`)
)

// NewSnapshot maps a provider response 1:1 into a WeatherSnapshot. No unit
// math, rounding or defaulting is applied; absent fields stay nil.
func NewSnapshot(resp CurrentResponse) (WeatherSnapshot, error) {
	c := resp.Current
	if c == nil {
		return WeatherSnapshot{}, &MalformedResponseError{Err: errMissingCurrent}
	}
	if c.Condition == nil {
		return WeatherSnapshot{}, &MalformedResponseError{Err: errMissingCondition}
	}

	var isDay *bool
	if c.IsDay != nil {
		v := *c.IsDay == 1
		isDay = &v
	}

	return WeatherSnapshot{
		TemperatureC: c.TempC,
		TemperatureF: c.TempF,
		IsDay:        isDay,
		Condition: WeatherCondition{
			Text: c.Condition.Text,
			Icon: c.Condition.Icon,
			Code: c.Condition.Code,
		},
		WindMph:         c.WindMph,
		WindKph:         c.WindKph,
		WindDegree:      c.WindDegree,
		WindDir:         c.WindDir,
		PressureMb:      c.PressureMb,
		PressureIn:      c.PressureIn,
		PrecipMm:        c.PrecipMm,
		PrecipIn:        c.PrecipIn,
		Humidity:        c.Humidity,
		Cloud:           c.Cloud,
		FeelsLikeC:      c.FeelsLikeC,
		FeelsLikeF:      c.FeelsLikeF,
		WindChillC:      c.WindChillC,
		WindChillF:      c.WindChillF,
		HeatIndexC:      c.HeatIndexC,
		HeatIndexF:      c.HeatIndexF,
		DewPointC:       c.DewPointC,
		DewPointF:       c.DewPointF,
		VisibilityKm:    c.VisKm,
		VisibilityMiles: c.VisMiles,
		UVIndex:         c.UV,
		GustMph:         c.GustMph,
		GustKph:         c.GustKph,
	}, nil
}
