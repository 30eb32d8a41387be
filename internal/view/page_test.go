package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/i474232898/weather-lookup/internal/lookup"
	"github.com/i474232898/weather-lookup/internal/weather"
)

func ptr[T any](v T) *T { return &v }

func fullSnapshot() weather.WeatherSnapshot {
	return weather.WeatherSnapshot{
		TemperatureC: ptr(21.5), TemperatureF: ptr(70.7),
		IsDay: ptr(true),
		Condition: weather.WeatherCondition{
			Text: ptr("Sunny"),
			Icon: ptr("//cdn.example/64x64/113.png"),
			Code: ptr(1000),
		},
		WindMph: ptr(5.6), WindKph: ptr(9.0), WindDegree: ptr(270.0), WindDir: ptr("W"),
		PressureMb: ptr(1012.0), PressureIn: ptr(29.88),
		PrecipMm: ptr(0.0), PrecipIn: ptr(0.0),
		Humidity: ptr(65.0), Cloud: ptr(0.0),
		FeelsLikeC: ptr(21.5), FeelsLikeF: ptr(70.7),
		WindChillC: ptr(20.1), WindChillF: ptr(68.2),
		HeatIndexC: ptr(22.4), HeatIndexF: ptr(72.3),
		DewPointC: ptr(14.8), DewPointF: ptr(58.6),
		VisibilityKm: ptr(10.0), VisibilityMiles: ptr(6.0),
		UVIndex: ptr(5.0),
		GustMph: ptr(7.2), GustKph: ptr(11.6),
	}
}

func rowValue(t *testing.T, p *Panel, label string) string {
	t.Helper()
	for _, r := range p.Rows {
		if r.Label == label {
			return r.Value
		}
	}
	t.Fatalf("row %q not found", label)
	return ""
}

func TestBuildIdle(t *testing.T) {
	page := Build("", lookup.IdleState())
	if page.Loading || page.Error != "" || page.Result != nil {
		t.Fatalf("idle page must only show the input row: %+v", page)
	}
	if !page.ButtonDisabled {
		t.Fatal("button must be disabled with an empty city")
	}
	if page.ButtonLabel != "Get Weather" {
		t.Fatalf("unexpected label %q", page.ButtonLabel)
	}

	if Build("Paris", lookup.IdleState()).ButtonDisabled {
		t.Fatal("button must be enabled with a city")
	}
}

func TestBuildLoading(t *testing.T) {
	page := Build("Paris", lookup.LoadingState())
	if !page.Loading || !page.ButtonDisabled || page.ButtonLabel != "Loading..." {
		t.Fatalf("unexpected loading page %+v", page)
	}
	if page.Result != nil || page.Error != "" {
		t.Fatal("loading page must not show results or errors")
	}
}

func TestBuildError(t *testing.T) {
	page := Build("Atlantis", lookup.FailedState("City not found"))
	if page.Error != "City not found" || page.Result != nil || page.Loading {
		t.Fatalf("unexpected error page %+v", page)
	}
}

func TestBuildSuccess(t *testing.T) {
	page := Build("Mumbai", lookup.SucceededState(fullSnapshot()))
	if page.Result == nil {
		t.Fatal("expected result panel")
	}
	p := page.Result

	if p.IconURL != "https://cdn.example/128x128/113.png" {
		t.Fatalf("unexpected icon %q", p.IconURL)
	}
	if p.IconAlt != "Sunny" {
		t.Fatalf("unexpected alt %q", p.IconAlt)
	}

	want := map[string]string{
		"Temperature":   "21.5°C / 70.7°F",
		"Feels Like":    "21.5°C / 70.7°F",
		"Wind Chill":    "20.1°C / 68.2°F",
		"Heat Index":    "22.4°C / 72.3°F",
		"Dew Point":     "14.8°C / 58.6°F",
		"Humidity":      "65%",
		"Cloud Cover":   "0%",
		"Wind":          "9 km/h (5.6 mph) W (270°)",
		"Gusts":         "11.6 km/h (7.2 mph)",
		"Pressure":      "1012 mb / 29.88 in",
		"Precipitation": "0 mm / 0 in",
		"Visibility":    "10 km / 6 miles",
		"UV Index":      "5",
		"Is Daytime":    "Yes",
		"Condition":     "Sunny",
	}
	for label, value := range want {
		if got := rowValue(t, p, label); got != value {
			t.Errorf("%s: expected %q, got %q", label, value, got)
		}
	}
	if len(p.Rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(p.Rows))
	}
}

func TestBuildAbsentFieldsRenderEmpty(t *testing.T) {
	snap := weather.WeatherSnapshot{TemperatureC: ptr(3.0)}
	p := Build("Oslo", lookup.SucceededState(snap)).Result

	if got := rowValue(t, p, "Temperature"); got != "3°C / °F" {
		t.Fatalf("expected missing imperial value to stay empty, got %q", got)
	}
	if got := rowValue(t, p, "Is Daytime"); got != "" {
		t.Fatalf("expected empty day flag, got %q", got)
	}
	if p.IconURL != "" {
		t.Fatalf("expected no icon, got %q", p.IconURL)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	a := Build("Mumbai", lookup.SucceededState(fullSnapshot()))
	b := Build("Mumbai", lookup.SucceededState(fullSnapshot()))

	var bufA, bufB bytes.Buffer
	if err := Render(&bufA, "/lookup", a); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := Render(&bufB, "/lookup", b); err != nil {
		t.Fatalf("render: %v", err)
	}
	if bufA.String() != bufB.String() {
		t.Fatal("expected identical output for identical state")
	}
}

func TestRenderSuccess(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "/lookup", Build("Mumbai", lookup.SucceededState(fullSnapshot()))); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		`<label for="city">Enter City</label>`,
		`placeholder="e.g. Mumbai"`,
		`value="Mumbai"`,
		`>Get Weather</button>`,
		`src="https://cdn.example/128x128/113.png"`,
		`alt="Sunny"`,
		`width="128"`,
		`<strong>Temperature:</strong> 21.5°C / 70.7°F`,
		`<strong>Is Daytime:</strong> Yes`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}
	if strings.Contains(html, `role="alert"`) || strings.Contains(html, `class="skeleton"`) {
		t.Error("success page must not render error or placeholder")
	}
}

func TestRenderLoading(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "/lookup", Build("Paris", lookup.LoadingState())); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()

	if !strings.Contains(html, `class="skeleton"`) {
		t.Error("expected loading placeholder")
	}
	if !strings.Contains(html, ` disabled>Loading...</button>`) {
		t.Error("expected disabled Loading... button")
	}
	if !strings.Contains(html, `http-equiv="refresh"`) {
		t.Error("expected auto refresh while loading")
	}
}

func TestRenderErrorEscapesMessage(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "/lookup", Build("x", lookup.FailedState("<script>alert(1)</script>"))); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()

	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatal("error message must be escaped")
	}
	if !strings.Contains(html, "<strong>Error</strong>") {
		t.Fatal("expected error title")
	}
	if strings.Contains(html, `class="card"`) {
		t.Fatal("error page must not render the result panel")
	}
}
