package lookup

import (
	"encoding/json"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// Mode tags the query state of a WeatherLookup.
type Mode int

const (
	Idle Mode = iota
	Loading
	Failed
	Succeeded
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Failed:
		return "error"
	case Succeeded:
		return "success"
	default:
		return "unknown"
	}
}

// State is a tagged variant: only the payload belonging to its Mode is ever
// set, so an error and a snapshot can never be present together.
type State struct {
	mode     Mode
	message  string
	snapshot weather.WeatherSnapshot
}

func IdleState() State    { return State{mode: Idle} }
func LoadingState() State { return State{mode: Loading} }

func FailedState(message string) State {
	return State{mode: Failed, message: message}
}

func SucceededState(snapshot weather.WeatherSnapshot) State {
	return State{mode: Succeeded, snapshot: snapshot}
}

func (s State) Mode() Mode { return s.mode }

// Message returns the error text when the state is Failed.
func (s State) Message() (string, bool) {
	if s.mode != Failed {
		return "", false
	}
	return s.message, true
}

// Snapshot returns the result when the state is Succeeded.
func (s State) Snapshot() (weather.WeatherSnapshot, bool) {
	if s.mode != Succeeded {
		return weather.WeatherSnapshot{}, false
	}
	return s.snapshot, true
}

func (s State) MarshalJSON() ([]byte, error) {
	out := struct {
		Mode     string                   `json:"mode"`
		Message  string                   `json:"message,omitempty"`
		Snapshot *weather.WeatherSnapshot `json:"snapshot,omitempty"`
	}{Mode: s.mode.String()}

	if msg, ok := s.Message(); ok {
		out.Message = msg
	}
	if snap, ok := s.Snapshot(); ok {
		out.Snapshot = &snap
	}
	return json.Marshal(out)
}
