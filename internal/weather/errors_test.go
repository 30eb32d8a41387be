package weather

import (
	"errors"
	"fmt"
	"testing"
)

func TestMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not found", &NotFoundError{Status: 400}, "City not found"},
		{"wrapped not found", fmt.Errorf("lookup: %w", &NotFoundError{Status: 404}), "City not found"},
		{"network", &NetworkError{Err: errors.New("dial tcp: no such host")}, "dial tcp: no such host"},
		{"network without text", &NetworkError{}, "Failed to fetch weather."},
		{"malformed", &MalformedResponseError{Err: errors.New("unexpected EOF")}, "malformed provider response: unexpected EOF"},
		{"unknown", errors.New("boom"), "Failed to fetch weather."},
	}
	for _, tc := range cases {
		if got := Message(tc.err); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
