package weather

import (
	"errors"
	"fmt"
)

const (
	// CityNotFoundMessage is shown for every non-success provider status.
	CityNotFoundMessage = "City not found"
	// FallbackMessage is shown when a failure carries no usable text.
	FallbackMessage = "Failed to fetch weather."
)

// NotFoundError reports a provider response outside the 2xx range. The
// provider's own error body is not inspected.
type NotFoundError struct {
	Status int
}

func (e *NotFoundError) Error() string {
	return CityNotFoundMessage
}

// NetworkError wraps a transport-level failure (DNS, connect, breaker open).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// MalformedResponseError reports a body that is not JSON or lacks the
// expected shape.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	if e.Err == nil {
		return "malformed provider response"
	}
	return fmt.Sprintf("malformed provider response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// Message converts a lookup failure into the text shown to the user.
func Message(err error) string {
	var (
		notFound  *NotFoundError
		network   *NetworkError
		malformed *MalformedResponseError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &notFound):
		return CityNotFoundMessage
	case errors.As(err, &network):
		return orFallback(network.Error())
	case errors.As(err, &malformed):
		return orFallback(malformed.Error())
	default:
		return FallbackMessage
	}
}

func orFallback(msg string) string {
	if msg == "" {
		return FallbackMessage
	}
	return msg
}
