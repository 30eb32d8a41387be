package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// BreakerConfig controls when the transport circuit opens.
type BreakerConfig struct {
	MaxConsecutiveFailures uint32
	OpenTimeout            time.Duration
}

// HTTPClientConfig bundles HTTP client and resilience settings.
type HTTPClientConfig struct {
	Client  *http.Client
	Breaker BreakerConfig
}

var (
	errNoHTTPClient = errors.New("http client not configured")
	errNoAPIKey     = errors.New("weatherapi api key is not configured")
)

func newCircuitBreaker(name string, cfg BreakerConfig, logger *zap.Logger) *gobreaker.CircuitBreaker {
	maxFailures := cfg.MaxConsecutiveFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				zap.String("provider", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
}

// doRequest executes a single request through the circuit breaker. Only
// transport failures count against the breaker; any HTTP status is handed
// back to the caller with its body open. Requests are never retried.
func doRequest(
	ctx context.Context,
	cfg HTTPClientConfig,
	cb *gobreaker.CircuitBreaker,
	buildRequest func() (*http.Request, error),
) (*http.Response, error) {
	if cfg.Client == nil {
		return nil, errNoHTTPClient
	}

	req, err := buildRequest()
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)

	result, err := cb.Execute(func() (interface{}, error) {
		return cfg.Client.Do(req)
	})
	if err != nil {
		return nil, &weather.NetworkError{Err: withoutURL(err)}
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return resp, nil
}

// withoutURL drops the request URL (and with it the API key) from net/http
// errors.
func withoutURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
