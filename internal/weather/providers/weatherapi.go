package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/i474232898/weather-lookup/internal/weather"
)

const defaultWeatherAPIBaseURL = "https://api.weatherapi.com/v1"

// WeatherAPIProvider implements the weather.Provider interface for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewWeatherAPIProvider creates a provider for the current.json endpoint
// under baseURL (e.g. https://api.weatherapi.com/v1).
func NewWeatherAPIProvider(client *http.Client, baseURL, apiKey string, breaker BreakerConfig, logger *zap.Logger) *WeatherAPIProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	if baseURL == "" {
		baseURL = defaultWeatherAPIBaseURL
	}

	p := &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpCfg: HTTPClientConfig{
			Client:  client,
			Breaker: breaker,
		},
	}
	p.circuit = newCircuitBreaker(p.name, p.httpCfg.Breaker, logger)
	return p
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

// CurrentURL builds the current-conditions request URL for city.
func (p *WeatherAPIProvider) CurrentURL(city string) string {
	values := url.Values{}
	values.Set("q", city)
	values.Set("key", p.apiKey)
	return fmt.Sprintf("%s/current.json?%s", p.baseURL, values.Encode())
}

func (p *WeatherAPIProvider) Current(ctx context.Context, city string) (weather.CurrentResponse, error) {
	if p.apiKey == "" {
		return weather.CurrentResponse{}, errNoAPIKey
	}

	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, p.CurrentURL(city), nil)
	}

	resp, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.CurrentResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused; the provider's error body is not inspected.
		_, _ = io.Copy(io.Discard, resp.Body)
		return weather.CurrentResponse{}, &weather.NotFoundError{Status: resp.StatusCode}
	}

	var payload weather.CurrentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.CurrentResponse{}, &weather.MalformedResponseError{Err: err}
	}

	return payload, nil
}
