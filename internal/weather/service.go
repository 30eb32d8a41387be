package weather

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Service fetches current conditions from the provider and normalizes them.
type Service struct {
	provider Provider
	logger   *zap.Logger
}

// NewService creates a new Service.
func NewService(provider Provider, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

// Current issues exactly one provider request for city and maps the result.
// The city is passed through untouched.
func (s *Service) Current(ctx context.Context, city string) (WeatherSnapshot, error) {
	if s.provider == nil {
		return WeatherSnapshot{}, &NetworkError{Err: errors.New("no weather provider configured")}
	}

	start := time.Now()
	resp, err := s.provider.Current(ctx, city)
	if err != nil {
		s.logger.Warn("provider lookup failed",
			zap.String("provider", s.provider.Name()),
			zap.String("city", city),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return WeatherSnapshot{}, err
	}

	snapshot, err := NewSnapshot(resp)
	if err != nil {
		s.logger.Warn("provider response has unexpected shape",
			zap.String("provider", s.provider.Name()),
			zap.String("city", city),
			zap.Error(err))
		return WeatherSnapshot{}, err
	}

	s.logger.Debug("provider lookup succeeded",
		zap.String("provider", s.provider.Name()),
		zap.String("city", city),
		zap.Duration("duration", time.Since(start)))
	return snapshot, nil
}
