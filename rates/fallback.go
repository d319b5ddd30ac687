package rates

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-currency-converter/domain"
)

// fallbackService tries a primary Service and, once, a secondary one
type fallbackService struct {
	primary  Service
	fallback Service
	logger   log.Logger
}

// NewFallbackService returns a Service that substitutes fallback when primary fails.
// If both fail the error wraps domain.ErrRatesUnavailable and the fallback's cause.
func NewFallbackService(logger log.Logger, primary Service, fallback Service) Service {
	return &fallbackService{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (s *fallbackService) Rates(ctx context.Context) (domain.Rates, error) {
	rates, err := s.primary.Rates(ctx)
	if err == nil {
		return rates, nil
	}

	level.Warn(s.logger).Log("msg", "primary rates source failed, trying fallback", "err", err)

	rates, err = s.fallback.Rates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRatesUnavailable, err)
	}
	return rates, nil
}
