package exchange

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go-currency-converter/domain"
)

type instrumentingService struct {
	conversions *prometheus.CounterVec
	latency     prometheus.Histogram
	next        Service
}

// NewInstrumentingService decorates s with conversion metrics registered on reg
func NewInstrumentingService(reg prometheus.Registerer, s Service) Service {
	factory := promauto.With(reg)
	return &instrumentingService{
		conversions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "converter",
				Subsystem: "exchange",
				Name:      "conversions_total",
				Help:      "Conversions by outcome.",
			},
			[]string{"outcome"},
		),
		latency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "converter",
				Subsystem: "exchange",
				Name:      "conversion_duration_seconds",
				Help:      "Conversion latency.",
				Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
			},
		),
		next: s,
	}
}

func (s *instrumentingService) Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (ex domain.Exchanged, err error) {
	defer func(begin time.Time) {
		s.conversions.WithLabelValues(outcome(err)).Inc()
		s.latency.Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.next.Convert(ctx, amount, from, to)
}

func (s *instrumentingService) Currencies(ctx context.Context) ([]domain.Currency, error) {
	return s.next.Currencies(ctx)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrUnknownCurrency):
		return "unknown_currency"
	case errors.Is(err, domain.ErrRatesNotLoaded):
		return "not_loaded"
	case errors.Is(err, domain.ErrRatesUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
