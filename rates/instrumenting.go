package rates

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go-currency-converter/domain"
)

// Metrics collectors shared by every instrumented rates source
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetrics registers the rates collectors with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "converter",
				Subsystem: "rates",
				Name:      "requests_total",
				Help:      "Rate table requests by source and outcome.",
			},
			[]string{"source", "outcome"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "converter",
				Subsystem: "rates",
				Name:      "request_duration_seconds",
				Help:      "Rate table request latency by source.",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"source"},
		),
	}
}

// instrumentingService decorates a rates.Service with prometheus metrics
type instrumentingService struct {
	metrics *Metrics
	source  string
	next    Service
}

// NewInstrumentingService returns a Service recording metrics under the given source label
func NewInstrumentingService(metrics *Metrics, source string, s Service) Service {
	return &instrumentingService{
		metrics: metrics,
		source:  source,
		next:    s,
	}
}

func (s *instrumentingService) Rates(ctx context.Context) (rates domain.Rates, err error) {
	defer func(begin time.Time) {
		s.metrics.requests.WithLabelValues(s.source, outcome(err)).Inc()
		s.metrics.latency.WithLabelValues(s.source).Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.next.Rates(ctx)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
