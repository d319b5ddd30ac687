package exchange

import (
	"context"
	"testing"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"go-currency-converter/domain"
)

func TestInstrumentingService(t *testing.T) {
	var s Service = NewService(&mock{rates: domain.Rates{"usd": 1, "inr": 83}})
	s = NewLoggingService(log.NewNopLogger(), s)
	s = NewInstrumentingService(prometheus.NewRegistry(), s)

	_, _ = s.Convert(context.Background(), 1, "usd", "inr")
	_, _ = s.Convert(context.Background(), 1, "usd", "gbp")
	_, _ = s.Convert(context.Background(), 1, "gbp", "usd")

	conversions := s.(*instrumentingService).conversions
	assert.Equal(t, 1.0, testutil.ToFloat64(conversions.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(conversions.WithLabelValues("unknown_currency")))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "success", outcome(nil))
	assert.Equal(t, "not_loaded", outcome(domain.ErrRatesNotLoaded))
	assert.Equal(t, "unavailable", outcome(domain.ErrRatesUnavailable))
	assert.Equal(t, "error", outcome(assert.AnError))
}
