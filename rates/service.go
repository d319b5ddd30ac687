package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"go-currency-converter/domain"
)

const (
	// PrimaryUrlBase CDN hosting the rates documents
	PrimaryUrlBase = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest/v1/"

	// FallbackUrlBase mirror used when the CDN fails
	FallbackUrlBase = "https://latest.currency-api.pages.dev/v1/"

	// DefaultBase currency the published tables are quoted against
	DefaultBase domain.Currency = "eur"
)

// errMalformed the rates document did not have the expected shape
var errMalformed = errors.New("unexpected rates document")

// Service loads the table of exchange rates quoted against a single base currency
type Service interface {
	Rates(ctx context.Context) (domain.Rates, error)
}

// service fetches a rates document over HTTP
type service struct {
	// url base API url
	url string

	// base currency whose table is requested
	base domain.Currency

	// client for HTTP requests
	client http.Client
}

// NewService constructs a Service reading <url>currencies/<base>.json.
// A zero timeout leaves requests bounded only by ctx.
func NewService(url string, base domain.Currency, timeout time.Duration) Service {
	return &service{
		url:  url,
		base: base.Key(),
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// Rates loads the current table. Entries that are not positive finite numbers are skipped.
func (s *service) Rates(ctx context.Context) (domain.Rates, error) {
	url := fmt.Sprintf("%v/currencies/%v.json", strings.TrimSuffix(s.url, "/"), s.base)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		return nil, fmt.Errorf("http get %v: unexpected status %v", url, httpResponse.Status)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(bytes, &envelope); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}

	raw, ok := envelope[string(s.base)]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q field", errMalformed, s.base)
	}

	var table map[string]interface{}
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("%w: decoding %q field: %v", errMalformed, s.base, err)
	}

	rates := domain.Rates{}
	for k, v := range table {
		f, ok := v.(float64)
		if !ok || f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			continue
		}
		rates[domain.Currency(k).Key()] = domain.Rate(f)
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: no usable rates in %q field", errMalformed, s.base)
	}

	return rates, nil
}
