package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-kit/log"

	"go-currency-converter/domain"
	"go-currency-converter/exchange"
	"go-currency-converter/flags"
	"go-currency-converter/format"
)

// loadFailedMessage shown when no rate source could be reached
const loadFailedMessage = "Failed to load exchange rates."

// Defaults selection used when a request leaves a field out
type Defaults struct {
	From   domain.Currency
	To     domain.Currency
	Amount domain.Amount
}

// Server dependencies for HTTP Server functions
type Server struct {
	Service exchange.Service

	formatter format.Formatter
	defaults  Defaults
	metrics   http.Handler
	logger    log.Logger
	router    chi.Router
}

// Option configures a Server
type Option func(*Server)

// WithFormatter sets how amounts are rendered in messages
func WithFormatter(f format.Formatter) Option {
	return func(s *Server) { s.formatter = f }
}

// WithDefaults sets the initial selection of the converter page
func WithDefaults(d Defaults) Option {
	return func(s *Server) { s.defaults = d }
}

// WithMetrics exposes h at /metrics
func WithMetrics(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// WithLogger sets the logger for request failures
func WithLogger(logger log.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

func NewServer(s exchange.Service, opts ...Option) *Server {
	server := &Server{
		Service:   s,
		formatter: format.New(""),
		defaults:  Defaults{From: "USD", To: "INR", Amount: 1},
		logger:    log.NewNopLogger(),
		router:    chi.NewRouter(),
	}
	for _, opt := range opts {
		opt(server)
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)
	s.router.Get("/", s.page())
	s.router.Post("/api/convert", s.convert())
	s.router.Get("/api/currencies", s.currencies())
	if s.metrics != nil {
		s.router.Method(http.MethodGet, "/metrics", s.metrics)
	}
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		FromCurrency domain.Currency
		ToCurrency   domain.Currency
		Amount       domain.Amount
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Exchange domain.Rate   `json:"exchange"`
		Amount   domain.Amount `json:"amount"`
		Original domain.Amount `json:"original"`
		Message  string        `json:"message"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var request request
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			s.writeError(rw, http.StatusBadRequest, "invalid json")
			return
		}
		if request.Amount < 0 {
			s.writeError(rw, http.StatusBadRequest, errNegativeAmount.Error())
			return
		}

		result, err := s.Service.Convert(r.Context(), request.Amount, request.FromCurrency, request.ToCurrency)
		if err != nil {
			s.logger.Log("msg", "conversion failed", "from", request.FromCurrency, "to", request.ToCurrency, "err", err)
			s.writeError(rw, statusOf(err), userMessage(err, request.FromCurrency, request.ToCurrency))
			return
		}

		s.writeJSON(rw, http.StatusOK, response{
			Exchange: result.Rate,
			Amount:   result.Amount,
			Original: request.Amount,
			Message:  s.message(request.Amount, request.FromCurrency, result.Amount, request.ToCurrency),
		})
	}
}

// currency an entry of the option lists. Country is set only for codes with an
// explicit flag mapping.
type currency struct {
	Code    string `json:"code"`
	Country string `json:"country,omitempty"`
	Flag    string `json:"flag,omitempty"`
}

func options(codes []domain.Currency) []currency {
	list := make([]currency, 0, len(codes))
	for _, code := range codes {
		entry := currency{Code: code.Display()}
		entry.Flag, _ = flags.URL(code)
		// only explicit mappings are advertised; the flag still uses the fallback
		if flags.Mapped(code) {
			entry.Country = flags.Country(code)
		}
		list = append(list, entry)
	}
	return list
}

// currencies produces HTTP handler listing the convertible currencies
func (s *Server) currencies() http.HandlerFunc {
	type response struct {
		Currencies []currency `json:"currencies"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		codes, err := s.Service.Currencies(r.Context())
		if err != nil {
			s.writeError(rw, statusOf(err), userMessage(err, "", ""))
			return
		}
		s.writeJSON(rw, http.StatusOK, response{Currencies: options(codes)})
	}
}

// message renders a conversion as "<amount> <FROM> = <converted> <TO>"
func (s *Server) message(amount domain.Amount, from domain.Currency, converted domain.Amount, to domain.Currency) string {
	return fmt.Sprintf("%v %v = %v %v",
		s.formatter.Number(float64(amount)), from.Display(),
		s.formatter.Number(float64(converted)), to.Display(),
	)
}

func (s *Server) writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		s.logger.Log("msg", "failed json encoding", "err", err)
	}
}

func (s *Server) writeError(rw http.ResponseWriter, status int, msg string) {
	type response struct {
		Error string `json:"error"`
	}
	s.writeJSON(rw, status, response{Error: msg})
}

var errNegativeAmount = errors.New("amount must not be negative")

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrRatesNotLoaded), errors.Is(err, domain.ErrRatesUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrUnknownCurrency):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// userMessage turns a service error into the text shown to users
func userMessage(err error, from domain.Currency, to domain.Currency) string {
	switch {
	case errors.Is(err, domain.ErrRatesUnavailable):
		return loadFailedMessage
	case errors.Is(err, domain.ErrRatesNotLoaded):
		return "Rates not loaded"
	case errors.Is(err, domain.ErrUnknownCurrency):
		return fmt.Sprintf("Missing rate for %v or %v", from.Display(), to.Display())
	default:
		return "Conversion failed"
	}
}
