package http

import (
	"html/template"
	"math"
	"net/http"
	"strconv"
	"strings"

	"go-currency-converter/domain"
	"go-currency-converter/flags"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Currency Converter</title>
</head>
<body>
<form method="get" action="/">
  <div class="amount">
    <label>Amount <input name="amount" value="{{.Amount}}"></label>
  </div>
  <div class="from">
    <div class="select-container">
      {{if .FromFlag}}<img src="{{.FromFlag}}" alt="{{.FromCountry}} flag">{{end}}
      <select name="from">
        {{range .Options}}<option value="{{.Code}}" data-country="{{.Country}}"{{if eq .Code $.From}} selected{{end}}>{{.Code}}</option>
        {{end}}
      </select>
    </div>
  </div>
  <div class="to">
    <div class="select-container">
      {{if .ToFlag}}<img src="{{.ToFlag}}" alt="{{.ToCountry}} flag">{{end}}
      <select name="to">
        {{range .Options}}<option value="{{.Code}}" data-country="{{.Country}}"{{if eq .Code $.To}} selected{{end}}>{{.Code}}</option>
        {{end}}
      </select>
    </div>
  </div>
  <div class="msg">{{.Message}}</div>
  <button type="submit">Get Exchange Rate</button>
</form>
</body>
</html>
`))

type pageData struct {
	Options     []currency
	Amount      string
	From        string
	FromFlag    string
	FromCountry string
	To          string
	ToFlag      string
	ToCountry   string
	Message     string
}

// page produces HTTP handler for the converter form. The selection comes from
// the query string: from, to and amount.
func (s *Server) page() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		data := pageData{Amount: query.Get("amount")}
		if !query.Has("amount") {
			data.Amount = strconv.FormatFloat(float64(s.defaults.Amount), 'f', -1, 64)
		}

		codes, err := s.Service.Currencies(r.Context())
		if err != nil {
			data.Message = userMessage(err, "", "")
			s.render(rw, data)
			return
		}

		from := pick(domain.Currency(query.Get("from")), s.defaults.From, codes)
		to := pick(domain.Currency(query.Get("to")), s.defaults.To, codes)

		data.Options = options(codes)
		data.From, data.To = from.Display(), to.Display()
		data.FromFlag, _ = flags.URL(from)
		data.FromCountry = flags.Country(from)
		data.ToFlag, _ = flags.URL(to)
		data.ToCountry = flags.Country(to)

		amount := parseAmount(data.Amount)
		if amount < 0 {
			data.Message = "Amount must not be negative"
			s.render(rw, data)
			return
		}

		result, err := s.Service.Convert(r.Context(), amount, from, to)
		if err != nil {
			data.Message = userMessage(err, from, to)
		} else {
			data.Message = s.message(amount, from, result.Amount, to)
		}
		s.render(rw, data)
	}
}

func (s *Server) render(rw http.ResponseWriter, data pageData) {
	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(rw, data); err != nil {
		s.logger.Log("msg", "failed rendering page", "err", err)
	}
}

// pick returns requested if it is listed, else fallback if listed, else the first code
func pick(requested domain.Currency, fallback domain.Currency, codes []domain.Currency) domain.Currency {
	for _, want := range []domain.Currency{requested, fallback} {
		if want == "" {
			continue
		}
		for _, code := range codes {
			if code.Display() == want.Display() {
				return code
			}
		}
	}
	if len(codes) > 0 {
		return codes[0]
	}
	return ""
}

// parseAmount reads a form amount; anything unparsable counts as 0
func parseAmount(v string) domain.Amount {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return domain.Amount(f)
}
