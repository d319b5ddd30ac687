package domain

import (
	"sort"
	"strings"
)

// Currency a currency code. Lookups are case-insensitive.
type Currency string

// Key returns the lowercase form used to index Rates
func (c Currency) Key() Currency {
	return Currency(strings.ToLower(strings.TrimSpace(string(c))))
}

// Display returns the uppercase form shown to users
func (c Currency) Display() string {
	return strings.ToUpper(strings.TrimSpace(string(c)))
}

// Amount a monetary amount
type Amount float64

// Exchanged result of a conversion
type Exchanged struct {
	// Rate derived cross rate, units of 'to' per unit of 'from'
	Rate   Rate
	Amount Amount
}

// Rate an exchange rate: units of a currency per one unit of the base currency
type Rate float64

// Rates maps lowercase currency codes to their rate against the base currency.
// Rates are never mutated once loaded and are safe for concurrent reads.
type Rates map[Currency]Rate

// Currencies returns the codes in rates in display form, sorted
func (r Rates) Currencies() []Currency {
	codes := make([]Currency, 0, len(r))
	for k := range r {
		codes = append(codes, Currency(k.Display()))
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Has reports whether code is present, ignoring case
func (r Rates) Has(code Currency) bool {
	_, ok := r[code.Key()]
	return ok
}
