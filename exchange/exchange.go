package exchange

import (
	"fmt"

	"go-currency-converter/domain"
)

// Convert converts amount from one currency to another through the base
// currency every rate in rates is quoted against. Codes are case-insensitive.
// The result is not rounded.
func Convert(amount domain.Amount, from domain.Currency, to domain.Currency, rates domain.Rates) (domain.Amount, error) {
	rateFrom, rateTo, err := pair(from, to, rates)
	if err != nil {
		return 0, err
	}
	amountInBase := float64(amount) / float64(rateFrom)
	return domain.Amount(amountInBase * float64(rateTo)), nil
}

// CrossRate derives the number of units of 'to' per unit of 'from'
func CrossRate(from domain.Currency, to domain.Currency, rates domain.Rates) (domain.Rate, error) {
	rateFrom, rateTo, err := pair(from, to, rates)
	if err != nil {
		return 0, err
	}
	return domain.Rate(float64(rateTo) / float64(rateFrom)), nil
}

func pair(from domain.Currency, to domain.Currency, rates domain.Rates) (domain.Rate, domain.Rate, error) {
	if len(rates) == 0 {
		return 0, 0, domain.ErrRatesNotLoaded
	}
	if !rates.Has(from) || !rates.Has(to) {
		return 0, 0, fmt.Errorf("%w: missing rate for %v or %v", domain.ErrUnknownCurrency, from.Display(), to.Display())
	}
	return rates[from.Key()], rates[to.Key()], nil
}
