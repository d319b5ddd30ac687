package domain

import "errors"

var (
	// ErrRatesUnavailable both rate sources failed or returned malformed data
	ErrRatesUnavailable = errors.New("exchange rates unavailable")

	// ErrRatesNotLoaded a conversion was attempted before rates were loaded
	ErrRatesNotLoaded = errors.New("rates not loaded")

	// ErrUnknownCurrency a requested currency is not in the rate table
	ErrUnknownCurrency = errors.New("unknown currency")
)
