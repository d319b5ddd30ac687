// Package flags maps currency codes to the country whose flag represents them.
//
// The mapping is finite. Codes without an entry fall back to their first two
// letters, which is the ISO 3166 country code for most ISO 4217 currencies
// (SEK -> SE, THB -> TH). That fallback is best effort and never an error.
package flags

import (
	"fmt"

	"go-currency-converter/domain"
)

const urlFormat = "https://flagsapi.com/%s/flat/64.png"

var countries = map[string]string{
	"USD": "US",
	"EUR": "EU",
	"GBP": "GB",
	"INR": "IN",
	"AUD": "AU",
	"CAD": "CA",
	"JPY": "JP",
	"CNY": "CN",
	"CHF": "CH",
	"SEK": "SE",
	"NOK": "NO",
	"DKK": "DK",
	"RUB": "RU",
	"BRL": "BR",
	"ZAR": "ZA",
	"NZD": "NZ",
	"SGD": "SG",
	"HKD": "HK",
	"MXN": "MX",
	"KRW": "KR",
	"TRY": "TR",
	"ILS": "IL",
	"SAR": "SA",
	"AED": "AE",
	"KWD": "KW",
	"THB": "TH",
	"VND": "VN",
	"PKR": "PK",
	"NGN": "NG",
	"EGP": "EG",
	"IDR": "ID",
	"MYR": "MY",
	"PHP": "PH",
	"PLN": "PL",
	"HUF": "HU",
	"CZK": "CZ",
	"RON": "RO",
	"CLP": "CL",
	"ARS": "AR",
}

// Country returns the country code for a currency, or "" for an empty code
func Country(code domain.Currency) string {
	up := code.Display()
	if country, ok := countries[up]; ok {
		return country
	}
	if len(up) > 2 {
		return up[:2]
	}
	return up
}

// Mapped reports whether code has an explicit entry rather than the fallback
func Mapped(code domain.Currency) bool {
	_, ok := countries[code.Display()]
	return ok
}

// URL returns the flag image for code. ok is false when there is no flag to show.
func URL(code domain.Currency) (url string, ok bool) {
	country := Country(code)
	if country == "" {
		return "", false
	}
	return fmt.Sprintf(urlFormat, country), true
}
