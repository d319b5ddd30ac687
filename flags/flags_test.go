package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-currency-converter/domain"
)

func TestCountry(t *testing.T) {
	tests := []struct {
		code domain.Currency
		want string
	}{
		{"USD", "US"},
		{"usd", "US"},
		{"EUR", "EU"},
		{"inr", "IN"},
		{"ILS", "IL"},
		// fallback: first two letters
		{"ISK", "IS"},
		{"btc", "BT"},
		{"x", "X"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, Country(tt.code))
		})
	}
}

func TestMapped(t *testing.T) {
	assert.True(t, Mapped("gbp"))
	assert.False(t, Mapped("ISK"))
	assert.False(t, Mapped(""))
}

func TestURL(t *testing.T) {
	url, ok := URL("jpy")
	assert.True(t, ok)
	assert.Equal(t, "https://flagsapi.com/JP/flat/64.png", url)

	url, ok = URL("")
	assert.False(t, ok)
	assert.Empty(t, url)
}
