package exchange

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-currency-converter/domain"
)

type mock struct {
	rates domain.Rates
	err   error
}

func (m *mock) Rates() (domain.Rates, error) {
	return m.rates, m.err
}

func TestService_Convert(t *testing.T) {
	source := &mock{
		rates: domain.Rates{
			"eur": 1.0,
			"foo": 2.0,
			"bar": 4.0,
		},
	}

	service := NewService(source)

	type args struct {
		amount domain.Amount
		from   domain.Currency
		to     domain.Currency
	}
	tests := []struct {
		name    string
		args    args
		want    domain.Exchanged
		wantErr error
	}{
		{
			"eur -> foo",
			args{10.0, "EUR", "FOO"},
			domain.Exchanged{Rate: 2.0, Amount: 20.0},
			nil,
		},
		{
			"foo -> bar",
			args{10.0, "FOO", "BAR"},
			domain.Exchanged{Rate: 2.0, Amount: 20.0},
			nil,
		},
		{
			"bar -> eur",
			args{10.0, "bar", "eur"},
			domain.Exchanged{Rate: 0.25, Amount: 2.5},
			nil,
		},
		{
			"foo -> xyz",
			args{10.0, "FOO", "XYZ"},
			domain.Exchanged{},
			domain.ErrUnknownCurrency,
		},
		{
			"abc -> xyz",
			args{10.0, "ABC", "XYZ"},
			domain.Exchanged{},
			domain.ErrUnknownCurrency,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.Convert(context.Background(), tt.args.amount, tt.args.from, tt.args.to)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Convert() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_ConvertSourceErrors(t *testing.T) {
	cause := errors.New("mirror down")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not loaded", domain.ErrRatesNotLoaded, domain.ErrRatesNotLoaded},
		{"load failed", errors.Join(domain.ErrRatesUnavailable, cause), domain.ErrRatesUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(&mock{err: tt.err})

			_, err := service.Convert(context.Background(), 1, "usd", "eur")
			assert.ErrorIs(t, err, tt.want)

			_, err = service.Currencies(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestService_Currencies(t *testing.T) {
	service := NewService(&mock{rates: domain.Rates{"usd": 1.08, "eur": 1, "inr": 90}})

	codes, err := service.Currencies(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []domain.Currency{"EUR", "INR", "USD"}, codes)
}
