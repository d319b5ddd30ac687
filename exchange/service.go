package exchange

import (
	"context"
	"fmt"

	"go-currency-converter/domain"
)

// RateSource provides the loaded rate table. rates.Table is the production implementation.
type RateSource interface {
	Rates() (domain.Rates, error)
}

// Service interface for converting from one currency to another
type Service interface {
	Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Exchanged, error)

	// Currencies lists the convertible currencies in display form, sorted
	Currencies(ctx context.Context) ([]domain.Currency, error)
}

type service struct {
	source RateSource
}

// NewService constructs a valid Service
func NewService(source RateSource) Service {
	return &service{
		source: source,
	}
}

func (s *service) Convert(_ context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Exchanged, error) {
	rates, err := s.source.Rates()
	if err != nil {
		return domain.Exchanged{}, fmt.Errorf("convert [%v -> %v]: %w", from, to, err)
	}

	converted, err := Convert(amount, from, to, rates)
	if err != nil {
		return domain.Exchanged{}, err
	}
	rate, err := CrossRate(from, to, rates)
	if err != nil {
		return domain.Exchanged{}, err
	}

	return domain.Exchanged{
		Rate:   rate,
		Amount: converted,
	}, nil
}

func (s *service) Currencies(_ context.Context) ([]domain.Currency, error) {
	rates, err := s.source.Rates()
	if err != nil {
		return nil, fmt.Errorf("currencies: %w", err)
	}
	return rates.Currencies(), nil
}
