package rates

import (
	"context"
	"sync"

	"go-currency-converter/domain"
)

type state int

const (
	pending state = iota
	loaded
	failed
)

// Table holds the process-wide rate table. It is loaded at most once and is
// read-only afterwards, so any number of readers may share it.
type Table struct {
	once sync.Once

	// lock guards state, rates and err
	lock  sync.RWMutex
	state state
	rates domain.Rates
	err   error
}

// NewTable returns an empty Table in the pending state
func NewTable() *Table {
	return &Table{}
}

// Load fetches the table from s. Only the first call does any work; concurrent
// and later calls wait for it and return its outcome.
func (t *Table) Load(ctx context.Context, s Service) error {
	t.once.Do(func() {
		rates, err := s.Rates(ctx)

		t.lock.Lock()
		if err != nil {
			t.state = failed
			t.err = err
		} else {
			t.state = loaded
			t.rates = rates
		}
		t.lock.Unlock()
	})

	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.err
}

// Rates returns the loaded table. While the load is in flight the error is
// domain.ErrRatesNotLoaded; after a failed load it is the load's error.
func (t *Table) Rates() (domain.Rates, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	switch t.state {
	case loaded:
		return t.rates, nil
	case failed:
		return nil, t.err
	default:
		return nil, domain.ErrRatesNotLoaded
	}
}
