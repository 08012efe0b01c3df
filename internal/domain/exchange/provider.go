// Package exchange provides a time-bounded cache of exchange rates in front
// of a pluggable rate provider.
package exchange

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"oafund/internal/domain/currency"
)

// Rates maps target currencies to the rate of one unit of the base currency.
type Rates map[currency.Currency]decimal.Decimal

// Provider fetches the current rates for a base currency.
// Retry and fallback policies belong to implementations, not to the cache.
type Provider interface {
	Fetch(ctx context.Context, base currency.Currency) (Rates, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, base currency.Currency) (Rates, error)

// Fetch implements Provider.
func (f ProviderFunc) Fetch(ctx context.Context, base currency.Currency) (Rates, error) {
	return f(ctx, base)
}

// Snapshot is the result of one provider call.
type Snapshot struct {
	FetchedAt time.Time `json:"fetched_at"`
	Rates     Rates     `json:"rates"`
}

// Age returns how old the snapshot is at now.
func (s Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}
