package invoice

import (
	"context"
	"time"

	"oafund/internal/domain/currency"
)

// NumberSource hands out invoice numbers. *numerator.Numerator satisfies it.
type NumberSource interface {
	Next(ctx context.Context, period time.Time) (string, error)
}

// Issue creates an invoice dated on and numbered by src. Positions are
// checked before a number is drawn so rejected invoices leave no gap.
func Issue(ctx context.Context, src NumberSource, cur currency.Currency, on time.Time, positions ...Position) (*Invoice, error) {
	draft := &Invoice{Currency: cur}
	for _, p := range positions {
		if err := draft.AddPosition(p); err != nil {
			return nil, err
		}
	}

	number, err := src.Next(ctx, on)
	if err != nil {
		return nil, err
	}

	inv, err := New(number, cur, positions...)
	if err != nil {
		return nil, err
	}
	inv.Date = on.UTC()
	return inv, nil
}
