// Package invoice provides the Invoice aggregate: positions charged by a
// publisher and their net, tax and gross totals.
package invoice

import (
	"context"
	"time"

	"oafund/internal/core/apperror"
	"oafund/internal/core/entity"
	"oafund/internal/core/types"
	"oafund/internal/domain/currency"
	"oafund/internal/domain/money"
)

// Invoice is an ordered list of positions in a single currency.
// Totals are derived and never stored.
type Invoice struct {
	entity.BaseEntity

	Number    types.NonEmptyStr `db:"number" json:"number"`
	Currency  currency.Currency `db:"currency" json:"currency"`
	Date      time.Time         `db:"date" json:"date"`
	Positions []Position        `db:"-" json:"positions"`
}

// New creates an invoice. Positions must be in cur and reference each
// publication at most once.
func New(number string, cur currency.Currency, positions ...Position) (*Invoice, error) {
	n, err := types.NewNonEmptyStr(number)
	if err != nil {
		return nil, apperror.NewValidation("invoice number is required").
			WithDetail("field", "number")
	}
	if cur.IsZero() {
		return nil, apperror.NewValidation("currency is required").
			WithDetail("field", "currency")
	}

	inv := &Invoice{
		BaseEntity: entity.NewBaseEntity(),
		Number:     n,
		Currency:   cur,
		Date:       time.Now().UTC(),
		Positions:  make([]Position, 0, len(positions)),
	}
	for _, p := range positions {
		if err := inv.AddPosition(p); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// AddPosition appends p after checking currency and publication uniqueness.
func (inv *Invoice) AddPosition(p Position) error {
	if err := p.validate(); err != nil {
		return err
	}
	if p.Cost.Currency() != inv.Currency {
		return apperror.NewValidation("position currency differs from invoice currency").
			WithDetail("field", "cost").
			WithDetail("lineNo", len(inv.Positions)+1).
			WithDetail("expected", inv.Currency.Code()).
			WithDetail("actual", p.Cost.Currency().Code())
	}
	if p.PublicationID != nil {
		for _, existing := range inv.Positions {
			if existing.PublicationID != nil && *existing.PublicationID == *p.PublicationID {
				return apperror.NewDuplicate("InvoicePosition", "publicationId", p.PublicationID.String())
			}
		}
	}

	inv.Positions = append(inv.Positions, p)
	inv.Touch()
	return nil
}

// Net is the sum of position costs.
func (inv *Invoice) Net() money.Money {
	return inv.sum(func(p Position) money.Money { return p.Cost })
}

// Total is the sum of position costs including tax.
func (inv *Invoice) Total() money.Money {
	return inv.sum(Position.Gross)
}

// Tax is Total minus Net.
func (inv *Invoice) Tax() money.Money {
	total, net := inv.Total(), inv.Net()
	return money.New(total.Amount().Sub(net.Amount()), inv.Currency)
}

// sum adds f over all positions, rounding to the currency after each step.
func (inv *Invoice) sum(f func(Position) money.Money) money.Money {
	acc := money.Zero(inv.Currency)
	for _, p := range inv.Positions {
		acc = money.New(acc.Amount().Add(f(p).Amount()), inv.Currency)
	}
	return acc
}

// Validate implements entity.Validatable.
func (inv *Invoice) Validate(ctx context.Context) error {
	if inv.Number.IsZero() {
		return apperror.NewValidation("invoice number is required").
			WithDetail("field", "number")
	}
	if len(inv.Positions) == 0 {
		return apperror.NewValidation("at least one position is required").
			WithDetail("field", "positions")
	}
	return nil
}

var _ entity.Validatable = (*Invoice)(nil)
