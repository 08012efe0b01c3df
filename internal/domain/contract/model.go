// Package contract models publisher agreements under which accepted
// publications are funded centrally.
package contract

import (
	"context"
	"slices"
	"time"

	"oafund/internal/core/apperror"
	"oafund/internal/core/entity"
	"oafund/internal/core/id"
	"oafund/internal/core/identifier"
	"oafund/internal/core/types"
	"oafund/internal/domain/money"
	"oafund/internal/domain/publication"
)

// Contract is an agreement with a publisher covering a set of journals for
// a period at a flat fee.
type Contract struct {
	entity.BaseEntity

	Name        types.NonEmptyStr `db:"name" json:"name"`
	PublisherID id.ID             `db:"publisher_id" json:"publisherId"`
	Period      types.DateRange   `db:"period" json:"period"`
	Journals    []identifier.Issn `db:"journals" json:"journals"`
	Fee         money.Money       `db:"fee" json:"fee"`
}

// New creates a contract. Duplicate ISSNs are collapsed.
func New(name string, publisherID id.ID, period types.DateRange, fee money.Money, journals ...identifier.Issn) (*Contract, error) {
	n, err := types.NewNonEmptyStr(name)
	if err != nil {
		return nil, apperror.NewValidation("contract name is required").
			WithDetail("field", "name")
	}

	c := &Contract{
		BaseEntity:  entity.NewBaseEntity(),
		Name:        n,
		PublisherID: publisherID,
		Period:      period,
		Fee:         fee,
	}
	for _, j := range journals {
		c.AddJournal(j)
	}

	if err := c.Validate(context.Background()); err != nil {
		return nil, err
	}
	return c, nil
}

// AddJournal adds issn to the covered journals unless already present.
func (c *Contract) AddJournal(issn identifier.Issn) {
	if c.CoversJournal(issn) {
		return
	}
	c.Journals = append(c.Journals, issn)
	c.Touch()
}

// IsActive reports whether on lies within the contract period.
func (c *Contract) IsActive(on time.Time) bool {
	return c.Period.Contains(on)
}

// CoversJournal reports whether issn is part of the contract.
func (c *Contract) CoversJournal(issn identifier.Issn) bool {
	return slices.Contains(c.Journals, issn)
}

// Covers reports whether p appeared in a covered journal and was accepted
// while the contract was active.
func (c *Contract) Covers(p *publication.Publication) bool {
	if p == nil || p.Journal == nil || p.Journal.Issn == nil || p.AcceptedOn == nil {
		return false
	}
	return c.CoversJournal(*p.Journal.Issn) && c.IsActive(*p.AcceptedOn)
}

// Validate implements entity.Validatable.
func (c *Contract) Validate(ctx context.Context) error {
	if c.Name.IsZero() {
		return apperror.NewValidation("contract name is required").
			WithDetail("field", "name")
	}
	if id.IsNil(c.PublisherID) {
		return apperror.NewValidation("publisher is required").
			WithDetail("field", "publisherId")
	}
	if c.Fee.IsNegative() {
		return apperror.NewValidation("fee must not be negative").
			WithDetail("field", "fee")
	}
	return nil
}

var _ entity.Validatable = (*Contract)(nil)
