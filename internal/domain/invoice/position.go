package invoice

import (
	"strings"

	"github.com/shopspring/decimal"

	"oafund/internal/core/apperror"
	"oafund/internal/core/id"
	"oafund/internal/domain/money"
)

// taxRatePlaces is the precision tax rates are stored with.
const taxRatePlaces = 4

// TaxRate is a non-negative fraction, e.g. 0.19 for 19 %.
type TaxRate struct {
	value decimal.Decimal
}

// NewTaxRate quantizes d to four decimal places and rejects negative rates.
func NewTaxRate(d decimal.Decimal) (TaxRate, error) {
	if d.IsNegative() {
		return TaxRate{}, apperror.NewValidation("tax rate must not be negative").
			WithDetail("field", "tax").
			WithDetail("value", d.String())
	}
	return TaxRate{value: d.Round(taxRatePlaces)}, nil
}

// MustTaxRate parses s and panics on error. Use only for constants and tests.
func MustTaxRate(s string) TaxRate {
	t, err := NewTaxRate(decimal.RequireFromString(s))
	if err != nil {
		panic(err)
	}
	return t
}

// Decimal returns the rate as a fraction.
func (t TaxRate) Decimal() decimal.Decimal { return t.value }

func (t TaxRate) String() string { return t.value.StringFixed(taxRatePlaces) }

// MarshalText implements encoding.TextMarshaler.
func (t TaxRate) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TaxRate) UnmarshalText(text []byte) error {
	d, err := decimal.NewFromString(strings.TrimSpace(string(text)))
	if err != nil {
		return apperror.NewValidation("invalid tax rate").
			WithDetail("value", string(text))
	}
	v, err := NewTaxRate(d)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// CostType classifies what a position is charged for.
type CostType string

const (
	CostPublicationCharge CostType = "publication_charge"
	CostColorCharge       CostType = "color_charge"
	CostPageCharge        CostType = "page_charge"
	CostSubmissionFee     CostType = "submission_fee"
	CostOther             CostType = "other"
)

// Valid reports whether c is one of the known cost types.
func (c CostType) Valid() bool {
	switch c {
	case CostPublicationCharge, CostColorCharge, CostPageCharge, CostSubmissionFee, CostOther:
		return true
	}
	return false
}

// Position is a line of an invoice. It refers either to a publication or
// carries a free-text description, never both.
type Position struct {
	PublicationID *id.ID      `db:"publication_id" json:"publicationId,omitempty"`
	Description   string      `db:"description" json:"description,omitempty"`
	Cost          money.Money `db:"cost" json:"cost"`
	CostType      CostType    `db:"cost_type" json:"costType"`
	Tax           TaxRate     `db:"tax" json:"tax"`
}

// NewPublicationPosition creates a position charged for a publication.
func NewPublicationPosition(publicationID id.ID, cost money.Money, costType CostType, tax TaxRate) (Position, error) {
	p := Position{PublicationID: &publicationID, Cost: cost, CostType: costType, Tax: tax}
	return p, p.validate()
}

// NewDescribedPosition creates a position identified by a description.
func NewDescribedPosition(description string, cost money.Money, costType CostType, tax TaxRate) (Position, error) {
	p := Position{Description: strings.TrimSpace(description), Cost: cost, CostType: costType, Tax: tax}
	return p, p.validate()
}

// Gross returns cost * (1 + tax), quantized to the cost currency.
func (p Position) Gross() money.Money {
	return p.Cost.Mul(decimal.NewFromInt(1).Add(p.Tax.Decimal()))
}

func (p Position) validate() error {
	hasRef := p.PublicationID != nil && !id.IsNil(*p.PublicationID)
	hasText := strings.TrimSpace(p.Description) != ""
	if hasRef == hasText {
		return apperror.NewValidation("position needs either a publication or a description").
			WithDetail("field", "publicationId")
	}
	if p.Cost.Currency().IsZero() {
		return apperror.NewValidation("cost currency is required").
			WithDetail("field", "cost")
	}
	if !p.CostType.Valid() {
		return apperror.NewValidation("unknown cost type").
			WithDetail("field", "costType").
			WithDetail("value", string(p.CostType))
	}
	return nil
}
