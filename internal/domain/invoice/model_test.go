package invoice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oafund/internal/core/apperror"
	"oafund/internal/core/id"
	"oafund/internal/domain/currency"
	"oafund/internal/domain/money"
)

var (
	eur = currency.MustLookup("EUR")
	usd = currency.MustLookup("USD")
)

func eq(t *testing.T, want, got money.Money) {
	t.Helper()
	ok, err := want.Equal(got)
	require.NoError(t, err)
	assert.True(t, ok, "want %s, got %s", want, got)
}

func TestTotals(t *testing.T) {
	p1, err := NewPublicationPosition(id.New(), money.NewFromInt(100, eur), CostPublicationCharge, MustTaxRate("0.07"))
	require.NoError(t, err)
	p2, err := NewDescribedPosition("colour figures", money.NewFromInt(200, eur), CostColorCharge, MustTaxRate("0.19"))
	require.NoError(t, err)

	inv, err := New("2024-0001", eur, p1, p2)
	require.NoError(t, err)

	eq(t, money.NewFromInt(300, eur), inv.Net())
	eq(t, money.NewFromInt(45, eur), inv.Tax())
	eq(t, money.NewFromInt(345, eur), inv.Total())
	require.NoError(t, inv.Validate(context.Background()))
}

func TestTotals_RoundedPerAddition(t *testing.T) {
	// 0.01 * 1.5 = 0.015 rounds to 0.02 per position.
	var positions []Position
	for i := 0; i < 3; i++ {
		p, err := NewPublicationPosition(id.New(), money.MustFromString("0.01", eur), CostPageCharge, MustTaxRate("0.5"))
		require.NoError(t, err)
		positions = append(positions, p)
	}
	inv, err := New("R-1", eur, positions...)
	require.NoError(t, err)

	eq(t, money.MustFromString("0.06", eur), inv.Total())
	eq(t, money.MustFromString("0.03", eur), inv.Net())
	eq(t, money.MustFromString("0.03", eur), inv.Tax())
}

func TestNew_DuplicatePublication(t *testing.T) {
	pubID := id.New()
	p1, err := NewPublicationPosition(pubID, money.NewFromInt(100, eur), CostPublicationCharge, MustTaxRate("0"))
	require.NoError(t, err)
	p2, err := NewPublicationPosition(pubID, money.NewFromInt(50, eur), CostPageCharge, MustTaxRate("0"))
	require.NoError(t, err)

	_, err = New("D-1", eur, p1, p2)
	require.Error(t, err)
	assert.True(t, apperror.IsDuplicate(err))
}

func TestNew_DescriptionsMayRepeat(t *testing.T) {
	p, err := NewDescribedPosition("handling", money.NewFromInt(5, eur), CostOther, MustTaxRate("0"))
	require.NoError(t, err)

	inv, err := New("D-2", eur, p, p)
	require.NoError(t, err)
	assert.Len(t, inv.Positions, 2)
}

func TestNew_CurrencyMismatch(t *testing.T) {
	p, err := NewDescribedPosition("fee", money.NewFromInt(10, usd), CostSubmissionFee, MustTaxRate("0"))
	require.NoError(t, err)

	_, err = New("C-1", eur, p)
	assert.True(t, apperror.IsValidation(err))
}

func TestNew_Validation(t *testing.T) {
	_, err := New(" ", eur)
	assert.True(t, apperror.IsValidation(err))

	_, err = New("N-1", currency.Currency{})
	assert.True(t, apperror.IsValidation(err))

	inv, err := New("N-2", eur)
	require.NoError(t, err)
	eq(t, money.Zero(eur), inv.Total())
	assert.True(t, apperror.IsValidation(inv.Validate(context.Background())))
}

func TestPosition_ExactlyOneTarget(t *testing.T) {
	_, err := NewDescribedPosition("  ", money.NewFromInt(1, eur), CostOther, MustTaxRate("0"))
	assert.True(t, apperror.IsValidation(err))

	_, err = NewPublicationPosition(id.ID{}, money.NewFromInt(1, eur), CostOther, MustTaxRate("0"))
	assert.True(t, apperror.IsValidation(err))

	p := Position{PublicationID: ptr(id.New()), Description: "both", Cost: money.NewFromInt(1, eur), CostType: CostOther}
	assert.True(t, apperror.IsValidation(p.validate()))

	_, err = NewDescribedPosition("x", money.NewFromInt(1, eur), CostType("bribe"), MustTaxRate("0"))
	assert.True(t, apperror.IsValidation(err))
}

func TestTaxRate(t *testing.T) {
	r, err := NewTaxRate(decimal.RequireFromString("0.123456"))
	require.NoError(t, err)
	assert.Equal(t, "0.1235", r.String())

	_, err = NewTaxRate(decimal.RequireFromString("-0.01"))
	assert.True(t, apperror.IsValidation(err))

	var parsed TaxRate
	require.NoError(t, parsed.UnmarshalText([]byte("0.07")))
	assert.Equal(t, "0.0700", parsed.String())
	assert.Error(t, parsed.UnmarshalText([]byte("seven")))
	assert.Error(t, parsed.UnmarshalText([]byte("-1")))
}

func ptr[T any](v T) *T { return &v }
