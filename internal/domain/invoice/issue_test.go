package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oafund/internal/core/apperror"
	"oafund/internal/core/id"
	"oafund/internal/domain/money"
	"oafund/pkg/numerator"
)

func TestIssue(t *testing.T) {
	n, err := numerator.New(numerator.NewMemorySequence(), numerator.DefaultConfig("INV"))
	require.NoError(t, err)
	ctx := context.Background()
	on := time.Date(2024, 11, 5, 9, 30, 0, 0, time.UTC)

	p, err := NewPublicationPosition(id.New(), money.NewFromInt(1500, eur), CostPublicationCharge, MustTaxRate("0.19"))
	require.NoError(t, err)

	inv, err := Issue(ctx, n, eur, on, p)
	require.NoError(t, err)
	assert.Equal(t, "INV-2024-00001", inv.Number.String())
	assert.True(t, inv.Date.Equal(on))
	eq(t, money.NewFromInt(1785, eur), inv.Total())

	// a rejected invoice does not consume a number
	dup := []Position{p, p}
	_, err = Issue(ctx, n, eur, on, dup...)
	assert.True(t, apperror.IsDuplicate(err))

	other, err := NewDescribedPosition("page charges", money.NewFromInt(80, usd), CostPageCharge, MustTaxRate("0"))
	require.NoError(t, err)
	_, err = Issue(ctx, n, eur, on, other)
	assert.True(t, apperror.IsValidation(err))

	inv, err = Issue(ctx, n, eur, on, p)
	require.NoError(t, err)
	assert.Equal(t, "INV-2024-00002", inv.Number.String())
}

type failingSource struct{ err error }

func (f failingSource) Next(context.Context, time.Time) (string, error) { return "", f.err }

func TestIssue_NumberSourceError(t *testing.T) {
	boom := errors.New("sequence unavailable")
	_, err := Issue(context.Background(), failingSource{boom}, eur, time.Now())
	assert.ErrorIs(t, err, boom)
}
