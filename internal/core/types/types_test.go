package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oafund/internal/core/apperror"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewNonEmptyStr(t *testing.T) {
	s, err := NewNonEmptyStr("  Journal of Tests ")
	require.NoError(t, err)
	assert.Equal(t, "Journal of Tests", s.String())

	_, err = NewNonEmptyStr(" \n\t")
	assert.True(t, apperror.IsValidation(err))
}

func TestDateRange_OpenBounds(t *testing.T) {
	r := NewDateRange(nil, nil)

	assert.Equal(t, MinDate, r.Start)
	assert.Equal(t, MaxDate, r.End)
	assert.True(t, r.Contains(time.Now()))
	assert.True(t, r.Contains(MinDate))
	assert.True(t, r.Contains(MaxDate))
}

func TestDateRange_InclusiveEnds(t *testing.T) {
	start, end := date(2024, 1, 1), date(2024, 12, 31)
	r := NewDateRange(&start, &end)

	assert.True(t, r.Contains(start))
	assert.True(t, r.Contains(end.Add(23*time.Hour)))
	assert.False(t, r.Contains(date(2023, 12, 31)))
	assert.False(t, r.Contains(date(2025, 1, 1)))
}

func TestDateRange_InvertedContainsNothing(t *testing.T) {
	start, end := date(2025, 1, 1), date(2024, 1, 1)
	r := NewDateRange(&start, &end)

	assert.True(t, r.IsInverted())
	assert.False(t, r.Contains(date(2024, 6, 1)))
	assert.False(t, r.Contains(start))
	assert.False(t, r.Overlaps(NewDateRange(nil, nil)))
}

func TestDateRange_Overlaps(t *testing.T) {
	a1, a2 := date(2024, 1, 1), date(2024, 6, 30)
	b1, b2 := date(2024, 6, 30), date(2024, 12, 31)
	c1 := date(2024, 7, 1)

	a := NewDateRange(&a1, &a2)
	assert.True(t, a.Overlaps(NewDateRange(&b1, &b2)))
	assert.False(t, a.Overlaps(NewDateRange(&c1, nil)))
}
