package types

import "time"

var (
	// MinDate is the lower bound of an open-ended range.
	MinDate = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	// MaxDate is the upper bound of an open-ended range.
	MaxDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// DateRange is a closed interval of calendar dates.
// Start <= End is not enforced: an inverted range contains no date.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange builds a range; nil bounds default to MinDate / MaxDate.
func NewDateRange(start, end *time.Time) DateRange {
	r := DateRange{Start: MinDate, End: MaxDate}
	if start != nil {
		r.Start = truncateDate(*start)
	}
	if end != nil {
		r.End = truncateDate(*end)
	}
	return r
}

// Contains reports whether the calendar date of t lies within the range,
// both ends inclusive.
func (r DateRange) Contains(t time.Time) bool {
	d := truncateDate(t)
	return !d.Before(truncateDate(r.Start)) && !d.After(truncateDate(r.End))
}

// IsInverted reports whether Start is after End.
func (r DateRange) IsInverted() bool {
	return truncateDate(r.Start).After(truncateDate(r.End))
}

// Overlaps reports whether the two ranges share at least one date.
func (r DateRange) Overlaps(other DateRange) bool {
	if r.IsInverted() || other.IsInverted() {
		return false
	}
	return !truncateDate(r.Start).After(truncateDate(other.End)) &&
		!truncateDate(other.Start).After(truncateDate(r.End))
}

// truncateDate drops the clock part, keeping the date as seen in t's location.
func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
