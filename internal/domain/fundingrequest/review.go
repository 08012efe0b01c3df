package fundingrequest

import (
	"strings"

	"oafund/internal/core/apperror"
)

// Review is the review state of a funding request.
type Review int

const (
	ReviewOpen Review = iota
	ReviewApproved
	ReviewRejected
	// ReviewWithdrawn is reserved. No transition leads into or out of it.
	ReviewWithdrawn
)

var reviewNames = map[Review]string{
	ReviewOpen:      "open",
	ReviewApproved:  "approved",
	ReviewRejected:  "rejected",
	ReviewWithdrawn: "withdrawn",
}

func (r Review) String() string {
	if s, ok := reviewNames[r]; ok {
		return s
	}
	return "unknown"
}

// ParseReview parses the lower-case state name.
func ParseReview(s string) (Review, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for r, name := range reviewNames {
		if name == needle {
			return r, nil
		}
	}
	return 0, apperror.NewValidation("unknown review state").
		WithDetail("field", "review").
		WithDetail("value", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Review) MarshalText() ([]byte, error) {
	if _, ok := reviewNames[r]; !ok {
		return nil, apperror.NewValidation("unknown review state").
			WithDetail("value", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Review) UnmarshalText(text []byte) error {
	v, err := ParseReview(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
