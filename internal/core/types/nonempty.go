// Package types provides small invariant-carrying primitives shared by the
// domain packages.
package types

import (
	"strings"

	"oafund/internal/core/apperror"
)

// NonEmptyStr is a trimmed string guaranteed to contain at least one
// non-whitespace character.
type NonEmptyStr struct {
	value string
}

// NewNonEmptyStr trims s and rejects blank input.
func NewNonEmptyStr(s string) (NonEmptyStr, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return NonEmptyStr{}, apperror.NewValidation("value must not be empty")
	}
	return NonEmptyStr{value: trimmed}, nil
}

// MustNonEmptyStr panics on blank input. Use only for constants and tests.
func MustNonEmptyStr(s string) NonEmptyStr {
	v, err := NewNonEmptyStr(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (s NonEmptyStr) String() string { return s.value }

// IsZero reports whether s was never constructed.
func (s NonEmptyStr) IsZero() bool { return s.value == "" }

// MarshalText implements encoding.TextMarshaler.
func (s NonEmptyStr) MarshalText() ([]byte, error) { return []byte(s.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *NonEmptyStr) UnmarshalText(text []byte) error {
	v, err := NewNonEmptyStr(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
