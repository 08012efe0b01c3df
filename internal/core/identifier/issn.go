package identifier

import (
	"regexp"
	"strings"

	"oafund/internal/core/apperror"
)

var issnPattern = regexp.MustCompile(`^\d{4}-\d{3}[\dX]$`)

// Issn is an International Standard Serial Number, e.g. 0317-8471.
type Issn struct {
	value string
}

// ParseIssn validates the NNNN-NNNC structure and the check character.
func ParseIssn(s string) (Issn, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	if raw == "" {
		return Issn{}, apperror.NewValidation("ISSN is required").
			WithDetail("field", "issn")
	}
	if !issnPattern.MatchString(raw) {
		return Issn{}, apperror.NewValidation("ISSN must have the form NNNN-NNNC").
			WithDetail("field", "issn").
			WithDetail("value", s)
	}
	if want, _ := IssnChecksum(raw[:8]); want != raw[8] {
		return Issn{}, apperror.NewValidation("ISSN checksum mismatch").
			WithDetail("field", "issn").
			WithDetail("value", s).
			WithDetail("expected", string(want))
	}
	return Issn{value: raw}, nil
}

// MustParseIssn is ParseIssn that panics on error. Use only in tests.
func MustParseIssn(s string) Issn {
	i, err := ParseIssn(s)
	if err != nil {
		panic(err)
	}
	return i
}

// IssnChecksum computes the check character for the first seven digits of
// base (hyphen ignored) using weights 8 down to 2, modulo 11.
// ok is false when base has a non-digit or fewer than seven digits.
func IssnChecksum(base string) (check byte, ok bool) {
	sum := 0
	weight := 8
	for i := 0; i < len(base) && weight >= 2; i++ {
		c := base[i]
		if c == '-' {
			continue
		}
		if !isDigit(c) {
			return 0, false
		}
		sum += int(c-'0') * weight
		weight--
	}
	if weight >= 2 {
		return 0, false
	}
	result := (11 - sum%11) % 11
	if result == 10 {
		return 'X', true
	}
	return byte('0' + result), true
}

func (i Issn) String() string { return i.value }

// IsZero reports whether i was never parsed.
func (i Issn) IsZero() bool { return i.value == "" }

// MarshalText implements encoding.TextMarshaler.
func (i Issn) MarshalText() ([]byte, error) { return []byte(i.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler and re-validates.
func (i *Issn) UnmarshalText(text []byte) error {
	parsed, err := ParseIssn(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
