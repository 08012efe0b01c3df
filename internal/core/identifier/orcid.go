// Package identifier provides checksum-protected scholarly identifiers.
// Values are only obtainable through the Parse functions, so a non-zero
// Orcid, Doi or Issn is always valid.
package identifier

import (
	"strings"

	"oafund/internal/core/apperror"
)

// orcidPrefixes are stripped in order before validation.
var orcidPrefixes = []string{"https://", "http://", "www.", "sandbox.", "orcid.org/"}

// Orcid is a researcher identifier, e.g. 0000-0002-1825-0097.
type Orcid struct {
	value string
}

// ParseOrcid validates s and returns the normalized ORCID.
// URL forms such as https://orcid.org/0000-0002-1825-0097/ are accepted.
func ParseOrcid(s string) (Orcid, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Orcid{}, apperror.NewValidation("ORCID is required").
			WithDetail("field", "orcid")
	}

	for _, prefix := range orcidPrefixes {
		raw = strings.TrimPrefix(raw, prefix)
	}
	raw = strings.TrimSuffix(raw, "/")

	blocks := strings.Split(raw, "-")
	if len(blocks) != 4 {
		return Orcid{}, invalidOrcid(s, "ORCID must consist of four hyphen-separated blocks")
	}
	for _, b := range blocks {
		if len(b) != 4 {
			return Orcid{}, invalidOrcid(s, "ORCID blocks must be four characters long")
		}
	}

	digits := strings.Join(blocks, "")
	for i := 0; i < 15; i++ {
		if !isDigit(digits[i]) {
			return Orcid{}, invalidOrcid(s, "ORCID must contain only digits before the check character")
		}
	}

	check := digits[15]
	if check == 'x' {
		check = 'X'
	}
	if want, _ := OrcidChecksum(digits[:15]); want != check {
		return Orcid{}, invalidOrcid(s, "ORCID checksum mismatch").
			WithDetail("expected", string(want))
	}

	return Orcid{value: raw[:18] + string(check)}, nil
}

// MustParseOrcid is ParseOrcid that panics on error. Use only in tests.
func MustParseOrcid(s string) Orcid {
	o, err := ParseOrcid(s)
	if err != nil {
		panic(err)
	}
	return o
}

// OrcidChecksum computes the ISO 7064 MOD 11-2 check character over the
// digits of base. Hyphens are ignored and only the first 15 digits count.
// ok is false when base has a non-digit or fewer than 15 digits.
func OrcidChecksum(base string) (check byte, ok bool) {
	total := 0
	n := 0
	for i := 0; i < len(base) && n < 15; i++ {
		c := base[i]
		if c == '-' {
			continue
		}
		if !isDigit(c) {
			return 0, false
		}
		total = (total + int(c-'0')) * 2
		n++
	}
	if n < 15 {
		return 0, false
	}
	result := (12 - total%11) % 11
	if result == 10 {
		return 'X', true
	}
	return byte('0' + result), true
}

// String returns the hyphenated ORCID.
func (o Orcid) String() string { return o.value }

// URL returns the canonical orcid.org link.
func (o Orcid) URL() string { return "https://orcid.org/" + o.value }

// IsZero reports whether o was never parsed.
func (o Orcid) IsZero() bool { return o.value == "" }

// MarshalText implements encoding.TextMarshaler.
func (o Orcid) MarshalText() ([]byte, error) { return []byte(o.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler and re-validates.
func (o *Orcid) UnmarshalText(text []byte) error {
	parsed, err := ParseOrcid(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func invalidOrcid(value, msg string) *apperror.AppError {
	return apperror.NewValidation(msg).
		WithDetail("field", "orcid").
		WithDetail("value", value)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
