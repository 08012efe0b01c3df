// Package currency provides the frozen ISO-4217 currency catalog.
// The table lives in catalog_gen.go and is regenerated offline with
// cmd/currencygen; at runtime it is read-only.
package currency

//go:generate go run ../../../cmd/currencygen -out catalog_gen.go

import (
	"sort"
	"strings"

	"oafund/internal/core/apperror"
)

// Currency is an immutable catalog entry. Values can only be obtained from
// the catalog, so a non-zero Currency is always a known ISO code.
type Currency struct {
	code       string
	name       string
	minorUnits int
}

// Code returns the three-letter ISO code, e.g. "EUR".
func (c Currency) Code() string { return c.code }

// Name returns the ISO display name, e.g. "Euro".
func (c Currency) Name() string { return c.name }

// MinorUnits returns the number of decimal places of the currency.
func (c Currency) MinorUnits() int { return c.minorUnits }

// IsZero reports whether c is the zero value (not a catalog entry).
func (c Currency) IsZero() bool { return c.code == "" }

func (c Currency) String() string { return c.code }

// MarshalText implements encoding.TextMarshaler, so Currency can key JSON maps.
func (c Currency) MarshalText() ([]byte, error) { return []byte(c.code), nil }

// UnmarshalText implements encoding.TextUnmarshaler via Lookup.
func (c *Currency) UnmarshalText(text []byte) error {
	found, err := Lookup(string(text))
	if err != nil {
		return err
	}
	*c = found
	return nil
}

var byCode = func() map[string]Currency {
	m := make(map[string]Currency, len(catalog))
	for _, c := range catalog {
		if _, dup := m[c.code]; dup {
			continue
		}
		m[c.code] = c
	}
	return m
}()

// Lookup returns the catalog entry for code. Surrounding whitespace is
// ignored and the code is matched case-insensitively.
func Lookup(code string) (Currency, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	c, ok := byCode[normalized]
	if !ok {
		return Currency{}, apperror.NewUnknownCurrency(code)
	}
	return c, nil
}

// MustLookup is Lookup that panics for unknown codes.
// Use only for constants and tests.
func MustLookup(code string) Currency {
	c, err := Lookup(code)
	if err != nil {
		panic(err)
	}
	return c
}

// AllCodes returns the set of catalog codes.
func AllCodes() map[string]struct{} {
	codes := make(map[string]struct{}, len(byCode))
	for code := range byCode {
		codes[code] = struct{}{}
	}
	return codes
}

// All returns every catalog entry sorted by code.
func All() []Currency {
	out := make([]Currency, 0, len(byCode))
	for _, c := range byCode {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].code < out[j].code })
	return out
}
