package identifier

import (
	"regexp"
	"strings"

	"oafund/internal/core/apperror"
)

// doiPatterns are the accepted DOI syntaxes: the general Crossref pattern
// followed by legacy publisher-specific ones (Wiley, early SICI-style DOIs,
// ACS, Taylor & Francis/Erlbaum).
var doiPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^10\.\d{4,9}/[-._;()/:A-Z0-9]+$`),
	regexp.MustCompile(`^10\.1002/\S+$`),
	regexp.MustCompile(`^10\.\d{4}/\d+-\d+X?(\d+)\d+<[\d\w]+:[\d\w]*>\d+\.\d+\.\w+;\d$`),
	regexp.MustCompile(`^10\.1021/\w\w\d+$`),
	regexp.MustCompile(`^10\.1207/[\w\d]+&\d+_\d+$`),
}

var doiPrefixes = []string{"https://doi.org/", "http://doi.org/", "https://dx.doi.org/", "http://dx.doi.org/", "doi:"}

// Doi is a Digital Object Identifier of the form prefix/suffix.
type Doi struct {
	value string
}

// ParseDoi validates s against the accepted DOI syntaxes.
// Resolver URLs and a leading "doi:" are stripped first.
func ParseDoi(s string) (Doi, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Doi{}, apperror.NewValidation("DOI is required").
			WithDetail("field", "doi")
	}

	lower := strings.ToLower(raw)
	for _, prefix := range doiPrefixes {
		if strings.HasPrefix(lower, prefix) {
			raw = raw[len(prefix):]
			break
		}
	}

	for _, p := range doiPatterns {
		if p.MatchString(raw) {
			return Doi{value: raw}, nil
		}
	}

	return Doi{}, apperror.NewValidation("invalid DOI").
		WithDetail("field", "doi").
		WithDetail("value", s)
}

// MustParseDoi is ParseDoi that panics on error. Use only in tests.
func MustParseDoi(s string) Doi {
	d, err := ParseDoi(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Prefix returns the registrant part before the first slash, e.g. "10.1234".
func (d Doi) Prefix() string {
	prefix, _, _ := strings.Cut(d.value, "/")
	return prefix
}

// Suffix returns everything after the first slash.
func (d Doi) Suffix() string {
	_, suffix, _ := strings.Cut(d.value, "/")
	return suffix
}

// URL returns the doi.org resolver link.
func (d Doi) URL() string { return "https://doi.org/" + d.value }

func (d Doi) String() string { return d.value }

// IsZero reports whether d was never parsed.
func (d Doi) IsZero() bool { return d.value == "" }

// MarshalText implements encoding.TextMarshaler.
func (d Doi) MarshalText() ([]byte, error) { return []byte(d.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler and re-validates.
func (d *Doi) UnmarshalText(text []byte) error {
	parsed, err := ParseDoi(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
