// Package authorlist parses free-text author strings as found in submission
// forms and publisher metadata into an ordered list of names.
//
// Parsing is heuristic. Supported separators are commas, semicolons, "and"
// and newlines. When a text contains both commas and semicolons it is read
// as "Last, First; Last, First". A single name containing a literal comma
// cannot be told apart from two names.
package authorlist

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"oafund/internal/core/types"
)

var (
	// "JohnDoe" as produced by PDF copy-paste.
	missingSpace = regexp.MustCompile(`([a-z])([A-Z])`)
	// " \u0308u": a spacing diaeresis placed before the vowel by broken encoders.
	brokenDiaeresis = regexp.MustCompile(" \u0308([AOUaou])")
	// ", and" / " and " between two names.
	andSeparator = regexp.MustCompile(`,?\s+and\s+`)
)

// AuthorList is an ordered list of author display names.
type AuthorList struct {
	names []types.NonEmptyStr
}

// New builds a list from already separated names; blank names are rejected.
func New(names ...string) (AuthorList, error) {
	out := make([]types.NonEmptyStr, 0, len(names))
	for _, n := range names {
		v, err := types.NewNonEmptyStr(n)
		if err != nil {
			return AuthorList{}, err
		}
		out = append(out, v)
	}
	return AuthorList{names: out}, nil
}

// Parse splits text into author names, preserving their order.
func Parse(text string) AuthorList {
	text = repair(text)
	reversed := strings.Contains(text, ",") && strings.Contains(text, ";")

	var names []types.NonEmptyStr
	for _, line := range strings.Split(text, "\n") {
		for _, token := range splitLine(line, reversed) {
			if v, err := types.NewNonEmptyStr(token); err == nil {
				names = append(names, v)
			}
		}
	}
	return AuthorList{names: names}
}

func repair(text string) string {
	text = missingSpace.ReplaceAllString(text, "$1 $2")
	text = brokenDiaeresis.ReplaceAllString(text, "${1}\u0308")
	return norm.NFC.String(text)
}

func splitLine(line string, reversed bool) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "and ")
	line = strings.TrimSuffix(line, " and")

	if reversed {
		var out []string
		for _, name := range strings.Split(line, ";") {
			out = append(out, reverseName(name))
		}
		return out
	}

	sep := ","
	if strings.Count(line, ";") > strings.Count(line, ",") {
		sep = ";"
	}
	line = andSeparator.ReplaceAllString(line, sep)
	return strings.Split(line, sep)
}

// reverseName turns "Doe, John" into "John Doe".
func reverseName(name string) string {
	var parts []string
	for _, p := range strings.Split(name, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " ")
}

// Names returns the author names in order.
func (l AuthorList) Names() []string {
	out := make([]string, len(l.names))
	for i, n := range l.names {
		out[i] = n.String()
	}
	return out
}

// Len returns the number of authors.
func (l AuthorList) Len() int { return len(l.names) }

// First returns the first author, if any.
func (l AuthorList) First() (types.NonEmptyStr, bool) {
	if len(l.names) == 0 {
		return types.NonEmptyStr{}, false
	}
	return l.names[0], true
}

// String joins the names with ", ".
func (l AuthorList) String() string {
	return strings.Join(l.Names(), ", ")
}

// MarshalText implements encoding.TextMarshaler.
func (l AuthorList) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (l *AuthorList) UnmarshalText(text []byte) error {
	*l = Parse(string(text))
	return nil
}
