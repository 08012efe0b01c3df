// Package isofeed turns the ISO-4217 "list one" XML publication into the
// Go source of the currency catalog. It is used by cmd/currencygen only.
package isofeed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"go/format"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

// DefaultSourceURL is the SIX Group location of the current list.
const DefaultSourceURL = "https://www.six-group.com/dam/download/financial-information/data-center/iso-currrency/lists/list-one.xml"

// Entry is one catalog row.
type Entry struct {
	Code       string
	Name       string
	MinorUnits int
}

type document struct {
	Published string     `xml:"Pblshd,attr"`
	Entries   []xmlEntry `xml:"CcyTbl>CcyNtry"`
}

type xmlEntry struct {
	Country    string `xml:"CtryNm"`
	Name       string `xml:"CcyNm"`
	Code       string `xml:"Ccy"`
	MinorUnits string `xml:"CcyMnrUnts"`
}

// Feed is the parsed publication.
type Feed struct {
	Published string
	Entries   []Entry
}

// Parse reads the XML document. Rows without a code or with a non-numeric
// minor-unit field (precious metals, funds marked N.A.) are skipped; the
// first row of a code wins and the result is sorted by code.
func Parse(r io.Reader) (*Feed, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode ISO-4217 feed: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Entries))
	entries := make([]Entry, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		code := strings.TrimSpace(e.Code)
		if code == "" {
			continue
		}
		minor, err := strconv.Atoi(strings.TrimSpace(e.MinorUnits))
		if err != nil || minor < 0 {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		entries = append(entries, Entry{
			Code:       code,
			Name:       strings.TrimSpace(e.Name),
			MinorUnits: minor,
		})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("decode ISO-4217 feed: no usable entries")
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })
	return &Feed{Published: doc.Published, Entries: entries}, nil
}

var sourceTemplate = template.Must(template.New("catalog").Parse(`// Code generated by currencygen; DO NOT EDIT.

package {{.Package}}

var catalog = []Currency{
{{- range .Entries}}
	{code: {{printf "%q" .Code}}, name: {{printf "%q" .Name}}, minorUnits: {{.MinorUnits}}},
{{- end}}
}
`))

// Render writes the gofmt'ed catalog source for package pkg.
func Render(w io.Writer, pkg string, feed *Feed) error {
	var buf bytes.Buffer
	err := sourceTemplate.Execute(&buf, struct {
		Package string
		Entries []Entry
	}{Package: pkg, Entries: feed.Entries})
	if err != nil {
		return fmt.Errorf("render catalog: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format catalog: %w", err)
	}

	_, err = w.Write(src)
	return err
}
