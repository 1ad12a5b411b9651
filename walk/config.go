// Package walk implements the range walking extraction engine: a single
// pass over a requested document span that divides it into minimal
// uniformly formatted chunks and emits a nested markup tree describing
// formatting, structural membership and special markers for each chunk.
package walk

import (
	"sort"
	"strings"
)

// FormatConfig is a bitmask of independently toggleable facets selecting
// which formatting and structural information a request reports. The
// numeric values are part of the request protocol.
type FormatConfig int

const (
	ReportFontName             FormatConfig = 0x1
	ReportFontSize             FormatConfig = 0x2
	ReportFontAttributes       FormatConfig = 0x4
	ReportColor                FormatConfig = 0x8
	ReportAlignment            FormatConfig = 0x10
	ReportStyle                FormatConfig = 0x20
	ReportSpellingErrors       FormatConfig = 0x40
	ReportPage                 FormatConfig = 0x80
	ReportLineNumber           FormatConfig = 0x100
	ReportTables               FormatConfig = 0x200
	ReportLists                FormatConfig = 0x400
	ReportLinks                FormatConfig = 0x800
	ReportComments             FormatConfig = 0x1000
	ReportHeadings             FormatConfig = 0x2000
	ReportLanguage             FormatConfig = 0x4000
	ReportRevisions            FormatConfig = 0x8000
	ReportParagraphIndentation FormatConfig = 0x10000
	IncludeLayoutTables        FormatConfig = 0x20000
	ReportLineSpacing          FormatConfig = 0x40000
)

// FontFacets groups the facets resolved through the range's font object.
const FontFacets = ReportFontName | ReportFontSize | ReportFontAttributes | ReportColor

// InitialFacets is the subset resolved once per request and attached
// identically to every chunk; the rest is re-resolved per chunk.
const InitialFacets = ReportPage | ReportLineNumber | ReportTables | ReportHeadings | IncludeLayoutTables

// Has reports whether all facets in f are set.
func (c FormatConfig) Has(f FormatConfig) bool {
	return c&f == f
}

// Any reports whether at least one facet in f is set.
func (c FormatConfig) Any(f FormatConfig) bool {
	return c&f != 0
}

var facetNames = map[string]FormatConfig{
	"font-name":             ReportFontName,
	"font-size":             ReportFontSize,
	"font-attributes":       ReportFontAttributes,
	"color":                 ReportColor,
	"alignment":             ReportAlignment,
	"style":                 ReportStyle,
	"spelling-errors":       ReportSpellingErrors,
	"page":                  ReportPage,
	"line-number":           ReportLineNumber,
	"tables":                ReportTables,
	"lists":                 ReportLists,
	"links":                 ReportLinks,
	"comments":              ReportComments,
	"headings":              ReportHeadings,
	"language":              ReportLanguage,
	"revisions":             ReportRevisions,
	"paragraph-indentation": ReportParagraphIndentation,
	"layout-tables":         IncludeLayoutTables,
	"line-spacing":          ReportLineSpacing,
}

// ParseFacets assembles a FormatConfig from facet names (configuration and
// CLI surface). Unknown names are reported, not ignored.
func ParseFacets(names []string) (FormatConfig, error) {
	var cfg FormatConfig
	for _, name := range names {
		f, ok := facetNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, &UnknownFacetError{Name: name}
		}
		cfg |= f
	}
	return cfg, nil
}

// FacetNames lists all recognized facet names, sorted.
func FacetNames() []string {
	names := make([]string, 0, len(facetNames))
	for name := range facetNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type UnknownFacetError struct {
	Name string
}

func (e *UnknownFacetError) Error() string {
	return "unknown format facet: " + e.Name
}
