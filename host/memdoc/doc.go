// Package memdoc is a synthetic in-memory implementation of the host
// capability surface. It exists so the extraction engine can be exercised
// deterministically without a live automation host: documents are declared
// as fixtures (YAML or Go structs) and addressed through the same linear
// offset space a real host would expose.
package memdoc

import (
	"bytes"
	"fmt"

	"golang.org/x/text/language"
	yaml "gopkg.in/yaml.v3"

	"docwalk/host"
)

type span struct {
	start, end int
}

func (s span) contains(off int) bool {
	return off >= s.start && off < s.end
}

// overlaps treats a collapsed [p, p) query as point containment.
func (s span) overlaps(start, end int) bool {
	if start == end {
		return s.contains(start)
	}
	return start < s.end && end > s.start
}

type run struct {
	span
	font    fontSpec
	lang    language.Tag
	noProof bool
}

type fontSpec struct {
	name                string
	size                float64
	color               int
	bold, italic        bool
	underline           bool
	superscript         bool
	subscript           bool
	strikethrough       bool
	doubleStrikethrough bool
}

type paragraph struct {
	span
	style           string
	listPrefix      string
	alignment       host.Alignment
	leftIndent      float64
	rightIndent     float64
	firstLineIndent float64
	lineSpacingRule int
	lineSpacing     float64
	lines           []span
	runs            []run
}

func (p *paragraph) runAt(off int) *run {
	for i := range p.runs {
		if p.runs[i].contains(off) {
			return &p.runs[i]
		}
	}
	// Paragraph mark and cell delimiter trail the last run but share its
	// formatting.
	if len(p.runs) > 0 {
		return &p.runs[len(p.runs)-1]
	}
	return nil
}

type table struct {
	span
	rows, columns int
	nesting       int
	borders       bool
	title, descr  string
	cells         []cell
}

type cell struct {
	span
	row, column int
}

type formField struct {
	span
	fieldType  int
	result     string
	statusText string
}

type contentControl struct {
	span
	controlType int
	checked     bool
	title       string
}

type docField struct {
	span
	fieldType host.FieldType
}

type note struct {
	offset int
	index  int
}

type revision struct {
	span
	revType int
}

type section struct {
	span
	startType host.SectionStart
}

type shape struct {
	offset    int
	shapeType host.ShapeType
	alt       string
	title     string
	progID    string
}

type selectionState struct {
	start, end    int
	startIsActive bool
}

// Document is a fully materialized synthetic document plus the mutable
// view state (selection, screen updating) a window would carry.
type Document struct {
	text  []rune
	story host.StoryType

	sandboxed   bool
	failLineOps bool

	paras        []*paragraph
	tables       []*table
	formFields   []*formField
	controls     []*contentControl
	fields       []*docField
	footnotes    []*note
	endnotes     []*note
	comments     []span
	spelling     []span
	revisions    []*revision
	sections     []*section
	shapes       []*shape
	pageBreaks   []int
	headingNames []string

	wordBounds []int

	sel            selectionState
	screenUpdating bool
	suspendCycles  int
}

// Length is the size of the document's linear character space.
func (d *Document) Length() int {
	return len(d.text)
}

// Text returns the raw story text, fixture authoring aid.
func (d *Document) Text() string {
	return string(d.text)
}

// ScreenUpdating reports whether screen updates are currently enabled.
func (d *Document) ScreenUpdating() bool {
	return d.screenUpdating
}

// SuspendCycles counts how many times screen updating has been suspended;
// tests use it to verify scoped suspension actually happened.
func (d *Document) SuspendCycles() int {
	return d.suspendCycles
}

// Selection reports the current selection interval, for tests asserting
// restoration.
func (d *Document) Selection() (start, end int) {
	return d.sel.start, d.sel.end
}

func (d *Document) paragraphAt(off int) *paragraph {
	for _, p := range d.paras {
		if p.contains(off) {
			return p
		}
	}
	if off >= len(d.text) && len(d.paras) > 0 {
		return d.paras[len(d.paras)-1]
	}
	return nil
}

func (d *Document) lineIndexAt(off int) int {
	idx := 0
	for _, p := range d.paras {
		for _, ln := range p.lines {
			if ln.contains(off) {
				return idx
			}
			idx++
		}
	}
	return idx - 1
}

func (d *Document) lineSpans() []span {
	var lines []span
	for _, p := range d.paras {
		lines = append(lines, p.lines...)
	}
	return lines
}

func (d *Document) pageAt(off int) int {
	page := 1
	for _, b := range d.pageBreaks {
		if b <= off {
			page++
		}
	}
	return page
}

func (d *Document) sectionIndexAt(off int) int {
	for i, s := range d.sections {
		if s.contains(off) {
			return i + 1
		}
	}
	return len(d.sections)
}

// Load builds a document from YAML fixture data. Unknown fields are
// rejected, not ignored.
func Load(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("failed to decode document fixture: %w", err)
	}
	return fx.Build()
}
