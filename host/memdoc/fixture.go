package memdoc

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"

	"docwalk/host"
)

// Fixture declares a synthetic document. Offsets throughout are rune
// offsets into the assembled story text; paragraphs are assembled in
// order, each contributing its runs' text plus a trailing paragraph mark
// (and a cell delimiter when cell_end is set).
type Fixture struct {
	Story         string   `yaml:"story,omitempty"`
	Sandboxed     bool     `yaml:"sandboxed,omitempty"`
	FailLineOps   bool     `yaml:"fail_line_ops,omitempty"`
	HeadingStyles []string `yaml:"heading_styles,omitempty"`

	Paragraphs      []ParagraphFixture      `yaml:"paragraphs"`
	Tables          []TableFixture          `yaml:"tables,omitempty"`
	FormFields      []FormFieldFixture      `yaml:"form_fields,omitempty"`
	ContentControls []ContentControlFixture `yaml:"content_controls,omitempty"`
	Fields          []FieldFixture          `yaml:"fields,omitempty"`
	Footnotes       []NoteFixture           `yaml:"footnotes,omitempty"`
	Endnotes        []NoteFixture           `yaml:"endnotes,omitempty"`
	Comments        []SpanFixture           `yaml:"comments,omitempty"`
	SpellingErrors  []SpanFixture           `yaml:"spelling_errors,omitempty"`
	Revisions       []RevisionFixture       `yaml:"revisions,omitempty"`
	Sections        []SectionFixture        `yaml:"sections,omitempty"`
	Shapes          []ShapeFixture          `yaml:"shapes,omitempty"`
	PageBreaks      []int                   `yaml:"page_breaks,omitempty"`
}

type ParagraphFixture struct {
	Style           string       `yaml:"style,omitempty"`
	ListPrefix      string       `yaml:"list_prefix,omitempty"`
	Alignment       string       `yaml:"alignment,omitempty"`
	LeftIndent      float64      `yaml:"left_indent,omitempty"`
	RightIndent     float64      `yaml:"right_indent,omitempty"`
	FirstLineIndent float64      `yaml:"first_line_indent,omitempty"`
	LineSpacingRule int          `yaml:"line_spacing_rule,omitempty"`
	LineSpacing     float64      `yaml:"line_spacing,omitempty"`
	CellEnd         bool         `yaml:"cell_end,omitempty"`
	// Lines holds rune lengths of wrapped lines; the remainder of the
	// paragraph (including its mark) forms the last line.
	Lines []int        `yaml:"lines,omitempty"`
	Runs  []RunFixture `yaml:"runs,omitempty"`
}

type RunFixture struct {
	Text                string  `yaml:"text"`
	FontName            string  `yaml:"font_name,omitempty"`
	FontSize            float64 `yaml:"font_size,omitempty"`
	Color               int     `yaml:"color,omitempty"`
	Bold                bool    `yaml:"bold,omitempty"`
	Italic              bool    `yaml:"italic,omitempty"`
	Underline           bool    `yaml:"underline,omitempty"`
	Superscript         bool    `yaml:"superscript,omitempty"`
	Subscript           bool    `yaml:"subscript,omitempty"`
	Strikethrough       bool    `yaml:"strikethrough,omitempty"`
	DoubleStrikethrough bool    `yaml:"double_strikethrough,omitempty"`
	Language            string  `yaml:"language,omitempty"`
	NoProofing          bool    `yaml:"no_proofing,omitempty"`
}

type TableFixture struct {
	Start       int           `yaml:"start"`
	End         int           `yaml:"end"`
	Rows        int           `yaml:"rows"`
	Columns     int           `yaml:"columns"`
	Nesting     int           `yaml:"nesting,omitempty"`
	Borderless  bool          `yaml:"borderless,omitempty"`
	Title       string        `yaml:"title,omitempty"`
	Description string        `yaml:"description,omitempty"`
	Cells       []CellFixture `yaml:"cells,omitempty"`
}

type CellFixture struct {
	Start  int `yaml:"start"`
	End    int `yaml:"end"`
	Row    int `yaml:"row"`
	Column int `yaml:"column"`
}

type FormFieldFixture struct {
	Start      int    `yaml:"start"`
	End        int    `yaml:"end"`
	Type       int    `yaml:"type"`
	Result     string `yaml:"result,omitempty"`
	StatusText string `yaml:"status_text,omitempty"`
}

type ContentControlFixture struct {
	Start   int    `yaml:"start"`
	End     int    `yaml:"end"`
	Type    int    `yaml:"type"`
	Checked bool   `yaml:"checked,omitempty"`
	Title   string `yaml:"title,omitempty"`
}

type FieldFixture struct {
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Kind  string `yaml:"kind"`
}

type NoteFixture struct {
	Offset int `yaml:"offset"`
	Index  int `yaml:"index"`
}

type SpanFixture struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

type RevisionFixture struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
	Type  int `yaml:"type"`
}

type SectionFixture struct {
	// End is the exclusive end offset of the section; the last section may
	// omit it to run to the end of the story.
	End       int `yaml:"end,omitempty"`
	StartType int `yaml:"start_type,omitempty"`
}

type ShapeFixture struct {
	Offset int    `yaml:"offset"`
	Kind   string `yaml:"kind"`
	Alt    string `yaml:"alt,omitempty"`
	Title  string `yaml:"title,omitempty"`
	ProgID string `yaml:"prog_id,omitempty"`
}

var defaultHeadingNames = []string{
	"Heading 1", "Heading 2", "Heading 3", "Heading 4", "Heading 5",
	"Heading 6", "Heading 7", "Heading 8", "Heading 9",
}

// Build assembles the document: concatenates paragraph text, computes
// line and word boundaries and validates declared offsets.
func (fx *Fixture) Build() (*Document, error) {
	d := &Document{
		story:          host.StoryMainText,
		sandboxed:      fx.Sandboxed,
		failLineOps:    fx.FailLineOps,
		screenUpdating: true,
		headingNames:   defaultHeadingNames,
	}
	switch fx.Story {
	case "", "main":
	case "footnotes":
		d.story = host.StoryFootnotes
	case "endnotes":
		d.story = host.StoryEndnotes
	case "comments":
		d.story = host.StoryComments
	default:
		return nil, fmt.Errorf("unknown story %q", fx.Story)
	}
	if len(fx.HeadingStyles) > 0 {
		if len(fx.HeadingStyles) != 9 {
			return nil, fmt.Errorf("heading_styles needs 9 names, got %d", len(fx.HeadingStyles))
		}
		d.headingNames = fx.HeadingStyles
	}

	var text []rune
	for i := range fx.Paragraphs {
		pf := &fx.Paragraphs[i]
		p := &paragraph{
			style:           pf.Style,
			listPrefix:      pf.ListPrefix,
			leftIndent:      pf.LeftIndent,
			rightIndent:     pf.RightIndent,
			firstLineIndent: pf.FirstLineIndent,
			lineSpacingRule: pf.LineSpacingRule,
			lineSpacing:     pf.LineSpacing,
		}
		switch pf.Alignment {
		case "", "left":
			p.alignment = host.AlignLeft
		case "center":
			p.alignment = host.AlignCenter
		case "right":
			p.alignment = host.AlignRight
		case "justified":
			p.alignment = host.AlignJustified
		default:
			return nil, fmt.Errorf("paragraph %d: unknown alignment %q", i, pf.Alignment)
		}
		p.start = len(text)
		for j := range pf.Runs {
			rf := &pf.Runs[j]
			r := run{
				font: fontSpec{
					name:                rf.FontName,
					size:                rf.FontSize,
					color:               rf.Color,
					bold:                rf.Bold,
					italic:              rf.Italic,
					underline:           rf.Underline,
					superscript:         rf.Superscript,
					subscript:           rf.Subscript,
					strikethrough:       rf.Strikethrough,
					doubleStrikethrough: rf.DoubleStrikethrough,
				},
				noProof: rf.NoProofing,
			}
			if rf.Language != "" && !rf.NoProofing {
				tag, err := language.Parse(rf.Language)
				if err != nil {
					return nil, fmt.Errorf("paragraph %d run %d: bad language %q: %w", i, j, rf.Language, err)
				}
				r.lang = tag
			}
			r.start = len(text)
			text = append(text, []rune(rf.Text)...)
			r.end = len(text)
			p.runs = append(p.runs, r)
		}
		text = append(text, '\r')
		if pf.CellEnd {
			text = append(text, host.CellDelimiter)
		}
		p.end = len(text)

		pos := p.start
		for _, n := range pf.Lines {
			if n <= 0 || pos+n > p.end {
				return nil, fmt.Errorf("paragraph %d: bad line length %d", i, n)
			}
			p.lines = append(p.lines, span{start: pos, end: pos + n})
			pos += n
		}
		if pos < p.end {
			p.lines = append(p.lines, span{start: pos, end: p.end})
		}
		d.paras = append(d.paras, p)
	}
	d.text = text

	check := func(what string, s, e int) error {
		if s < 0 || e > len(text) || s > e {
			return fmt.Errorf("%s: span [%d, %d) outside document of length %d", what, s, e, len(text))
		}
		return nil
	}

	for i, tf := range fx.Tables {
		if err := check(fmt.Sprintf("table %d", i), tf.Start, tf.End); err != nil {
			return nil, err
		}
		t := &table{
			span:    span{start: tf.Start, end: tf.End},
			rows:    tf.Rows,
			columns: tf.Columns,
			nesting: tf.Nesting,
			borders: !tf.Borderless,
			title:   tf.Title,
			descr:   tf.Description,
		}
		if t.nesting == 0 {
			t.nesting = 1
		}
		for j, cf := range tf.Cells {
			if err := check(fmt.Sprintf("table %d cell %d", i, j), cf.Start, cf.End); err != nil {
				return nil, err
			}
			t.cells = append(t.cells, cell{
				span:   span{start: cf.Start, end: cf.End},
				row:    cf.Row,
				column: cf.Column,
			})
		}
		d.tables = append(d.tables, t)
	}
	for i, ff := range fx.FormFields {
		if err := check(fmt.Sprintf("form field %d", i), ff.Start, ff.End); err != nil {
			return nil, err
		}
		d.formFields = append(d.formFields, &formField{
			span:       span{start: ff.Start, end: ff.End},
			fieldType:  ff.Type,
			result:     ff.Result,
			statusText: ff.StatusText,
		})
	}
	for i, cc := range fx.ContentControls {
		if err := check(fmt.Sprintf("content control %d", i), cc.Start, cc.End); err != nil {
			return nil, err
		}
		d.controls = append(d.controls, &contentControl{
			span:        span{start: cc.Start, end: cc.End},
			controlType: cc.Type,
			checked:     cc.Checked,
			title:       cc.Title,
		})
	}
	for i, f := range fx.Fields {
		if err := check(fmt.Sprintf("field %d", i), f.Start, f.End); err != nil {
			return nil, err
		}
		var ft host.FieldType
		switch f.Kind {
		case "hyperlink":
			ft = host.FieldHyperlink
		case "page":
			ft = host.FieldPage
		default:
			return nil, fmt.Errorf("field %d: unknown kind %q", i, f.Kind)
		}
		d.fields = append(d.fields, &docField{span: span{start: f.Start, end: f.End}, fieldType: ft})
	}
	for i, nf := range fx.Footnotes {
		if nf.Offset < 0 || nf.Offset >= len(text) {
			return nil, fmt.Errorf("footnote %d: offset %d outside document", i, nf.Offset)
		}
		d.footnotes = append(d.footnotes, &note{offset: nf.Offset, index: nf.Index})
	}
	for i, nf := range fx.Endnotes {
		if nf.Offset < 0 || nf.Offset >= len(text) {
			return nil, fmt.Errorf("endnote %d: offset %d outside document", i, nf.Offset)
		}
		d.endnotes = append(d.endnotes, &note{offset: nf.Offset, index: nf.Index})
	}
	for i, sf := range fx.Comments {
		if err := check(fmt.Sprintf("comment %d", i), sf.Start, sf.End); err != nil {
			return nil, err
		}
		d.comments = append(d.comments, span{start: sf.Start, end: sf.End})
	}
	for i, sf := range fx.SpellingErrors {
		if err := check(fmt.Sprintf("spelling error %d", i), sf.Start, sf.End); err != nil {
			return nil, err
		}
		d.spelling = append(d.spelling, span{start: sf.Start, end: sf.End})
	}
	for i, rf := range fx.Revisions {
		if err := check(fmt.Sprintf("revision %d", i), rf.Start, rf.End); err != nil {
			return nil, err
		}
		d.revisions = append(d.revisions, &revision{span: span{start: rf.Start, end: rf.End}, revType: rf.Type})
	}
	for i, sh := range fx.Shapes {
		if sh.Offset < 0 || sh.Offset >= len(text) {
			return nil, fmt.Errorf("shape %d: offset %d outside document", i, sh.Offset)
		}
		s := &shape{offset: sh.Offset, alt: sh.Alt, title: sh.Title, progID: sh.ProgID}
		switch sh.Kind {
		case "picture":
			s.shapeType = host.ShapePicture
		case "linked-picture":
			s.shapeType = host.ShapeLinkedPicture
		case "embedded":
			s.shapeType = host.ShapeEmbeddedObject
		case "other":
			s.shapeType = host.ShapeType(0)
		default:
			return nil, fmt.Errorf("shape %d: unknown kind %q", i, sh.Kind)
		}
		d.shapes = append(d.shapes, s)
	}

	// Sections partition the story; with none declared a single continuous
	// section covers all of it.
	pos := 0
	for i, sf := range fx.Sections {
		end := sf.End
		if end == 0 && i == len(fx.Sections)-1 {
			end = len(text)
		}
		if end <= pos || end > len(text) {
			return nil, fmt.Errorf("section %d: bad end %d", i, end)
		}
		d.sections = append(d.sections, &section{
			span:      span{start: pos, end: end},
			startType: host.SectionStart(sf.StartType),
		})
		pos = end
	}
	if len(d.sections) == 0 {
		d.sections = []*section{{span: span{start: 0, end: len(text)}, startType: host.SectionNewPage}}
	} else if pos < len(text) {
		return nil, fmt.Errorf("sections cover only [0, %d) of %d", pos, len(text))
	}

	d.pageBreaks = append(d.pageBreaks, fx.PageBreaks...)
	sort.Ints(d.pageBreaks)

	d.wordBounds = computeWordBounds(string(text))
	return d, nil
}

// MustBuild is Build for tests with known good fixtures.
func (fx *Fixture) MustBuild() *Document {
	d, err := fx.Build()
	if err != nil {
		panic(err)
	}
	return d
}
