// Package host defines the typed capability surface over a live document
// automation host. Every operation the extraction engine performs against
// the host goes through one of these interfaces; implementations translate
// them to whatever automation protocol the host actually speaks.
//
// All methods return an explicit error. Callers distinguish two tiers: the
// foundational acquisition chain (Window -> Application -> Selection ->
// Range) aborts a request on failure, while any narrower feature accessor
// failing simply means "unavailable here" and the corresponding output is
// omitted.
package host

import (
	"errors"

	"golang.org/x/text/language"
)

// ErrUnavailable marks a feature the host does not expose for the queried
// location (no table here, no notes collection, sandbox restriction and so
// on). Implementations wrap or return it from feature accessors; the walker
// treats any error the same way, but this one makes intent explicit.
var ErrUnavailable = errors.New("host: feature unavailable")

// Window is the entry point for one hosted document view.
type Window interface {
	Application() (Application, error)
	Selection() (Selection, error)
}

// Application exposes host process level state.
type Application interface {
	// SetScreenUpdating enables or suppresses visual updates while a
	// selection is being moved around programmatically.
	SetScreenUpdating(enabled bool) error
	// IsSandboxed reports whether the host runs in a restricted mode.
	// Collecting spelling errors in that mode is known to crash the host.
	IsSandboxed() (bool, error)
}

// Selection is the user visible selection of a window. It supports the
// subset of range operations the line navigator needs plus selection only
// state (directionality).
type Selection interface {
	Range() (Range, error)
	SetRange(start, end int) error
	Start() (int, error)
	End() (int, error)
	// StartIsActive reports selection directionality: whether the active
	// (moving) end is the start.
	StartIsActive() (bool, error)
	SetStartIsActive(active bool) error
	// StartOf collapses the selection start to the start of the enclosing
	// unit. EndOf does the same for the end.
	StartOf(unit Unit) error
	EndOf(unit Unit) error
	// Expand grows the selection to cover the enclosing unit in one step.
	// Kept as a fallback: on some hosts it misbehaves near table cell and
	// TOC boundaries, which is why the navigator prefers StartOf/EndOf.
	Expand(unit Unit) error
	// Move collapses the selection and moves it by count units, returning
	// the number of units actually moved.
	Move(unit Unit, count int) (int, error)
}

// Range is a mutable handle over a half-open interval [start, end) in the
// document's linear character space. Duplicates are fully independent.
type Range interface {
	Start() (int, error)
	End() (int, error)
	SetEnd(end int) error
	SetRange(start, end int) error
	// Collapse shrinks the range to a single position: its end when toEnd
	// is true, its start otherwise.
	Collapse(toEnd bool) error
	// MoveEnd moves the end of the range by count units and returns the
	// number of units actually moved. Note the known host quirk: a move
	// may report success without changing the offset, so callers must
	// re-read End afterwards.
	MoveEnd(unit Unit, count int) (int, error)
	// Expand grows the range to the enclosing unit boundaries.
	Expand(unit Unit) error
	Duplicate() (Range, error)
	// Select makes this range the window selection.
	Select() error
	Text() (string, error)
	StoryType() (StoryType, error)
	// InRange reports whether this range lies entirely within outer.
	InRange(outer Range) (bool, error)
	// Information answers positional queries (page number, line number,
	// table row/column) relative to the range.
	Information(kind Information) (int, error)
	Application() (Application, error)

	Tables() (Tables, error)
	Cells() (Cells, error)
	FormFields() (FormFields, error)
	ContentControls() (ContentControls, error)
	Fields() (Fields, error)
	Footnotes() (Notes, error)
	Endnotes() (Notes, error)
	Comments() (Comments, error)
	SpellingErrors() (Ranges, error)
	Sections() (Sections, error)
	InlineShapes() (InlineShapes, error)
	Paragraphs() (Paragraphs, error)
	Revisions() (Revisions, error)

	ParagraphFormat() (ParagraphFormat, error)
	Font() (Font, error)
	Style() (Style, error)
	ListFormat() (ListFormat, error)
	// Language reports the proofing language of the range start.
	// language.Und stands for the host's none/unknown/no-proofing
	// sentinels and is never reported in output.
	Language() (language.Tag, error)
}

// Collections are 1-based, matching the host protocol. Item returns an
// error past the end.

type Tables interface {
	Count() (int, error)
	Item(i int) (Table, error)
}

type Table interface {
	// BordersEnabled reports whether the table draws borders. Borderless
	// tables are treated as layout tables and skipped unless explicitly
	// included.
	BordersEnabled() (bool, error)
	RowCount() (int, error)
	ColumnCount() (int, error)
	NestingLevel() (int, error)
	Title() (string, error)
	Description() (string, error)
	Range() (Range, error)
}

type Cells interface {
	Count() (int, error)
	Item(i int) (Cell, error)
}

type Cell interface {
	RowIndex() (int, error)
	ColumnIndex() (int, error)
	Range() (Range, error)
}

type FormFields interface {
	Count() (int, error)
	Item(i int) (FormField, error)
}

type FormField interface {
	Type() (int, error)
	Result() (string, error)
	StatusText() (string, error)
	Range() (Range, error)
}

type ContentControls interface {
	Count() (int, error)
	Item(i int) (ContentControl, error)
}

type ContentControl interface {
	Type() (int, error)
	Checked() (bool, error)
	Title() (string, error)
	Range() (Range, error)
}

// Fields is the collection of result-bearing document fields (hyperlinks,
// page numbers and the like) as opposed to interactive form fields.
type Fields interface {
	Count() (int, error)
	Item(i int) (Field, error)
}

type Field interface {
	Type() (FieldType, error)
	// Result is the range covering the field's visible result text.
	Result() (Range, error)
}

type Notes interface {
	Count() (int, error)
	Item(i int) (Note, error)
}

type Note interface {
	// Index is the note's 1-based position in its story.
	Index() (int, error)
}

type Comments interface {
	Count() (int, error)
	Item(i int) (Comment, error)
}

type Comment interface {
	// Scope is the document range the comment is anchored to.
	Scope() (Range, error)
}

// Ranges is a plain collection of ranges (spelling error spans).
type Ranges interface {
	Count() (int, error)
	Item(i int) (Range, error)
}

type Sections interface {
	Count() (int, error)
	Item(i int) (Section, error)
}

type Section interface {
	PageSetup() (PageSetup, error)
}

type PageSetup interface {
	SectionStart() (SectionStart, error)
}

type InlineShapes interface {
	Count() (int, error)
	Item(i int) (InlineShape, error)
}

type InlineShape interface {
	Type() (ShapeType, error)
	AlternativeText() (string, error)
	Title() (string, error)
	// ProgID identifies the embedded object's server program; only
	// meaningful for embedded objects.
	ProgID() (string, error)
}

type Paragraphs interface {
	Count() (int, error)
	Item(i int) (Paragraph, error)
}

type Paragraph interface {
	Style() (Style, error)
	Range() (Range, error)
}

type Revisions interface {
	Count() (int, error)
	Item(i int) (Revision, error)
}

type Revision interface {
	Type() (int, error)
}

type Style interface {
	// NameLocal is the style name localized to the host UI language.
	NameLocal() (string, error)
	// Document reaches the owning document, needed once to enumerate the
	// built-in heading styles.
	Document() (Document, error)
}

type Document interface {
	Styles() (Styles, error)
}

type Styles interface {
	// Item accepts built-in style identifiers, which are negative
	// (StyleHeading1 through StyleHeading9).
	Item(id int) (Style, error)
}

type ParagraphFormat interface {
	Alignment() (Alignment, error)
	// Indents are in points. A negative first line indent means a hanging
	// indent.
	LeftIndent() (float64, error)
	RightIndent() (float64, error)
	FirstLineIndent() (float64, error)
	LineSpacingRule() (int, error)
	LineSpacing() (float64, error)
}

type Font interface {
	Name() (string, error)
	// Size is in points.
	Size() (float64, error)
	Color() (int, error)
	Bold() (bool, error)
	Italic() (bool, error)
	Underline() (bool, error)
	Superscript() (bool, error)
	Subscript() (bool, error)
	Strikethrough() (bool, error)
	DoubleStrikethrough() (bool, error)
}

type ListFormat interface {
	// ListString is the rendered list item prefix ("1.", "a)", a bullet).
	ListString() (string, error)
}
