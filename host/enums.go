package host

// Numeric values below mirror the host automation protocol and are part of
// the output contract (story types and section start types are emitted
// verbatim).

// Unit of range and selection motion.
type Unit int

const (
	UnitCharacter Unit = 1
	UnitWord      Unit = 2
	UnitParagraph Unit = 4
	UnitLine      Unit = 5
)

// StoryType identifies which document flow a range belongs to.
type StoryType int

const (
	StoryMainText  StoryType = 1
	StoryFootnotes StoryType = 2
	StoryEndnotes  StoryType = 3
	StoryComments  StoryType = 4
)

// Information enumerates positional queries answered by Range.Information.
type Information int

const (
	InfoAdjustedPageNumber     Information = 1
	InfoSectionNumber          Information = 2
	InfoFirstCharacterLine     Information = 10
	InfoStartOfRangeRowNumber  Information = 13
	InfoStartOfRangeColumnNumb Information = 16
)

// Alignment of a paragraph.
type Alignment int

const (
	AlignLeft      Alignment = 0
	AlignCenter    Alignment = 1
	AlignRight     Alignment = 2
	AlignJustified Alignment = 3
)

// SectionStart describes how a section begins; reported as the value of
// the section-break attribute.
type SectionStart int

const (
	SectionContinuous SectionStart = 0
	SectionNewColumn  SectionStart = 1
	SectionNewPage    SectionStart = 2
	SectionEvenPage   SectionStart = 3
	SectionOddPage    SectionStart = 4
)

// ShapeType classifies inline objects.
type ShapeType int

const (
	ShapeEmbeddedObject ShapeType = 1
	ShapePicture        ShapeType = 3
	ShapeLinkedPicture  ShapeType = 4
)

// FieldType classifies result-bearing document fields. Only the two the
// engine inspects are named; everything else passes through numerically.
type FieldType int

const (
	FieldPage      FieldType = 33
	FieldHyperlink FieldType = 88
)

// Built-in style identifiers (host styles collections accept negative ids
// for built-ins).
const (
	StyleHeading1 = -2
	StyleHeading9 = -10
)

// Control characters with structural meaning inside story text.
const (
	NoteMarker    = '\x02'
	CellDelimiter = '\x07'
	PageBreak     = '\x0c'
	ColumnBreak   = '\x0e'
)

// CollectionScanLimit bounds first-match scans over form field and content
// control collections; the host misbehaves on unbounded enumeration.
const CollectionScanLimit = 99
