package memdoc

import (
	"fmt"

	"docwalk/host"
)

func itemIndex(i, n int) (int, error) {
	if i < 1 || i > n {
		return 0, fmt.Errorf("item %d of %d: %w", i, n, host.ErrUnavailable)
	}
	return i - 1, nil
}

type tableCollection struct {
	doc   *Document
	items []*table
}

func (c *tableCollection) Count() (int, error) { return len(c.items), nil }

func (c *tableCollection) Item(i int) (host.Table, error) {
	idx, err := itemIndex(i, len(c.items))
	if err != nil {
		return nil, err
	}
	return &tableObj{doc: c.doc, t: c.items[idx]}, nil
}

type tableObj struct {
	doc *Document
	t   *table
}

func (t *tableObj) BordersEnabled() (bool, error) { return t.t.borders, nil }
func (t *tableObj) RowCount() (int, error)        { return t.t.rows, nil }
func (t *tableObj) ColumnCount() (int, error)     { return t.t.columns, nil }
func (t *tableObj) NestingLevel() (int, error)    { return t.t.nesting, nil }
func (t *tableObj) Title() (string, error)        { return t.t.title, nil }
func (t *tableObj) Description() (string, error)  { return t.t.descr, nil }

func (t *tableObj) Range() (host.Range, error) {
	return t.doc.newRange(t.t.start, t.t.end), nil
}

type cellCollection struct {
	doc   *Document
	items []*cell
}

func (c *cellCollection) Count() (int, error) { return len(c.items), nil }

func (c *cellCollection) Item(i int) (host.Cell, error) {
	idx, err := itemIndex(i, len(c.items))
	if err != nil {
		return nil, err
	}
	return &cellObj{doc: c.doc, c: c.items[idx]}, nil
}

type cellObj struct {
	doc *Document
	c   *cell
}

func (c *cellObj) RowIndex() (int, error)    { return c.c.row, nil }
func (c *cellObj) ColumnIndex() (int, error) { return c.c.column, nil }

func (c *cellObj) Range() (host.Range, error) {
	return c.doc.newRange(c.c.start, c.c.end), nil
}

type formFieldCollection struct {
	doc   *Document
	items []*formField
}

func (c *formFieldCollection) Count() (int, error) { return len(c.items), nil }

func (c *formFieldCollection) Item(i int) (host.FormField, error) {
	idx, err := itemIndex(i, len(c.items))
	if err != nil {
		return nil, err
	}
	return &formFieldObj{doc: c.doc, f: c.items[idx]}, nil
}

type formFieldObj struct {
	doc *Document
	f   *formField
}

func (f *formFieldObj) Type() (int, error)          { return f.f.fieldType, nil }
func (f *formFieldObj) Result() (string, error)     { return f.f.result, nil }
func (f *formFieldObj) StatusText() (string, error) { return f.f.statusText, nil }

func (f *formFieldObj) Range() (host.Range, error) {
	return f.doc.newRange(f.f.start, f.f.end), nil
}

type contentControlCollection struct {
	doc   *Document
	items []*contentControl
}

func (c *contentControlCollection) Count() (int, error) { return len(c.items), nil }

func (c *contentControlCollection) Item(i int) (host.ContentControl, error) {
	idx, err := itemIndex(i, len(c.items))
	if err != nil {
		return nil, err
	}
	return &contentControlObj{doc: c.doc, c: c.items[idx]}, nil
}

type contentControlObj struct {
	doc *Document
	c   *contentControl
}

func (c *contentControlObj) Type() (int, error)     { return c.c.controlType, nil }
func (c *contentControlObj) Checked() (bool, error) { return c.c.checked, nil }
func (c *contentControlObj) Title() (string, error) { return c.c.title, nil }

func (c *contentControlObj) Range() (host.Range, error) {
	return c.doc.newRange(c.c.start, c.c.end), nil
}

type fieldCollection struct {
	doc   *Document
	items []*docField
}

func (c *fieldCollection) Count() (int, error) { return len(c.items), nil }

func (c *fieldCollection) Item(i int) (host.Field, error) {
	idx, err := itemIndex(i, len(c.items))
	if err != nil {
		return nil, err
	}
	return &fieldObj{doc: c.doc, f: c.items[idx]}, nil
}

type fieldObj struct {
	doc *Document
	f   *docField
}

func (f *fieldObj) Type() (host.FieldType, error) { return f.f.fieldType, nil }

func (f *fieldObj) Result() (host.Range, error) {
	return f.doc.newRange(f.f.start, f.f.end), nil
}

type noteCollection struct {
	items []*note
}

func (c *noteCollection) Count() (int, error) { return len(c.items), nil }

func (c *noteCollection) Item(i int) (host.Note, error) {
	idx, err := itemIndex(i, len(c.items))
	if err != nil {
		return nil, err
	}
	return &noteObj{n: c.items[idx]}, nil
}

type noteObj struct {
	n *note
}

func (n *noteObj) Index() (int, error) { return n.n.index, nil }

type commentCollection struct {
	doc   *Document
	items []span
}

func (c *commentCollection) Count() (int, error) { return len(c.items), nil }

func (c *commentCollection) Item(i int) (host.Comment, error) {
	idx, err := itemIndex(i, len(c.items))
	if err != nil {
		return nil, err
	}
	return &commentObj{doc: c.doc, s: c.items[idx]}, nil
}

type commentObj struct {
	doc *Document
	s   span
}

func (c *commentObj) Scope() (host.Range, error) {
	return c.doc.newRange(c.s.start, c.s.end), nil
}

type rangeCollection struct {
	doc   *Document
	items []span
}

func (c *rangeCollection) Count() (int, error) { return len(c.items), nil }

func (c *rangeCollection) Item(i int) (host.Range, error) {
	idx, err := itemIndex(i, len(c.items))
	if err != nil {
		return nil, err
	}
	return c.doc.newRange(c.items[idx].start, c.items[idx].end), nil
}

type sectionCollection struct {
	items []*section
}

func (c *sectionCollection) Count() (int, error) { return len(c.items), nil }

func (c *sectionCollection) Item(i int) (host.Section, error) {
	idx, err := itemIndex(i, len(c.items))
	if err != nil {
		return nil, err
	}
	return &sectionObj{s: c.items[idx]}, nil
}

type sectionObj struct {
	s *section
}

func (s *sectionObj) PageSetup() (host.PageSetup, error) {
	return &pageSetup{s: s.s}, nil
}

type pageSetup struct {
	s *section
}

func (p *pageSetup) SectionStart() (host.SectionStart, error) {
	return p.s.startType, nil
}

type shapeCollection struct {
	items []*shape
}

func (c *shapeCollection) Count() (int, error) { return len(c.items), nil }

func (c *shapeCollection) Item(i int) (host.InlineShape, error) {
	idx, err := itemIndex(i, len(c.items))
	if err != nil {
		return nil, err
	}
	return &shapeObj{s: c.items[idx]}, nil
}

type shapeObj struct {
	s *shape
}

func (s *shapeObj) Type() (host.ShapeType, error)    { return s.s.shapeType, nil }
func (s *shapeObj) AlternativeText() (string, error) { return s.s.alt, nil }
func (s *shapeObj) Title() (string, error)           { return s.s.title, nil }

func (s *shapeObj) ProgID() (string, error) {
	if s.s.shapeType != host.ShapeEmbeddedObject {
		return "", host.ErrUnavailable
	}
	return s.s.progID, nil
}

type paragraphCollection struct {
	doc   *Document
	items []*paragraph
}

func (c *paragraphCollection) Count() (int, error) { return len(c.items), nil }

func (c *paragraphCollection) Item(i int) (host.Paragraph, error) {
	idx, err := itemIndex(i, len(c.items))
	if err != nil {
		return nil, err
	}
	return &paragraphObj{doc: c.doc, p: c.items[idx]}, nil
}

type paragraphObj struct {
	doc *Document
	p   *paragraph
}

func (p *paragraphObj) Style() (host.Style, error) {
	if p.p.style == "" {
		return nil, host.ErrUnavailable
	}
	return &style{doc: p.doc, name: p.p.style}, nil
}

func (p *paragraphObj) Range() (host.Range, error) {
	return p.doc.newRange(p.p.start, p.p.end), nil
}

type revisionCollection struct {
	items []*revision
}

func (c *revisionCollection) Count() (int, error) { return len(c.items), nil }

func (c *revisionCollection) Item(i int) (host.Revision, error) {
	idx, err := itemIndex(i, len(c.items))
	if err != nil {
		return nil, err
	}
	return &revisionObj{r: c.items[idx]}, nil
}

type revisionObj struct {
	r *revision
}

func (r *revisionObj) Type() (int, error) { return r.r.revType, nil }

type style struct {
	doc  *Document
	name string
}

func (s *style) NameLocal() (string, error) { return s.name, nil }

func (s *style) Document() (host.Document, error) {
	return &documentObj{doc: s.doc}, nil
}

type documentObj struct {
	doc *Document
}

func (d *documentObj) Styles() (host.Styles, error) {
	return &styles{doc: d.doc}, nil
}

type styles struct {
	doc *Document
}

func (s *styles) Item(id int) (host.Style, error) {
	if id > host.StyleHeading1 || id < host.StyleHeading9 {
		return nil, fmt.Errorf("style id %d: %w", id, host.ErrUnavailable)
	}
	return &style{doc: s.doc, name: s.doc.headingNames[host.StyleHeading1-id]}, nil
}

type paragraphFormat struct {
	p *paragraph
}

func (f *paragraphFormat) Alignment() (host.Alignment, error) { return f.p.alignment, nil }
func (f *paragraphFormat) LeftIndent() (float64, error)       { return f.p.leftIndent, nil }
func (f *paragraphFormat) RightIndent() (float64, error)      { return f.p.rightIndent, nil }
func (f *paragraphFormat) FirstLineIndent() (float64, error)  { return f.p.firstLineIndent, nil }
func (f *paragraphFormat) LineSpacingRule() (int, error)      { return f.p.lineSpacingRule, nil }
func (f *paragraphFormat) LineSpacing() (float64, error)      { return f.p.lineSpacing, nil }

type font struct {
	f *fontSpec
}

func (f *font) Name() (string, error)              { return f.f.name, nil }
func (f *font) Size() (float64, error)             { return f.f.size, nil }
func (f *font) Color() (int, error)                { return f.f.color, nil }
func (f *font) Bold() (bool, error)                { return f.f.bold, nil }
func (f *font) Italic() (bool, error)              { return f.f.italic, nil }
func (f *font) Underline() (bool, error)           { return f.f.underline, nil }
func (f *font) Superscript() (bool, error)         { return f.f.superscript, nil }
func (f *font) Subscript() (bool, error)           { return f.f.subscript, nil }
func (f *font) Strikethrough() (bool, error)       { return f.f.strikethrough, nil }
func (f *font) DoubleStrikethrough() (bool, error) { return f.f.doubleStrikethrough, nil }

type listFormat struct {
	p *paragraph
}

func (l *listFormat) ListString() (string, error) { return l.p.listPrefix, nil }
