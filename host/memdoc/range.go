package memdoc

import (
	"golang.org/x/text/language"

	"docwalk/host"
)

type rangeObj struct {
	doc  *Document
	s, e int
}

func (d *Document) newRange(start, end int) *rangeObj {
	return &rangeObj{doc: d, s: d.clamp(start), e: d.clamp(end)}
}

func (d *Document) clamp(off int) int {
	if off < 0 {
		return 0
	}
	if off > len(d.text) {
		return len(d.text)
	}
	return off
}

func (r *rangeObj) Start() (int, error) { return r.s, nil }
func (r *rangeObj) End() (int, error)   { return r.e, nil }

func (r *rangeObj) SetEnd(end int) error {
	r.e = r.doc.clamp(end)
	if r.s > r.e {
		r.s = r.e
	}
	return nil
}

func (r *rangeObj) SetRange(start, end int) error {
	r.s = r.doc.clamp(start)
	r.e = r.doc.clamp(end)
	if r.s > r.e {
		r.e = r.s
	}
	return nil
}

func (r *rangeObj) Collapse(toEnd bool) error {
	if toEnd {
		r.s = r.e
	} else {
		r.e = r.s
	}
	return nil
}

func (r *rangeObj) MoveEnd(unit host.Unit, count int) (int, error) {
	if count <= 0 {
		return 0, host.ErrUnavailable
	}
	moved := 0
	for i := 0; i < count; i++ {
		var next int
		switch unit {
		case host.UnitCharacter:
			next = r.doc.clamp(r.e + 1)
		case host.UnitWord:
			next = r.doc.nextWordEnd(r.e)
		case host.UnitParagraph:
			p := r.doc.paragraphAt(r.e)
			if p == nil {
				return moved, nil
			}
			next = p.end
			if next <= r.e {
				next = r.doc.clamp(p.end + 1)
				if np := r.doc.paragraphAt(next); np != nil {
					next = np.end
				}
			}
		default:
			return 0, host.ErrUnavailable
		}
		if next <= r.e {
			return moved, nil
		}
		r.e = next
		moved++
	}
	return moved, nil
}

func (r *rangeObj) Expand(unit host.Unit) error {
	switch unit {
	case host.UnitParagraph:
		ps := r.doc.paragraphAt(r.s)
		if ps == nil {
			return host.ErrUnavailable
		}
		pe := ps
		if r.e > r.s {
			if p := r.doc.paragraphAt(r.e - 1); p != nil {
				pe = p
			}
		}
		r.s, r.e = ps.start, pe.end
	case host.UnitLine:
		lines := r.doc.lineSpans()
		ls := r.doc.lineIndexAt(r.s)
		le := ls
		if r.e > r.s {
			le = r.doc.lineIndexAt(r.e - 1)
		}
		if ls < 0 || le >= len(lines) {
			return host.ErrUnavailable
		}
		r.s, r.e = lines[ls].start, lines[le].end
	default:
		return host.ErrUnavailable
	}
	return nil
}

func (r *rangeObj) Duplicate() (host.Range, error) {
	dup := *r
	return &dup, nil
}

func (r *rangeObj) Select() error {
	r.doc.sel.start, r.doc.sel.end = r.s, r.e
	return nil
}

func (r *rangeObj) Text() (string, error) {
	return string(r.doc.text[r.s:r.e]), nil
}

func (r *rangeObj) StoryType() (host.StoryType, error) {
	return r.doc.story, nil
}

func (r *rangeObj) InRange(outer host.Range) (bool, error) {
	o, ok := outer.(*rangeObj)
	if !ok || o.doc != r.doc {
		return false, host.ErrUnavailable
	}
	in := r.s >= o.s && r.e <= o.e
	if in && r.s == r.e && r.s == o.e && o.s != o.e {
		// ranges are half-open, a cursor collapsed at the outer end is
		// already past it
		in = false
	}
	return in, nil
}

func (r *rangeObj) Information(kind host.Information) (int, error) {
	switch kind {
	case host.InfoAdjustedPageNumber:
		return r.doc.pageAt(r.e), nil
	case host.InfoSectionNumber:
		return r.doc.sectionIndexAt(r.e), nil
	case host.InfoFirstCharacterLine:
		return r.doc.lineIndexAt(r.s) + 1, nil
	case host.InfoStartOfRangeRowNumber:
		if c := r.doc.cellAt(r.s); c != nil {
			return c.row, nil
		}
		return 0, host.ErrUnavailable
	case host.InfoStartOfRangeColumnNumb:
		if c := r.doc.cellAt(r.s); c != nil {
			return c.column, nil
		}
		return 0, host.ErrUnavailable
	}
	return 0, host.ErrUnavailable
}

func (r *rangeObj) Application() (host.Application, error) {
	return &application{doc: r.doc}, nil
}

// cellAt returns the cell of the innermost table containing the offset.
func (d *Document) cellAt(off int) *cell {
	var best *cell
	depth := 0
	for _, t := range d.tables {
		if !t.contains(off) || t.nesting < depth {
			continue
		}
		for i := range t.cells {
			if t.cells[i].contains(off) {
				best = &t.cells[i]
				depth = t.nesting
			}
		}
	}
	return best
}

func (r *rangeObj) Tables() (host.Tables, error) {
	var items []*table
	for _, t := range r.doc.tables {
		if t.overlaps(r.s, r.e) {
			items = append(items, t)
		}
	}
	return &tableCollection{doc: r.doc, items: items}, nil
}

func (r *rangeObj) Cells() (host.Cells, error) {
	var items []*cell
	for _, t := range r.doc.tables {
		if !t.overlaps(r.s, r.e) {
			continue
		}
		for i := range t.cells {
			if t.cells[i].overlaps(r.s, r.e) {
				items = append(items, &t.cells[i])
			}
		}
	}
	return &cellCollection{doc: r.doc, items: items}, nil
}

func (r *rangeObj) FormFields() (host.FormFields, error) {
	var items []*formField
	for _, f := range r.doc.formFields {
		if f.overlaps(r.s, r.e) {
			items = append(items, f)
		}
	}
	return &formFieldCollection{doc: r.doc, items: items}, nil
}

func (r *rangeObj) ContentControls() (host.ContentControls, error) {
	var items []*contentControl
	for _, c := range r.doc.controls {
		if c.overlaps(r.s, r.e) {
			items = append(items, c)
		}
	}
	return &contentControlCollection{doc: r.doc, items: items}, nil
}

func (r *rangeObj) Fields() (host.Fields, error) {
	var items []*docField
	for _, f := range r.doc.fields {
		if f.overlaps(r.s, r.e) {
			items = append(items, f)
		}
	}
	return &fieldCollection{doc: r.doc, items: items}, nil
}

func (r *rangeObj) Footnotes() (host.Notes, error) {
	return &noteCollection{items: r.notesIn(r.doc.footnotes)}, nil
}

func (r *rangeObj) Endnotes() (host.Notes, error) {
	return &noteCollection{items: r.notesIn(r.doc.endnotes)}, nil
}

func (r *rangeObj) notesIn(all []*note) []*note {
	var items []*note
	for _, n := range all {
		if (span{start: n.offset, end: n.offset + 1}).overlaps(r.s, r.e) {
			items = append(items, n)
		}
	}
	return items
}

func (r *rangeObj) Comments() (host.Comments, error) {
	var items []span
	for _, c := range r.doc.comments {
		if c.overlaps(r.s, r.e) {
			items = append(items, c)
		}
	}
	return &commentCollection{doc: r.doc, items: items}, nil
}

func (r *rangeObj) SpellingErrors() (host.Ranges, error) {
	if r.doc.sandboxed {
		// A live host crashes here; the synthetic one just refuses.
		return nil, host.ErrUnavailable
	}
	var items []span
	for _, s := range r.doc.spelling {
		if s.overlaps(r.s, r.e) {
			items = append(items, s)
		}
	}
	return &rangeCollection{doc: r.doc, items: items}, nil
}

func (r *rangeObj) Sections() (host.Sections, error) {
	var items []*section
	for _, s := range r.doc.sections {
		if s.overlaps(r.s, r.e) {
			items = append(items, s)
		}
	}
	return &sectionCollection{items: items}, nil
}

func (r *rangeObj) InlineShapes() (host.InlineShapes, error) {
	var items []*shape
	for _, s := range r.doc.shapes {
		if (span{start: s.offset, end: s.offset + 1}).overlaps(r.s, r.e) {
			items = append(items, s)
		}
	}
	return &shapeCollection{items: items}, nil
}

func (r *rangeObj) Paragraphs() (host.Paragraphs, error) {
	var items []*paragraph
	for _, p := range r.doc.paras {
		if p.overlaps(r.s, r.e) {
			items = append(items, p)
		}
	}
	return &paragraphCollection{doc: r.doc, items: items}, nil
}

func (r *rangeObj) Revisions() (host.Revisions, error) {
	var items []*revision
	for _, rev := range r.doc.revisions {
		if rev.overlaps(r.s, r.e) {
			items = append(items, rev)
		}
	}
	return &revisionCollection{items: items}, nil
}

func (r *rangeObj) ParagraphFormat() (host.ParagraphFormat, error) {
	p := r.doc.paragraphAt(r.s)
	if p == nil {
		return nil, host.ErrUnavailable
	}
	return &paragraphFormat{p: p}, nil
}

func (r *rangeObj) Font() (host.Font, error) {
	p := r.doc.paragraphAt(r.s)
	if p == nil {
		return nil, host.ErrUnavailable
	}
	run := p.runAt(r.s)
	if run == nil {
		return nil, host.ErrUnavailable
	}
	return &font{f: &run.font}, nil
}

func (r *rangeObj) Style() (host.Style, error) {
	p := r.doc.paragraphAt(r.s)
	if p == nil || p.style == "" {
		return nil, host.ErrUnavailable
	}
	return &style{doc: r.doc, name: p.style}, nil
}

func (r *rangeObj) ListFormat() (host.ListFormat, error) {
	p := r.doc.paragraphAt(r.s)
	if p == nil {
		return nil, host.ErrUnavailable
	}
	return &listFormat{p: p}, nil
}

func (r *rangeObj) Language() (language.Tag, error) {
	p := r.doc.paragraphAt(r.s)
	if p == nil {
		return language.Und, nil
	}
	run := p.runAt(r.s)
	if run == nil || run.noProof {
		return language.Und, nil
	}
	return run.lang, nil
}
