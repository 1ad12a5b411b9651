package memdoc

import (
	"fmt"

	"docwalk/host"
)

// Window adapts a Document to the host window surface. Multiple windows
// over one document share its selection state, like views of one buffer.
type Window struct {
	doc *Document
}

func NewWindow(doc *Document) *Window {
	return &Window{doc: doc}
}

func (w *Window) Application() (host.Application, error) {
	return &application{doc: w.doc}, nil
}

func (w *Window) Selection() (host.Selection, error) {
	return &selection{doc: w.doc}, nil
}

type application struct {
	doc *Document
}

func (a *application) SetScreenUpdating(enabled bool) error {
	if !enabled && a.doc.screenUpdating {
		a.doc.suspendCycles++
	}
	a.doc.screenUpdating = enabled
	return nil
}

func (a *application) IsSandboxed() (bool, error) {
	return a.doc.sandboxed, nil
}

type selection struct {
	doc *Document
}

func (s *selection) Range() (host.Range, error) {
	return s.doc.newRange(s.doc.sel.start, s.doc.sel.end), nil
}

func (s *selection) SetRange(start, end int) error {
	s.doc.sel.start = s.doc.clamp(start)
	s.doc.sel.end = s.doc.clamp(end)
	if s.doc.sel.start > s.doc.sel.end {
		s.doc.sel.end = s.doc.sel.start
	}
	return nil
}

func (s *selection) Start() (int, error) { return s.doc.sel.start, nil }
func (s *selection) End() (int, error)   { return s.doc.sel.end, nil }

func (s *selection) StartIsActive() (bool, error) {
	return s.doc.sel.startIsActive, nil
}

func (s *selection) SetStartIsActive(active bool) error {
	s.doc.sel.startIsActive = active
	return nil
}

func (s *selection) StartOf(unit host.Unit) error {
	if unit != host.UnitLine {
		return fmt.Errorf("start of unit %d: %w", unit, host.ErrUnavailable)
	}
	if s.doc.failLineOps {
		return fmt.Errorf("line motion: %w", host.ErrUnavailable)
	}
	lines := s.doc.lineSpans()
	idx := s.doc.lineIndexAt(s.doc.sel.start)
	if idx < 0 || idx >= len(lines) {
		return host.ErrUnavailable
	}
	s.doc.sel.start = lines[idx].start
	s.doc.sel.end = s.doc.sel.start
	return nil
}

func (s *selection) EndOf(unit host.Unit) error {
	if unit != host.UnitLine {
		return fmt.Errorf("end of unit %d: %w", unit, host.ErrUnavailable)
	}
	if s.doc.failLineOps {
		return fmt.Errorf("line motion: %w", host.ErrUnavailable)
	}
	lines := s.doc.lineSpans()
	idx := s.doc.lineIndexAt(s.doc.sel.end)
	if idx < 0 || idx >= len(lines) {
		return host.ErrUnavailable
	}
	s.doc.sel.end = lines[idx].end
	s.doc.sel.start = s.doc.sel.end
	return nil
}

func (s *selection) Expand(unit host.Unit) error {
	r := s.doc.newRange(s.doc.sel.start, s.doc.sel.end)
	if err := r.Expand(unit); err != nil {
		return err
	}
	s.doc.sel.start, s.doc.sel.end = r.s, r.e
	return nil
}

func (s *selection) Move(unit host.Unit, count int) (int, error) {
	if unit != host.UnitLine {
		return 0, fmt.Errorf("move by unit %d: %w", unit, host.ErrUnavailable)
	}
	lines := s.doc.lineSpans()
	if len(lines) == 0 {
		return 0, host.ErrUnavailable
	}
	idx := s.doc.lineIndexAt(s.doc.sel.start)
	target := idx + count
	if target < 0 {
		target = 0
	}
	if target >= len(lines) {
		target = len(lines) - 1
	}
	moved := target - idx
	if moved < 0 {
		moved = -moved
	}
	s.doc.sel.start = lines[target].start
	s.doc.sel.end = s.doc.sel.start
	return moved, nil
}
