// Package nav implements the two selection relocation operations: line
// boundary measurement and movement by one line. Both share the same
// scoped pattern: capture the current selection and its directionality,
// suspend screen updates, relocate, measure or move, then restore
// everything - on every exit path.
package nav

import (
	"fmt"

	"go.uber.org/zap"

	"docwalk/host"
)

// Navigator performs line oriented selection operations on one window.
type Navigator struct {
	win host.Window
	log *zap.Logger
}

func NewNavigator(win host.Window, log *zap.Logger) *Navigator {
	return &Navigator{win: win, log: log}
}

// scoped acquires the foundational objects, saves selection state and
// suspends screen updates; the returned restore func undoes all of it.
func (n *Navigator) scoped() (host.Selection, func(), error) {
	app, err := n.win.Application()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to acquire application: %w", err)
	}
	sel, err := n.win.Selection()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to acquire selection: %w", err)
	}
	startWasActive, activeErr := sel.StartIsActive()
	if activeErr != nil {
		n.log.Debug("Unable to read selection directionality", zap.Error(activeErr))
	}
	oldRange, err := sel.Range()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to capture selection range: %w", err)
	}
	if err := app.SetScreenUpdating(false); err != nil {
		n.log.Debug("Unable to suspend screen updating", zap.Error(err))
	}
	restore := func() {
		if err := oldRange.Select(); err != nil {
			n.log.Debug("Unable to restore selection", zap.Error(err))
		}
		if activeErr == nil {
			if err := sel.SetStartIsActive(startWasActive); err != nil {
				n.log.Debug("Unable to restore selection directionality", zap.Error(err))
			}
		}
		if err := app.SetScreenUpdating(true); err != nil {
			n.log.Debug("Unable to resume screen updating", zap.Error(err))
		}
	}
	return sel, restore, nil
}

// ExpandToLine measures the start and end of the line holding offset.
// Start and end are measured as two separate unit expansions: a combined
// expansion misbehaves on the last line of a table cell and on the first
// and last line of a table of contents. When measurement fails the legacy
// single expansion is used, and a degenerate result collapses to a one
// character span anchored at offset.
func (n *Navigator) ExpandToLine(offset int) (lineStart, lineEnd int, err error) {
	sel, restore, err := n.scoped()
	if err != nil {
		return 0, 0, err
	}
	defer restore()

	if err := sel.SetRange(offset, offset); err != nil {
		return 0, 0, fmt.Errorf("unable to position selection: %w", err)
	}

	lineStart, lineEnd = -1, -1
	lineError := false
	if err := sel.StartOf(host.UnitLine); err != nil {
		lineError = true
	} else {
		if v, err := sel.Start(); err == nil {
			lineStart = v
		}
		if err := sel.EndOf(host.UnitLine); err != nil {
			lineError = true
		} else if v, err := sel.End(); err == nil {
			lineEnd = v
		}
		// The end-of measurement leaves an "at end of line" flag stuck on
		// wrapped lines; resetting the selection to the document start
		// forces it back off.
		_ = sel.SetRange(0, 0)
	}
	if lineError {
		n.log.Debug("Line bounds measurement failed, falling back to single expansion", zap.Int("offset", offset))
		_ = sel.SetRange(offset, offset)
		_ = sel.Expand(host.UnitLine)
		if v, err := sel.Start(); err == nil {
			lineStart = v
		}
		if v, err := sel.End(); err == nil {
			lineEnd = v
		}
	}
	if lineStart >= lineEnd {
		lineStart = offset
		lineEnd = offset + 1
	}
	return lineStart, lineEnd, nil
}

// MoveByLine moves the selection exactly one line from offset in the
// requested direction and reports the resulting start offset.
func (n *Navigator) MoveByLine(offset int, backward bool) (int, error) {
	sel, restore, err := n.scoped()
	if err != nil {
		return 0, err
	}
	defer restore()

	if err := sel.SetRange(offset, offset); err != nil {
		return 0, fmt.Errorf("unable to position selection: %w", err)
	}
	count := 1
	if backward {
		count = -1
	}
	if _, err := sel.Move(host.UnitLine, count); err != nil {
		n.log.Debug("Line move failed", zap.Int("offset", offset), zap.Bool("backward", backward), zap.Error(err))
	}
	newOffset, err := sel.Start()
	if err != nil {
		return 0, fmt.Errorf("unable to read moved selection: %w", err)
	}
	return newOffset, nil
}
