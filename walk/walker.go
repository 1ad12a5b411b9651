package walk

import (
	"fmt"

	"go.uber.org/zap"

	"docwalk/host"
	"docwalk/markup"
)

// Extractor walks document ranges of a single window and renders them as
// markup. The heading cache is shared across requests; everything else is
// request scoped.
type Extractor struct {
	win      host.Window
	headings *HeadingCache
	log      *zap.Logger
}

func NewExtractor(win host.Window, headings *HeadingCache, log *zap.Logger) *Extractor {
	if headings == nil {
		headings = &HeadingCache{}
	}
	return &Extractor{win: win, headings: headings, log: log}
}

// TextInRange extracts [startOffset, endOffset) as a markup tree under the
// given facet configuration. Only the foundational acquisition chain can
// fail the request; every narrower feature failure degrades to omitted
// output and the walk continues.
func (e *Extractor) TextInRange(startOffset, endOffset int, cfg FormatConfig) (string, error) {
	sel, err := e.win.Selection()
	if err != nil {
		return "", fmt.Errorf("unable to acquire selection: %w", err)
	}
	rng, err := sel.Range()
	if err != nil {
		return "", fmt.Errorf("unable to acquire selection range: %w", err)
	}
	if err := rng.SetRange(startOffset, endOffset); err != nil {
		return "", fmt.Errorf("unable to position range: %w", err)
	}

	b := markup.NewBuilder()

	var storyType host.StoryType
	if v, err := rng.StoryType(); err == nil {
		storyType = v
	}
	b.OpenControl(markup.Int("wdStoryType", int(storyType)))

	initialCfg := cfg & InitialFacets
	chunkCfg := cfg &^ InitialFacets

	paraRange := expandedDuplicate(rng, host.UnitParagraph, e.log)
	fields := newFieldScanner(paraRange)

	// If the paragraph holds no hyperlink fields at all, per-chunk link
	// probing is pointless for the whole request.
	if chunkCfg.Has(ReportLinks) && !fields.hasLinks() {
		chunkCfg &^= ReportLinks
	}
	// Comments anchored inside the comments story itself are not reported.
	if chunkCfg.Has(ReportComments) && storyType == host.StoryComments {
		chunkCfg &^= ReportComments
	}

	// One whole-range probe decides whether per-word object checks are
	// worth doing at all.
	hasShapes := inlineShapeCount(rng) > 0

	var spelling []span
	if chunkCfg.Has(ReportSpellingErrors) {
		spelling = collectSpellingErrors(rng)
	}

	if err := rng.Collapse(false); err != nil {
		return "", fmt.Errorf("unable to collapse range: %w", err)
	}

	if initialCfg.Has(ReportTables) {
		openTableTags(rng, initialCfg.Has(IncludeLayoutTables), startOffset, endOffset, b)
	}

	var (
		para          host.Paragraph
		paraTextRange host.Range
	)
	if chunkCfg.Has(ReportComments) || initialCfg.Has(ReportHeadings) {
		if paras, err := rng.Paragraphs(); err == nil && paras != nil {
			if p, err := paras.Item(1); err == nil && p != nil {
				para = p
				if r, err := p.Range(); err == nil {
					paraTextRange = r
				}
			}
		}
	}
	var comments []span
	if chunkCfg.Has(ReportComments) {
		comments = collectCommentSpans(paraTextRange)
	}
	if initialCfg.Has(ReportHeadings) {
		openHeadingTag(e.headings, para, paraTextRange, startOffset, endOffset, b)
	}

	initialAttrs := collectFormatAttribs(rng, startOffset, initialCfg)
	if initialCfg.Has(ReportLinks) && fields.hasLinksIn(startOffset, startOffset) {
		initialAttrs = append(initialAttrs, markup.Flag("link"))
	}
	if initialCfg.Has(ReportPage) {
		if v, err := rng.Information(host.InfoSectionNumber); err == nil && v >= 0 {
			initialAttrs = append(initialAttrs, markup.Int("section-number", v))
		} else if err != nil {
			e.log.Debug("Unable to resolve section number", zap.Error(err))
		}
	}

	chunkStart := startOffset
	chunkEnd := chunkStart
	firstLoop := true

	for {
		disabled := FormatConfig(0)
		wrappers := 0

		ff := scanFieldWrapper(rng, paraRange, b)
		if ff.found {
			wrappers++
			chunkEnd = ff.end
		} else {
			moved, err := rng.MoveEnd(host.UnitWord, 1)
			if err != nil || moved <= 0 {
				break
			}
			if v, err := rng.End(); err == nil {
				chunkEnd = v
			}
		}
		// Never split the rendered number of a page number field.
		if fieldEnd, ok := fields.pageNumberFieldEnd(chunkEnd); ok {
			chunkEnd = fieldEnd
			_ = rng.SetEnd(fieldEnd)
		}
		if chunkEnd > endOffset {
			_ = rng.SetEnd(endOffset)
			chunkEnd = endOffset
		}
		// Known IME failure mode: the move reports success but the offset
		// never changed. Treat as normal end of range, never retry.
		if chunkEnd <= chunkStart {
			e.log.Debug("Range end did not advance, stopping walk",
				zap.Int("chunkStart", chunkStart), zap.Int("chunkEnd", chunkEnd))
			break
		}

		text := ""
		if v, err := rng.Text(); err == nil {
			text = v
		}
		runes := []rune(text)
		noteOffset := -1
		isNote := false
		pageBreakIdx := -1
		colBreakIdx := -1
		if !ff.found {
			for i := 0; i < len(runes); i++ {
				switch c := runes[i]; {
				case c == host.NoteMarker:
					// A note reference marker always gets an isolated one
					// character chunk; the marker itself renders as space.
					noteOffset = i
					if i == 0 {
						runes[i] = ' '
					}
				case c == host.CellDelimiter && chunkEnd-chunkStart == 1:
					// Revision lookup on a lone cell delimiter crashes the
					// host; drop the facet for this chunk only.
					runes = runes[:i]
					disabled |= ReportRevisions
				case c == host.PageBreak:
					pageBreakIdx = i
				case c == host.ColumnBreak:
					colBreakIdx = i
				}
				if noteOffset >= 0 || len(runes) <= i {
					break
				}
			}
			isNote = noteOffset == 0
			if noteOffset == 0 {
				noteOffset = 1
			}
			if noteOffset > 0 {
				runes = runes[:noteOffset]
				if err := rng.Collapse(false); err != nil {
					break
				}
				moved, err := rng.MoveEnd(host.UnitCharacter, noteOffset)
				if err != nil || moved <= 0 {
					break
				}
				if v, err := rng.End(); err == nil {
					chunkEnd = v
				}
			}
		}

		if isNote {
			opened := openNoteTag(rng, true, b)
			if !opened {
				opened = openNoteTag(rng, false, b)
			}
			if opened {
				wrappers++
			}
		}

		shapeCount := 0
		if hasShapes {
			shapeCount = openShapeTag(rng, chunkStart, b)
			if shapeCount > 0 {
				wrappers++
			}
		}
		if shapeCount > 1 {
			// More objects share this word; clamp to one character so each
			// gets its own chunk on subsequent iterations.
			if err := rng.Collapse(false); err != nil {
				break
			}
			moved, err := rng.MoveEnd(host.UnitCharacter, 1)
			if err != nil || moved <= 0 {
				break
			}
			if v, err := rng.End(); err == nil {
				chunkEnd = v
			}
		}

		attrs := make([]markup.Attr, 0, 8+len(initialAttrs))
		attrs = append(attrs, markup.Int("_startOffset", chunkStart), markup.Int("_endOffset", chunkEnd))
		attrs = append(attrs, initialAttrs...)

		activeCfg := chunkCfg &^ disabled

		if pageBreakIdx >= 0 {
			if t, ok := sectionBreakType(rng); ok {
				attrs = append(attrs, markup.Int("section-break", int(t)))
			}
			if pageBreakIdx < len(runes) {
				runes = runes[:pageBreakIdx]
			}
		}
		if colBreakIdx >= 0 {
			if colBreakIdx < len(runes) {
				runes = runes[:colBreakIdx]
			}
			attrs = append(attrs, markup.Flag("column-break"))
		}

		attrs = append(attrs, collectFormatAttribs(rng, chunkStart, activeCfg)...)
		if activeCfg.Has(ReportLinks) && fields.hasLinksIn(chunkStart, chunkEnd) {
			attrs = append(attrs, markup.Flag("link"))
		}
		if spellingSpanAt(spelling, chunkStart) {
			attrs = append(attrs, markup.Flag("invalid-spelling"))
		}
		if s, ok := commentSpanOver(comments, chunkStart, chunkEnd); ok {
			attrs = append(attrs, markup.Int("comment", s.end))
		}

		literal := string(runes)
		if shapeCount > 0 {
			literal = " "
		}
		b.AppendText(attrs, literal)
		for ; wrappers > 0; wrappers-- {
			b.CloseControl()
		}

		if firstLoop {
			// The list item prefix belongs to the first chunk only.
			chunkCfg &^= ReportLists
			firstLoop = false
		}

		if err := rng.Collapse(true); err != nil {
			break
		}
		chunkStart = chunkEnd
		if chunkEnd >= endOffset {
			break
		}
	}

	out, err := b.String()
	if err != nil {
		return "", fmt.Errorf("unable to serialize markup: %w", err)
	}
	return out, nil
}

// expandedDuplicate copies the range and grows the copy to the enclosing
// unit. The copy is returned even when expansion fails, matching host
// behavior of leaving the duplicate usable.
func expandedDuplicate(rng host.Range, unit host.Unit, log *zap.Logger) host.Range {
	dup, err := rng.Duplicate()
	if err != nil || dup == nil {
		log.Debug("Unable to duplicate range", zap.Error(err))
		return nil
	}
	if err := dup.Expand(unit); err != nil {
		log.Debug("Unable to expand duplicated range", zap.Error(err))
	}
	return dup
}
