package walk

import (
	"golang.org/x/text/language"

	"docwalk/host"
	"docwalk/markup"
)

// collectFormatAttribs resolves the formatting attributes for a range under
// the active facet subset. Facets are independent and additive; any host
// failure along the way silently drops just that attribute.
func collectFormatAttribs(rng host.Range, startOffset int, cfg FormatConfig) []markup.Attr {
	var attrs []markup.Attr

	if cfg.Has(ReportPage) {
		if v, err := rng.Information(host.InfoAdjustedPageNumber); err == nil && v > 0 {
			attrs = append(attrs, markup.Int("page-number", v))
		}
	}
	if cfg.Has(ReportLineNumber) {
		if v, err := rng.Information(host.InfoFirstCharacterLine); err == nil {
			attrs = append(attrs, markup.Int("line-number", v))
		}
	}
	if cfg.Any(ReportAlignment | ReportParagraphIndentation | ReportLineSpacing) {
		if pf, err := rng.ParagraphFormat(); err == nil && pf != nil {
			attrs = append(attrs, paragraphFormatAttribs(pf, cfg)...)
		}
	}
	if cfg.Has(ReportLists) {
		attrs = append(attrs, listPrefixAttribs(rng, startOffset)...)
	}
	if cfg.Has(ReportRevisions) {
		attrs = append(attrs, markup.Int("wdRevisionType", revisionType(rng)))
	}
	if cfg.Has(ReportStyle) {
		if style, err := rng.Style(); err == nil && style != nil {
			if name, err := style.NameLocal(); err == nil && name != "" {
				attrs = append(attrs, markup.Attr{Key: "style", Value: name})
			}
		}
	}
	if cfg.Any(FontFacets) {
		if font, err := rng.Font(); err == nil && font != nil {
			attrs = append(attrs, fontAttribs(font, cfg)...)
		}
	}
	if cfg.Has(ReportLanguage) {
		if tag, err := rng.Language(); err == nil && tag != language.Und {
			attrs = append(attrs, markup.Attr{Key: "language", Value: tag.String()})
		}
	}
	return attrs
}

func paragraphFormatAttribs(pf host.ParagraphFormat, cfg FormatConfig) []markup.Attr {
	var attrs []markup.Attr
	if cfg.Has(ReportAlignment) {
		if a, err := pf.Alignment(); err == nil {
			switch a {
			case host.AlignLeft:
				attrs = append(attrs, markup.Attr{Key: "text-align", Value: "left"})
			case host.AlignCenter:
				attrs = append(attrs, markup.Attr{Key: "text-align", Value: "center"})
			case host.AlignRight:
				attrs = append(attrs, markup.Attr{Key: "text-align", Value: "right"})
			case host.AlignJustified:
				attrs = append(attrs, markup.Attr{Key: "text-align", Value: "justified"})
			}
		}
	}
	if cfg.Has(ReportParagraphIndentation) {
		if v, err := pf.RightIndent(); err == nil {
			attrs = append(attrs, markup.Float("right-indent", v))
		}
		// A negative first line indent is a hanging indent; it is reported
		// as a positive value and folded back into the left indent so the
		// reported left indent reflects the effective text position.
		var firstLine float64
		if v, err := pf.FirstLineIndent(); err == nil {
			firstLine = v
			if v < 0 {
				attrs = append(attrs, markup.Float("hanging-indent", -v))
			} else {
				attrs = append(attrs, markup.Float("first-line-indent", v))
			}
		}
		if v, err := pf.LeftIndent(); err == nil {
			if firstLine < 0 {
				v += firstLine
			}
			attrs = append(attrs, markup.Float("left-indent", v))
		}
	}
	if cfg.Has(ReportLineSpacing) {
		if v, err := pf.LineSpacingRule(); err == nil {
			attrs = append(attrs, markup.Int("wdLineSpacingRule", v))
		}
		if v, err := pf.LineSpacing(); err == nil {
			attrs = append(attrs, markup.Float("wdLineSpacing", v))
		}
	}
	return attrs
}

// listPrefixAttribs reports the rendered list item prefix, but only when
// the range starts exactly at its paragraph's start - the prefix belongs
// to the paragraph, not to every chunk inside it.
func listPrefixAttribs(rng host.Range, startOffset int) []markup.Attr {
	lf, err := rng.ListFormat()
	if err != nil || lf == nil {
		return nil
	}
	prefix, err := lf.ListString()
	if err != nil || prefix == "" {
		return nil
	}
	paras, err := rng.Paragraphs()
	if err != nil || paras == nil {
		return nil
	}
	para, err := paras.Item(1)
	if err != nil || para == nil {
		return nil
	}
	paraRange, err := para.Range()
	if err != nil || paraRange == nil {
		return nil
	}
	if start, err := paraRange.Start(); err != nil || start != startOffset {
		return nil
	}
	return []markup.Attr{{Key: "line-prefix", Value: prefix}}
}

// revisionType resolves the tracked change type at the start of the range.
// The range must be duplicated first: the host's revisions collection is
// otherwise frozen at the state the range had when created.
func revisionType(rng host.Range) int {
	dup, err := rng.Duplicate()
	if err != nil || dup == nil {
		return 0
	}
	revs, err := dup.Revisions()
	if err != nil || revs == nil {
		return 0
	}
	rev, err := revs.Item(1)
	if err != nil || rev == nil {
		return 0
	}
	t, err := rev.Type()
	if err != nil {
		return 0
	}
	return t
}

func fontAttribs(font host.Font, cfg FormatConfig) []markup.Attr {
	var attrs []markup.Attr
	if cfg.Has(ReportFontName) {
		if name, err := font.Name(); err == nil && name != "" {
			attrs = append(attrs, markup.Attr{Key: "font-name", Value: name})
		}
	}
	if cfg.Has(ReportFontSize) {
		if size, err := font.Size(); err == nil {
			a := markup.Float("font-size", size)
			a.Value += "pt"
			attrs = append(attrs, a)
		}
	}
	if cfg.Has(ReportColor) {
		if color, err := font.Color(); err == nil {
			attrs = append(attrs, markup.Int("color", color))
		}
	}
	if cfg.Has(ReportFontAttributes) {
		if v, err := font.Bold(); err == nil && v {
			attrs = append(attrs, markup.Flag("bold"))
		}
		if v, err := font.Italic(); err == nil && v {
			attrs = append(attrs, markup.Flag("italic"))
		}
		if v, err := font.Underline(); err == nil && v {
			attrs = append(attrs, markup.Flag("underline"))
		}
		if v, err := font.Superscript(); err == nil && v {
			attrs = append(attrs, markup.Attr{Key: "text-position", Value: "super"})
		} else if v, err := font.Subscript(); err == nil && v {
			attrs = append(attrs, markup.Attr{Key: "text-position", Value: "sub"})
		}
		if v, err := font.Strikethrough(); err == nil && v {
			attrs = append(attrs, markup.Flag("strikethrough"))
		} else if v, err := font.DoubleStrikethrough(); err == nil && v {
			attrs = append(attrs, markup.Attr{Key: "strikethrough", Value: "double"})
		}
	}
	return attrs
}
