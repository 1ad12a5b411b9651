package walk

import (
	"testing"

	"docwalk/host"
	"docwalk/host/memdoc"
	"docwalk/markup"
)

func buildRange(t *testing.T, fx *memdoc.Fixture, start, end int) host.Range {
	t.Helper()
	doc, err := fx.Build()
	if err != nil {
		t.Fatalf("fixture build error: %v", err)
	}
	win := memdoc.NewWindow(doc)
	sel, err := win.Selection()
	if err != nil {
		t.Fatalf("selection error: %v", err)
	}
	rng, err := sel.Range()
	if err != nil {
		t.Fatalf("range error: %v", err)
	}
	if err := rng.SetRange(start, end); err != nil {
		t.Fatalf("set range error: %v", err)
	}
	return rng
}

func attrValue(attrs []markup.Attr, key string) (string, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func wantAttr(t *testing.T, attrs []markup.Attr, key, want string) {
	t.Helper()
	got, ok := attrValue(attrs, key)
	if !ok {
		t.Errorf("attribute %q missing in %v", key, attrs)
		return
	}
	if got != want {
		t.Errorf("attribute %s = %q, want %q", key, got, want)
	}
}

func wantNoAttr(t *testing.T, attrs []markup.Attr, key string) {
	t.Helper()
	if v, ok := attrValue(attrs, key); ok {
		t.Errorf("attribute %s = %q, want absent", key, v)
	}
}

func TestCollectFormatAttribsAlignment(t *testing.T) {
	cases := []struct {
		alignment string
		want      string
	}{
		{"left", "left"},
		{"center", "center"},
		{"right", "right"},
		{"justified", "justified"},
	}
	for _, c := range cases {
		rng := buildRange(t, &memdoc.Fixture{
			Paragraphs: []memdoc.ParagraphFixture{
				{Alignment: c.alignment, Runs: []memdoc.RunFixture{{Text: "text"}}},
			},
		}, 0, 4)
		attrs := collectFormatAttribs(rng, 0, ReportAlignment)
		wantAttr(t, attrs, "text-align", c.want)
	}
}

func TestCollectFormatAttribsHangingIndent(t *testing.T) {
	rng := buildRange(t, &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{
				LeftIndent:      54,
				RightIndent:     18,
				FirstLineIndent: -18,
				Runs:            []memdoc.RunFixture{{Text: "text"}},
			},
		},
	}, 0, 4)
	attrs := collectFormatAttribs(rng, 0, ReportParagraphIndentation)
	wantAttr(t, attrs, "right-indent", "18")
	wantAttr(t, attrs, "hanging-indent", "18")
	// effective text position: declared left indent minus the hang
	wantAttr(t, attrs, "left-indent", "36")
	wantNoAttr(t, attrs, "first-line-indent")
}

func TestCollectFormatAttribsFirstLineIndent(t *testing.T) {
	rng := buildRange(t, &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{LeftIndent: 12.5, FirstLineIndent: 24, Runs: []memdoc.RunFixture{{Text: "text"}}},
		},
	}, 0, 4)
	attrs := collectFormatAttribs(rng, 0, ReportParagraphIndentation)
	wantAttr(t, attrs, "first-line-indent", "24")
	wantAttr(t, attrs, "left-indent", "12.5")
	wantNoAttr(t, attrs, "hanging-indent")
}

func TestCollectFormatAttribsLineSpacing(t *testing.T) {
	rng := buildRange(t, &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{LineSpacingRule: 5, LineSpacing: 18, Runs: []memdoc.RunFixture{{Text: "text"}}},
		},
	}, 0, 4)
	attrs := collectFormatAttribs(rng, 0, ReportLineSpacing)
	wantAttr(t, attrs, "wdLineSpacingRule", "5")
	wantAttr(t, attrs, "wdLineSpacing", "18")
}

func TestCollectFormatAttribsFont(t *testing.T) {
	rng := buildRange(t, &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{Runs: []memdoc.RunFixture{{
				Text:        "text",
				FontName:    "Courier New",
				FontSize:    12.5,
				Color:       255,
				Bold:        true,
				Underline:   true,
				Superscript: true,
			}}},
		},
	}, 0, 4)
	attrs := collectFormatAttribs(rng, 0, FontFacets)
	wantAttr(t, attrs, "font-name", "Courier New")
	wantAttr(t, attrs, "font-size", "12.5pt")
	wantAttr(t, attrs, "color", "255")
	wantAttr(t, attrs, "bold", "1")
	wantAttr(t, attrs, "underline", "1")
	wantAttr(t, attrs, "text-position", "super")
	wantNoAttr(t, attrs, "italic")
	wantNoAttr(t, attrs, "strikethrough")
}

func TestCollectFormatAttribsStrikethroughForms(t *testing.T) {
	rng := buildRange(t, &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{Runs: []memdoc.RunFixture{{Text: "text", Strikethrough: true}}},
		},
	}, 0, 4)
	attrs := collectFormatAttribs(rng, 0, ReportFontAttributes)
	wantAttr(t, attrs, "strikethrough", "1")

	rng = buildRange(t, &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{Runs: []memdoc.RunFixture{{Text: "text", DoubleStrikethrough: true}}},
		},
	}, 0, 4)
	attrs = collectFormatAttribs(rng, 0, ReportFontAttributes)
	wantAttr(t, attrs, "strikethrough", "double")
}

func TestCollectFormatAttribsStyleAndLanguage(t *testing.T) {
	rng := buildRange(t, &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{Style: "Quote", Runs: []memdoc.RunFixture{{Text: "text", Language: "ru"}}},
		},
	}, 0, 4)
	attrs := collectFormatAttribs(rng, 0, ReportStyle|ReportLanguage)
	wantAttr(t, attrs, "style", "Quote")
	wantAttr(t, attrs, "language", "ru")
}

func TestCollectFormatAttribsNoProofingSuppressesLanguage(t *testing.T) {
	rng := buildRange(t, &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{Runs: []memdoc.RunFixture{{Text: "text", Language: "ru", NoProofing: true}}},
		},
	}, 0, 4)
	attrs := collectFormatAttribs(rng, 0, ReportLanguage)
	wantNoAttr(t, attrs, "language")
}

func TestCollectFormatAttribsRevisions(t *testing.T) {
	rng := buildRange(t, &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{Runs: []memdoc.RunFixture{{Text: "changed text"}}},
		},
		Revisions: []memdoc.RevisionFixture{{Start: 0, End: 7, Type: 2}},
	}, 0, 7)
	attrs := collectFormatAttribs(rng, 0, ReportRevisions)
	wantAttr(t, attrs, "wdRevisionType", "2")

	// no revision here still reports the facet, as zero
	rng = buildRange(t, &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{Runs: []memdoc.RunFixture{{Text: "plain"}}},
		},
	}, 0, 5)
	attrs = collectFormatAttribs(rng, 0, ReportRevisions)
	wantAttr(t, attrs, "wdRevisionType", "0")
}

func TestListPrefixOnlyAtParagraphStart(t *testing.T) {
	fx := &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{ListPrefix: "1.", Runs: []memdoc.RunFixture{{Text: "first item"}}},
		},
	}
	rng := buildRange(t, fx, 0, 5)
	attrs := collectFormatAttribs(rng, 0, ReportLists)
	wantAttr(t, attrs, "line-prefix", "1.")

	rng = buildRange(t, fx, 6, 10)
	attrs = collectFormatAttribs(rng, 6, ReportLists)
	wantNoAttr(t, attrs, "line-prefix")
}

func TestCollectFormatAttribsPageAndLine(t *testing.T) {
	rng := buildRange(t, &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{Runs: []memdoc.RunFixture{{Text: "aaaa bbbb"}}, Lines: []int{5}},
		},
		PageBreaks: []int{5},
	}, 6, 6)
	attrs := collectFormatAttribs(rng, 6, ReportPage|ReportLineNumber)
	wantAttr(t, attrs, "page-number", "2")
	wantAttr(t, attrs, "line-number", "2")
}
