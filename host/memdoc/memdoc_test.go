package memdoc

import (
	"errors"
	"reflect"
	"testing"

	"docwalk/host"
)

func simpleDoc(t *testing.T) *Document {
	t.Helper()
	fx := &Fixture{
		Paragraphs: []ParagraphFixture{
			{Runs: []RunFixture{{Text: "Hello world."}}},
		},
	}
	doc, err := fx.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return doc
}

func TestBuildAssemblesText(t *testing.T) {
	doc := simpleDoc(t)
	if got, want := doc.Text(), "Hello world.\r"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
	if doc.Length() != 13 {
		t.Fatalf("Length() = %d, want 13", doc.Length())
	}
}

func TestComputeWordBounds(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"", []int{0}},
		{"Hello world.", []int{0, 5, 6, 11, 12}},
		{"a\rb", []int{0, 1, 2, 3}},
		{"See\x02 on", []int{0, 3, 4, 5, 7}},
		{"x\x0cy", []int{0, 1, 2, 3}},
	}
	for _, c := range cases {
		if got := computeWordBounds(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("computeWordBounds(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNextWordEndAbsorbsSpaces(t *testing.T) {
	doc := simpleDoc(t) // "Hello world.\r"
	cases := []struct {
		from, want int
	}{
		{0, 6},   // "Hello " - trailing space belongs to the word
		{6, 11},  // "world"
		{11, 12}, // "."
		{12, 13}, // paragraph mark
		{13, 13}, // no motion past the end
	}
	for _, c := range cases {
		if got := doc.nextWordEnd(c.from); got != c.want {
			t.Errorf("nextWordEnd(%d) = %d, want %d", c.from, got, c.want)
		}
	}
}

func TestRangeMoveEnd(t *testing.T) {
	doc := simpleDoc(t)
	r := doc.newRange(0, 0)

	moved, err := r.MoveEnd(host.UnitWord, 1)
	if err != nil || moved != 1 {
		t.Fatalf("MoveEnd(word, 1) = %d, %v", moved, err)
	}
	if end, _ := r.End(); end != 6 {
		t.Fatalf("End() = %d, want 6", end)
	}

	moved, err = r.MoveEnd(host.UnitCharacter, 3)
	if err != nil || moved != 3 {
		t.Fatalf("MoveEnd(char, 3) = %d, %v", moved, err)
	}
	if end, _ := r.End(); end != 9 {
		t.Fatalf("End() = %d, want 9", end)
	}

	// clamped at document end
	r2 := doc.newRange(0, 12)
	if moved, _ := r2.MoveEnd(host.UnitCharacter, 5); moved != 1 {
		t.Fatalf("MoveEnd past end moved %d, want 1", moved)
	}
}

func TestRangeExpandParagraph(t *testing.T) {
	fx := &Fixture{
		Paragraphs: []ParagraphFixture{
			{Runs: []RunFixture{{Text: "one"}}},
			{Runs: []RunFixture{{Text: "two"}}},
		},
	}
	doc := fx.MustBuild() // "one\rtwo\r"
	r := doc.newRange(5, 5)
	if err := r.Expand(host.UnitParagraph); err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	if r.s != 4 || r.e != 8 {
		t.Fatalf("Expand() = [%d, %d), want [4, 8)", r.s, r.e)
	}
}

func TestRangeTextAndInRange(t *testing.T) {
	doc := simpleDoc(t)
	r := doc.newRange(6, 11)
	if text, _ := r.Text(); text != "world" {
		t.Fatalf("Text() = %q", text)
	}
	outer := doc.newRange(0, 13)
	if ok, err := r.InRange(outer); err != nil || !ok {
		t.Fatalf("InRange(outer) = %v, %v", ok, err)
	}
	if ok, _ := outer.InRange(r); ok {
		t.Fatal("outer.InRange(inner) = true")
	}
}

func TestInRangeCollapsedAtBounds(t *testing.T) {
	doc := simpleDoc(t)
	outer := doc.newRange(0, 6)

	cases := []struct {
		name string
		at   int
		want bool
	}{
		{"at start", 0, true},
		{"inside", 3, true},
		// half-open interval, a cursor collapsed at the end is past it
		{"at end", 6, false},
		{"past end", 7, false},
	}
	for _, c := range cases {
		r := doc.newRange(c.at, c.at)
		if ok, err := r.InRange(outer); err != nil || ok != c.want {
			t.Errorf("%s: InRange([%d,%d), [0,6)) = %v, %v, want %v", c.name, c.at, c.at, ok, err, c.want)
		}
	}

	// a collapsed outer range still contains a matching collapsed cursor
	point := doc.newRange(4, 4)
	if ok, err := doc.newRange(4, 4).InRange(point); err != nil || !ok {
		t.Errorf("InRange([4,4), [4,4)) = %v, %v, want true", ok, err)
	}
}

func TestInformation(t *testing.T) {
	fx := &Fixture{
		Paragraphs: []ParagraphFixture{
			{Runs: []RunFixture{{Text: "aaaa bbbb"}}, Lines: []int{5}},
			{Runs: []RunFixture{{Text: "cccc"}}},
		},
		PageBreaks: []int{7},
		Sections:   []SectionFixture{{End: 7, StartType: 2}, {StartType: 2}},
	}
	doc := fx.MustBuild() // "aaaa bbbb\rcccc\r"

	r := doc.newRange(0, 0)
	if v, _ := r.Information(host.InfoAdjustedPageNumber); v != 1 {
		t.Errorf("page at 0 = %d, want 1", v)
	}
	r = doc.newRange(8, 8)
	if v, _ := r.Information(host.InfoAdjustedPageNumber); v != 2 {
		t.Errorf("page at 8 = %d, want 2", v)
	}
	if v, _ := r.Information(host.InfoSectionNumber); v != 2 {
		t.Errorf("section at 8 = %d, want 2", v)
	}
	if v, _ := r.Information(host.InfoFirstCharacterLine); v != 2 {
		t.Errorf("line at 8 = %d, want 2", v)
	}
	if _, err := r.Information(host.InfoStartOfRangeRowNumber); !errors.Is(err, host.ErrUnavailable) {
		t.Errorf("row outside table: err = %v, want ErrUnavailable", err)
	}
}

func TestTableCollections(t *testing.T) {
	fx := &Fixture{
		Paragraphs: []ParagraphFixture{
			{Runs: []RunFixture{{Text: "A"}}, CellEnd: true},
			{Runs: []RunFixture{{Text: "after"}}},
		},
		Tables: []TableFixture{
			{Start: 0, End: 3, Rows: 1, Columns: 1, Title: "t",
				Cells: []CellFixture{{Start: 0, End: 3, Row: 1, Column: 1}}},
		},
	}
	doc := fx.MustBuild() // "A\r\x07after\r"

	r := doc.newRange(0, 0)
	tables, err := r.Tables()
	if err != nil {
		t.Fatalf("Tables() error: %v", err)
	}
	if n, _ := tables.Count(); n != 1 {
		t.Fatalf("Tables().Count() = %d, want 1", n)
	}
	tbl, err := tables.Item(1)
	if err != nil {
		t.Fatalf("Tables().Item(1) error: %v", err)
	}
	if rows, _ := tbl.RowCount(); rows != 1 {
		t.Errorf("RowCount() = %d", rows)
	}
	if lvl, _ := tbl.NestingLevel(); lvl != 1 {
		t.Errorf("NestingLevel() = %d, want default 1", lvl)
	}
	if _, err := tables.Item(2); !errors.Is(err, host.ErrUnavailable) {
		t.Errorf("Item(2) err = %v, want ErrUnavailable", err)
	}
	if v, _ := r.Information(host.InfoStartOfRangeRowNumber); v != 1 {
		t.Errorf("row at 0 = %d, want 1", v)
	}

	// outside the table no collections match
	r = doc.newRange(4, 4)
	tables, _ = r.Tables()
	if n, _ := tables.Count(); n != 0 {
		t.Errorf("Tables().Count() outside = %d, want 0", n)
	}
}

func TestSpellingErrorsSandboxed(t *testing.T) {
	fx := &Fixture{
		Sandboxed: true,
		Paragraphs: []ParagraphFixture{
			{Runs: []RunFixture{{Text: "speling"}}},
		},
		SpellingErrors: []SpanFixture{{Start: 0, End: 7}},
	}
	doc := fx.MustBuild()
	r := doc.newRange(0, 8)
	if _, err := r.SpellingErrors(); !errors.Is(err, host.ErrUnavailable) {
		t.Fatalf("SpellingErrors() sandboxed err = %v, want ErrUnavailable", err)
	}
	if app, _ := r.Application(); app != nil {
		if sandboxed, _ := app.IsSandboxed(); !sandboxed {
			t.Fatal("IsSandboxed() = false")
		}
	}
}

func TestStylesBuiltinHeadings(t *testing.T) {
	fx := &Fixture{
		Paragraphs: []ParagraphFixture{
			{Style: "Heading 2", Runs: []RunFixture{{Text: "title"}}},
		},
	}
	doc := fx.MustBuild()
	r := doc.newRange(0, 0)
	st, err := r.Style()
	if err != nil {
		t.Fatalf("Style() error: %v", err)
	}
	hostDoc, err := st.Document()
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	styles, err := hostDoc.Styles()
	if err != nil {
		t.Fatalf("Styles() error: %v", err)
	}
	h2, err := styles.Item(host.StyleHeading1 - 1)
	if err != nil {
		t.Fatalf("Item(heading 2) error: %v", err)
	}
	if name, _ := h2.NameLocal(); name != "Heading 2" {
		t.Errorf("NameLocal() = %q", name)
	}
	if _, err := styles.Item(-1); err == nil {
		t.Error("Item(-1) succeeded, want error")
	}
}

func TestSelectionLineOps(t *testing.T) {
	fx := &Fixture{
		Paragraphs: []ParagraphFixture{
			{Runs: []RunFixture{{Text: "aaaa bbbb cccc"}}, Lines: []int{5, 5}},
		},
	}
	doc := fx.MustBuild() // lines [0,5) [5,10) [10,15)
	win := NewWindow(doc)
	sel, err := win.Selection()
	if err != nil {
		t.Fatalf("Selection() error: %v", err)
	}

	if err := sel.SetRange(7, 7); err != nil {
		t.Fatalf("SetRange() error: %v", err)
	}
	if err := sel.StartOf(host.UnitLine); err != nil {
		t.Fatalf("StartOf() error: %v", err)
	}
	if start, _ := sel.Start(); start != 5 {
		t.Fatalf("Start() after StartOf = %d, want 5", start)
	}
	if err := sel.EndOf(host.UnitLine); err != nil {
		t.Fatalf("EndOf() error: %v", err)
	}
	if end, _ := sel.End(); end != 10 {
		t.Fatalf("End() after EndOf = %d, want 10", end)
	}

	if err := sel.SetRange(7, 7); err != nil {
		t.Fatal(err)
	}
	if moved, err := sel.Move(host.UnitLine, 1); err != nil || moved != 1 {
		t.Fatalf("Move(+1) = %d, %v", moved, err)
	}
	if start, _ := sel.Start(); start != 10 {
		t.Fatalf("Start() after Move = %d, want 10", start)
	}
	// clamped at last line
	if moved, _ := sel.Move(host.UnitLine, 5); moved != 0 {
		t.Fatalf("Move past last line moved %d, want 0", moved)
	}
}

func TestSelectionLineOpsFailToggle(t *testing.T) {
	fx := &Fixture{
		FailLineOps: true,
		Paragraphs: []ParagraphFixture{
			{Runs: []RunFixture{{Text: "text"}}},
		},
	}
	doc := fx.MustBuild()
	win := NewWindow(doc)
	sel, _ := win.Selection()
	if err := sel.StartOf(host.UnitLine); !errors.Is(err, host.ErrUnavailable) {
		t.Fatalf("StartOf() err = %v, want ErrUnavailable", err)
	}
	// one-shot expansion is a separate host pathway and still works
	if err := sel.Expand(host.UnitLine); err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	if start, _ := sel.Start(); start != 0 {
		t.Fatalf("Start() = %d", start)
	}
	if end, _ := sel.End(); end != 5 {
		t.Fatalf("End() = %d, want 5", end)
	}
}

func TestScreenUpdating(t *testing.T) {
	doc := simpleDoc(t)
	win := NewWindow(doc)
	app, _ := win.Application()
	if !doc.ScreenUpdating() {
		t.Fatal("screen updating disabled initially")
	}
	_ = app.SetScreenUpdating(false)
	_ = app.SetScreenUpdating(false) // repeated suspend is one cycle
	_ = app.SetScreenUpdating(true)
	_ = app.SetScreenUpdating(false)
	_ = app.SetScreenUpdating(true)
	if !doc.ScreenUpdating() {
		t.Fatal("screen updating not restored")
	}
	if doc.SuspendCycles() != 2 {
		t.Fatalf("SuspendCycles() = %d, want 2", doc.SuspendCycles())
	}
}

func TestLoadYAML(t *testing.T) {
	data := []byte(`
paragraphs:
  - style: Heading 1
    runs:
      - text: "Overview"
  - list_prefix: "1."
    runs:
      - text: "first item"
        language: en-US
fields:
  - start: 11
    end: 16
    kind: hyperlink
`)
	doc, err := Load(data)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got, want := doc.Text(), "Overview\rfirst item\r"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
	r := doc.newRange(10, 10)
	fields, err := r.Fields()
	if err != nil {
		t.Fatalf("Fields() error: %v", err)
	}
	if n, _ := fields.Count(); n != 0 {
		t.Fatalf("Fields().Count() at 10 = %d, want 0", n)
	}
	r = doc.newRange(12, 12)
	fields, _ = r.Fields()
	if n, _ := fields.Count(); n != 1 {
		t.Fatalf("Fields().Count() at 12 = %d, want 1", n)
	}
	lang, err := doc.newRange(9, 9).Language()
	if err != nil {
		t.Fatalf("Language() error: %v", err)
	}
	if lang.String() != "en-US" {
		t.Fatalf("Language() = %q", lang)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	if _, err := Load([]byte("bogus: true\n")); err == nil {
		t.Fatal("Load() accepted unknown field")
	}
}

func TestBuildValidation(t *testing.T) {
	fx := &Fixture{
		Paragraphs: []ParagraphFixture{{Runs: []RunFixture{{Text: "ab"}}}},
		Tables:     []TableFixture{{Start: 0, End: 99, Rows: 1, Columns: 1}},
	}
	if _, err := fx.Build(); err == nil {
		t.Fatal("Build() accepted out of bounds table")
	}
	fx = &Fixture{
		Paragraphs: []ParagraphFixture{{Runs: []RunFixture{{Text: "ab"}}, Alignment: "sideways"}},
	}
	if _, err := fx.Build(); err == nil {
		t.Fatal("Build() accepted bad alignment")
	}
}
