package nav

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"docwalk/host/memdoc"
)

func threeLineDoc(t *testing.T) *memdoc.Document {
	t.Helper()
	fx := &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{Runs: []memdoc.RunFixture{{Text: "aaaa bbbb cccc"}}, Lines: []int{5, 5}},
		},
	}
	doc, err := fx.Build()
	if err != nil {
		t.Fatalf("fixture build error: %v", err)
	}
	return doc
}

func TestExpandToLine(t *testing.T) {
	doc := threeLineDoc(t) // lines [0,5) [5,10) [10,15)
	n := NewNavigator(memdoc.NewWindow(doc), zaptest.NewLogger(t))

	cases := []struct {
		offset     int
		start, end int
	}{
		{0, 0, 5},
		{4, 0, 5},
		{7, 5, 10},
		{12, 10, 15},
	}
	for _, c := range cases {
		start, end, err := n.ExpandToLine(c.offset)
		if err != nil {
			t.Fatalf("ExpandToLine(%d) error: %v", c.offset, err)
		}
		if start != c.start || end != c.end {
			t.Errorf("ExpandToLine(%d) = [%d, %d), want [%d, %d)", c.offset, start, end, c.start, c.end)
		}
	}
}

func TestExpandToLineRestoresSelection(t *testing.T) {
	doc := threeLineDoc(t)
	win := memdoc.NewWindow(doc)
	sel, err := win.Selection()
	if err != nil {
		t.Fatal(err)
	}
	if err := sel.SetRange(2, 8); err != nil {
		t.Fatal(err)
	}
	if err := sel.SetStartIsActive(true); err != nil {
		t.Fatal(err)
	}

	n := NewNavigator(win, zaptest.NewLogger(t))
	if _, _, err := n.ExpandToLine(12); err != nil {
		t.Fatalf("ExpandToLine() error: %v", err)
	}

	if start, end := doc.Selection(); start != 2 || end != 8 {
		t.Errorf("selection after ExpandToLine = [%d, %d], want [2, 8]", start, end)
	}
	if active, _ := sel.StartIsActive(); !active {
		t.Error("selection directionality not restored")
	}
	if !doc.ScreenUpdating() {
		t.Error("screen updating not re-enabled")
	}
	if doc.SuspendCycles() != 1 {
		t.Errorf("SuspendCycles() = %d, want 1", doc.SuspendCycles())
	}
}

func TestExpandToLineLegacyFallback(t *testing.T) {
	fx := &memdoc.Fixture{
		FailLineOps: true,
		Paragraphs: []memdoc.ParagraphFixture{
			{Runs: []memdoc.RunFixture{{Text: "aaaa bbbb"}}, Lines: []int{5}},
		},
	}
	doc, err := fx.Build()
	if err != nil {
		t.Fatal(err)
	}
	n := NewNavigator(memdoc.NewWindow(doc), zaptest.NewLogger(t))

	start, end, err := n.ExpandToLine(7)
	if err != nil {
		t.Fatalf("ExpandToLine() error: %v", err)
	}
	if start != 5 || end != 10 {
		t.Errorf("ExpandToLine(7) = [%d, %d), want [5, 10) via legacy expansion", start, end)
	}
}

func TestExpandToLineDegenerate(t *testing.T) {
	// no content at all: both measurement paths fail and the result
	// collapses to a one character span at the caret
	doc, err := (&memdoc.Fixture{}).Build()
	if err != nil {
		t.Fatal(err)
	}
	n := NewNavigator(memdoc.NewWindow(doc), zaptest.NewLogger(t))

	start, end, err := n.ExpandToLine(3)
	if err != nil {
		t.Fatalf("ExpandToLine() error: %v", err)
	}
	if start != 3 || end != 4 {
		t.Errorf("ExpandToLine(3) = [%d, %d), want [3, 4)", start, end)
	}
}

func TestMoveByLine(t *testing.T) {
	doc := threeLineDoc(t)
	n := NewNavigator(memdoc.NewWindow(doc), zaptest.NewLogger(t))

	cases := []struct {
		offset   int
		backward bool
		want     int
	}{
		{0, false, 5},
		{7, false, 10},
		{7, true, 0},
		{12, true, 5},
		// clamped at document edges
		{12, false, 10},
		{2, true, 0},
	}
	for _, c := range cases {
		got, err := n.MoveByLine(c.offset, c.backward)
		if err != nil {
			t.Fatalf("MoveByLine(%d, %v) error: %v", c.offset, c.backward, err)
		}
		if got != c.want {
			t.Errorf("MoveByLine(%d, %v) = %d, want %d", c.offset, c.backward, got, c.want)
		}
	}
}

func TestMoveByLineRestoresSelection(t *testing.T) {
	doc := threeLineDoc(t)
	win := memdoc.NewWindow(doc)
	sel, err := win.Selection()
	if err != nil {
		t.Fatal(err)
	}
	if err := sel.SetRange(1, 4); err != nil {
		t.Fatal(err)
	}

	n := NewNavigator(win, zaptest.NewLogger(t))
	if _, err := n.MoveByLine(7, false); err != nil {
		t.Fatalf("MoveByLine() error: %v", err)
	}
	if start, end := doc.Selection(); start != 1 || end != 4 {
		t.Errorf("selection after MoveByLine = [%d, %d], want [1, 4]", start, end)
	}
}
