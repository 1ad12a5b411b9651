package service

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap/zaptest"

	"docwalk/host/memdoc"
	"docwalk/walk"
)

func testService(t *testing.T) (*Service, *memdoc.Document) {
	t.Helper()
	fx := &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{Runs: []memdoc.RunFixture{{Text: "Hello world."}}, Lines: []int{6}},
		},
	}
	doc, err := fx.Build()
	if err != nil {
		t.Fatalf("fixture build error: %v", err)
	}
	svc := New(zaptest.NewLogger(t))
	if err := svc.Register("w1", memdoc.NewWindow(doc)); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	return svc, doc
}

func TestRegisterDuplicate(t *testing.T) {
	svc, doc := testService(t)
	err := svc.Register("w1", memdoc.NewWindow(doc))
	if !errors.Is(err, ErrDuplicateWindow) {
		t.Fatalf("Register() duplicate err = %v, want ErrDuplicateWindow", err)
	}
	// after unregistering the id is free again
	svc.Unregister("w1")
	if err := svc.Register("w1", memdoc.NewWindow(doc)); err != nil {
		t.Fatalf("Register() after Unregister error: %v", err)
	}
}

func TestUnknownWindow(t *testing.T) {
	svc := New(zaptest.NewLogger(t))
	if _, err := svc.GetTextInRange("nope", 0, 5, 0); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("GetTextInRange() err = %v, want ErrUnknownWindow", err)
	}
	if _, _, err := svc.ExpandToLine("nope", 0); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("ExpandToLine() err = %v, want ErrUnknownWindow", err)
	}
	if _, err := svc.MoveByLine("nope", 0, false); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("MoveByLine() err = %v, want ErrUnknownWindow", err)
	}
}

func TestGetTextInRangeValidation(t *testing.T) {
	svc, _ := testService(t)
	if _, err := svc.GetTextInRange("w1", 5, 5, 0); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("empty range err = %v, want ErrInvalidRange", err)
	}
	if _, err := svc.GetTextInRange("w1", -1, 5, 0); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("negative start err = %v, want ErrInvalidRange", err)
	}
}

func TestGetTextInRange(t *testing.T) {
	svc, _ := testService(t)
	out, err := svc.GetTextInRange("w1", 0, 12, 0)
	if err != nil {
		t.Fatalf("GetTextInRange() error: %v", err)
	}
	for _, want := range []string{`wdStoryType="1"`, "Hello ", "world"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLineOperations(t *testing.T) {
	svc, _ := testService(t) // lines [0,6) [6,13)
	start, end, err := svc.ExpandToLine("w1", 8)
	if err != nil {
		t.Fatalf("ExpandToLine() error: %v", err)
	}
	if start != 6 || end != 13 {
		t.Errorf("ExpandToLine(8) = [%d, %d), want [6, 13)", start, end)
	}
	offset, err := svc.MoveByLine("w1", 8, true)
	if err != nil {
		t.Fatalf("MoveByLine() error: %v", err)
	}
	if offset != 0 {
		t.Errorf("MoveByLine(8, backward) = %d, want 0", offset)
	}
}

func TestConcurrentRequestsSerialized(t *testing.T) {
	svc, _ := testService(t)
	cfg, err := walk.ParseFacets([]string{"page", "tables", "headings"})
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.GetTextInRange("w1", 0, 12, cfg); err != nil {
				t.Errorf("GetTextInRange() error: %v", err)
			}
			if _, _, err := svc.ExpandToLine("w1", 3); err != nil {
				t.Errorf("ExpandToLine() error: %v", err)
			}
		}()
	}
	wg.Wait()
}
