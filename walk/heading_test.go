package walk

import (
	"errors"
	"testing"

	"docwalk/host"
	"docwalk/host/memdoc"
)

type countingStyle struct {
	host.Style
	docCalls *int
}

func (s countingStyle) Document() (host.Document, error) {
	*s.docCalls++
	return s.Style.Document()
}

func TestHeadingCacheResolvesOnce(t *testing.T) {
	rng := buildRange(t, &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{Style: "Heading 2", Runs: []memdoc.RunFixture{{Text: "chapter"}}},
		},
	}, 0, 7)
	style, err := rng.Style()
	if err != nil {
		t.Fatalf("style error: %v", err)
	}

	var docCalls int
	counted := countingStyle{Style: style, docCalls: &docCalls}

	var cache HeadingCache
	for i := 0; i < 3; i++ {
		if level := cache.level(counted); level != 2 {
			t.Fatalf("level() call %d = %d, want 2", i+1, level)
		}
	}
	if docCalls != 1 {
		t.Errorf("style names resolved %d times, want 1", docCalls)
	}

	// the resolved table answers non-heading lookups too
	plain := buildRange(t, &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{Style: "Quote", Runs: []memdoc.RunFixture{{Text: "aside"}}},
		},
	}, 0, 5)
	plainStyle, err := plain.Style()
	if err != nil {
		t.Fatalf("style error: %v", err)
	}
	if level := cache.level(plainStyle); level != 0 {
		t.Errorf("level(non-heading) = %d, want 0", level)
	}
}

type brokenStyle struct{}

func (brokenStyle) NameLocal() (string, error)       { return "Heading 2", nil }
func (brokenStyle) Document() (host.Document, error) { return nil, errors.New("host went away") }

func TestHeadingCacheRetriesAfterFailedResolution(t *testing.T) {
	var cache HeadingCache
	if level := cache.level(brokenStyle{}); level != 0 {
		t.Fatalf("level() against broken host = %d, want 0", level)
	}

	// a failed population must not latch, the next lookup resolves
	rng := buildRange(t, &memdoc.Fixture{
		Paragraphs: []memdoc.ParagraphFixture{
			{Style: "Heading 2", Runs: []memdoc.RunFixture{{Text: "chapter"}}},
		},
	}, 0, 7)
	style, err := rng.Style()
	if err != nil {
		t.Fatalf("style error: %v", err)
	}
	if level := cache.level(style); level != 2 {
		t.Errorf("level() after recovery = %d, want 2", level)
	}
}
