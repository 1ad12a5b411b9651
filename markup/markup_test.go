package markup

import (
	"strings"
	"testing"
)

func TestBuilderNesting(t *testing.T) {
	b := NewBuilder()
	b.OpenControl(Int("wdStoryType", 1))
	b.OpenControl(Attr{Key: "role", Value: "table"})
	b.AppendText([]Attr{Int("_startOffset", 0), Int("_endOffset", 5)}, "hello")
	b.CloseControl()
	b.AppendText(nil, "tail")

	got, err := b.String()
	if err != nil {
		t.Fatalf("String() error: %v", err)
	}
	want := `<control wdStoryType="1"><control role="table"><text _startOffset="0" _endOffset="5">hello</text></control><text>tail</text></control>`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilderDepth(t *testing.T) {
	b := NewBuilder()
	if b.Depth() != 0 {
		t.Fatalf("Depth() = %d, want 0", b.Depth())
	}
	b.OpenControl()
	b.OpenControl()
	if b.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", b.Depth())
	}
	b.CloseControl()
	if b.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", b.Depth())
	}
	// excess close must not corrupt the tree
	b.CloseControl()
	b.CloseControl()
	if b.Depth() != 0 {
		t.Fatalf("Depth() = %d, want 0", b.Depth())
	}
}

func TestBuilderClosesOpenScopes(t *testing.T) {
	b := NewBuilder()
	b.OpenControl(Attr{Key: "role", Value: "heading"})
	b.OpenControl(Attr{Key: "role", Value: "footnote"})
	b.AppendText(nil, "x")

	got, err := b.String()
	if err != nil {
		t.Fatalf("String() error: %v", err)
	}
	if strings.Count(got, "<control") != strings.Count(got, "</control>") {
		t.Errorf("unbalanced controls in %q", got)
	}
	if b.Depth() != 0 {
		t.Errorf("Depth() after String() = %d, want 0", b.Depth())
	}
}

func TestBuilderEscaping(t *testing.T) {
	b := NewBuilder()
	b.AppendText([]Attr{{Key: "style", Value: `He said "<ok>" & left`}}, "1 < 2 & 3 > 2")
	got, err := b.String()
	if err != nil {
		t.Fatalf("String() error: %v", err)
	}
	for _, want := range []string{"&quot;", "&lt;ok&gt;", "&amp;", "1 &lt; 2 &amp; 3 &gt; 2"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}

func TestAttrHelpers(t *testing.T) {
	cases := []struct {
		got  Attr
		want Attr
	}{
		{Int("level", 3), Attr{Key: "level", Value: "3"}},
		{Float("left-indent", 36), Attr{Key: "left-indent", Value: "36"}},
		{Float("left-indent", 12.5), Attr{Key: "left-indent", Value: "12.5"}},
		{Float("hanging-indent", 0), Attr{Key: "hanging-indent", Value: "0"}},
		{Flag("bold"), Attr{Key: "bold", Value: "1"}},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %+v, want %+v", c.got, c.want)
		}
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"", ""},
		{"a\x02b", "a b"},
		{"\x07", " "},
		{"a\x0c\x0eb", "a  b"},
		{"tab\tand\nnewline", "tab\tand\nnewline"},
		{"mark\r", "mark\r"},
	}
	for _, c := range cases {
		if got := Sanitize(c.in); got != c.want {
			t.Errorf("Sanitize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEscapeHelpers(t *testing.T) {
	if got := EscapeAttr(`a"b<c`); got != "a&quot;b&lt;c" {
		t.Errorf("EscapeAttr() = %q", got)
	}
	if got := EscapeText(`a"b<c`); got != `a"b&lt;c` {
		t.Errorf("EscapeText() = %q", got)
	}
	if got := EscapeText("x\x02y"); got != "x y" {
		t.Errorf("EscapeText() = %q, want sanitized space", got)
	}
}
