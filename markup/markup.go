// Package markup assembles the output tree consumed by the assistive
// technology renderer. The grammar is fixed: <control> elements wrap
// structural scopes, <text> elements wrap literal chunk content, attribute
// order is insertion order and closes always mirror opens.
package markup

import (
	"strconv"

	"github.com/beevik/etree"
)

// Attr is a single key="value" markup attribute. Values are stored raw;
// escaping happens at serialization time.
type Attr struct {
	Key   string
	Value string
}

// Int formats an attribute carrying an integer value.
func Int(key string, v int) Attr {
	return Attr{Key: key, Value: strconv.Itoa(v)}
}

// Float formats an attribute carrying a point measurement. Whole values
// print without a fraction ("36"), others in shortest form ("12.5").
func Float(key string, v float64) Attr {
	return Attr{Key: key, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}

// Flag formats a boolean marker attribute in its canonical "1" form.
func Flag(key string) Attr {
	return Attr{Key: key, Value: "1"}
}

// Builder incrementally constructs the markup tree. Open control elements
// live on an explicit stack so a close can never drift from its matching
// open; Close pops one element, String closes whatever is still open.
type Builder struct {
	doc   *etree.Document
	stack []*etree.Element
}

func NewBuilder() *Builder {
	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	return &Builder{doc: doc}
}

func (b *Builder) parent() interface{ CreateElement(string) *etree.Element } {
	if len(b.stack) == 0 {
		return b.doc
	}
	return b.stack[len(b.stack)-1]
}

// OpenControl starts a <control> scope that stays open until a matching
// CloseControl (or final String).
func (b *Builder) OpenControl(attrs ...Attr) {
	el := b.parent().CreateElement("control")
	for _, a := range attrs {
		el.CreateAttr(a.Key, Sanitize(a.Value))
	}
	b.stack = append(b.stack, el)
}

// CloseControl closes the innermost open control. Closing with nothing
// open is a programming error upstream and is ignored rather than
// corrupting the tree.
func (b *Builder) CloseControl() {
	if len(b.stack) == 0 {
		return
	}
	b.stack = b.stack[:len(b.stack)-1]
}

// Depth reports how many control scopes are currently open.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// AppendText emits a complete <text> element with the given attributes and
// literal content into the innermost open scope.
func (b *Builder) AppendText(attrs []Attr, literal string) {
	el := b.parent().CreateElement("text")
	for _, a := range attrs {
		el.CreateAttr(a.Key, Sanitize(a.Value))
	}
	el.CreateText(Sanitize(literal))
}

// String closes all remaining open controls (in reverse order of opening,
// by construction) and serializes the tree.
func (b *Builder) String() (string, error) {
	b.stack = b.stack[:0]
	return b.doc.WriteToString()
}
