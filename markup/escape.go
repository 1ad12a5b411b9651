package markup

import "strings"

// Sanitize replaces control characters that are not representable in the
// markup with a plain space. Tabs and line breaks survive; everything else
// below U+0020 (note markers, cell delimiters, stray break characters the
// walker failed to strip) becomes a space. Markup metacharacters are left
// alone here - the serializer escapes them.
func Sanitize(s string) string {
	var b *strings.Builder
	for i, r := range s {
		if allowed(r) {
			if b != nil {
				b.WriteRune(r)
			}
			continue
		}
		if b == nil {
			b = &strings.Builder{}
			b.Grow(len(s))
			b.WriteString(s[:i])
		}
		b.WriteByte(' ')
	}
	if b == nil {
		return s
	}
	return b.String()
}

// EscapeAttr escapes a string for direct inclusion inside a quoted
// attribute value, for callers assembling markup outside the Builder.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(Sanitize(s))
}

// EscapeText escapes a string for direct inclusion as element content.
func EscapeText(s string) string {
	return textEscaper.Replace(Sanitize(s))
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

func allowed(r rune) bool {
	return r >= 0x20 || r == '\t' || r == '\n' || r == '\r'
}
