package walk

import (
	"sync"

	"docwalk/host"
	"docwalk/markup"
)

// HeadingCache holds the localized names of the nine built-in heading
// styles. Resolving them is locale dependent and expensive, so the list is
// kept after the first population that yields names; a population that
// yields nothing is retried on the next lookup. Zero value is ready to use.
type HeadingCache struct {
	mu    sync.Mutex
	names []string
}

// level maps a paragraph style to its heading level 1-9, or 0 when the
// style is not one of the built-in heading styles.
func (c *HeadingCache) level(style host.Style) int {
	name, err := style.NameLocal()
	if err != nil || name == "" {
		return 0
	}
	for i, n := range c.resolve(style) {
		if n == name {
			return i + 1
		}
	}
	return 0
}

func (c *HeadingCache) resolve(style host.Style) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.names) > 0 {
		return c.names
	}
	doc, err := style.Document()
	if err != nil || doc == nil {
		return nil
	}
	styles, err := doc.Styles()
	if err != nil || styles == nil {
		return nil
	}
	for id := host.StyleHeading1; id >= host.StyleHeading9; id-- {
		builtin, err := styles.Item(id)
		if err != nil || builtin == nil {
			continue
		}
		builtinName, err := builtin.NameLocal()
		if err != nil {
			continue
		}
		c.names = append(c.names, builtinName)
	}
	return c.names
}

// openHeadingTag opens a heading scope for the first paragraph touched by
// the request. Returns the number of control tags opened (0 or 1).
func openHeadingTag(c *HeadingCache, para host.Paragraph, paraRange host.Range, startOffset, endOffset int, b *markup.Builder) int {
	if para == nil {
		return 0
	}
	style, err := para.Style()
	if err != nil || style == nil {
		return 0
	}
	level := c.level(style)
	if level == 0 {
		return 0
	}
	attrs := []markup.Attr{
		{Key: "role", Value: "heading"},
		markup.Int("level", level),
	}
	if paraRange != nil {
		if v, err := paraRange.Start(); err == nil && v >= startOffset {
			attrs = append(attrs, markup.Flag("_startOfNode"))
		}
		if v, err := paraRange.End(); err == nil && v <= endOffset {
			attrs = append(attrs, markup.Flag("_endOfNode"))
		}
	}
	b.OpenControl(attrs...)
	return 1
}
