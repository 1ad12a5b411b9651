package memdoc

import (
	"sort"

	"github.com/rivo/uniseg"
)

// structural reports characters that always form their own word unit,
// the way the host segments story text around marks and breaks.
func structural(r rune) bool {
	switch r {
	case '\r', '\n', '\x02', '\x07', '\x0c', '\x0e':
		return true
	}
	return false
}

// computeWordBounds returns sorted rune offsets of word unit boundaries
// over the whole text, always including 0 and len. Segmentation follows
// UAX#29 word boundaries with two host-like adjustments: structural
// characters are isolated into their own units, and those adjustments are
// applied inside whatever segment UAX#29 produced.
func computeWordBounds(text string) []int {
	bounds := []int{0}
	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var seg string
		seg, rest, state = uniseg.FirstWordInString(rest, state)
		runes := []rune(seg)
		segStart := 0
		for i, r := range runes {
			if structural(r) {
				if i > segStart {
					bounds = append(bounds, pos+i)
				}
				bounds = append(bounds, pos+i+1)
				segStart = i + 1
			}
		}
		pos += len(runes)
		if segStart < len(runes) {
			bounds = append(bounds, pos)
		}
	}
	sort.Ints(bounds)
	out := bounds[:1]
	for _, b := range bounds[1:] {
		if b != out[len(out)-1] {
			out = append(out, b)
		}
	}
	return out
}

// nextWordEnd advances from off to the end of the next word unit. Trailing
// plain spaces are absorbed into the preceding word, matching how the host
// extends a range by one word.
func (d *Document) nextWordEnd(off int) int {
	if off >= len(d.text) {
		return off
	}
	i := sort.SearchInts(d.wordBounds, off+1)
	if i >= len(d.wordBounds) {
		return len(d.text)
	}
	end := d.wordBounds[i]
	if d.text[end-1] == ' ' {
		return end
	}
	for i+1 < len(d.wordBounds) {
		next := d.wordBounds[i+1]
		if !d.allSpaces(end, next) {
			break
		}
		end = next
		i++
	}
	return end
}

func (d *Document) allSpaces(start, end int) bool {
	for _, r := range d.text[start:end] {
		if r != ' ' {
			return false
		}
	}
	return end > start
}
