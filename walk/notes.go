package walk

import (
	"docwalk/host"
	"docwalk/markup"
)

// openNoteTag opens a footnote or endnote scope for a cursor positioned
// exactly on a note reference marker. Returns false when the relevant
// notes collection has no entry here.
func openNoteTag(rng host.Range, footnote bool, b *markup.Builder) bool {
	var (
		notes host.Notes
		err   error
	)
	if footnote {
		notes, err = rng.Footnotes()
	} else {
		notes, err = rng.Endnotes()
	}
	if err != nil || notes == nil {
		return false
	}
	count, err := notes.Count()
	if err != nil || count <= 0 {
		return false
	}
	note, err := notes.Item(1)
	if err != nil || note == nil {
		return false
	}
	index, err := note.Index()
	if err != nil {
		return false
	}
	role := "endnote"
	if footnote {
		role = "footnote"
	}
	b.OpenControl(
		markup.Flag("_startOfNode"),
		markup.Attr{Key: "role", Value: role},
		markup.Int("value", index),
	)
	return true
}
