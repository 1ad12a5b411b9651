package walk

import "docwalk/host"

// sectionBreakType resolves the start type of the section that follows a
// page break character at the end of the current chunk. The probe assumes
// extending a duplicate of the range one character past the break yields
// exactly two sections, the second being the one that starts at the break.
// Documents with pre-existing complex section structure can violate the
// assumption; any deviation drops the attribute rather than guessing.
func sectionBreakType(rng host.Range) (host.SectionStart, bool) {
	dup, err := rng.Duplicate()
	if err != nil || dup == nil {
		return 0, false
	}
	moved, err := dup.MoveEnd(host.UnitCharacter, 1)
	if err != nil || moved <= 0 {
		return 0, false
	}
	sections, err := dup.Sections()
	if err != nil || sections == nil {
		return 0, false
	}
	count, err := sections.Count()
	if err != nil || count != 2 {
		return 0, false
	}
	section, err := sections.Item(2)
	if err != nil || section == nil {
		return 0, false
	}
	setup, err := section.PageSetup()
	if err != nil || setup == nil {
		return 0, false
	}
	start, err := setup.SectionStart()
	if err != nil || start < 0 {
		return 0, false
	}
	return start, true
}
