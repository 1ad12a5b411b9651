package walk

import "docwalk/host"

// span is a half-open offset interval collected from a host collection.
type span struct {
	start, end int
}

// collectSpellingErrors snapshots spelling error spans for the whole
// range. The collection is skipped entirely when the host reports a
// sandboxed state: enumerating it there is known to crash the host.
func collectSpellingErrors(rng host.Range) []span {
	app, err := rng.Application()
	if err != nil || app == nil {
		return nil
	}
	if sandboxed, err := app.IsSandboxed(); err != nil || sandboxed {
		return nil
	}
	errors, err := rng.SpellingErrors()
	if err != nil || errors == nil {
		return nil
	}
	count, err := errors.Count()
	if err != nil {
		return nil
	}
	var spans []span
	for i := 1; i <= count; i++ {
		errRange, err := errors.Item(i)
		if err != nil || errRange == nil {
			return spans
		}
		start, err := errRange.Start()
		if err != nil {
			return spans
		}
		end, err := errRange.End()
		if err != nil {
			return spans
		}
		spans = append(spans, span{start: start, end: end})
	}
	return spans
}

// collectCommentSpans snapshots the scopes of comments anchored to the
// given paragraph range.
func collectCommentSpans(paraRange host.Range) []span {
	if paraRange == nil {
		return nil
	}
	comments, err := paraRange.Comments()
	if err != nil || comments == nil {
		return nil
	}
	count, err := comments.Count()
	if err != nil {
		return nil
	}
	var spans []span
	for i := 1; i <= count; i++ {
		comment, err := comments.Item(i)
		if err != nil || comment == nil {
			return spans
		}
		scope, err := comment.Scope()
		if err != nil || scope == nil {
			return spans
		}
		start, err := scope.Start()
		if err != nil {
			return spans
		}
		end, err := scope.End()
		if err != nil {
			return spans
		}
		spans = append(spans, span{start: start, end: end})
	}
	return spans
}

// spellingSpanAt reports whether an offset lies inside any spelling span.
func spellingSpanAt(spans []span, offset int) bool {
	for _, s := range spans {
		if offset >= s.start && offset < s.end {
			return true
		}
	}
	return false
}

// commentSpanOver returns the first comment span intersecting [start, end)
// and whether one exists.
func commentSpanOver(spans []span, start, end int) (span, bool) {
	for _, s := range spans {
		if !(start >= s.end || end <= s.start) {
			return s, true
		}
	}
	return span{}, false
}
