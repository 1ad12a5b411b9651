package walk

import (
	"docwalk/host"
	"docwalk/markup"
)

// fieldWrapper is the result of probing for a form field or content
// control containing the cursor: when found, an opening wrapper tag has
// been emitted and the chunk is bound to the match's end.
type fieldWrapper struct {
	found bool
	end   int
}

// scanFieldWrapper looks for a form field, then a content control, whose
// range fully contains the cursor. Both scans walk their collection in
// order and stop at the first containing entry or after the scan limit;
// the host is not trusted with unbounded enumeration.
func scanFieldWrapper(rng, paraRange host.Range, b *markup.Builder) fieldWrapper {
	if paraRange == nil {
		return fieldWrapper{}
	}
	if w := scanFormFields(rng, paraRange, b); w.found {
		return w
	}
	return scanContentControls(rng, paraRange, b)
}

func scanFormFields(rng, paraRange host.Range, b *markup.Builder) fieldWrapper {
	fields, err := paraRange.FormFields()
	if err != nil || fields == nil {
		return fieldWrapper{}
	}
	for i := 1; i < host.CollectionScanLimit+1; i++ {
		field, err := fields.Item(i)
		if err != nil || field == nil {
			break
		}
		fieldRange, err := field.Range()
		if err != nil || fieldRange == nil {
			break
		}
		contained, err := rng.InRange(fieldRange)
		if err != nil || !contained {
			continue
		}
		fieldType := -1
		if v, err := field.Type(); err == nil {
			fieldType = v
		}
		var result, statusText string
		if v, err := field.Result(); err == nil {
			result = v
		}
		if v, err := field.StatusText(); err == nil {
			statusText = v
		}
		b.OpenControl(
			markup.Int("wdFieldType", fieldType),
			markup.Attr{Key: "wdFieldResult", Value: result},
			markup.Attr{Key: "wdFieldStatusText", Value: statusText},
		)
		end, err := fieldRange.End()
		if err != nil {
			return fieldWrapper{found: true}
		}
		_ = rng.SetEnd(end)
		return fieldWrapper{found: true, end: end}
	}
	return fieldWrapper{}
}

func scanContentControls(rng, paraRange host.Range, b *markup.Builder) fieldWrapper {
	controls, err := paraRange.ContentControls()
	if err != nil || controls == nil {
		return fieldWrapper{}
	}
	for i := 1; i < host.CollectionScanLimit+1; i++ {
		control, err := controls.Item(i)
		if err != nil || control == nil {
			break
		}
		controlRange, err := control.Range()
		if err != nil || controlRange == nil {
			break
		}
		contained, err := rng.InRange(controlRange)
		if err != nil || !contained {
			continue
		}
		controlType := -1
		if v, err := control.Type(); err == nil {
			controlType = v
		}
		checked := 0
		if v, err := control.Checked(); err == nil && v {
			checked = 1
		}
		var title string
		if v, err := control.Title(); err == nil {
			title = v
		}
		b.OpenControl(
			markup.Int("wdContentControlType", controlType),
			markup.Int("wdContentControlChecked", checked),
			markup.Attr{Key: "wdContentControlTitle", Value: title},
		)
		end, err := controlRange.End()
		if err != nil {
			return fieldWrapper{found: true}
		}
		_ = rng.SetEnd(end)
		return fieldWrapper{found: true, end: end}
	}
	return fieldWrapper{}
}

// fieldSpan is one result-bearing document field projected onto offsets.
type fieldSpan struct {
	fieldType  host.FieldType
	start, end int
}

// fieldScanner snapshots the enclosing paragraph's fields collection once
// per request and answers link and page number field queries by offset.
type fieldScanner struct {
	spans []fieldSpan
}

func newFieldScanner(paraRange host.Range) *fieldScanner {
	s := &fieldScanner{}
	if paraRange == nil {
		return s
	}
	fields, err := paraRange.Fields()
	if err != nil || fields == nil {
		return s
	}
	for i := 1; i < host.CollectionScanLimit+1; i++ {
		field, err := fields.Item(i)
		if err != nil || field == nil {
			break
		}
		fieldType, err := field.Type()
		if err != nil {
			continue
		}
		result, err := field.Result()
		if err != nil || result == nil {
			continue
		}
		start, err := result.Start()
		if err != nil {
			continue
		}
		end, err := result.End()
		if err != nil {
			continue
		}
		s.spans = append(s.spans, fieldSpan{fieldType: fieldType, start: start, end: end})
	}
	return s
}

func (s *fieldScanner) hasLinks() bool {
	for _, span := range s.spans {
		if span.fieldType == host.FieldHyperlink {
			return true
		}
	}
	return false
}

func (s *fieldScanner) hasLinksIn(start, end int) bool {
	for _, span := range s.spans {
		if span.fieldType == host.FieldHyperlink && start < span.end && end > span.start {
			return true
		}
	}
	return false
}

// pageNumberFieldEnd reports the end of a page number field the given
// chunk end landed inside of, so the chunk can be extended to cover the
// whole field instead of splitting its rendered number.
func (s *fieldScanner) pageNumberFieldEnd(end int) (int, bool) {
	for _, span := range s.spans {
		if span.fieldType == host.FieldPage && end > span.start && end < span.end {
			return span.end, true
		}
	}
	return 0, false
}
