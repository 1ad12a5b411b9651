package walk

import (
	"docwalk/host"
	"docwalk/markup"
)

// inlineShapeCount reports how many inline objects the range holds; used
// once per request as a short-circuit before per-word probing.
func inlineShapeCount(rng host.Range) int {
	shapes, err := rng.InlineShapes()
	if err != nil || shapes == nil {
		return 0
	}
	count, err := shapes.Count()
	if err != nil || count <= 0 {
		return 0
	}
	return count
}

// openShapeTag opens a scope for the first inline object in the range, if
// any. The total object count for the range is returned so the caller
// knows whether the current word needs further splitting to isolate each
// object.
func openShapeTag(rng host.Range, offset int, b *markup.Builder) int {
	shapes, err := rng.InlineShapes()
	if err != nil || shapes == nil {
		return 0
	}
	count, err := shapes.Count()
	if err != nil || count <= 0 {
		return 0
	}
	shape, err := shapes.Item(1)
	if err != nil || shape == nil {
		return 0
	}
	shapeType, err := shape.Type()
	if err != nil {
		return 0
	}

	altText := ""
	if v, err := shape.AlternativeText(); err == nil {
		altText = v
	}
	if altText == "" {
		if v, err := shape.Title(); err == nil {
			altText = v
		}
	}

	role := "object"
	if shapeType == host.ShapePicture || shapeType == host.ShapeLinkedPicture {
		role = "graphic"
	}
	attrs := []markup.Attr{
		markup.Flag("_startOfNode"),
		{Key: "role", Value: role},
		{Key: "value", Value: altText},
	}
	if shapeType == host.ShapeEmbeddedObject {
		attrs = append(attrs, markup.Int("shapeoffset", offset))
		if progID, err := shape.ProgID(); err == nil && progID != "" {
			attrs = append(attrs, markup.Attr{Key: "progid", Value: progID})
		}
	}
	b.OpenControl(attrs...)
	return count
}
