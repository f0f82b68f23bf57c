package object

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/canvas"
	"github.com/matzehuels/drawset/pkg/geom"
)

// Arrange positions objects on the canvas described by l, in sequence order.
//
// Hidden objects have their geometry cleared and take no slot. Objects with
// an explicit x or y are placed verbatim; the rest are handed to the
// layout's flow policy. Each call starts from a fresh cursor, so arranging
// the same objects twice yields the same rects and transforms.
func Arrange(objects []Object, l canvas.Layouter) {
	cfg := l.Layout()
	flow := cfg.FlowOrDefault()
	cursor := canvas.NewCursor(cfg)

	for i := range objects {
		o := &objects[i]
		if !o.IsVisible() {
			o.clearGeometry()
			continue
		}

		scale := o.values.Effective(attr.Scale).Float32()
		rotation := o.values.Effective(attr.Rotation).Float32()
		local := geom.Scale(scale, scale).Mul(geom.Rotate(rotation))
		box := local.ApplyRect(o.LayoutBounds.Union(o.ContentBounds))
		o.Origin = geom.Pt(-box.Left, -box.Top)

		size := box.Size()
		if o.Label != "" {
			size.H += cfg.LabelHeight
		}

		var pos geom.Point
		if o.values[attr.PositionX].IsSet() || o.values[attr.PositionY].IsSet() {
			pos = geom.Pt(
				o.values.Effective(attr.PositionX).Float32(),
				o.values.Effective(attr.PositionY).Float32(),
			)
		} else {
			pos = flow.Place(&cursor, size, cfg)
		}

		offset := pos.Add(o.Origin)
		o.Transform.Update(geom.TransformInputs{Scale: scale, Rotation: rotation, Offset: offset})
		o.ObjectRect = box.Offset(offset.X, offset.Y).Round()

		if o.Label == "" {
			o.LabelRect = image.Rectangle{}
			continue
		}
		r := o.ObjectRect
		o.LabelRect = image.Rect(
			int(r.Left), int(r.Bottom),
			int(r.Right), int(r.Bottom+math32.Round(cfg.LabelHeight)),
		)
	}
}
