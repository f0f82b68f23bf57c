package object

import (
	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/canvas"
	"github.com/matzehuels/drawset/pkg/geom"
)

// Draw renders every visible object onto t in sequence order.
//
// Each drawable is drawn under its object transform composed with m; labels
// are drawn into LabelRect under m alone. Objects that were never arranged
// are drawn at the default origin.
func Draw(objects []Object, t canvas.Target, m geom.Matrix) {
	for i := range objects {
		o := &objects[i]
		if !o.IsVisible() {
			continue
		}
		if d := o.drawable.Drawable(); d != nil {
			t.SetTransform(o.Transform.Matrix().Mul(m))
			d.Draw(t, o)
		}
		if o.Label != "" {
			t.SetTransform(m)
			font := canvas.Font{
				Family: o.values.Effective(attr.FontFamily).Str(),
				Size:   o.values.Effective(attr.FontSize).Float32(),
			}
			color := canvas.Color(o.values.Effective(attr.Color).Uint32())
			t.DrawText(geom.FromImage(o.LabelRect), o.Label, font, color)
		}
	}
	t.SetTransform(m)
}

// DrawSelection outlines the ObjectRect of every visible selected object.
func DrawSelection(objects []Object, t canvas.Target, m geom.Matrix, c canvas.Color) {
	t.SetTransform(m)
	for i := range objects {
		o := &objects[i]
		if !o.IsVisible() || !o.IsSelected() || o.ObjectRect.IsEmpty() {
			continue
		}
		t.StrokeRect(o.ObjectRect, c, 1)
	}
}
