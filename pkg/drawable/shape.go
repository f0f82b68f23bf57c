package drawable

import (
	"unicode/utf8"

	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/canvas"
	"github.com/matzehuels/drawset/pkg/geom"
)

// Shape names accepted by the shape attribute.
const (
	ShapeRect    = "rect"
	ShapeEllipse = "ellipse"
	ShapeText    = "text"
)

// Intrinsic metrics. Text is not shaped; its extent is estimated from the
// font size.
const (
	DefaultSize      float32 = 48
	GlyphWidthFactor float32 = 0.6
	LineHeightFactor float32 = 1.2
)

// measured lists the attributes that affect measurement.
var measured = []attr.Kind{
	attr.Shape, attr.Text, attr.FontSize, attr.Width, attr.Height,
}

// Shape draws a rectangle, an ellipse or a line of text. It holds no state,
// so one Shape can be shared by any number of objects.
type Shape struct{}

// Update implements Drawable.
func (*Shape) Update(src Source) geom.Rect {
	_, content := measure(src)
	return content
}

// DependsOn implements Drawable.
func (*Shape) DependsOn() []attr.Kind { return measured }

// Draw implements Drawable.
func (*Shape) Draw(t canvas.Target, src Source) {
	box, content := measure(src)
	color := canvas.Color(Uint32(src, attr.Color))
	fill := canvas.Color(Uint32(src, attr.Fill))
	text := String(src, attr.Text)
	font := canvas.Font{Family: String(src, attr.FontFamily), Size: Float32(src, attr.FontSize)}

	switch String(src, attr.Shape) {
	case ShapeText:
		if !fill.Transparent() {
			t.FillRect(box, fill)
		}
		t.DrawText(content, text, font, color)
		return
	case ShapeEllipse:
		if !fill.Transparent() {
			t.FillEllipse(content, fill)
		}
	default:
		if !fill.Transparent() {
			t.FillRect(content, fill)
		}
		if w := Float32(src, attr.StrokeWidth); w > 0 && !color.Transparent() {
			t.StrokeRect(content, color, w)
		}
	}
	if text != "" {
		t.DrawText(content, text, font, color)
	}
}

// measure returns the layout box and the content bounds centered in it.
func measure(src Source) (box, content geom.Rect) {
	size := intrinsic(src)
	w, h := size.W, size.H
	if IsSet(src, attr.Width) {
		w = Float32(src, attr.Width)
	}
	if IsSet(src, attr.Height) {
		h = Float32(src, attr.Height)
	}
	box = geom.R(0, 0, w, h)
	left, top := (w-size.W)/2, (h-size.H)/2
	return box, geom.R(left, top, left+size.W, top+size.H)
}

func intrinsic(src Source) geom.Size {
	if String(src, attr.Shape) != ShapeText {
		return geom.Size{W: DefaultSize, H: DefaultSize}
	}
	fs := Float32(src, attr.FontSize)
	n := utf8.RuneCountInString(String(src, attr.Text))
	return geom.Size{W: GlyphWidthFactor * fs * float32(n), H: LineHeightFactor * fs}
}
