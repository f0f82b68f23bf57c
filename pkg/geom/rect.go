package geom

import (
	"image"

	"github.com/chewxy/math32"
)

// Point is a position in either world or canvas space.
type Point struct {
	X, Y float32
}

// Pt returns a new [Point].
func Pt(x, y float32) Point { return Point{X: x, Y: y} }

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// IsZero reports whether both coordinates are zero.
func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// Size is a width and height pair.
type Size struct {
	W, H float32
}

// Rect is an axis-aligned rectangle given by its edges.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// R returns a [Rect] from its edges.
func R(left, top, right, bottom float32) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectFromSize returns the rectangle with top-left p and size s.
func RectFromSize(p Point, s Size) Rect {
	return Rect{Left: p.X, Top: p.Y, Right: p.X + s.W, Bottom: p.Y + s.H}
}

// FromImage converts an integer rectangle.
func FromImage(r image.Rectangle) Rect {
	return Rect{
		Left:   float32(r.Min.X),
		Top:    float32(r.Min.Y),
		Right:  float32(r.Max.X),
		Bottom: float32(r.Max.Y),
	}
}

// Width returns the horizontal span of the rect.
func (r Rect) Width() float32 { return r.Right - r.Left }

// Height returns the vertical span of the rect.
func (r Rect) Height() float32 { return r.Bottom - r.Top }

// Size returns the width and height of the rect.
func (r Rect) Size() Size { return Size{W: r.Width(), H: r.Height()} }

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{r.Left, r.Top} }

// IsEmpty reports whether the rect encloses no area.
func (r Rect) IsEmpty() bool { return r.Right <= r.Left || r.Bottom <= r.Top }

// Contains reports whether (x, y) lies inside the half-open rect.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float32) Rect {
	return Rect{r.Left + dx, r.Top + dy, r.Right + dx, r.Bottom + dy}
}

// Union returns the smallest rect containing both r and o.
// An empty operand is ignored.
func (r Rect) Union(o Rect) Rect {
	switch {
	case o.IsEmpty():
		return r
	case r.IsEmpty():
		return o
	}
	return Rect{
		Left:   math32.Min(r.Left, o.Left),
		Top:    math32.Min(r.Top, o.Top),
		Right:  math32.Max(r.Right, o.Right),
		Bottom: math32.Max(r.Bottom, o.Bottom),
	}
}

// Round snaps every edge to the nearest whole pixel.
func (r Rect) Round() Rect {
	return Rect{
		Left:   math32.Round(r.Left),
		Top:    math32.Round(r.Top),
		Right:  math32.Round(r.Right),
		Bottom: math32.Round(r.Bottom),
	}
}

// Image returns the integer version of r, using floor for the min corner
// and ceil for the max corner.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math32.Floor(r.Left)), int(math32.Floor(r.Top)),
		int(math32.Ceil(r.Right)), int(math32.Ceil(r.Bottom)),
	)
}
