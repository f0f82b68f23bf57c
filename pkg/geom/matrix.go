package geom

import "github.com/chewxy/math32"

// Matrix is a 3x2 affine transform. The zero value is not the identity;
// use [Identity].
type Matrix struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity returns the identity transform.
func Identity() Matrix { return Matrix{XX: 1, YY: 1} }

// Translate returns a translation by (x, y).
func Translate(x, y float32) Matrix { return Matrix{XX: 1, YY: 1, X0: x, Y0: y} }

// Scale returns a scale by (sx, sy) around the origin.
func Scale(sx, sy float32) Matrix { return Matrix{XX: sx, YY: sy} }

// Rotate returns a clockwise rotation (in canvas space) by degrees around
// the origin.
func Rotate(degrees float32) Matrix {
	sin, cos := math32.Sincos(degrees * math32.Pi / 180)
	return Matrix{XX: cos, YX: sin, XY: -sin, YY: cos}
}

// Mul returns the transform that applies a and then b.
func (a Matrix) Mul(b Matrix) Matrix {
	return Matrix{
		XX: a.XX*b.XX + a.YX*b.XY,
		YX: a.XX*b.YX + a.YX*b.YY,
		XY: a.XY*b.XX + a.YY*b.XY,
		YY: a.XY*b.YX + a.YY*b.YY,
		X0: a.X0*b.XX + a.Y0*b.XY + b.X0,
		Y0: a.X0*b.YX + a.Y0*b.YY + b.Y0,
	}
}

// Apply transforms a point.
func (a Matrix) Apply(p Point) Point {
	return Point{
		X: p.X*a.XX + p.Y*a.XY + a.X0,
		Y: p.X*a.YX + p.Y*a.YY + a.Y0,
	}
}

// ApplyRect returns the axis-aligned bounding box of r after transformation.
func (a Matrix) ApplyRect(r Rect) Rect {
	corners := [4]Point{
		a.Apply(Point{r.Left, r.Top}),
		a.Apply(Point{r.Right, r.Top}),
		a.Apply(Point{r.Left, r.Bottom}),
		a.Apply(Point{r.Right, r.Bottom}),
	}
	out := Rect{Left: corners[0].X, Top: corners[0].Y, Right: corners[0].X, Bottom: corners[0].Y}
	for _, c := range corners[1:] {
		out.Left = math32.Min(out.Left, c.X)
		out.Top = math32.Min(out.Top, c.Y)
		out.Right = math32.Max(out.Right, c.X)
		out.Bottom = math32.Max(out.Bottom, c.Y)
	}
	return out
}

// IsIdentity reports whether a is exactly the identity.
func (a Matrix) IsIdentity() bool { return a == Identity() }
