// Package geom provides the float32 geometry used for canvas layout.
//
// Coordinates follow the usual 2D canvas convention: x grows to the right
// and y grows downward. A [Rect] is stored as its four edges and is
// half-open: it contains a point p when Left <= p.X < Right and
// Top <= p.Y < Bottom.
//
// [Matrix] is a 3x2 affine transform with the row-vector convention
//
//	x' = x*XX + y*XY + X0
//	y' = x*YX + y*YY + Y0
//
// so a.Mul(b) applies a first and then b. [CachedTransform] holds a matrix
// together with the inputs it was built from and only rebuilds it when those
// inputs change.
package geom
