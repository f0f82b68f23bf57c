package geom

import (
	"image"
	"testing"

	"github.com/chewxy/math32"
)

const tol = 1e-4

func near(a, b float32) bool { return math32.Abs(a-b) < tol }

func nearRect(a, b Rect) bool {
	return near(a.Left, b.Left) && near(a.Top, b.Top) && near(a.Right, b.Right) && near(a.Bottom, b.Bottom)
}

func TestRectContains(t *testing.T) {
	r := R(10, 20, 30, 40)
	tests := []struct {
		name string
		x, y float32
		want bool
	}{
		{"top-left corner", 10, 20, true},
		{"interior", 15, 25, true},
		{"right edge excluded", 30, 25, false},
		{"bottom edge excluded", 15, 40, false},
		{"left of rect", 9.99, 25, false},
		{"above rect", 15, 19.99, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestZeroRectContainsNothing(t *testing.T) {
	var r Rect
	if r.Contains(0, 0) {
		t.Error("zero Rect should not contain the origin")
	}
	if !r.IsEmpty() {
		t.Error("zero Rect should be empty")
	}
}

func TestRectUnion(t *testing.T) {
	a := R(0, 0, 10, 10)
	b := R(-5, 2, 4, 20)
	if got, want := a.Union(b), R(-5, 0, 10, 20); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %v, want %v", got, a)
	}
	if got := (Rect{}).Union(a); got != a {
		t.Errorf("empty Union = %v, want %v", got, a)
	}
}

func TestRectRoundAndImage(t *testing.T) {
	r := R(1.4, 1.6, 10.5, 20.49)
	if got, want := r.Round(), R(1, 2, 11, 20); got != want {
		t.Errorf("Round = %v, want %v", got, want)
	}
	if got, want := r.Image(), image.Rect(1, 1, 11, 21); got != want {
		t.Errorf("Image = %v, want %v", got, want)
	}
	if got := FromImage(image.Rect(1, 2, 3, 4)); got != R(1, 2, 3, 4) {
		t.Errorf("FromImage = %v", got)
	}
}

func TestMatrixMulOrder(t *testing.T) {
	// Scale then translate: (1,1) -> (2,2) -> (12,2).
	m := Scale(2, 2).Mul(Translate(10, 0))
	if got := m.Apply(Pt(1, 1)); !near(got.X, 12) || !near(got.Y, 2) {
		t.Errorf("Apply = %v, want (12, 2)", got)
	}

	// Translate then scale: (1,1) -> (11,1) -> (22,2).
	m = Translate(10, 0).Mul(Scale(2, 2))
	if got := m.Apply(Pt(1, 1)); !near(got.X, 22) || !near(got.Y, 2) {
		t.Errorf("Apply = %v, want (22, 2)", got)
	}
}

func TestMatrixIdentity(t *testing.T) {
	m := Rotate(30).Mul(Translate(4, 5))
	if got := m.Mul(Identity()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
}

func TestRotateApplyRect(t *testing.T) {
	// A 20x10 box rotated by 90 degrees becomes a 10x20 box left of the y axis.
	got := Rotate(90).ApplyRect(R(0, 0, 20, 10))
	if want := R(-10, 0, 0, 20); !nearRect(got, want) {
		t.Errorf("ApplyRect = %v, want %v", got, want)
	}
}

func TestCachedTransform(t *testing.T) {
	var c CachedTransform
	if !c.Matrix().IsIdentity() {
		t.Error("unbuilt transform should be the identity")
	}

	in := TransformInputs{Scale: 1, Rotation: 0, Offset: Pt(5, 6)}
	if !c.Update(in) {
		t.Error("first Update should rebuild")
	}
	if c.Update(in) {
		t.Error("Update with identical inputs should not rebuild")
	}
	if c.Rebuilds() != 1 {
		t.Errorf("Rebuilds = %d, want 1", c.Rebuilds())
	}
	if got := c.Matrix().Apply(Pt(0, 0)); got != Pt(5, 6) {
		t.Errorf("Apply origin = %v, want (5, 6)", got)
	}

	in.Offset = Pt(7, 6)
	if !c.Update(in) {
		t.Error("Update with changed inputs should rebuild")
	}

	c.Invalidate()
	if c.Valid() {
		t.Error("Valid after Invalidate")
	}
	if !c.Update(in) {
		t.Error("Update after Invalidate should rebuild")
	}
}
