package canvas

import (
	"fmt"

	"github.com/matzehuels/drawset/pkg/geom"
)

// Color is a packed 0xAARRGGBB color.
type Color uint32

// RGBA returns the 8-bit channels.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Opacity returns alpha in [0, 1].
func (c Color) Opacity() float32 {
	_, _, _, a := c.RGBA()
	return float32(a) / 255
}

// Transparent reports whether alpha is zero.
func (c Color) Transparent() bool { return c>>24 == 0 }

// Font selects the face used for text.
type Font struct {
	Family string
	Size   float32
}

// Target receives drawing operations. Coordinates passed to the drawing
// methods are transformed by the current transform.
type Target interface {
	SetTransform(m geom.Matrix)
	FillRect(r geom.Rect, c Color)
	StrokeRect(r geom.Rect, c Color, width float32)
	FillEllipse(r geom.Rect, c Color)
	DrawText(r geom.Rect, text string, f Font, c Color)
}

// Canvas is a layout provider that is also a render target.
type Canvas interface {
	Layouter
	Target
}
