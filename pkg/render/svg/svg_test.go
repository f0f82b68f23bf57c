package svg

import (
	"strings"
	"testing"

	"github.com/matzehuels/drawset/pkg/canvas"
	"github.com/matzehuels/drawset/pkg/geom"
)

func TestEmptyDocument(t *testing.T) {
	out := string(New(WithSize(100, 50)).Bytes())
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50" width="100" height="50">`) {
		t.Errorf("unexpected header: %s", out)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("document not closed: %s", out)
	}
}

func TestElements(t *testing.T) {
	c := New(WithLayout(canvas.Layout{Padding: 10}), WithBackground(0xFFFFFFFF), WithTitle("a < b"))
	c.FillRect(geom.R(10, 10, 58, 58), 0xFFFF0000)
	c.SetTransform(geom.Translate(5, 0))
	c.StrokeRect(geom.R(0, 0, 20, 20), 0x80000000, 1.5)
	c.SetTransform(geom.Identity())
	c.FillEllipse(geom.R(0, 0, 40, 20), 0xFF00FF00)
	c.DrawText(geom.R(0, 60, 100, 80), "x & y", canvas.Font{Family: "serif", Size: 12}, 0xFF000000)
	c.DrawText(geom.R(0, 0, 1, 1), "", canvas.Font{}, 0xFF000000)

	if c.Elements() != 4 {
		t.Errorf("Elements() = %d, want 4", c.Elements())
	}

	out := string(c.Bytes())
	for _, want := range []string{
		`<title>a &lt; b</title>`,
		`<rect x="0" y="0" width="100%" height="100%" fill="#ffffff"/>`,
		`<rect x="10" y="10" width="48" height="48" fill="#ff0000"/>`,
		`fill="none" stroke="#000000" stroke-width="1.5" stroke-opacity="0.5" transform="matrix(1 0 0 1 5 0)"`,
		`<ellipse cx="20" cy="10" rx="20" ry="10" fill="#00ff00"/>`,
		`font-family="serif" font-size="12" fill="#000000">x &amp; y</text>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestSizeFromContent(t *testing.T) {
	c := New(WithLayout(canvas.Layout{Padding: 10}))
	c.FillRect(geom.R(10, 10, 58, 58), 0xFF000000)
	c.SetTransform(geom.Translate(100, 0))
	c.FillRect(geom.R(0, 0, 20.5, 20), 0xFF000000)

	got := c.Size()
	if got != (geom.Size{W: 131, H: 68}) {
		t.Errorf("Size() = %v, want 131x68", got)
	}

	c.Reset()
	if c.Elements() != 0 || c.Size() != (geom.Size{W: 10, H: 10}) {
		t.Errorf("Reset left %d elements, size %v", c.Elements(), c.Size())
	}
}

func TestSizeFromLayout(t *testing.T) {
	c := New(WithLayout(canvas.Layout{Width: 640, Height: 480}))
	if got := c.Size(); got != (geom.Size{W: 640, H: 480}) {
		t.Errorf("Size() = %v", got)
	}
}

func TestNum(t *testing.T) {
	tests := map[float32]string{
		0:       "0",
		1:       "1",
		1.5:     "1.5",
		0.126:   "0.13",
		-0.001:  "0",
		100:     "100",
		-12.345: "-12.35",
	}
	for in, want := range tests {
		if got := num(in); got != want {
			t.Errorf("num(%v) = %q, want %q", in, got, want)
		}
	}
}
