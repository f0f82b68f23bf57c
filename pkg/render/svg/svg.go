// Package svg renders drawings as SVG documents.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"github.com/matzehuels/drawset/pkg/canvas"
	"github.com/matzehuels/drawset/pkg/geom"
)

// Option configures a Canvas.
type Option func(*Canvas)

// WithLayout sets the layout configuration handed to Arrange.
func WithLayout(l canvas.Layout) Option { return func(c *Canvas) { c.layout = l } }

// WithBackground fills the whole document with col.
func WithBackground(col canvas.Color) Option { return func(c *Canvas) { c.background = col } }

// WithSize fixes the document size. Without it the size is derived from the
// layout extents, or from the drawn content when those are unbounded.
func WithSize(w, h float32) Option {
	return func(c *Canvas) { c.width, c.height = w, h }
}

// WithTitle adds a <title> element.
func WithTitle(title string) Option { return func(c *Canvas) { c.title = title } }

// Canvas is a canvas.Canvas that accumulates SVG elements.
type Canvas struct {
	layout        canvas.Layout
	background    canvas.Color
	width, height float32
	title         string

	transform geom.Matrix
	extent    geom.Rect
	body      bytes.Buffer
	elements  int
}

// New returns an empty canvas.
func New(opts ...Option) *Canvas {
	c := &Canvas{transform: geom.Identity()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Layout implements canvas.Layouter.
func (c *Canvas) Layout() canvas.Layout { return c.layout }

// SetTransform implements canvas.Target.
func (c *Canvas) SetTransform(m geom.Matrix) { c.transform = m }

// FillRect implements canvas.Target.
func (c *Canvas) FillRect(r geom.Rect, col canvas.Color) {
	c.element(r, `<rect x="%s" y="%s" width="%s" height="%s"%s%s/>`,
		num(r.Left), num(r.Top), num(r.Width()), num(r.Height()), fill(col), c.transformAttr())
}

// StrokeRect implements canvas.Target.
func (c *Canvas) StrokeRect(r geom.Rect, col canvas.Color, width float32) {
	c.element(r, `<rect x="%s" y="%s" width="%s" height="%s" fill="none"%s%s/>`,
		num(r.Left), num(r.Top), num(r.Width()), num(r.Height()), stroke(col, width), c.transformAttr())
}

// FillEllipse implements canvas.Target.
func (c *Canvas) FillEllipse(r geom.Rect, col canvas.Color) {
	c.element(r, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s"%s%s/>`,
		num((r.Left+r.Right)/2), num((r.Top+r.Bottom)/2), num(r.Width()/2), num(r.Height()/2),
		fill(col), c.transformAttr())
}

// DrawText implements canvas.Target. Text is centered in r.
func (c *Canvas) DrawText(r geom.Rect, text string, f canvas.Font, col canvas.Color) {
	if text == "" {
		return
	}
	c.element(r, `<text x="%s" y="%s" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%s"%s%s>%s</text>`,
		num((r.Left+r.Right)/2), num((r.Top+r.Bottom)/2), escape(f.Family), num(f.Size),
		fill(col), c.transformAttr(), escape(text))
}

// Elements returns how many elements have been drawn.
func (c *Canvas) Elements() int { return c.elements }

func (c *Canvas) element(r geom.Rect, format string, args ...any) {
	c.body.WriteString("  ")
	fmt.Fprintf(&c.body, format, args...)
	c.body.WriteByte('\n')
	c.extent = c.extent.Union(c.transform.ApplyRect(r))
	c.elements++
}

func (c *Canvas) transformAttr() string {
	if c.transform.IsIdentity() {
		return ""
	}
	m := c.transform
	return fmt.Sprintf(` transform="matrix(%s %s %s %s %s %s)"`,
		num(m.XX), num(m.YX), num(m.XY), num(m.YY), num(m.X0), num(m.Y0))
}

// Size returns the document size.
func (c *Canvas) Size() geom.Size {
	w, h := c.width, c.height
	if w <= 0 {
		w = c.layout.Width
	}
	if h <= 0 {
		h = c.layout.Height
	}
	if w <= 0 {
		w = math32.Ceil(math32.Max(c.extent.Right, 0) + c.layout.Padding)
	}
	if h <= 0 {
		h = math32.Ceil(math32.Max(c.extent.Bottom, 0) + c.layout.Padding)
	}
	return geom.Size{W: w, H: h}
}

// Bytes returns the complete SVG document.
func (c *Canvas) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = c.WriteTo(&buf)
	return buf.Bytes()
}

// WriteTo writes the complete SVG document to w.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	size := c.Size()
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(size.W), num(size.H), num(size.W), num(size.H))
	if c.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(c.title))
	}
	if !c.background.Transparent() {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="100%%" height="100%%"%s/>`+"\n", fill(c.background))
	}
	buf.Write(c.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.WriteTo(w)
}

// Reset drops drawn elements and restores the identity transform.
func (c *Canvas) Reset() {
	c.body.Reset()
	c.extent = geom.Rect{}
	c.elements = 0
	c.transform = geom.Identity()
}

func fill(col canvas.Color) string {
	if col.Transparent() {
		return ` fill="none"`
	}
	s := fmt.Sprintf(` fill="%s"`, col.Hex())
	if o := col.Opacity(); o < 1 {
		s += fmt.Sprintf(` fill-opacity="%s"`, num(o))
	}
	return s
}

func stroke(col canvas.Color, width float32) string {
	s := fmt.Sprintf(` stroke="%s" stroke-width="%s"`, col.Hex(), num(width))
	if o := col.Opacity(); o < 1 {
		s += fmt.Sprintf(` stroke-opacity="%s"`, num(o))
	}
	return s
}

// num formats v with at most two decimals and no trailing zeros.
func num(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', 2, 32)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

var _ canvas.Canvas = (*Canvas)(nil)
