// Package render groups the concrete canvases drawings are rendered onto.
//
// The [svg] subpackage implements [canvas.Canvas] and produces a standalone
// SVG document:
//
//	c := svg.New(svg.WithLayout(layout), svg.WithBackground(0xFFFFFFFF))
//	object.Arrange(objects, c)
//	object.Draw(objects, c, geom.Identity())
//	data := c.Bytes()
//
// For tests and tooling that need the individual draw calls rather than an
// image, use [canvas.Recorder].
//
// [svg]: github.com/matzehuels/drawset/pkg/render/svg
// [canvas.Canvas]: github.com/matzehuels/drawset/pkg/canvas.Canvas
// [canvas.Recorder]: github.com/matzehuels/drawset/pkg/canvas.Recorder
package render
