// Package pkg provides the core libraries for drawset.
//
// # Overview
//
// Drawset keeps a list of drawable objects, each carrying a fixed set of
// typed attribute overrides. Objects are arranged on a canvas, drawn, and
// edited in batches over a selection. The pkg directory is organized into
// these areas:
//
//  1. [attr], [drawable], [object] - Domain model (attribute slots, shapes, objects)
//  2. [canvas], [geom], [render/svg] - Layout and drawing targets
//  3. [texttree], [io] - Document formats (YAML, JSON, TOML, msgpack)
//  4. [cache], [config], [observability] - Infrastructure
//  5. [pipeline] - Orchestration (load → arrange → render)
//
// # Architecture
//
// The typical data flow through drawset:
//
//	Document (yaml/json/toml/msgpack)
//	         ↓
//	    [texttree] package (generic name/value tree)
//	         ↓
//	    [io] package (tree ↔ objects)
//	         ↓
//	    [object] package (update, arrange, batch edits)
//	         ↓
//	    [render/svg] package (SVG output)
//
// # Quick Start
//
// Load a document and render it:
//
//	objects, warnings := io.ReadFile("drawing.yaml")
//	if objects == nil && warnings != nil {
//	    return warnings
//	}
//	object.UpdateAll(objects)
//
//	layout := canvas.Layout{Width: 800, Padding: 16}
//	c := svg.New(svg.WithLayout(layout))
//	object.Arrange(objects, layout)
//	object.Draw(objects, c, geom.Identity())
//	os.WriteFile("drawing.svg", c.Bytes(), 0o644)
//
// Or let the pipeline do the same with caching:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Render(ctx, doc, pipeline.Options{
//	    Format: texttree.FormatYAML,
//	    Layout: layout,
//	})
//
// # Batch Editing
//
// Operations in [object] take a slice of objects and a list of indices.
// Out-of-range indices are reported, never fatal, so a batch edit applies
// to every valid target:
//
//	err := object.Set(objects, object.Selected(objects), attr.Fill, "#ff0000")
//	object.Update(objects, object.Selected(objects))
//
// [attr]: https://pkg.go.dev/github.com/matzehuels/drawset/pkg/attr
// [drawable]: https://pkg.go.dev/github.com/matzehuels/drawset/pkg/drawable
// [object]: https://pkg.go.dev/github.com/matzehuels/drawset/pkg/object
// [canvas]: https://pkg.go.dev/github.com/matzehuels/drawset/pkg/canvas
// [geom]: https://pkg.go.dev/github.com/matzehuels/drawset/pkg/geom
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/drawset/pkg/render/svg
// [texttree]: https://pkg.go.dev/github.com/matzehuels/drawset/pkg/texttree
// [io]: https://pkg.go.dev/github.com/matzehuels/drawset/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/drawset/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/drawset/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/drawset/pkg/observability
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/drawset/pkg/pipeline
package pkg
