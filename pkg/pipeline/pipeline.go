// Package pipeline provides the render pipeline shared by the CLI and the
// preview server.
//
// The pipeline consists of three stages:
//
//  1. Load: decode a document and build its objects
//  2. Arrange: Update every object and run the layout pass
//  3. Render: draw the objects onto an SVG canvas
//
// [Runner.Render] runs all three with caching keyed by the document bytes
// and the render options. The stages are also available on their own for
// callers that edit objects between loading and rendering.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Render(ctx, doc, pipeline.Options{
//	    Format: texttree.FormatYAML,
//	    Layout: canvas.Layout{Width: 800, Padding: 16},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.SVG)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/drawset/pkg/cache"
	"github.com/matzehuels/drawset/pkg/canvas"
	"github.com/matzehuels/drawset/pkg/errors"
	"github.com/matzehuels/drawset/pkg/object"
	"github.com/matzehuels/drawset/pkg/texttree"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultPadding is the gap between slots when none is configured.
	DefaultPadding = 16

	// DefaultSelectionColor outlines selected objects.
	DefaultSelectionColor canvas.Color = 0xFF1E90FF

	// TTLRender is how long rendered documents stay cached.
	TTLRender = 24 * time.Hour
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one pipeline run.
type Options struct {
	// Format is the codec of the input document.
	Format texttree.Format

	// Layout is handed to Arrange through the SVG canvas.
	Layout canvas.Layout

	// Background fills the document; transparent when zero.
	Background canvas.Color

	// Selection outlines selected objects in SelectionColor.
	Selection      bool
	SelectionColor canvas.Color

	// Refresh skips cache reads. Results are still written.
	Refresh bool

	// TTL overrides TTLRender.
	TTL time.Duration

	// Logger defaults to the runner's logger.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks required fields and applies defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Format == "" {
		return errors.New(errors.ErrCodeInvalidInput, "document format is required")
	}
	if _, err := texttree.ParseFormat(string(o.Format)); err != nil {
		return err
	}
	if o.Layout.Padding < 0 || o.Layout.Width < 0 || o.Layout.Height < 0 || o.Layout.LabelHeight < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "layout extents must not be negative")
	}
	if o.SelectionColor == 0 {
		o.SelectionColor = DefaultSelectionColor
	}
	if o.TTL == 0 {
		o.TTL = TTLRender
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// RenderKeyOpts returns the cache key options for o. The selection color
// only counts when the selection is drawn.
func (o *Options) RenderKeyOpts() cache.RenderKeyOpts {
	var selectionColor uint32
	if o.Selection {
		selectionColor = uint32(o.SelectionColor)
	}
	return cache.RenderKeyOpts{
		Format:      string(o.Format),
		Width:       o.Layout.Width,
		Height:      o.Layout.Height,
		Padding:     o.Layout.Padding,
		LabelHeight: o.Layout.LabelHeight,
		Flow:        o.Layout.FlowOrDefault().Name(),
		Background:  uint32(o.Background),
		Selection:   o.Selection,

		SelectionColor: selectionColor,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// SVG is the rendered document.
	SVG []byte

	// DocHash is the content hash of the input document.
	DocHash string

	// Objects are the arranged objects. Nil on a cache hit.
	Objects []object.Object

	// Warnings holds values that failed to parse while loading. The
	// affected slots were left at their defaults.
	Warnings error

	// CacheHit reports whether SVG came from the cache.
	CacheHit bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ObjectCount int
	LoadTime    time.Duration
	ArrangeTime time.Duration
	RenderTime  time.Duration
}
