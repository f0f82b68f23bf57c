package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/drawset/pkg/cache"
	"github.com/matzehuels/drawset/pkg/canvas"
	"github.com/matzehuels/drawset/pkg/errors"
	"github.com/matzehuels/drawset/pkg/geom"
	drawio "github.com/matzehuels/drawset/pkg/io"
	"github.com/matzehuels/drawset/pkg/object"
	"github.com/matzehuels/drawset/pkg/observability"
	"github.com/matzehuels/drawset/pkg/render/svg"
	"github.com/matzehuels/drawset/pkg/texttree"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner; every run builds its own object list.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Render runs the complete load → arrange → render pipeline with caching.
func (r *Runner) Render(ctx context.Context, doc []byte, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{DocHash: cache.Hash(doc)}
	key := r.Keyer.RenderKey(result.DocHash, opts.RenderKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "render")
			opts.Logger.Debug("render cache hit", "hash", result.DocHash[:12])
			result.SVG = data
			result.CacheHit = true
			return result, nil
		} else if err != nil {
			opts.Logger.Warn("cache read failed", "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	// Stage 1: Load
	loadStart := time.Now()
	objects, warnings, err := r.Load(ctx, doc, opts.Format)
	if err != nil {
		return nil, err
	}
	result.Warnings = warnings
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ObjectCount = len(objects)

	opts.Logger.Info("loaded document",
		"objects", len(objects),
		"duration", result.Stats.LoadTime)
	if warnings != nil {
		opts.Logger.Warn("some values could not be parsed", "error", warnings)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Arrange
	arrangeStart := time.Now()
	r.Arrange(ctx, objects, opts.Layout)
	result.Stats.ArrangeTime = time.Since(arrangeStart)

	opts.Logger.Debug("arranged objects",
		"flow", opts.Layout.FlowOrDefault().Name(),
		"duration", result.Stats.ArrangeTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	result.SVG = r.Draw(ctx, objects, opts)
	result.Objects = objects
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered document",
		"bytes", len(result.SVG),
		"duration", result.Stats.RenderTime)

	if err := r.Cache.Set(ctx, key, result.SVG, opts.TTL); err != nil {
		opts.Logger.Warn("cache write failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "render", len(result.SVG))
	}

	return result, nil
}

// Load decodes doc and builds its objects. Values that fail to parse are
// returned as warnings alongside the objects; err is set only when the
// document itself cannot be decoded.
func (r *Runner) Load(ctx context.Context, doc []byte, format texttree.Format) (objects []object.Object, warnings, err error) {
	observability.Pipeline().OnLoadStart(ctx, string(format), len(doc))
	start := time.Now()

	objects, loadErr := drawio.Read(bytes.NewReader(doc), format)
	if objects == nil && loadErr != nil {
		observability.Pipeline().OnLoadComplete(ctx, string(format), 0, time.Since(start), loadErr)
		return nil, nil, loadErr
	}
	if objects == nil {
		objects = []object.Object{}
	}
	observability.Pipeline().OnLoadComplete(ctx, string(format), len(objects), time.Since(start), nil)
	return objects, loadErr, nil
}

// Arrange updates every object and lays them out with l.
func (r *Runner) Arrange(ctx context.Context, objects []object.Object, l canvas.Layout) {
	flow := l.FlowOrDefault().Name()
	observability.Pipeline().OnArrangeStart(ctx, flow, len(objects))
	start := time.Now()

	object.UpdateAll(objects)
	object.Arrange(objects, l)

	observability.Pipeline().OnArrangeComplete(ctx, flow, time.Since(start))
}

// Draw renders arranged objects to an SVG document.
func (r *Runner) Draw(ctx context.Context, objects []object.Object, opts Options) []byte {
	observability.Pipeline().OnRenderStart(ctx, "svg")
	start := time.Now()

	c := svg.New(svg.WithLayout(opts.Layout), svg.WithBackground(opts.Background))
	object.Draw(objects, c, geom.Identity())
	if opts.Selection {
		color := opts.SelectionColor
		if color == 0 {
			color = DefaultSelectionColor
		}
		object.DrawSelection(objects, c, geom.Identity(), color)
	}
	data := c.Bytes()

	observability.Pipeline().OnRenderComplete(ctx, "svg", len(data), time.Since(start), nil)
	return data
}

// Store writes a rendered document under id.
func (r *Runner) Store(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	if err := r.Cache.Set(ctx, r.Keyer.StoredKey(id), data, ttl); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "store render %s", id)
	}
	observability.Cache().OnCacheSet(ctx, "stored", len(data))
	return nil
}

// Fetch reads a document written by Store.
func (r *Runner) Fetch(ctx context.Context, id string) ([]byte, error) {
	data, hit, err := r.Cache.Get(ctx, r.Keyer.StoredKey(id))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "fetch render %s", id)
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "stored")
		return nil, errors.New(errors.ErrCodeNotFound, "render %s not found", id)
	}
	observability.Cache().OnCacheHit(ctx, "stored")
	return data, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
