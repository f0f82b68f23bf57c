package server

import (
	stderrors "errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/drawset/pkg/buildinfo"
	"github.com/matzehuels/drawset/pkg/canvas"
	"github.com/matzehuels/drawset/pkg/errors"
	"github.com/matzehuels/drawset/pkg/geom"
	"github.com/matzehuels/drawset/pkg/object"
	"github.com/matzehuels/drawset/pkg/pipeline"
	"github.com/matzehuels/drawset/pkg/texttree"
)

// Response headers.
const (
	HeaderRenderID = "X-Render-Id"
	HeaderCache    = "X-Cache"
)

// contentTypes maps request media types to document formats.
var contentTypes = map[string]texttree.Format{
	"application/yaml":      texttree.FormatYAML,
	"application/x-yaml":    texttree.FormatYAML,
	"text/yaml":             texttree.FormatYAML,
	"application/json":      texttree.FormatJSON,
	"application/toml":      texttree.FormatTOML,
	"application/msgpack":   texttree.FormatMsgpack,
	"application/x-msgpack": texttree.FormatMsgpack,
}

// =============================================================================
// Health
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// =============================================================================
// Render
// =============================================================================

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	doc, opts, err := s.readRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Render(r.Context(), doc, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer releaseAll(result.Objects)

	id := uuid.NewString()
	if err := s.runner.Store(r.Context(), id, result.SVG, s.cfg.RenderTTL); err != nil {
		s.logger.Warn("store render failed", "id", id, "error", err)
		id = ""
	}

	if id != "" {
		w.Header().Set(HeaderRenderID, id)
	}
	w.Header().Set(HeaderCache, cacheStatus(result.CacheHit))
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Server", buildinfo.UserAgent())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.SVG)
}

func (s *Server) handleGetRender(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidArgument, err, "invalid render id %q", raw))
		return
	}
	data, err := s.runner.Fetch(r.Context(), id.String())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// =============================================================================
// Arrange
// =============================================================================

// rect is a rectangle in canvas space.
type rect struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	W float32 `json:"w"`
	H float32 `json:"h"`
}

func rectOf(r geom.Rect) rect {
	return rect{X: r.Left, Y: r.Top, W: r.Width(), H: r.Height()}
}

// arrangedObject describes one object after Arrange.
type arrangedObject struct {
	Index     int    `json:"index"`
	Label     string `json:"label,omitempty"`
	Visible   bool   `json:"visible"`
	Selected  bool   `json:"selected"`
	Rect      rect   `json:"rect"`
	LabelRect *rect  `json:"label_rect,omitempty"`
}

type arrangeResponse struct {
	Layout   string           `json:"layout"`
	Objects  []arrangedObject `json:"objects"`
	Warnings string           `json:"warnings,omitempty"`
}

func (s *Server) handleArrange(w http.ResponseWriter, r *http.Request) {
	doc, opts, err := s.readRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	objects, warnings, err := s.runner.Load(r.Context(), doc, opts.Format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer releaseAll(objects)
	s.runner.Arrange(r.Context(), objects, opts.Layout)

	resp := arrangeResponse{
		Layout:  opts.Layout.String(),
		Objects: make([]arrangedObject, len(objects)),
	}
	if warnings != nil {
		resp.Warnings = warnings.Error()
	}
	for i := range objects {
		o := &objects[i]
		a := arrangedObject{
			Index:    i,
			Label:    o.Label,
			Visible:  o.IsVisible(),
			Selected: o.IsSelected(),
			Rect:     rectOf(o.ObjectRect),
		}
		if !o.LabelRect.Empty() {
			lr := rectOf(geom.FromImage(o.LabelRect))
			a.LabelRect = &lr
		}
		resp.Objects[i] = a
	}
	writeJSON(w, http.StatusOK, resp)
}

func releaseAll(objects []object.Object) {
	for i := range objects {
		objects[i].Release()
	}
}

// =============================================================================
// Request Parsing
// =============================================================================

// readRequest reads the document body and builds pipeline options from the
// server defaults and the query string.
func (s *Server) readRequest(r *http.Request) ([]byte, pipeline.Options, error) {
	opts := pipeline.Options{
		Layout:     s.cfg.Layout,
		Background: s.cfg.Background,
		Logger:     s.logger,
	}

	format, err := requestFormat(r)
	if err != nil {
		return nil, opts, err
	}
	opts.Format = format

	q := r.URL.Query()
	for name, dst := range map[string]*float32{
		"width":        &opts.Layout.Width,
		"height":       &opts.Layout.Height,
		"padding":      &opts.Layout.Padding,
		"label_height": &opts.Layout.LabelHeight,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 32)
		if err != nil || f < 0 {
			return nil, opts, errors.New(errors.ErrCodeInvalidArgument, "query %s: want a non-negative number, got %q", name, v)
		}
		*dst = float32(f)
	}
	if v := q.Get("flow"); v != "" {
		flow, err := canvas.FlowByName(v)
		if err != nil {
			return nil, opts, err
		}
		opts.Layout.Flow = flow
	}
	if v := q.Get("selection"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, opts, errors.New(errors.ErrCodeInvalidArgument, "query selection: want a boolean, got %q", v)
		}
		opts.Selection = b
	}
	opts.Refresh = q.Get("refresh") == "true"

	doc, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "document exceeds %d bytes", tooLarge.Limit)
		}
		return nil, opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "read document")
	}
	if len(doc) == 0 {
		return nil, opts, errors.New(errors.ErrCodeInvalidInput, "empty document")
	}
	return doc, opts, nil
}

// requestFormat picks the document format from the format query parameter,
// then the Content-Type header, defaulting to YAML.
func requestFormat(r *http.Request) (texttree.Format, error) {
	if v := r.URL.Query().Get("format"); v != "" {
		return texttree.ParseFormat(v)
	}
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return texttree.FormatYAML, nil
	}
	mediaType, _, _ := strings.Cut(ct, ";")
	mediaType = strings.TrimSpace(strings.ToLower(mediaType))
	if f, ok := contentTypes[mediaType]; ok {
		return f, nil
	}
	if mediaType == "text/plain" || mediaType == "application/octet-stream" {
		return texttree.FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported content type %q", ct)
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
