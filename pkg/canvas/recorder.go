package canvas

import "github.com/matzehuels/drawset/pkg/geom"

// OpKind identifies a recorded operation.
type OpKind string

// Recorded operation kinds.
const (
	OpFillRect    OpKind = "fill-rect"
	OpStrokeRect  OpKind = "stroke-rect"
	OpFillEllipse OpKind = "fill-ellipse"
	OpText        OpKind = "text"
)

// Op is one recorded drawing operation with the transform active at the time.
type Op struct {
	Kind      OpKind
	Rect      geom.Rect
	Color     Color
	Width     float32
	Text      string
	Font      Font
	Transform geom.Matrix
}

// Recorder is a Canvas that records operations in memory.
type Recorder struct {
	Config Layout
	Ops    []Op

	transform geom.Matrix
}

// NewRecorder returns a recorder using l for layout.
func NewRecorder(l Layout) *Recorder {
	return &Recorder{Config: l, transform: geom.Identity()}
}

// Layout implements Layouter.
func (r *Recorder) Layout() Layout { return r.Config }

// SetTransform implements Target.
func (r *Recorder) SetTransform(m geom.Matrix) { r.transform = m }

// FillRect implements Target.
func (r *Recorder) FillRect(rect geom.Rect, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, Color: c, Transform: r.transform})
}

// StrokeRect implements Target.
func (r *Recorder) StrokeRect(rect geom.Rect, c Color, width float32) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, Rect: rect, Color: c, Width: width, Transform: r.transform})
}

// FillEllipse implements Target.
func (r *Recorder) FillEllipse(rect geom.Rect, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillEllipse, Rect: rect, Color: c, Transform: r.transform})
}

// DrawText implements Target.
func (r *Recorder) DrawText(rect geom.Rect, text string, f Font, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Rect: rect, Text: text, Font: f, Color: c, Transform: r.transform})
}

// Texts returns the text of every recorded text operation in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset drops recorded operations and restores the identity transform.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.transform = geom.Identity()
}

var _ Canvas = (*Recorder)(nil)
