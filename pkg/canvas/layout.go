package canvas

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/matzehuels/drawset/pkg/errors"
	"github.com/matzehuels/drawset/pkg/geom"
)

// Layout is the configuration a canvas supplies to Arrange.
type Layout struct {
	Padding     float32 // gap between slots and around the canvas edge
	Width       float32 // available width; 0 means unbounded
	Height      float32 // available height; 0 means unbounded
	LabelHeight float32 // height reserved below labelled objects
	Flow        Flow    // placement policy; nil means RowFlow
}

// Layouter supplies layout configuration.
type Layouter interface {
	Layout() Layout
}

// Layout lets a bare Layout act as a Layouter.
func (l Layout) Layout() Layout { return l }

// FlowOrDefault returns the configured flow, or RowFlow.
func (l Layout) FlowOrDefault() Flow {
	if l.Flow == nil {
		return RowFlow{}
	}
	return l.Flow
}

// Cursor is the running placement state of one Arrange pass.
type Cursor struct {
	X, Y float32 // next slot position
	Line float32 // extent of the current row (RowFlow) or column (ColumnFlow)
	N    int     // slots placed on the current line
}

// NewCursor returns a cursor at the padded canvas origin.
func NewCursor(l Layout) Cursor {
	return Cursor{X: l.Padding, Y: l.Padding}
}

// Flow places slots one after another.
type Flow interface {
	// Name identifies the policy in configuration files.
	Name() string
	// Place returns the top-left position of a slot of the given size and
	// advances c past it.
	Place(c *Cursor, size geom.Size, l Layout) geom.Point
}

// RowFlow places slots left to right and wraps to a new row below the
// tallest slot of the current one.
type RowFlow struct{}

// Name implements Flow.
func (RowFlow) Name() string { return "row" }

// Place implements Flow.
func (RowFlow) Place(c *Cursor, size geom.Size, l Layout) geom.Point {
	if l.Width > 0 && c.N > 0 && c.X+size.W > l.Width-l.Padding {
		c.X = l.Padding
		c.Y += c.Line + l.Padding
		c.Line = 0
		c.N = 0
	}
	pos := geom.Pt(c.X, c.Y)
	c.X += size.W + l.Padding
	c.Line = math32.Max(c.Line, size.H)
	c.N++
	return pos
}

// ColumnFlow places slots top to bottom and wraps to a new column right of
// the widest slot of the current one.
type ColumnFlow struct{}

// Name implements Flow.
func (ColumnFlow) Name() string { return "column" }

// Place implements Flow.
func (ColumnFlow) Place(c *Cursor, size geom.Size, l Layout) geom.Point {
	if l.Height > 0 && c.N > 0 && c.Y+size.H > l.Height-l.Padding {
		c.Y = l.Padding
		c.X += c.Line + l.Padding
		c.Line = 0
		c.N = 0
	}
	pos := geom.Pt(c.X, c.Y)
	c.Y += size.H + l.Padding
	c.Line = math32.Max(c.Line, size.W)
	c.N++
	return pos
}

var flows = map[string]Flow{
	RowFlow{}.Name():    RowFlow{},
	ColumnFlow{}.Name(): ColumnFlow{},
}

// FlowByName resolves a flow policy name. The empty name selects RowFlow.
func FlowByName(name string) (Flow, error) {
	if name == "" {
		return RowFlow{}, nil
	}
	if f, ok := flows[name]; ok {
		return f, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown flow %q (must be 'row' or 'column')", name)
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	return fmt.Sprintf("%s flow, %gx%g, padding %g", l.FlowOrDefault().Name(), l.Width, l.Height, l.Padding)
}
