package drawable

import (
	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/canvas"
	"github.com/matzehuels/drawset/pkg/geom"
)

// Drawable is a visual element whose appearance depends on attribute values.
type Drawable interface {
	// Update measures the element and returns its content bounds in world
	// space, relative to the top-left of the layout box. It must not keep
	// per-source state; see [Measurement].
	Update(src Source) geom.Rect

	// DependsOn lists the attributes Update reads.
	DependsOn() []attr.Kind

	// Draw renders the element onto t. The caller has already set the
	// object transform.
	Draw(t canvas.Target, src Source)
}

// New returns the built-in drawable. It reads the shape attribute on every
// update, so one instance serves rect, ellipse and text objects alike.
func New() Drawable { return &Shape{} }

// Shared is a reference-counted handle to a drawable held by one or more
// objects. A nil *Shared is valid and holds nothing.
type Shared struct {
	d    Drawable
	refs int
}

// Share wraps d with a reference count of one.
func Share(d Drawable) *Shared {
	return &Shared{d: d, refs: 1}
}

// Acquire adds a holder and returns s.
func (s *Shared) Acquire() *Shared {
	if s != nil {
		s.refs++
	}
	return s
}

// Release drops a holder. It reports whether s has no holders left.
func (s *Shared) Release() bool {
	if s == nil || s.refs == 0 {
		return true
	}
	s.refs--
	if s.refs == 0 {
		s.d = nil
		return true
	}
	return false
}

// Refs returns the number of holders.
func (s *Shared) Refs() int {
	if s == nil {
		return 0
	}
	return s.refs
}

// Drawable returns the wrapped element, or nil once released.
func (s *Shared) Drawable() Drawable {
	if s == nil {
		return nil
	}
	return s.d
}
