package object

import (
	"image"

	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/drawable"
	"github.com/matzehuels/drawset/pkg/errors"
	"github.com/matzehuels/drawset/pkg/geom"
)

// Object is one drawable element with its attribute overrides and cached
// layout geometry.
type Object struct {
	Label string
	Flags Flags

	// Geometry cached by Update and Arrange. Never persisted.
	LabelRect     image.Rectangle      // canvas space
	ObjectRect    geom.Rect            // canvas space, pixel-rounded
	LayoutBounds  geom.Rect            // world space
	ContentBounds geom.Rect            // world space
	Transform     geom.CachedTransform // world to canvas
	Origin        geom.Point           // re-anchors rotated or overflowing content

	values   attr.Values
	cookies  attr.Cookies
	drawable *drawable.Shared
	measure  drawable.Measurement
}

// New returns an object with every slot unset and the initial flags.
func New() Object {
	return Object{Flags: FlagsInitialDefaults}
}

// Clone returns a copy that shares o's drawable. Values, label and flags
// are copied; geometry and the cached measurement are not.
func (o *Object) Clone() Object {
	c := Object{
		Label:    o.Label,
		Flags:    o.Flags,
		values:   o.values,
		cookies:  o.cookies,
		drawable: o.drawable.Acquire(),
	}
	c.Invalidate()
	return c
}

// Release drops o's share of its drawable.
func (o *Object) Release() {
	o.drawable.Release()
	o.drawable = nil
}

// Drawable returns the shared drawable handle, nil before the first Update.
func (o *Object) Drawable() *drawable.Shared { return o.drawable }

// Set stores v in slot k and advances the slot's version.
func (o *Object) Set(k attr.Kind, v attr.Value) error {
	if err := o.values.Set(k, v); err != nil {
		return err
	}
	o.cookies.Advance(k)
	return nil
}

// SetString stores a string value.
func (o *Object) SetString(k attr.Kind, s string) error { return o.Set(k, attr.String(s)) }

// SetUint32 stores a uint32 value.
func (o *Object) SetUint32(k attr.Kind, u uint32) error { return o.Set(k, attr.Uint32(u)) }

// SetFloat32 stores a float32 value.
func (o *Object) SetFloat32(k attr.Kind, f float32) error { return o.Set(k, attr.Float32(f)) }

// SetBool stores a bool value.
func (o *Object) SetBool(k attr.Kind, b bool) error { return o.Set(k, attr.Bool(b)) }

// SetText parses text by the declared type of k. Empty or unparsable text
// resets the slot; the parse error is still returned.
func (o *Object) SetText(k attr.Kind, text string) error {
	err := o.values.SetText(k, text)
	if errors.Is(err, errors.ErrCodeNotFound) {
		return err
	}
	o.cookies.Advance(k)
	return err
}

// Reset returns slot k to unset.
func (o *Object) Reset(k attr.Kind) error { return o.Set(k, attr.Value{}) }

// Value returns the raw slot value, unset when no override is stored.
func (o *Object) Value(k attr.Kind) (attr.Value, error) { return o.values.Get(k) }

// Effective returns the slot value or the kind's default.
func (o *Object) Effective(k attr.Kind) attr.Value { return o.values.Effective(k) }

// Values returns a copy of the full slot array.
func (o *Object) Values() attr.Values { return o.values }

// typed fetches the effective value of k after checking its declared type.
func (o *Object) typed(k attr.Kind, t attr.Type) (attr.Value, error) {
	def, err := k.Definition()
	if err != nil {
		return attr.Value{}, err
	}
	if def.Type != t {
		return attr.Value{}, errors.New(errors.ErrCodeTypeMismatch, "%s is %s, not %s", def.Name, def.Type, t)
	}
	return o.values.Effective(k), nil
}

// String reads a string slot.
func (o *Object) String(k attr.Kind) (string, error) {
	v, err := o.typed(k, attr.TypeString)
	return v.Str(), err
}

// Uint32 reads a uint32 slot.
func (o *Object) Uint32(k attr.Kind) (uint32, error) {
	v, err := o.typed(k, attr.TypeUint32)
	return v.Uint32(), err
}

// Float32 reads a float32 slot.
func (o *Object) Float32(k attr.Kind) (float32, error) {
	v, err := o.typed(k, attr.TypeFloat32)
	return v.Float32(), err
}

// Bool reads a bool slot.
func (o *Object) Bool(k attr.Kind) (bool, error) {
	v, err := o.typed(k, attr.TypeBool)
	return v.Bool(), err
}

// GetString implements drawable.Source.
func (o *Object) GetString(id attr.Kind) (string, error) {
	v, err := o.values.Get(id)
	if err != nil {
		return "", err
	}
	if v.Type() != attr.TypeString {
		return "", errors.New(errors.ErrCodeNotFound, "no string value for %s", id)
	}
	return v.Str(), nil
}

// GetValueData implements drawable.Source.
func (o *Object) GetValueData(id attr.Kind) (attr.Type, []byte, error) {
	v, err := o.values.Get(id)
	if err != nil {
		return attr.TypeNone, nil, err
	}
	if !v.IsSet() {
		return attr.TypeNone, nil, errors.New(errors.ErrCodeNotFound, "no value for %s", id)
	}
	return v.Type(), v.Bytes(), nil
}

// GetCookie implements drawable.Source.
func (o *Object) GetCookie(id attr.Kind, cookie *uint32) (bool, error) {
	if !id.Valid() {
		return false, errors.New(errors.ErrCodeNotFound, "unknown attribute id %d", uint32(id))
	}
	changed := *cookie != o.cookies[id]
	*cookie = o.cookies[id]
	return changed, nil
}

// Update creates the drawable if needed and refreshes ContentBounds and
// LayoutBounds. Calling it again with unchanged attributes is a no-op.
func (o *Object) Update() {
	if o.drawable.Drawable() == nil {
		o.drawable = drawable.Share(drawable.New())
	}
	o.ContentBounds = o.measure.Measure(o.drawable.Drawable(), o)
	w, h := o.ContentBounds.Width(), o.ContentBounds.Height()
	if v := o.values[attr.Width]; v.IsSet() {
		w = v.Float32()
	}
	if v := o.values[attr.Height]; v.IsSet() {
		h = v.Float32()
	}
	o.LayoutBounds = geom.R(0, 0, w, h)
}

// Invalidate clears cached geometry and advances every slot version so the
// next Update remeasures. Drawable ownership is unchanged.
func (o *Object) Invalidate() {
	o.clearGeometry()
	o.LayoutBounds = geom.Rect{}
	o.ContentBounds = geom.Rect{}
	o.measure.Reset()
	o.cookies.AdvanceAll()
}

func (o *Object) clearGeometry() {
	o.LabelRect = image.Rectangle{}
	o.ObjectRect = geom.Rect{}
	o.Origin = geom.Point{}
	o.Transform.Invalidate()
}

// IsVisible reports false only when visibility is explicitly false.
func (o *Object) IsVisible() bool {
	v := o.values[attr.Visibility]
	return !v.IsSet() || v.Bool()
}

// IsPointInside reports whether (x, y) lies in ObjectRect, half-open on
// each axis. Objects that were never arranged contain no points.
func (o *Object) IsPointInside(x, y float32) bool {
	return o.ObjectRect.Contains(x, y)
}

// IsSelected reports whether FlagSelected is set.
func (o *Object) IsSelected() bool { return o.Flags.Has(FlagSelected) }

var _ drawable.Source = (*Object)(nil)
