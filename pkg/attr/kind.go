package attr

import (
	"fmt"

	"github.com/matzehuels/drawset/pkg/errors"
)

// Kind identifies one attribute slot.
type Kind uint32

// Attribute kinds. The order defines slot indices and serialization order.
const (
	Visibility Kind = iota
	Shape
	Text
	FontFamily
	FontSize
	Color
	Fill
	StrokeWidth
	PositionX
	PositionY
	Width
	Height
	Rotation
	Scale

	// Total is the number of attribute slots.
	Total int = iota
)

// Definition describes one attribute kind.
type Definition struct {
	Kind    Kind
	Name    string
	Type    Type
	Default Value // effective value when the slot is unset; unset when the default is computed
}

var definitions = [Total]Definition{
	{Visibility, "visibility", TypeBool, Bool(true)},
	{Shape, "shape", TypeString, String("rect")},
	{Text, "text", TypeString, String("")},
	{FontFamily, "font_family", TypeString, String("sans-serif")},
	{FontSize, "font_size", TypeFloat32, Float32(16)},
	{Color, "color", TypeUint32, Uint32(0xFF000000)},
	{Fill, "fill", TypeUint32, Uint32(0x00000000)},
	{StrokeWidth, "stroke_width", TypeFloat32, Float32(1)},
	{PositionX, "x", TypeFloat32, Float32(0)},
	{PositionY, "y", TypeFloat32, Float32(0)},
	{Width, "width", TypeFloat32, Value{}},
	{Height, "height", TypeFloat32, Value{}},
	{Rotation, "rotation", TypeFloat32, Float32(0)},
	{Scale, "scale", TypeFloat32, Float32(1)},
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, Total)
	for _, d := range definitions {
		m[d.Name] = d.Kind
	}
	return m
}()

// Valid reports whether k names a defined slot.
func (k Kind) Valid() bool { return int(k) < Total }

// Definition returns the static definition of k.
// It returns NotFound for kinds outside the enumeration.
func (k Kind) Definition() (Definition, error) {
	if !k.Valid() {
		return Definition{}, errors.New(errors.ErrCodeNotFound, "unknown attribute id %d", uint32(k))
	}
	return definitions[k], nil
}

// Name returns the serialization name, or a placeholder for unknown kinds.
func (k Kind) Name() string {
	if !k.Valid() {
		return fmt.Sprintf("attr(%d)", uint32(k))
	}
	return definitions[k].Name
}

// Type returns the declared type, or TypeNone for unknown kinds.
func (k Kind) Type() Type {
	if !k.Valid() {
		return TypeNone
	}
	return definitions[k].Type
}

// String implements fmt.Stringer.
func (k Kind) String() string { return k.Name() }

// Lookup resolves a serialization name.
func Lookup(name string) (Kind, bool) {
	k, ok := byName[name]
	return k, ok
}

// Kinds returns every kind in slot order.
func Kinds() []Kind {
	out := make([]Kind, Total)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Definitions returns the full definition table in slot order.
func Definitions() []Definition {
	out := make([]Definition, Total)
	copy(out, definitions[:])
	return out
}
