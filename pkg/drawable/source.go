package drawable

import (
	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/errors"
)

// Source is the read-back capability an object offers its drawable.
type Source interface {
	// GetString returns a string slot. It fails with NotFound when the kind
	// is unknown, not string-typed, or unset.
	GetString(id attr.Kind) (string, error)

	// GetValueData returns the slot's type and raw byte form. It fails with
	// NotFound when the kind is unknown or unset.
	GetValueData(id attr.Kind) (attr.Type, []byte, error)

	// GetCookie writes the slot's current version into cookie and reports
	// whether it differed from the value passed in.
	GetCookie(id attr.Kind, cookie *uint32) (changed bool, err error)
}

// value reads a slot through src, falling back to the kind's effective
// default when the source does not hold it.
func value(src Source, k attr.Kind) attr.Value {
	t, data, err := src.GetValueData(k)
	if err == nil {
		if v, err := attr.FromBytes(t, data); err == nil {
			return v
		}
	}
	def, err := k.Definition()
	if err != nil {
		return attr.Value{}
	}
	return def.Default
}

// String reads a string slot.
func String(src Source, k attr.Kind) string {
	s, err := src.GetString(k)
	if errors.Is(err, errors.ErrCodeNotFound) {
		return value(src, k).Str()
	}
	return s
}

// Float32 reads a float32 slot.
func Float32(src Source, k attr.Kind) float32 { return value(src, k).Float32() }

// Uint32 reads a uint32 slot.
func Uint32(src Source, k attr.Kind) uint32 { return value(src, k).Uint32() }

// Bool reads a bool slot.
func Bool(src Source, k attr.Kind) bool { return value(src, k).Bool() }

// IsSet reports whether src holds a value for k.
func IsSet(src Source, k attr.Kind) bool {
	_, _, err := src.GetValueData(k)
	return err == nil
}
