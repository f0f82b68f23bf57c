package attr

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/drawset/pkg/errors"
)

// Type is the declared type of an attribute slot.
type Type uint8

// Value types.
const (
	TypeNone Type = iota // unset sentinel
	TypeString
	TypeUint32
	TypeFloat32
	TypeBool
)

var typeNames = [...]string{"none", "string", "uint32", "float32", "bool"}

// String implements fmt.Stringer.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// Value is a tagged attribute value. The zero Value is unset.
type Value struct {
	typ Type
	str string
	num uint32 // uint32 payload, float32 bits, or 0/1 for bool
}

// String returns a string Value.
func String(s string) Value { return Value{typ: TypeString, str: s} }

// Uint32 returns a uint32 Value.
func Uint32(u uint32) Value { return Value{typ: TypeUint32, num: u} }

// Float32 returns a float32 Value.
func Float32(f float32) Value { return Value{typ: TypeFloat32, num: math.Float32bits(f)} }

// Bool returns a bool Value.
func Bool(b bool) Value {
	v := Value{typ: TypeBool}
	if b {
		v.num = 1
	}
	return v
}

// Type returns the value's tag.
func (v Value) Type() Type { return v.typ }

// IsSet reports whether v holds a value.
func (v Value) IsSet() bool { return v.typ != TypeNone }

// Str returns the string payload; empty for other types.
func (v Value) Str() string { return v.str }

// Uint32 returns the uint32 payload; zero for other types.
func (v Value) Uint32() uint32 {
	if v.typ != TypeUint32 {
		return 0
	}
	return v.num
}

// Float32 returns the float32 payload; zero for other types.
func (v Value) Float32() float32 {
	if v.typ != TypeFloat32 {
		return 0
	}
	return math.Float32frombits(v.num)
}

// Bool returns the bool payload; false for other types.
func (v Value) Bool() bool { return v.typ == TypeBool && v.num != 0 }

// String formats the value as editable text. Unset values format as "".
// Text produced here is accepted by [Parse] for the same type.
func (v Value) String() string {
	switch v.typ {
	case TypeString:
		return v.str
	case TypeUint32:
		return "0x" + strings.ToUpper(strconv.FormatUint(uint64(v.num), 16))
	case TypeFloat32:
		return strconv.FormatFloat(float64(v.Float32()), 'g', -1, 32)
	case TypeBool:
		return strconv.FormatBool(v.num != 0)
	}
	return ""
}

// Bytes returns the raw little-endian encoding of the payload.
func (v Value) Bytes() []byte {
	switch v.typ {
	case TypeString:
		return []byte(v.str)
	case TypeUint32, TypeFloat32:
		return binary.LittleEndian.AppendUint32(nil, v.num)
	case TypeBool:
		return []byte{byte(v.num)}
	}
	return nil
}

// FromBytes decodes the raw form produced by [Value.Bytes].
func FromBytes(t Type, b []byte) (Value, error) {
	switch t {
	case TypeString:
		return String(string(b)), nil
	case TypeUint32, TypeFloat32:
		if len(b) != 4 {
			return Value{}, errors.New(errors.ErrCodeInvalidFormat, "%s payload must be 4 bytes, got %d", t, len(b))
		}
		return Value{typ: t, num: binary.LittleEndian.Uint32(b)}, nil
	case TypeBool:
		if len(b) != 1 {
			return Value{}, errors.New(errors.ErrCodeInvalidFormat, "bool payload must be 1 byte, got %d", len(b))
		}
		return Bool(b[0] != 0), nil
	}
	return Value{}, errors.New(errors.ErrCodeUnsupported, "cannot decode %s payload", t)
}

// Parse converts text into a Value of type t.
//
// uint32 accepts decimal, 0x-prefixed hex and #RRGGBB / #AARRGGBB colors
// (#RRGGBB is made opaque). float32 and bool use strconv. Surrounding
// space is ignored for those types; string text is kept verbatim.
func Parse(t Type, text string) (Value, error) {
	if t == TypeString {
		return String(text), nil
	}
	text = strings.TrimSpace(text)
	switch t {
	case TypeUint32:
		u, err := parseUint32(text)
		if err != nil {
			return Value{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %q as uint32", text)
		}
		return Uint32(u), nil
	case TypeFloat32:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return Value{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %q as float32", text)
		}
		return Float32(float32(f)), nil
	case TypeBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %q as bool", text)
		}
		return Bool(b), nil
	}
	return Value{}, errors.New(errors.ErrCodeUnsupported, "cannot parse into %s", t)
}

func parseUint32(text string) (uint32, error) {
	if hex, ok := strings.CutPrefix(text, "#"); ok {
		u, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, err
		}
		switch len(hex) {
		case 6:
			return uint32(u) | 0xFF000000, nil
		case 8:
			return uint32(u), nil
		}
		return 0, fmt.Errorf("color %q must have 6 or 8 hex digits", text)
	}
	u, err := strconv.ParseUint(text, 0, 32)
	return uint32(u), err
}
