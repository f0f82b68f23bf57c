// Package attr defines the attribute model of a drawable object.
//
// # Kinds
//
// [Kind] is a closed enumeration: every kind has a fixed slot index in
// [Values], a serialization name, a declared [Type] and an effective default
// that readers fall back to when the slot is unset. The table is static;
// [Total] is the number of slots every object carries.
//
// # Values
//
// A [Value] is a tagged union of string, uint32, float32 and bool. The zero
// Value is the unset sentinel: it has [TypeNone] and compares equal to every
// other unset Value. Values are comparable with ==, which is the exact
// equality used for mixed-selection detection.
//
// # Cookies
//
// [Cookies] holds one version counter per slot. Writers advance the counter
// of a slot whenever they change it so dependents can detect changes by
// comparing a remembered cookie instead of the value itself.
package attr
