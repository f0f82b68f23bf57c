package attr

import "github.com/matzehuels/drawset/pkg/errors"

// Values is the complete slot array of one object.
type Values [Total]Value

// Get returns the raw slot value.
func (vs *Values) Get(k Kind) (Value, error) {
	if !k.Valid() {
		return Value{}, errors.New(errors.ErrCodeNotFound, "unknown attribute id %d", uint32(k))
	}
	return vs[k], nil
}

// Effective returns the slot value, or the kind's default when unset.
// Unknown kinds yield an unset Value.
func (vs *Values) Effective(k Kind) Value {
	if !k.Valid() {
		return Value{}
	}
	if v := vs[k]; v.IsSet() {
		return v
	}
	return definitions[k].Default
}

// Set writes v into slot k. An unset v clears the slot.
// It returns TypeMismatch when v's type differs from the declared type.
func (vs *Values) Set(k Kind, v Value) error {
	def, err := k.Definition()
	if err != nil {
		return err
	}
	if v.IsSet() && v.typ != def.Type {
		return errors.New(errors.ErrCodeTypeMismatch, "%s expects %s, got %s", def.Name, def.Type, v.typ)
	}
	vs[k] = v
	return nil
}

// SetText parses text according to the declared type of k and stores it.
// Empty text clears the slot. On a parse error the slot is cleared as well.
func (vs *Values) SetText(k Kind, text string) error {
	def, err := k.Definition()
	if err != nil {
		return err
	}
	if text == "" {
		vs[k] = Value{}
		return nil
	}
	v, err := Parse(def.Type, text)
	if err != nil {
		vs[k] = Value{}
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "set %s", def.Name)
	}
	vs[k] = v
	return nil
}

// SetCount returns how many slots hold a value.
func (vs *Values) SetCount() int {
	n := 0
	for _, v := range vs {
		if v.IsSet() {
			n++
		}
	}
	return n
}

// Cookies holds one version counter per slot.
type Cookies [Total]uint32

// Advance bumps the version of slot k.
func (c *Cookies) Advance(k Kind) {
	if k.Valid() {
		c[k]++
	}
}

// AdvanceAll bumps every slot.
func (c *Cookies) AdvanceAll() {
	for i := range c {
		c[i]++
	}
}
