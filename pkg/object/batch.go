package object

import (
	"slices"

	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/errors"
)

func outOfRange(i, n int) error {
	return errors.New(errors.ErrCodeInvalidArgument, "index %d out of range [0, %d)", i, n)
}

// Set parses text by the declared type of k and writes it into every
// selected object in index order. Empty text resets the slot.
//
// A value that fails to parse leaves the slot reset and processing
// continues with the next object. Per-object failures and out-of-range
// indices are joined into the returned error. Set does not Update.
func Set(objects []Object, indices []int, k attr.Kind, text string) error {
	if len(indices) == 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "index selection cannot be empty")
	}
	if !k.Valid() {
		return errors.New(errors.ErrCodeInvalidArgument, "unknown attribute id %d", uint32(k))
	}
	var errs []error
	for _, i := range indices {
		if !errors.InRange(i, len(objects)) {
			errs = append(errs, outOfRange(i, len(objects)))
			continue
		}
		if err := objects[i].SetText(k, text); err != nil {
			errs = append(errs, errors.Wrap(errors.GetCode(err), err, "object %d", i))
		}
	}
	return errors.Join(errs...)
}

// Update runs Object.Update on exactly the selected objects.
// Out-of-range indices are skipped and reported.
func Update(objects []Object, indices []int) error {
	var errs []error
	for _, i := range indices {
		if !errors.InRange(i, len(objects)) {
			errs = append(errs, outOfRange(i, len(objects)))
			continue
		}
		objects[i].Update()
	}
	return errors.Join(errs...)
}

// UpdateAll runs Object.Update on every object.
func UpdateAll(objects []Object) {
	for i := range objects {
		objects[i].Update()
	}
}

// GetStringValue resolves the text a shared property editor shows for k.
//
// It returns defaultIfMixed when the selection is empty or the selected
// slots differ. When every selected slot holds exactly the same value it
// returns that value's text, using the kind's default for unset slots.
// Out-of-range indices are ignored.
func GetStringValue(objects []Object, indices []int, k attr.Kind, defaultIfMixed string) string {
	if !k.Valid() {
		return defaultIfMixed
	}
	var (
		first attr.Value
		seen  bool
	)
	for _, i := range indices {
		if !errors.InRange(i, len(objects)) {
			continue
		}
		v := objects[i].values[k]
		if !seen {
			first, seen = v, true
			continue
		}
		if v != first {
			return defaultIfMixed
		}
	}
	if !seen {
		return defaultIfMixed
	}
	if !first.IsSet() {
		def, _ := k.Definition()
		return def.Default.String()
	}
	return first.String()
}

// Merge copies every slot of overriding onto every object, replacing prior
// values. Slot versions advance where the value changed. Callers must
// Invalidate and Update the targets before the next Arrange or Draw.
func Merge(overriding *Object, objects []Object) {
	for i := range objects {
		mergeInto(overriding, &objects[i])
	}
}

// MergeSelected is Merge restricted to the selected objects. It fails with
// InvalidArgument, merging nothing, when the selection is empty or holds an
// out-of-range index.
func MergeSelected(overriding *Object, objects []Object, indices []int) error {
	if err := errors.ValidateIndices(indices, len(objects)); err != nil {
		return err
	}
	for _, i := range indices {
		mergeInto(overriding, &objects[i])
	}
	return nil
}

func mergeInto(src, dst *Object) {
	for k := 0; k < attr.Total; k++ {
		if dst.values[k] != src.values[k] {
			dst.values[k] = src.values[k]
			dst.cookies.Advance(attr.Kind(k))
		}
	}
}

// All returns the indices of every object.
func All(objects []Object) []int {
	out := make([]int, len(objects))
	for i := range out {
		out[i] = i
	}
	return out
}

// Selected returns the indices of objects with FlagSelected set.
func Selected(objects []Object) []int {
	var out []int
	for i := range objects {
		if objects[i].IsSelected() {
			out = append(out, i)
		}
	}
	return out
}

// SetSelected sets or clears FlagSelected on the selected objects.
// Out-of-range indices are ignored.
func SetSelected(objects []Object, indices []int, on bool) {
	for _, i := range indices {
		if errors.InRange(i, len(objects)) {
			objects[i].Flags = objects[i].Flags.With(FlagSelected, on)
		}
	}
}

// HitTest returns the index of the topmost visible object containing
// (x, y), or -1.
func HitTest(objects []Object, x, y float32) int {
	for i := len(objects) - 1; i >= 0; i-- {
		if objects[i].IsVisible() && objects[i].IsPointInside(x, y) {
			return i
		}
	}
	return -1
}

// Duplicate appends a Clone of every selected object and returns the
// extended slice. Clones share their source's drawable.
func Duplicate(objects []Object, indices []int) []Object {
	n := len(objects)
	for _, i := range indices {
		if errors.InRange(i, n) {
			objects = append(objects, objects[i].Clone())
		}
	}
	return objects
}

// Remove deletes the selected objects, releasing their drawables, and
// returns the shortened slice. Order of the remaining objects is kept.
func Remove(objects []Object, indices []int) []Object {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if errors.InRange(i, len(objects)) {
			drop[i] = true
		}
	}
	if len(drop) == 0 {
		return objects
	}
	out := objects[:0]
	for i := range objects {
		if drop[i] {
			objects[i].Release()
			continue
		}
		out = append(out, objects[i])
	}
	clear(objects[len(out):])
	return slices.Clip(out)
}
