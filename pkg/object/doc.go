// Package object implements the drawable object aggregate and the batch
// operations an editor runs over a sequence of objects.
//
// An [Object] pairs a shared drawable with a complete set of attribute
// overrides, a display label and geometry cached by the last layout pass.
// Collections are plain []Object slices; a selection is an []int of indices
// into that slice.
//
// # Call Ordering
//
// The expected cycle is Set, then Update, then Arrange, then Draw:
//
//	object.Set(objs, sel, attr.Fill, "#ff0000")
//	object.Update(objs, sel)
//	object.Arrange(objs, layout)
//	object.Draw(objs, target, geom.Identity())
//
// The ordering is not checked. Drawing before arranging renders objects at
// the default origin, and arranging before updating uses stale bounds.
//
// # Sharing
//
// [Object.Clone] shares the drawable and copies everything else. A plain
// struct assignment copies the drawable handle without adjusting its
// reference count, so use Clone whenever both copies stay alive.
package object
