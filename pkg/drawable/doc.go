// Package drawable defines the capability seam between objects and the
// elements they render.
//
// An object exposes its attribute slots through [Source]; a [Drawable]
// reads them back at update and draw time and never holds a reference to
// the object itself. [Shape] is the built-in element: a rectangle, an
// ellipse or a run of text.
//
// Drawables may be shared by several objects (for example after a
// duplicate). [Shared] carries the reference count; all mutation goes
// through each object's own attribute array, and each object caches its
// own measurement in a [Measurement].
package drawable
