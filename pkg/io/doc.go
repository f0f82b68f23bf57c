// Package io maps object lists to and from generic trees and files.
//
// # Document Shape
//
// A document is a root node with one child per object, in sequence order.
// Each object node holds an optional "label" child plus one child per set
// attribute, named by the attribute table:
//
//	drawing:
//	  - object:
//	      label: Title
//	      shape: text
//	      text: Hello
//	      font_size: 24
//	  - object:
//	      fill: "#ff0000"
//	      width: 120
//
// # Load
//
// [Load] appends one object per child. Unknown child names are ignored so
// that newer files still open in older builds. A value that fails to parse
// leaves its slot unset; the failure is reported in the returned error
// while loading continues.
//
// # Store
//
// [Store] writes only slots that hold a value, so a stored document lists
// exactly the overrides of each object. Geometry, flags and the drawable are
// never written; run Update and Arrange after loading.
//
// # Files
//
// [ReadFile] and [WriteFile] pick the codec from the file extension (see
// [texttree.FormatFromPath]).
package io
