// Package canvas defines the canvas collaborator used by Arrange and Draw.
//
// A canvas plays two roles. As a [Layouter] it supplies layout
// configuration: padding, the available extents and the [Flow] policy that
// decides where the next object goes. As a [Target] it receives drawing
// operations. Both are borrowed for the duration of a single call and never
// retained.
//
// # Flow Policies
//
// Flow placement is pluggable. [RowFlow] fills rows left to right and wraps
// when the configured width is exhausted; [ColumnFlow] is the transposed
// version. Each Arrange pass starts a fresh [Cursor], so placement never
// depends on state left over from a previous pass.
//
// # Recorder
//
// [Recorder] is a Target that stores every operation it receives. It is the
// reference target for tests and for tools that need draw output without
// producing an image.
package canvas
