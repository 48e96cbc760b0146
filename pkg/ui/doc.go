// Package ui is an immediate-mode widget layer: every widget is a
// function called once per frame that computes its geometry, reads the
// current pointer and keyboard state, mutates interaction state and
// issues draw calls through a renderer callback contract.
//
// All mutable interaction state (slider drag, focused field, hover,
// per-frame registration ledger) is owned by a Context. Contexts are
// single-threaded: one goroutine drives BeginFrame, the widget calls
// and EndFrame; concurrent use of one Context is undefined. Separate
// Contexts are fully independent.
//
// Malformed input (nil state, inverted ranges, out-of-range indices)
// never panics or returns an error; the offending call is a drawing
// no-op, so a single bad widget call cannot abort the frame.
package ui
