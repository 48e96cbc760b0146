// Package rendering defines the shared drawing vocabulary of the
// toolkit: the packed ARGB Color type with Porter-Duff compositing,
// value-type geometry, and the renderer callback contracts implemented
// by backends and consumed by the widget layer.
package rendering
