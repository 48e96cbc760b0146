// Package raster is a portable software rasterizer for ARGB32
// framebuffers: clipped pixel and span writes, anti-aliased shape
// primitives built on signed-distance fields, and an adaptive cubic
// Bezier path tessellator with a round-cap stroke routine.
//
// Framebuffer ports embed a Context over their pixel buffer and route
// the renderer callback contract through it; hardware ports skip the
// Context and use only the Path tessellator for vector glyphs.
package raster
