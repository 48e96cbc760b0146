package rendering

// Renderer is the drawing contract a backend supplies to the widget
// layer. Software ports route these calls through a raster.Context;
// hardware ports map them onto their native drawing API using the same
// geometric parameters.
type Renderer interface {
	// DrawBox fills a rectangle with the given corner radius. A radius
	// of zero draws square corners.
	DrawBox(rect Rect, cornerRadius float32, color Color)

	// SetClipRect restricts subsequent drawing to the given bounds, in
	// device pixels.
	SetClipRect(minX, minY, maxX, maxY int)

	// DrawLine draws a stroked line segment with round caps. The
	// rendered width is never less than one device pixel.
	DrawLine(x0, y0, x1, y1, width float32, color Color)

	// DrawCircle draws a circle, filled when fill has nonzero alpha and
	// outlined when strokeWidth is positive and stroke has nonzero alpha.
	DrawCircle(cx, cy, radius float32, fill, stroke Color, strokeWidth float32)

	// DrawArc draws a stroked circular arc between two angles in
	// radians, with round caps at both ends.
	DrawArc(cx, cy, radius, startAngle, endAngle, width float32, color Color)
}

// TextRenderer is the optional text contract. Ports that render text
// through vector paths instead do not implement it.
type TextRenderer interface {
	// DrawText draws a single line of text with its top-left corner at
	// the given position.
	DrawText(x, y float32, text string, color Color)

	// TextWidth returns the advance width of the text in pixels.
	TextWidth(text string) float32
}

// PathRenderer is the vector-path contract consumed by glyph and icon
// rendering. Calls accumulate into a single open subpath; PathStroke
// renders the accumulated polyline with round caps and resets it.
type PathRenderer interface {
	PathMove(x, y float32)
	PathLine(x, y float32)
	PathCurve(x1, y1, x2, y2, x3, y3 float32)
	PathStroke(width float32, color Color)
}
