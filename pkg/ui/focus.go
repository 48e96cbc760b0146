package ui

import (
	"github.com/chewxy/math32"

	"github.com/go-ember/ember/pkg/rendering"
)

// Keyboard focus. Widgets register themselves each frame; only the
// focused identity persists across frames. Traversal walks the current
// frame's registration order, which matches visual top-to-bottom order
// for the row layout.

const maxFocusables = 128

type focusable struct {
	id     uint32
	rect   rendering.Rect
	corner float32
}

type focusState struct {
	items     [maxFocusables]focusable
	count     int
	focusedID uint32
}

func (f *focusState) beginFrame() {
	f.count = 0
}

func (f *focusState) register(id uint32, rect rendering.Rect, corner float32) {
	if id == 0 || f.count >= maxFocusables {
		return
	}
	f.items[f.count] = focusable{id: id, rect: rect, corner: corner}
	f.count++
}

// endFrame clears focus when the focused widget was not drawn this
// frame, mirroring the field ledger's stale-state rule.
func (f *focusState) endFrame() {
	if f.focusedID == 0 {
		return
	}
	for i := 0; i < f.count; i++ {
		if f.items[i].id == f.focusedID {
			return
		}
	}
	f.focusedID = 0
}

// move shifts focus by delta positions within this frame's
// registration order, wrapping at the ends. With nothing focused,
// focus lands on the first (or last) registered widget.
func (f *focusState) move(delta int) bool {
	if f.count == 0 {
		return false
	}

	current := -1
	for i := 0; i < f.count; i++ {
		if f.items[i].id == f.focusedID {
			current = i
			break
		}
	}

	var next int
	if current < 0 {
		if delta >= 0 {
			next = 0
		} else {
			next = f.count - 1
		}
	} else {
		next = (current + delta%f.count + f.count) % f.count
	}

	f.focusedID = f.items[next].id
	return true
}

// registerFocusable records a widget for keyboard traversal this
// frame.
func (c *Context) registerFocusable(id uint32, rect rendering.Rect, corner float32) {
	c.focus.register(id, rect, corner)
}

// widgetIsFocused reports whether id holds keyboard focus.
func (c *Context) widgetIsFocused(id uint32) bool {
	return id != 0 && c.focus.focusedID == id
}

// FocusedWidget returns the identity holding keyboard focus, zero when
// none does.
func (c *Context) FocusedWidget() uint32 {
	if c == nil {
		return 0
	}
	return c.focus.focusedID
}

// RequestFocus moves keyboard focus to the given identity.
func (c *Context) RequestFocus(id uint32) {
	if c == nil {
		return
	}
	c.focus.focusedID = id
}

// drawFocusRing outlines the focused widget, inset-free, two pixels
// outside its bounds.
func (c *Context) drawFocusRing(rect rendering.Rect, corner float32) {
	ring := rect.Expand(3)
	ringColor := c.palette.Primary
	if corner > 0 {
		// Rounded widgets get arc corners; the straight edges between
		// them are plain lines.
		r := corner + 3
		c.drawRoundedOutline(ring, r, 2, ringColor)
		return
	}
	c.drawRectOutline(ring, 2, ringColor)
}

// drawRoundedOutline strokes a rounded rectangle as four edge lines
// plus four quarter arcs.
func (c *Context) drawRoundedOutline(rect rendering.Rect, radius, width float32, color rendering.Color) {
	if radius > rect.Width/2 {
		radius = rect.Width / 2
	}
	if radius > rect.Height/2 {
		radius = rect.Height / 2
	}

	x0, y0 := rect.X, rect.Y
	x1, y1 := rect.MaxX(), rect.MaxY()

	c.renderer.DrawLine(x0+radius, y0, x1-radius, y0, width, color)
	c.renderer.DrawLine(x0+radius, y1, x1-radius, y1, width, color)
	c.renderer.DrawLine(x0, y0+radius, x0, y1-radius, width, color)
	c.renderer.DrawLine(x1, y0+radius, x1, y1-radius, width, color)

	c.renderer.DrawArc(x0+radius, y0+radius, radius, math32.Pi, math32.Pi*1.5, width, color)
	c.renderer.DrawArc(x1-radius, y0+radius, radius, math32.Pi*1.5, math32.Pi*2, width, color)
	c.renderer.DrawArc(x1-radius, y1-radius, radius, 0, math32.Pi*0.5, width, color)
	c.renderer.DrawArc(x0+radius, y1-radius, radius, math32.Pi*0.5, math32.Pi, width, color)
}
