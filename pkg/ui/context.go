package ui

import "github.com/go-ember/ember/pkg/rendering"

// MouseButton is a pointer button bitmask.
type MouseButton uint8

const (
	MouseLeft MouseButton = 1 << iota
	MouseRight
	MouseMiddle
)

// Key identifies a non-text key press delivered to the context.
type Key uint8

const (
	KeyNone Key = iota
	KeyTab
	KeyBackTab
	KeyEnter
	KeyEscape
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
)

// WidgetState is the per-frame interaction state of a widget rect.
type WidgetState uint8

const (
	StateDefault WidgetState = iota
	StateHovered
	StatePressed
)

// IsInteractive reports whether the state should show a state layer.
func (s WidgetState) IsInteractive() bool {
	return s == StateHovered || s == StatePressed
}

type clipRect struct {
	minX, minY, maxX, maxY int
}

// Config configures a new Context. Zero fields take defaults.
type Config struct {
	// Width and Height are the drawable surface size in pixels.
	Width, Height int
	// Text supplies text drawing and measurement. Optional: without it
	// widgets skip their labels.
	Text rendering.TextRenderer
	// Palette overrides the default dark palette.
	Palette Palette
	// FontHeight is the line height used for vertical centering.
	FontHeight float32
	// Padding is the default spacing between rows and around content.
	Padding float32
	// RowHeight is the default layout row height.
	RowHeight float32
}

// Context owns one GUI's entire interaction state and drives widgets
// through a renderer. See the package comment for the threading and
// failure model.
type Context struct {
	renderer rendering.Renderer
	text     rendering.TextRenderer
	palette  Palette

	width, height int

	fontHeight float32
	padding    float32
	rowHeight  float32

	layout      rendering.Rect
	currentClip clipRect

	// Pointer and keyboard state for the current frame.
	pointer    rendering.Offset
	held       MouseButton
	pressed    MouseButton
	released   MouseButton
	keyPressed Key
	typed      []rune
	deltaTime  float32

	// Interaction state persisted across frames.
	slider      sliderState
	focusedEdit *EditState
	focus       focusState
	hover       any
	anim        widgetAnim

	tracking fieldLedger
}

// widgetAnim is the single shared press/slide animation record. Only
// one widget animates at a time; the next press steals it.
type widgetAnim struct {
	widget any
	from   float32
	to     float32
	t      float32
}

// New creates a Context drawing through r. A nil renderer returns nil:
// every widget call on a nil Context is a no-op.
func New(r rendering.Renderer, cfg Config) *Context {
	if r == nil {
		return nil
	}
	c := &Context{
		renderer:   r,
		text:       cfg.Text,
		palette:    cfg.Palette,
		width:      cfg.Width,
		height:     cfg.Height,
		fontHeight: cfg.FontHeight,
		padding:    cfg.Padding,
		rowHeight:  cfg.RowHeight,
	}
	if c.palette == (Palette{}) {
		c.palette = DefaultPalette()
	}
	if c.fontHeight == 0 {
		c.fontHeight = 13
	}
	if c.padding == 0 {
		c.padding = 8
	}
	if c.rowHeight == 0 {
		c.rowHeight = 32
	}
	c.resetClip()
	return c
}

// Palette returns the active palette.
func (c *Context) Palette() Palette { return c.palette }

// BeginFrame starts a new frame: the field ledger resets, the frame
// counter increments, the clip returns to the full surface, the layout
// cursor returns to the top, and the shared widget animation advances
// by dt seconds.
func (c *Context) BeginFrame(dt float32) {
	if c == nil {
		return
	}
	c.deltaTime = dt
	c.tracking.reset()
	c.tracking.frameNumber++
	c.resetClip()
	c.focus.beginFrame()

	c.layout = rendering.Rect{
		X:      c.padding,
		Y:      c.padding,
		Width:  float32(c.width) - c.padding*2,
		Height: c.rowHeight,
	}

	if c.anim.widget != nil {
		c.anim.t += dt / animDuration
		if c.anim.t >= 1 {
			c.anim = widgetAnim{}
		}
	}
}

// EndFrame finishes the frame. Focus and drag state belonging to
// widgets that were not re-registered this frame is cleared, pending
// focus traversal is applied, and per-frame input edges are consumed.
func (c *Context) EndFrame() {
	if c == nil {
		return
	}

	// Stale-state invalidation: a widget that was not drawn this frame
	// must not keep focus or drag ownership.
	if c.focusedEdit != nil && !c.tracking.textFieldRegistered(c.focusedEdit) {
		c.focusedEdit = nil
	}
	if c.slider.mode != sliderIdle && !c.tracking.sliderRegistered(c.slider.activeID) {
		c.slider = sliderState{}
	}
	c.focus.endFrame()

	switch c.keyPressed {
	case KeyTab:
		c.focus.move(1)
	case KeyBackTab:
		c.focus.move(-1)
	}

	c.pressed = 0
	c.released = 0
	c.keyPressed = KeyNone
	c.typed = c.typed[:0]
}

// SetPointer updates the pointer position.
func (c *Context) SetPointer(x, y float32) {
	if c == nil {
		return
	}
	c.pointer = rendering.Offset{X: x, Y: y}
}

// PointerButton updates a button's held state and records the
// press/release edge for this frame.
func (c *Context) PointerButton(btn MouseButton, down bool) {
	if c == nil {
		return
	}
	if down {
		if c.held&btn == 0 {
			c.pressed |= btn
		}
		c.held |= btn
	} else {
		if c.held&btn != 0 {
			c.released |= btn
		}
		c.held &^= btn
	}
}

// KeyPress records a key press for this frame.
func (c *Context) KeyPress(k Key) {
	if c == nil {
		return
	}
	c.keyPressed = k
}

// TypeRune appends typed text input for this frame.
func (c *Context) TypeRune(r rune) {
	if c == nil {
		return
	}
	c.typed = append(c.typed, r)
}

// Pointer returns the current pointer position.
func (c *Context) Pointer() rendering.Offset { return c.pointer }

// DeltaTime returns the current frame's time step in seconds.
func (c *Context) DeltaTime() float32 { return c.deltaTime }

// Layout returns the current layout row.
func (c *Context) Layout() rendering.Rect { return c.layout }

// SetRow places the layout cursor at an explicit row rectangle,
// overriding the default top-down flow.
func (c *Context) SetRow(x, y, w, h float32) {
	if c == nil {
		return
	}
	c.layout = rendering.Rect{X: x, Y: y, Width: w, Height: h}
}

// Newline advances the layout to the next row.
func (c *Context) Newline() {
	if c == nil {
		return
	}
	c.layout.Y += c.layout.Height + c.padding
	c.layout.Height = c.rowHeight
}

// setClip updates the renderer clip and the context's record of it.
func (c *Context) setClip(minX, minY, maxX, maxY int) {
	c.currentClip = clipRect{minX: minX, minY: minY, maxX: maxX, maxY: maxY}
	c.renderer.SetClipRect(minX, minY, maxX, maxY)
}

func (c *Context) resetClip() {
	c.setClip(0, 0, c.width, c.height)
}

// widgetState derives hover/press state for a hit rectangle from the
// current pointer. Pressed means a fresh left press landed inside the
// rect this frame; held-but-not-fresh presses are tracked by the
// individual widget state machines.
func (c *Context) widgetState(rect rendering.Rect, disabled bool) WidgetState {
	if disabled || !rect.Contains(c.pointer.X, c.pointer.Y) {
		return StateDefault
	}
	if c.pressed&MouseLeft != 0 {
		return StatePressed
	}
	return StateHovered
}

// drawText draws a label if a text renderer is configured.
func (c *Context) drawText(x, y float32, text string, color rendering.Color) {
	if c.text != nil {
		c.text.DrawText(x, y, text, color)
	}
}

// textWidth measures a label, zero without a text renderer.
func (c *Context) textWidth(text string) float32 {
	if c.text == nil {
		return 0
	}
	return c.text.TextWidth(text)
}

// drawRectOutline strokes a rectangle's edges as four lines.
func (c *Context) drawRectOutline(rect rendering.Rect, width float32, color rendering.Color) {
	c.renderer.DrawLine(rect.X, rect.Y, rect.MaxX(), rect.Y, width, color)
	c.renderer.DrawLine(rect.X, rect.MaxY(), rect.MaxX(), rect.MaxY(), width, color)
	c.renderer.DrawLine(rect.X, rect.Y, rect.X, rect.MaxY(), width, color)
	c.renderer.DrawLine(rect.MaxX(), rect.Y, rect.MaxX(), rect.MaxY(), width, color)
}
