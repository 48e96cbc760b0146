package ui

import "github.com/go-ember/ember/pkg/rendering"

// EditState holds a text field's buffer, cursor and selection. Its
// pointer is the field's identity for focus and per-frame tracking:
// two fields sharing one EditState are the same field.
type EditState struct {
	Text   []rune
	Cursor int
	// SelStart/SelEnd delimit the selection; equal values mean none.
	SelStart int
	SelEnd   int
}

// SetText replaces the buffer and clamps the cursor.
func (s *EditState) SetText(text string) {
	if s == nil {
		return
	}
	s.Text = []rune(text)
	if s.Cursor > len(s.Text) {
		s.Cursor = len(s.Text)
	}
	s.SelStart, s.SelEnd = 0, 0
}

// String returns the buffer contents.
func (s *EditState) String() string {
	if s == nil {
		return ""
	}
	return string(s.Text)
}

// clampIndices forces cursor and selection into the buffer range.
// Out-of-range indices are host bugs the widget absorbs silently.
func (s *EditState) clampIndices() {
	n := len(s.Text)
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor > n {
		s.Cursor = n
	}
	if s.SelStart < 0 || s.SelStart > n {
		s.SelStart = 0
	}
	if s.SelEnd < 0 || s.SelEnd > n {
		s.SelEnd = 0
	}
}

// TextFieldOptions customizes TextField.
type TextFieldOptions struct {
	// Placeholder is drawn muted while the buffer is empty.
	Placeholder string
	// Disabled draws the field muted and ignores input.
	Disabled bool
}

// TextField draws a single-line editing surface bound to state and
// returns true when Enter was pressed while focused. A nil state is a
// no-op.
//
// The field registers itself in the frame ledger; if it stops being
// drawn while focused, EndFrame clears the focus so keystrokes cannot
// route to an invisible widget.
func (c *Context) TextField(state *EditState, options *TextFieldOptions) bool {
	if c == nil || state == nil {
		return false
	}

	c.RegisterTextField(state)
	state.clampIndices()

	disabled := options != nil && options.Disabled

	fieldHeight := c.fontHeight + c.padding*2
	rect := rendering.Rect{
		X:      c.layout.X,
		Y:      c.layout.Y + (c.layout.Height-fieldHeight)*0.5,
		Width:  c.layout.Width,
		Height: fieldHeight,
	}
	corner := float32(4)

	id := widgetID("textfield", rect)
	c.registerFocusable(id, rect, corner)

	touchRect := rect.ExpandTouchTargetHeight(sliderTouchTarget)
	fieldState := c.widgetState(touchRect, disabled)

	// Focus follows fresh presses: inside focuses, outside unfocuses.
	if !disabled && c.pressed&MouseLeft != 0 {
		if fieldState == StatePressed {
			c.focusedEdit = state
			c.focus.focusedID = id
			state.Cursor = len(state.Text)
		} else if c.focusedEdit == state {
			c.focusedEdit = nil
		}
	}

	focused := c.focusedEdit == state
	submitted := false

	if focused && !disabled {
		for _, r := range c.typed {
			if r < 0x20 {
				continue
			}
			state.Text = append(state.Text[:state.Cursor],
				append([]rune{r}, state.Text[state.Cursor:]...)...)
			state.Cursor++
		}

		switch c.keyPressed {
		case KeyLeft:
			if state.Cursor > 0 {
				state.Cursor--
			}
		case KeyRight:
			if state.Cursor < len(state.Text) {
				state.Cursor++
			}
		case KeyHome:
			state.Cursor = 0
		case KeyEnd:
			state.Cursor = len(state.Text)
		case KeyBackspace:
			if state.Cursor > 0 {
				state.Text = append(state.Text[:state.Cursor-1], state.Text[state.Cursor:]...)
				state.Cursor--
			}
		case KeyDelete:
			if state.Cursor < len(state.Text) {
				state.Text = append(state.Text[:state.Cursor], state.Text[state.Cursor+1:]...)
			}
		case KeyEnter:
			submitted = true
		case KeyEscape:
			c.focusedEdit = nil
			focused = false
		}
	}

	bg := c.palette.SurfaceContainerHighest
	textColor := c.palette.OnSurface
	if disabled {
		bg = stateLayer(c.palette.OnSurface, focusAlpha)
		textColor = stateLayer(c.palette.OnSurface, disableAlpha)
	}

	if c.widgetIsFocused(id) || focused {
		c.drawFocusRing(rect, corner)
	}
	c.renderer.DrawBox(rect, corner, bg)

	textX := rect.X + c.padding
	textY := rect.Y + (rect.Height-c.fontHeight)*0.5

	if len(state.Text) == 0 && options != nil && options.Placeholder != "" {
		c.drawText(textX, textY, options.Placeholder,
			stateLayer(c.palette.OnSurface, disableAlpha))
	} else {
		c.drawText(textX, textY, string(state.Text), textColor)
	}

	if focused && !disabled {
		cursorX := textX + c.textWidth(string(state.Text[:state.Cursor]))
		c.renderer.DrawLine(cursorX, textY, cursorX, textY+c.fontHeight, 1, c.palette.Primary)
	}

	c.Newline()
	return submitted
}

// FocusedEdit returns the EditState holding keyboard focus, nil when
// none does.
func (c *Context) FocusedEdit() *EditState {
	if c == nil {
		return nil
	}
	return c.focusedEdit
}
