package ui

import (
	"github.com/chewxy/math32"

	"github.com/go-ember/ember/pkg/animation"
	"github.com/go-ember/ember/pkg/rendering"
)

// ButtonStyle selects a button's visual treatment.
type ButtonStyle uint8

const (
	// ButtonTonal is the default: a filled container in a muted tone.
	ButtonTonal ButtonStyle = iota
	// ButtonFilled uses the primary color.
	ButtonFilled
	// ButtonElevated uses a raised container tone.
	ButtonElevated
	// ButtonOutlined has a transparent body and a 1px outline.
	ButtonOutlined
	// ButtonText has no container at all.
	ButtonText
)

// Alignment positions a widget within its layout row.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

const (
	buttonHeight         = 40
	buttonMinTouchTarget = 48
)

// Button draws a tonal button and returns true when it was clicked
// this frame.
func (c *Context) Button(label string, alignment Alignment) bool {
	return c.ButtonStyled(label, alignment, ButtonTonal)
}

// ButtonStyled draws a button with the given style. The button
// registers for keyboard focus, expands its hit area to the minimum
// touch target, shows hover/focus state layers and a press-flash
// animation, and activates on Enter while focused. An empty label is a
// no-op.
func (c *Context) ButtonStyled(label string, alignment Alignment, style ButtonStyle) bool {
	if c == nil || label == "" {
		return false
	}

	clicked := false
	textWidth := c.textWidth(label)

	btnHeight := math32.Min(buttonHeight, c.layout.Height)
	corner := btnHeight * 0.5
	rect := rendering.Rect{
		Y:      c.layout.Y + (c.layout.Height-btnHeight)*0.5,
		Width:  textWidth + 2*c.padding,
		Height: btnHeight,
	}

	switch alignment {
	case AlignLeft:
		rect.X = c.layout.X
	case AlignCenter:
		rect.X = c.layout.X + c.layout.Width*0.5 - rect.Width*0.5
	default:
		rect.X = c.layout.MaxX() - rect.Width
	}

	id := widgetID(label, rect)
	c.registerFocusable(id, rect, corner)
	isFocused := c.widgetIsFocused(id)

	textPos := rendering.Offset{
		X: rect.X + (rect.Width-textWidth)*0.5,
		Y: rect.Y + (rect.Height-c.fontHeight)*0.5,
	}

	touchRect := rect.ExpandTouchTargetHeight(buttonMinTouchTarget)
	state := c.widgetState(touchRect, false)

	if isFocused && c.keyPressed == KeyEnter {
		clicked = true
		c.keyPressed = KeyNone
		c.anim = widgetAnim{widget: label}
	}

	var bgColor, textColor, borderColor, hoverLayer rendering.Color
	borderWidth := float32(0)

	switch style {
	case ButtonFilled:
		bgColor = c.palette.Primary
		textColor = c.palette.OnPrimary
		hoverLayer = stateLayer(c.palette.OnPrimary, hoverAlpha)
	case ButtonOutlined:
		textColor = c.palette.Primary
		borderColor = c.palette.Outline
		borderWidth = 1
		hoverLayer = stateLayer(c.palette.Primary, hoverAlpha/2)
	case ButtonText:
		textColor = c.palette.Primary
		hoverLayer = stateLayer(c.palette.Primary, hoverAlpha/2)
	case ButtonElevated:
		bgColor = c.palette.SurfaceContainerHigh
		textColor = c.palette.Primary
		hoverLayer = stateLayer(c.palette.Primary, hoverAlpha/3)
	default:
		bgColor = c.palette.SurfaceContainer
		textColor = c.palette.OnSurface
		hoverLayer = stateLayer(c.palette.OnSurface, hoverAlpha)
	}

	if c.anim.widget == label {
		// Press flash: start from the primary tone and fade back to the
		// resting color, with a brief squeeze.
		flash := c.palette.Primary
		if style == ButtonOutlined || style == ButtonText {
			flash = stateLayer(c.palette.Primary, dragAlpha)
		}
		bgColor = lerpColor(flash, bgColor, animation.EaseInExpo(c.anim.t))
		rect = rect.Expand(-animation.Impulse(c.anim.t) * 2)
	} else if state == StatePressed {
		clicked = true
		c.anim = widgetAnim{widget: label}
	} else if state == StateHovered {
		if c.hover == label {
			if bgColor != 0 {
				bgColor = rendering.BlendOver(bgColor, hoverLayer)
			}
		} else {
			c.hover = label
		}
	} else if c.hover == label {
		c.hover = nil
	}

	var focusLayer rendering.Color
	if isFocused && c.anim.widget != label {
		focusLayer = stateLayer(c.palette.Primary, focusAlpha)
		if bgColor != 0 {
			bgColor = rendering.BlendOver(bgColor, focusLayer)
		}
	}

	if isFocused {
		c.drawFocusRing(rect, corner)
	}

	if bgColor != 0 {
		c.renderer.DrawBox(rect, corner, bgColor)
	} else if isFocused && focusLayer != 0 {
		c.renderer.DrawBox(rect, corner, focusLayer)
	} else if state == StateHovered && hoverLayer != 0 {
		c.renderer.DrawBox(rect, corner, hoverLayer)
	}

	if borderWidth > 0 {
		c.drawRoundedOutline(rect, corner, borderWidth, borderColor)
	}

	c.drawText(textPos.X, textPos.Y, label, textColor)

	return clicked
}

// lerpColor interpolates two colors channel-wise by t.
func lerpColor(a, b rendering.Color, t float32) rendering.Color {
	lerpByte := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return rendering.RGBA(
		lerpByte(a.Red(), b.Red()),
		lerpByte(a.Green(), b.Green()),
		lerpByte(a.Blue(), b.Blue()),
		lerpByte(a.Alpha(), b.Alpha()),
	)
}
