package rendering

// Color is stored as ARGB (0xAARRGGBB), matching the framebuffer pixel
// format used by the software ports.
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// Red returns the red channel.
func (c Color) Red() uint8 {
	return uint8(c >> 16)
}

// Green returns the green channel.
func (c Color) Green() uint8 {
	return uint8(c >> 8)
}

// Blue returns the blue channel.
func (c Color) Blue() uint8 {
	return uint8(c)
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// BlendOver composites src over dst using the standard Porter-Duff
// "over" operator. A fully transparent src leaves dst unchanged and a
// fully opaque src replaces it outright; in between, channels are
// combined with integer truncation.
func BlendOver(dst, src Color) Color {
	sa := uint32(src.Alpha())
	if sa == 0 {
		return dst
	}
	if sa == 255 {
		return src
	}

	da := uint32(dst.Alpha())
	invSA := 255 - sa

	outR := uint8((uint32(src.Red())*sa + uint32(dst.Red())*invSA) / 255)
	outG := uint8((uint32(src.Green())*sa + uint32(dst.Green())*invSA) / 255)
	outB := uint8((uint32(src.Blue())*sa + uint32(dst.Blue())*invSA) / 255)
	outA := uint8(sa + da*invSA/255)

	return RGBA(outR, outG, outB, outA)
}

// BlendCoverage composites c over dst with its alpha scaled by a
// fractional coverage in [0, 1]. Used for anti-aliased edge pixels.
// Coverage at or below zero returns dst unchanged.
func BlendCoverage(dst, c Color, coverage float32) Color {
	if coverage <= 0 {
		return dst
	}
	if coverage > 1 {
		coverage = 1
	}
	scaled := uint8(float32(c.Alpha()) * coverage)
	return BlendOver(dst, c.WithAlpha(scaled))
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
