package animation

import "github.com/chewxy/math32"

// Easing curves transform linear animation progress into natural-feeling
// motion.
//
// Each curve is a function that takes a value t in [0, 1] and returns a
// transformed value. Widgets advance t by deltaTime/duration each frame
// and map it through a curve before interpolating.
//
// Standard curves: [LinearCurve], [Ease], [EaseIn], [EaseOut],
// [EaseInOut], plus the widget-motion curves [EaseOutBack],
// [EaseInExpo] and [Impulse]. Use [CubicBezier] to create custom curves
// matching CSS cubic-bezier().

// DurationShort4 is the standard short animation duration in seconds,
// used for slider track-click and segment-slide animations.
const DurationShort4 = 0.2

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float32) float32 {
	return t
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// EaseOutBack decelerates with a slight overshoot past the target
// before settling. Used for thumb and segment slide-in motion.
func EaseOutBack(t float32) float32 {
	const c1 = 1.70158
	const c3 = c1 + 1

	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// EaseInExpo starts near zero and accelerates exponentially. Used to
// fade out press-flash highlights.
func EaseInExpo(t float32) float32 {
	if t <= 0 {
		return 0
	}
	return math32.Pow(2, 10*t-10)
}

// Impulse rises sharply to a single peak and decays back to zero over
// [0, 1]. Used for the press "squeeze" on buttons.
func Impulse(t float32) float32 {
	const k = 8
	h := k * t
	return h * math32.Exp(1-h)
}

// Ease is a standard cubic bezier curve for general-purpose easing.
// Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
// Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns a cubic-bezier easing function matching CSS
// cubic-bezier(). The parameters define the two control points (x1,y1)
// and (x2,y2); the curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float32) func(float32) float32 {
	return func(t float32) float32 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for i := 0; i < 8; i++ {
			x := sampleCurve(x1, x2, u) - t
			if math32.Abs(x) < 1e-6 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math32.Abs(dx) < 1e-6 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := float32(0), float32(1)
		u = clampUnit(u)
		for i := 0; i < 12; i++ {
			x := sampleCurve(x1, x2, u) - t
			if math32.Abs(x) < 1e-6 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float32) float32 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float32) float32 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float32) float32 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
