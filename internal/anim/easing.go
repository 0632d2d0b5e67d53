package anim

import "math"

// Easing maps linear progress in [0,1] to eased progress in [0,1].
// Implementations must return exactly 0 at 0 and 1 at 1.
type Easing func(progress float64) float64

// EaseOutCubic is 1 - (1-x)^3: fast start, decelerating into the target.
func EaseOutCubic(x float64) float64 {
	inv := 1 - x
	return 1 - inv*inv*inv
}

func Linear(x float64) float64 { return x }

// EasingByName resolves a config name. Unknown or empty names fall back to
// ease-out cubic; ok reports whether the name was recognised.
func EasingByName(name string) (Easing, bool) {
	switch name {
	case "", "ease-out-cubic", "cubic":
		return EaseOutCubic, true
	case "linear":
		return Linear, true
	}
	return EaseOutCubic, false
}

// Clamp limits v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
