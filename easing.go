package mapcanvas

// Easing maps normalized animation time t in [0, 1] to an eased progress
// value in [0, 1]. Inputs outside the range are clamped by [Ease].
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOut is a symmetric quadratic ease-in-out curve: slow start, fast
// middle, slow finish. It is the default curve for viewport transitions.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := 1 - t
	return 1 - 2*u*u
}

// EaseOut decelerates toward the end of the animation.
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u
}

// Ease applies an easing curve to t, clamping t to [0, 1] first.
// A nil curve behaves as [Linear].
func Ease(e Easing, t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if e == nil {
		return t
	}
	return e(t)
}

// LerpFloat linearly interpolates between a and b by eased progress t.
func LerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}
