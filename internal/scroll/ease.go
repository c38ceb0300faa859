package scroll

import "math"

// EaseInOutCubic maps linear progress in [0, 1] to eased progress.
func EaseInOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 3)/2
}
