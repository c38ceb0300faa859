package scroll

import "math"

// RelayoutThreshold is the height change, in pixels, below which a resize
// keeps the current plan. Mobile browsers resize the viewport when the
// on-screen keyboard or URL bar appears; those changes must not relayout.
const RelayoutThreshold = 150.0

// Viewport tracks the dimensions the current plan was computed for.
type Viewport struct {
	Width  float64
	Height float64
	set    bool
}

// Observe records a resize and reports whether a relayout is needed: on the
// first observation, whenever the width changes, or when the height moves
// more than RelayoutThreshold away from the height of the current plan.
func (v *Viewport) Observe(width, height float64) bool {
	if v.set && width == v.Width && math.Abs(height-v.Height) <= RelayoutThreshold {
		return false
	}
	v.Width, v.Height, v.set = width, height, true
	return true
}
