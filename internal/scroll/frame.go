package scroll

import "math"

const heroParallax = 0.4

// SectionState is the per-frame display state of one section.
type SectionState struct {
	Name    SectionName `json:"name"`
	Visible bool        `json:"visible"`
	// Offset is how far the section has progressed through its slide-in.
	Offset     float64 `json:"offset"`
	TranslateY float64 `json:"translateY"`
	ZIndex     int     `json:"zIndex"`
	// Progress of the section's internal animation while held, in [0, 1].
	Progress float64 `json:"progress"`
}

// ComputeFrame derives every section's state for one scroll offset.
func ComputeFrame(scrollY float64, plan Plan) []SectionState {
	scrollY = sanitizeScroll(scrollY)
	states := make([]SectionState, len(plan.Sections))
	for i, b := range plan.Sections {
		states[i] = Position(scrollY, b, plan.Base)
	}
	return states
}

// Position derives the state of a single section. A section stays visible
// for one slide duration past its end so the next section can cover it
// without a gap.
func Position(scrollY float64, b Breakpoint, base float64) SectionState {
	s := SectionState{
		Name:    b.Name,
		ZIndex:  b.ZIndex,
		Visible: scrollY >= b.Start && scrollY < b.End+b.SlideDuration,
	}

	if b.Name == Hero {
		// The hero recedes with parallax instead of sliding in.
		s.Offset = math.Min(scrollY*heroParallax, base*heroParallax)
		s.TranslateY = -s.Offset
		return s
	}

	s.Offset = clamp(scrollY-b.Start, 0, b.SlideDuration)
	s.TranslateY = b.SlideDuration - s.Offset
	if b.ProgressSpan > 0 {
		s.Progress = clamp((scrollY-(b.Start+b.SlideDuration))/b.ProgressSpan, 0, 1)
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func sanitizeScroll(y float64) float64 {
	if math.IsNaN(y) || y < 0 {
		return 0
	}
	return y
}
