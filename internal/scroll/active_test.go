package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Thresholds(t *testing.T) {
	p := Compute(800)
	tests := []struct {
		y    float64
		want Label
	}{
		{0, LabelHome},
		{p.Anchors.AboutStart - 1, LabelHome},
		{p.Anchors.AboutStart, LabelAbout},
		{p.Anchors.ProjectsStart - 1, LabelAbout},
		{p.Anchors.ProjectsStart, LabelProjects},
		{p.Anchors.ContactStart - 1, LabelProjects},
		{p.Anchors.ContactStart, LabelContact},
		{p.TotalHeight, LabelContact},
		{-30, LabelHome},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Resolve(tt.y, p), "y=%v", tt.y)
	}
}

func TestResolve_MonotonicInScroll(t *testing.T) {
	order := map[Label]int{}
	for i, l := range Labels {
		order[l] = i
	}
	for _, h := range []float64{400, 800, 1000} {
		p := Compute(h)
		prev := LabelHome
		for y := 0.0; y <= p.TotalHeight; y += 13 {
			got := Resolve(y, p)
			assert.GreaterOrEqual(t, order[got], order[prev], "h=%v y=%v went from %s to %s", h, y, prev, got)
			prev = got
		}
		assert.Equal(t, LabelContact, prev)
	}
}

func TestActiveTracker_ReportsOnlyChanges(t *testing.T) {
	var changes [][2]Label
	tr := NewActiveTracker(func(prev, next Label) {
		changes = append(changes, [2]Label{prev, next})
	})

	assert.Equal(t, LabelHome, tr.Current())
	assert.False(t, tr.Update(LabelHome))
	assert.True(t, tr.Update(LabelAbout))
	assert.False(t, tr.Update(LabelAbout))
	assert.True(t, tr.Update(LabelHome))

	assert.Equal(t, [][2]Label{{LabelHome, LabelAbout}, {LabelAbout, LabelHome}}, changes)
}
