package scroll

import "sync"

// Label is the navigation section highlighted for a scroll offset.
type Label string

const (
	LabelHome     Label = "Home"
	LabelAbout    Label = "About"
	LabelProjects Label = "Projects"
	LabelContact  Label = "Contact"
)

// Labels lists nav labels in page order.
var Labels = []Label{LabelHome, LabelAbout, LabelProjects, LabelContact}

// Resolve returns the active label for scrollY. It is a step function that
// never moves backwards in page order as scrollY increases.
func Resolve(scrollY float64, plan Plan) Label {
	scrollY = sanitizeScroll(scrollY)
	switch {
	case scrollY >= plan.Anchors.ContactStart:
		return LabelContact
	case scrollY >= plan.Anchors.ProjectsStart:
		return LabelProjects
	case scrollY >= plan.Anchors.AboutStart:
		return LabelAbout
	default:
		return LabelHome
	}
}

// ActiveTracker remembers the label of the previous frame and reports only
// real changes.
type ActiveTracker struct {
	mu       sync.Mutex
	current  Label
	onChange func(prev, next Label)
}

// NewActiveTracker starts at LabelHome. onChange may be nil.
func NewActiveTracker(onChange func(prev, next Label)) *ActiveTracker {
	return &ActiveTracker{current: LabelHome, onChange: onChange}
}

// Update sets the current label and reports whether it changed.
func (t *ActiveTracker) Update(next Label) bool {
	t.mu.Lock()
	prev := t.current
	if prev == next {
		t.mu.Unlock()
		return false
	}
	t.current = next
	t.mu.Unlock()

	if t.onChange != nil {
		t.onChange(prev, next)
	}
	return true
}

// Current returns the last label recorded.
func (t *ActiveTracker) Current() Label {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}
