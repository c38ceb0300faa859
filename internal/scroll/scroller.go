package scroll

import (
	"math"
	"sync"
	"time"
)

const (
	// ScrollDuration is the length of every programmatic nav scroll.
	ScrollDuration = 2000 * time.Millisecond
	// NavOffset nudges the destination past a section's start so the
	// section is docked rather than about to dock.
	NavOffset = 5.0
	// MinScrollDistance is the distance below which ScrollTo does nothing.
	MinScrollDistance = 10.0
)

// Sampler reads the current scroll offset.
type Sampler interface {
	ScrollY() float64
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func() float64

func (f SamplerFunc) ScrollY() float64 { return f() }

// Window is a scrollable document.
type Window interface {
	Sampler
	ScrollTo(y float64)
}

// Scroller animates programmatic scrolls. At most one animation runs at a
// time: a new ScrollTo cancels the one in flight and starts from wherever
// the window is at that moment.
type Scroller struct {
	window   Window
	frames   FrameScheduler
	duration time.Duration

	mu     sync.Mutex
	gen    uint64
	active bool
	cancel func()
}

// NewScroller creates a Scroller driving window on frames.
func NewScroller(window Window, frames FrameScheduler) *Scroller {
	return &Scroller{window: window, frames: frames, duration: ScrollDuration}
}

type animation struct {
	gen       uint64
	from      float64
	distance  float64
	to        float64
	startedAt time.Time
}

// ScrollTo starts an eased scroll to target + NavOffset. It returns false
// (and leaves any running animation alone) when the window is already
// within MinScrollDistance of the destination.
func (s *Scroller) ScrollTo(target float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.window.ScrollY()
	to := target + NavOffset
	distance := to - from
	if math.Abs(distance) < MinScrollDistance {
		return false
	}

	s.stopLocked()
	s.gen++
	a := &animation{gen: s.gen, from: from, distance: distance, to: to}
	s.active = true
	s.requestLocked(a)
	return true
}

// Cancel stops the running animation, leaving the window where it is.
func (s *Scroller) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.gen++
}

// Animating reports whether an animation is in flight.
func (s *Scroller) Animating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Scroller) stopLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.active = false
}

func (s *Scroller) requestLocked(a *animation) {
	s.cancel = s.frames.RequestFrame(func(now time.Time) { s.step(a, now) })
}

func (s *Scroller) step(a *animation, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.gen != s.gen || !s.active {
		return
	}

	if a.startedAt.IsZero() {
		a.startedAt = now
	}
	progress := 1.0
	if s.duration > 0 {
		progress = math.Min(float64(now.Sub(a.startedAt))/float64(s.duration), 1)
	}

	if progress >= 1 {
		s.window.ScrollTo(a.to)
		s.active = false
		s.cancel = nil
		return
	}
	s.window.ScrollTo(a.from + a.distance*EaseInOutCubic(progress))
	s.requestLocked(a)
}
