package scroll

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Extra distance past a target used by the hero and navbar call-to-action
// buttons, so the destination section is well into its hold.
const ctaNudge = 50.0

// Frame is the output of one engine step.
type Frame struct {
	ScrollY       float64        `json:"scrollY"`
	Sections      []SectionState `json:"sections"`
	Active        Label          `json:"active"`
	ActiveChanged bool           `json:"activeChanged"`
}

// Renderer applies a computed frame to on-screen elements. It is the only
// writer of section display state.
type Renderer interface {
	Apply(f Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f Frame)

func (f RendererFunc) Apply(fr Frame) { f(fr) }

// Engine threads the layout state (viewport, plan, active label) through
// per-frame computation.
type Engine struct {
	mu       sync.RWMutex
	viewport Viewport
	plan     Plan
	active   *ActiveTracker
	scroller *Scroller
}

// NewEngine creates an engine laid out for the given viewport. onActive is
// called whenever the active nav label changes and may be nil.
func NewEngine(width, height float64, onActive func(prev, next Label)) *Engine {
	e := &Engine{active: NewActiveTracker(onActive)}
	e.viewport.Observe(width, height)
	e.plan = Compute(height)
	return e
}

// Plan returns the current layout.
func (e *Engine) Plan() Plan {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.plan
}

// Resize reports a viewport change and recomputes the plan when the change
// passes the relayout guard. It returns whether a relayout happened.
func (e *Engine) Resize(width, height float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.viewport.Observe(width, height) {
		return false
	}
	e.plan = Compute(height)
	return true
}

// Step computes the frame for scrollY.
func (e *Engine) Step(scrollY float64) Frame {
	scrollY = sanitizeScroll(scrollY)
	plan := e.Plan()

	label := Resolve(scrollY, plan)
	return Frame{
		ScrollY:       scrollY,
		Sections:      ComputeFrame(scrollY, plan),
		Active:        label,
		ActiveChanged: e.active.Update(label),
	}
}

// Active returns the label of the last step.
func (e *Engine) Active() Label {
	return e.active.Current()
}

// Run samples the scroll offset once per tick, computes the frame and hands
// it to r, until ctx is cancelled.
func (e *Engine) Run(ctx context.Context, sampler Sampler, r Renderer, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			r.Apply(e.Step(sampler.ScrollY()))
		}
	}
}

// AttachScroller wires the smooth scroller used by navigation helpers.
func (e *Engine) AttachScroller(s *Scroller) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scroller = s
}

// NavigateTo smooth-scrolls to a named target ("home", "about", "projects",
// "contact", "cta", "latestProjects"; case-insensitive). It returns false
// for unknown targets, without a scroller, or when already there.
func (e *Engine) NavigateTo(key string) bool {
	e.mu.RLock()
	target, ok := e.plan.Targets.Lookup(strings.ToLower(key))
	s := e.scroller
	e.mu.RUnlock()
	if !ok || s == nil {
		return false
	}
	return s.ScrollTo(target)
}

// BeginStory scrolls into the call-to-action section.
func (e *Engine) BeginStory() bool {
	return e.scrollPast(e.Plan().Targets.CTA)
}

// Explore scrolls into the latest projects section.
func (e *Engine) Explore() bool {
	return e.scrollPast(e.Plan().Targets.LatestProjects)
}

func (e *Engine) scrollPast(target float64) bool {
	e.mu.RLock()
	s := e.scroller
	e.mu.RUnlock()
	if s == nil {
		return false
	}
	return s.ScrollTo(target + ctaNudge)
}
