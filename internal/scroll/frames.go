package scroll

import (
	"sort"
	"sync"
	"time"
)

// FrameScheduler runs a callback on the next display frame. The returned
// function cancels the request if it has not run yet. Implementations must
// not invoke fn synchronously from RequestFrame.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time)) (cancel func())
}

// DefaultFrameInterval approximates a 60Hz refresh.
const DefaultFrameInterval = time.Second / 60

// TimerFrames schedules frames on wall-clock timers.
type TimerFrames struct {
	Interval time.Duration
}

// RequestFrame runs fn once after the frame interval.
func (f TimerFrames) RequestFrame(fn func(now time.Time)) func() {
	interval := f.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	t := time.AfterFunc(interval, func() { fn(time.Now()) })
	return func() { t.Stop() }
}

// ManualFrames is a deterministic FrameScheduler driven by Advance. It is
// used for simulations and tests.
type ManualFrames struct {
	mu      sync.Mutex
	now     time.Time
	next    uint64
	pending map[uint64]func(time.Time)
}

// NewManualFrames creates a scheduler whose clock starts at start.
func NewManualFrames(start time.Time) *ManualFrames {
	return &ManualFrames{now: start, pending: make(map[uint64]func(time.Time))}
}

func (m *ManualFrames) RequestFrame(fn func(now time.Time)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.next
	m.next++
	m.pending[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.pending, id)
	}
}

// Advance moves the clock forward by d and runs every callback that was
// pending, in request order. Callbacks requested while running wait for the
// next Advance. It returns the number of callbacks run.
func (m *ManualFrames) Advance(d time.Duration) int {
	m.mu.Lock()
	m.now = m.now.Add(d)
	now := m.now
	ids := make([]uint64, 0, len(m.pending))
	for id := range m.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fns := make([]func(time.Time), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, m.pending[id])
		delete(m.pending, id)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(now)
	}
	return len(fns)
}

// Pending returns the number of callbacks waiting for the next frame.
func (m *ManualFrames) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Now returns the scheduler's clock.
func (m *ManualFrames) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}
