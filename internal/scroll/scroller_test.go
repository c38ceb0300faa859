package scroll

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow records every programmatic scroll.
type fakeWindow struct {
	mu      sync.Mutex
	y       float64
	history []float64
}

func (w *fakeWindow) ScrollY() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.y
}

func (w *fakeWindow) ScrollTo(y float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.y = y
	w.history = append(w.history, y)
}

func (w *fakeWindow) writes() []float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]float64(nil), w.history...)
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const frameStep = 16 * time.Millisecond

func runToEnd(t *testing.T, frames *ManualFrames, s *Scroller) {
	t.Helper()
	for i := 0; i < 1000 && s.Animating(); i++ {
		frames.Advance(frameStep)
	}
	require.False(t, s.Animating(), "animation did not finish")
}

func TestEaseInOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOutCubic(0))
	assert.Equal(t, 0.5, EaseInOutCubic(0.5))
	assert.Equal(t, 1.0, EaseInOutCubic(1))

	prev := 0.0
	for p := 0.0; p <= 1; p += 0.01 {
		v := EaseInOutCubic(p)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestScroller_NoOpWhenAlreadyThere(t *testing.T) {
	w := &fakeWindow{y: 100}
	frames := NewManualFrames(epoch)
	s := NewScroller(w, frames)

	assert.False(t, s.ScrollTo(100), "distance 5 is below the minimum")
	assert.False(t, s.ScrollTo(97))
	assert.Equal(t, 0, frames.Pending())
	assert.False(t, s.Animating())
	assert.Empty(t, w.writes())
}

func TestScroller_EndsExactlyAtTarget(t *testing.T) {
	w := &fakeWindow{}
	frames := NewManualFrames(epoch)
	s := NewScroller(w, frames)

	require.True(t, s.ScrollTo(1000))
	runToEnd(t, frames, s)

	assert.Equal(t, 1005.0, w.ScrollY())
	writes := w.writes()
	require.NotEmpty(t, writes)
	for i := 1; i < len(writes); i++ {
		assert.GreaterOrEqual(t, writes[i], writes[i-1], "scroll moved backwards at frame %d", i)
	}
	assert.Equal(t, 0, frames.Pending())
}

func TestScroller_ScrollsUpward(t *testing.T) {
	w := &fakeWindow{y: 5000}
	frames := NewManualFrames(epoch)
	s := NewScroller(w, frames)

	require.True(t, s.ScrollTo(0))
	runToEnd(t, frames, s)

	assert.Equal(t, 5.0, w.ScrollY())
	writes := w.writes()
	for i := 1; i < len(writes); i++ {
		assert.LessOrEqual(t, writes[i], writes[i-1])
	}
}

func TestScroller_TakesTwoSeconds(t *testing.T) {
	w := &fakeWindow{}
	frames := NewManualFrames(epoch)
	s := NewScroller(w, frames)
	require.True(t, s.ScrollTo(1000))

	// The first frame stamps the start time; 1000ms later the eased
	// position is exactly half way.
	for i := 0; i < 11; i++ {
		frames.Advance(100 * time.Millisecond)
	}
	assert.Equal(t, 502.5, w.ScrollY())

	for i := 0; i < 9; i++ {
		frames.Advance(100 * time.Millisecond)
	}
	assert.True(t, s.Animating(), "still animating at 1900ms")

	frames.Advance(100 * time.Millisecond)
	assert.False(t, s.Animating())
	assert.Equal(t, 1005.0, w.ScrollY())
}

func TestScroller_NewRequestReplacesRunningAnimation(t *testing.T) {
	w := &fakeWindow{}
	frames := NewManualFrames(epoch)
	s := NewScroller(w, frames)

	require.True(t, s.ScrollTo(1000))
	for i := 0; i < 20; i++ {
		frames.Advance(frameStep)
	}
	mid := w.ScrollY()
	require.Greater(t, mid, 0.0)
	require.Less(t, mid, 1005.0)

	require.True(t, s.ScrollTo(8000))
	assert.Equal(t, 1, frames.Pending(), "only the new animation is scheduled")

	runToEnd(t, frames, s)
	assert.Equal(t, 8005.0, w.ScrollY())

	// The replacement started from where the first one was interrupted.
	writes := w.writes()
	for i := 1; i < len(writes); i++ {
		assert.GreaterOrEqual(t, writes[i], writes[i-1])
	}
}

func TestScroller_NoOpLeavesRunningAnimation(t *testing.T) {
	w := &fakeWindow{}
	frames := NewManualFrames(epoch)
	s := NewScroller(w, frames)

	require.True(t, s.ScrollTo(1000))
	frames.Advance(frameStep)

	assert.False(t, s.ScrollTo(w.ScrollY()-NavOffset))
	assert.True(t, s.Animating())

	runToEnd(t, frames, s)
	assert.Equal(t, 1005.0, w.ScrollY())
}

func TestScroller_Cancel(t *testing.T) {
	w := &fakeWindow{}
	frames := NewManualFrames(epoch)
	s := NewScroller(w, frames)

	require.True(t, s.ScrollTo(1000))
	for i := 0; i < 10; i++ {
		frames.Advance(frameStep)
	}
	at := w.ScrollY()

	s.Cancel()
	assert.False(t, s.Animating())
	assert.Equal(t, 0, frames.Pending())
	assert.Equal(t, 0, frames.Advance(frameStep))
	assert.Equal(t, at, w.ScrollY())
}

func TestScroller_TimerFrames(t *testing.T) {
	w := &fakeWindow{}
	s := NewScroller(w, TimerFrames{Interval: 2 * time.Millisecond})
	s.duration = 40 * time.Millisecond

	require.True(t, s.ScrollTo(300))
	assert.Eventually(t, func() bool {
		return !s.Animating() && w.ScrollY() == 305
	}, 2*time.Second, 5*time.Millisecond)
}
