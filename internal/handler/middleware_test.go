package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

// fakeClock is a settable clock for the rate limiter.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(t *testing.T, max int) (*RateLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(max)
	rl.now = clock.Now
	t.Cleanup(rl.Stop)
	return rl, clock
}

func post(h http.Handler, remoteAddr, xff string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/enquiry", nil)
	req.RemoteAddr = remoteAddr
	if xff != "" {
		req.Header.Set("X-Forwarded-For", xff)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ---------------------------------------------------------------------------
// SecurityHeaders
// ---------------------------------------------------------------------------

func TestSecurityHeaders_SetsHeaders(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()
	SecurityHeaders(okHandler).ServeHTTP(rec, req)

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for name, want := range headers {
		if got := rec.Header().Get(name); got != want {
			t.Errorf("%s: want %q, got %q", name, want, got)
		}
	}
	if csp := rec.Header().Get("Content-Security-Policy"); !strings.Contains(csp, "frame-ancestors 'none'") {
		t.Errorf("CSP missing frame-ancestors: %q", csp)
	}
	if hsts := rec.Header().Get("Strict-Transport-Security"); !strings.Contains(hsts, "max-age=") {
		t.Errorf("HSTS missing max-age: %q", hsts)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected inner status 200, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// RateLimiter
// ---------------------------------------------------------------------------

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl, _ := newTestLimiter(t, 3)
	h := rl.Middleware(okHandler)

	for i := 0; i < 3; i++ {
		if rec := post(h, "192.168.1.1:12345", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	rec := post(h, "192.168.1.1:12345", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on 4th request, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on 429 response")
	}
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["success"] != false || body["error"] != "rate limit exceeded" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	rl, clock := newTestLimiter(t, 1)
	h := rl.Middleware(okHandler)

	post(h, "10.0.0.1:1234", "")
	clock.Add(30 * time.Second)
	rec := post(h, "10.0.0.1:1234", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 inside the window, got %d", rec.Code)
	}
	if ra := rec.Header().Get("Retry-After"); ra != "31" {
		t.Errorf("expected Retry-After 31, got %q", ra)
	}

	clock.Add(31 * time.Second)
	if rec := post(h, "10.0.0.1:1234", ""); rec.Code != http.StatusOK {
		t.Errorf("expected 200 once the window passed, got %d", rec.Code)
	}
}

func TestRateLimiter_DifferentIPsAreIndependent(t *testing.T) {
	rl, _ := newTestLimiter(t, 1)
	h := rl.Middleware(okHandler)

	post(h, "10.0.0.1:1234", "")
	if rec := post(h, "10.0.0.2:1234", ""); rec.Code != http.StatusOK {
		t.Errorf("different IP should not be rate limited, got %d", rec.Code)
	}
}

func TestRateLimiter_SpoofedLeftmostForwardedForIgnored(t *testing.T) {
	rl, _ := newTestLimiter(t, 1)
	h := rl.Middleware(okHandler)

	if rec := post(h, "10.0.0.99:1234", "203.0.113.50"); rec.Code != http.StatusOK {
		t.Fatalf("first request should succeed, got %d", rec.Code)
	}
	// The proxy appends the real client last; anything to the left is
	// client-controlled.
	if rec := post(h, "10.0.0.99:1234", "9.9.9.9, 203.0.113.50"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("spoofed leftmost IP should not bypass rate limit, got %d", rec.Code)
	}
}

func TestRateLimiter_PruneForgetsIdleClients(t *testing.T) {
	rl, clock := newTestLimiter(t, 5)
	h := rl.Middleware(okHandler)

	post(h, "10.0.0.1:1234", "")
	clock.Add(30 * time.Second)
	post(h, "10.0.0.2:1234", "")
	clock.Add(45 * time.Second)

	rl.prune()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.clients["10.0.0.1"]; ok {
		t.Error("expected idle client to be forgotten")
	}
	if got := len(rl.clients["10.0.0.2"]); got != 1 {
		t.Errorf("expected active client to keep 1 timestamp, got %d", got)
	}
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1)
	rl.Stop()
	rl.Stop()
}
