package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/artshowcase/showcase/internal/ui"
	"github.com/artshowcase/showcase/internal/ui/components/toast"
)

// sweepEvery is how many Allow calls pass between removals of expired windows.
const sweepEvery = 256

type window struct {
	count int
	reset time.Time
}

// RateLimiter counts attempts per key in fixed windows.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
	calls   int
	now     func() time.Time
}

func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
		now:     time.Now,
	}
}

// Allow records an attempt for key and reports whether it is within budget.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.calls++
	if rl.calls%sweepEvery == 0 {
		rl.sweepLocked(now)
	}

	win, ok := rl.windows[key]
	if !ok || !now.Before(win.reset) {
		rl.windows[key] = &window{count: 1, reset: now.Add(rl.period)}
		return true
	}
	if win.count >= rl.limit {
		return false
	}
	win.count++
	return true
}

// RetryAfter is how long key has to wait for a fresh window.
func (rl *RateLimiter) RetryAfter(key string) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	win, ok := rl.windows[key]
	if !ok {
		return 0
	}
	return max(win.reset.Sub(rl.now()), 0)
}

func (rl *RateLimiter) sweepLocked(now time.Time) {
	for key, win := range rl.windows {
		if !now.Before(win.reset) {
			delete(rl.windows, key)
		}
	}
}

// RateLimitAuth allows 10 login, register or Google sign-in attempts per IP
// every 15 minutes.
func RateLimitAuth() func(http.HandlerFunc) http.HandlerFunc {
	return RateLimit(NewRateLimiter(10, 15*time.Minute))
}

// RateLimit rejects requests from an IP over the limiter's budget. htmx
// requests get a 200 with an error toast and no swap, since htmx ignores
// error responses.
func RateLimit(limiter *RateLimiter) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if limiter.Allow(ip) {
				next(w, r)
				return
			}

			wait := limiter.RetryAfter(ip)
			slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path, "retry_after", wait)
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))

			msg := fmt.Sprintf("Too many attempts. Please try again in %s.", waitText(wait))
			if r.Header.Get("HX-Request") == "true" {
				w.Header().Set("HX-Reswap", "none")
				ui.RenderOOB(w, r, toast.Error(msg), toast.Target)
				return
			}
			http.Error(w, msg, http.StatusTooManyRequests)
		}
	}
}

func waitText(d time.Duration) string {
	if m := int(math.Ceil(d.Minutes())); m > 1 {
		return strconv.Itoa(m) + " minutes"
	}
	return "a minute"
}

// clientIP prefers the proxy headers and falls back to the peer address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
