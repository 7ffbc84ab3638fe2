package middleware

import (
	"net/http"
	"slices"
)

// Middleware wraps a whole handler (global concerns: logging, headers, CSRF).
type Middleware func(http.Handler) http.Handler

// Chain wraps h so that middlewares run in the order given.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range slices.Backward(middlewares) {
		h = m(h)
	}
	return h
}

// Guard composes per-route decorators such as RateLimit, RequireGuest and
// RequireAuth. The first guard runs first.
func Guard(guards ...func(http.HandlerFunc) http.HandlerFunc) func(http.HandlerFunc) http.HandlerFunc {
	return func(h http.HandlerFunc) http.HandlerFunc {
		for _, g := range slices.Backward(guards) {
			h = g(h)
		}
		return h
	}
}
