package middleware

import (
	"crypto/rand"
	"net/http"

	"github.com/a-h/templ"
)

// NonceMiddleware stores a fresh CSP nonce in the context. Layout stamps it
// on its script tags and SecurityHeaders allows only scripts carrying it;
// both read it back with templ.GetNonce.
func NonceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(templ.WithNonce(r.Context(), rand.Text())))
	})
}
