package middleware

import (
	"net/http"
	"strings"

	"github.com/artshowcase/showcase/internal/ctxkeys"
)

// WithURLPath stores the request path for nav highlighting. "/app/gallery/"
// and "/app/gallery" count as the same page.
func WithURLPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if len(path) > 1 {
			path = strings.TrimSuffix(path, "/")
		}
		next.ServeHTTP(w, r.WithContext(ctxkeys.WithURLPath(r.Context(), path)))
	})
}
