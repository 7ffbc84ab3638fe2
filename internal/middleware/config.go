package middleware

import (
	"net/http"

	"github.com/artshowcase/showcase/internal/config"
	"github.com/artshowcase/showcase/internal/ctxkeys"
)

// Config middleware adds the sanitized app configuration to the request context.
// Secrets like GoogleClientSecret and S3 keys are excluded.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	safe := cfg.Sanitized()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), safe)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
