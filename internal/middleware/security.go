package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/artshowcase/showcase/internal/ctxkeys"
)

// htmxOrigin serves the htmx script.
const htmxOrigin = "https://unpkg.com"

// SecurityHeaders sets CSP and the usual hardening headers. Artwork images
// are user supplied URLs, so img-src allows any https origin.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", contentSecurityPolicy(r))
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

		cfg := ctxkeys.Config(r.Context())
		if cfg != nil && cfg.IsProduction() {
			h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}

func contentSecurityPolicy(r *http.Request) string {
	scriptSrc := []string{"'self'", htmxOrigin}
	if nonce := templ.GetNonce(r.Context()); nonce != "" {
		scriptSrc = append(scriptSrc, "'nonce-"+nonce+"'")
	}

	imgSrc := []string{"'self'", "data:", "https:"}
	cfg := ctxkeys.Config(r.Context())
	if cfg != nil && cfg.S3Endpoint != "" {
		// Local MinIO is usually plain http
		if u, err := url.Parse(cfg.S3Endpoint); err == nil && u.Host != "" {
			imgSrc = append(imgSrc, u.Scheme+"://"+u.Host)
		}
	}

	directives := []string{
		"default-src 'self'",
		"script-src " + strings.Join(scriptSrc, " "),
		"style-src 'self' 'unsafe-inline'",
		"img-src " + strings.Join(imgSrc, " "),
		"connect-src 'self'",
		"form-action 'self' https://accounts.google.com",
		"frame-ancestors 'none'",
		"base-uri 'self'",
	}
	return strings.Join(directives, "; ")
}
