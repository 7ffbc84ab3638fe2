package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/artshowcase/showcase/internal/ctxkeys"
	"github.com/artshowcase/showcase/internal/ui"
	"github.com/artshowcase/showcase/internal/ui/components/toast"
)

const (
	csrfCookieName = "csrf_token"
	csrfFormField  = "csrf_token"
	csrfHeader     = "X-CSRF-Token"
	csrfMaxAge     = 7 * 24 * 60 * 60
	csrfTokenLen   = 26 // rand.Text
)

// CSRFProtection is a double-submit check. Every request carries the cookie
// token in its context; unsafe methods must echo it in the X-CSRF-Token
// header (set on <body> via hx-headers) or the csrf_token form field.
func CSRFProtection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := csrfToken(w, r)
		r = r.WithContext(ctxkeys.WithCSRFToken(r.Context(), token))

		if safeMethod(r.Method) || tokensMatch(token, submittedCSRFToken(r)) {
			next.ServeHTTP(w, r)
			return
		}

		slog.Warn("csrf validation failed", "path", r.URL.Path, "method", r.Method, "ip", clientIP(r))
		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Reswap", "none")
			ui.RenderOOB(w, r, toast.Error("This page has expired. Reload it and try again."), toast.Target)
			return
		}
		http.Error(w, "Invalid CSRF token", http.StatusForbidden)
	})
}

func safeMethod(m string) bool {
	return m == http.MethodGet || m == http.MethodHead || m == http.MethodOptions
}

// csrfToken returns the token from the cookie, issuing a new one when the
// cookie is missing or malformed.
func csrfToken(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(csrfCookieName); err == nil && len(c.Value) == csrfTokenLen {
		return c.Value
	}

	token := rand.Text()
	cfg := ctxkeys.Config(r.Context())
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   csrfMaxAge,
		HttpOnly: true,
		Secure:   cfg != nil && cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return token
}

// submittedCSRFToken reads the header first, then the (urlencoded or
// multipart) form.
func submittedCSRFToken(r *http.Request) string {
	if t := r.Header.Get(csrfHeader); t != "" {
		return t
	}
	return r.PostFormValue(csrfFormField)
}

func tokensMatch(expected, actual string) bool {
	return expected != "" && actual != "" &&
		subtle.ConstantTimeCompare([]byte(expected), []byte(actual)) == 1
}
