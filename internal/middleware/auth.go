package middleware

import (
	"log/slog"
	"net/http"

	"github.com/artshowcase/showcase/internal/ctxkeys"
	"github.com/artshowcase/showcase/internal/model"
	"github.com/artshowcase/showcase/internal/service"
)

// SessionReader decodes the backend token kept in the auth cookie.
type SessionReader interface {
	Session(token string) (*model.Session, error)
	ClearCookie(w http.ResponseWriter)
}

// AuthMiddleware reads the auth cookie and adds the session to the context if valid
func AuthMiddleware(auth SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(service.AuthCookieName)
			if err != nil || cookie.Value == "" {
				// No cookie, continue without auth
				next.ServeHTTP(w, r)
				return
			}

			sess, err := auth.Session(cookie.Value)
			if err != nil {
				// Expired or malformed token, clear cookie and continue as guest
				slog.Debug("dropping auth cookie", "error", err)
				auth.ClearCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth ensures the user is signed in
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.Session(r.Context()) == nil {
			redirect(w, r, "/login?next="+r.URL.EscapedPath())
			return
		}
		next.ServeHTTP(w, r)
	}
}

// RequireGuest ensures the user is not signed in
func RequireGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.Session(r.Context()) != nil {
			redirect(w, r, "/app/dashboard")
			return
		}
		next.ServeHTTP(w, r)
	}
}

func redirect(w http.ResponseWriter, r *http.Request, to string) {
	// For HTMX requests, use HX-Redirect header to force full page redirect
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", to)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}
