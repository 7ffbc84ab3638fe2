package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/artshowcase/showcase/internal/ctxkeys"
	"github.com/artshowcase/showcase/internal/service"
	"github.com/artshowcase/showcase/internal/ui"
	"github.com/artshowcase/showcase/internal/ui/pages"
	"github.com/artshowcase/showcase/internal/validation"
)

const (
	oauthStateCookie = "oauth_state"
	oauthNextCookie  = "oauth_next"
	afterLoginPath   = "/app/dashboard"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Login(pages.LoginProps{
		Next:          safeNext(r.URL.Query().Get("next")),
		GoogleEnabled: h.authService.GoogleEnabled(),
	}))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	props := pages.LoginProps{
		Email:         email,
		Next:          safeNext(r.URL.Query().Get("next")),
		GoogleEnabled: h.authService.GoogleEnabled(),
	}

	if email == "" || password == "" {
		props.Error = "Email and password are required"
		ui.Render(w, r, pages.Login(props))
		return
	}

	if err := validation.ValidateEmail(email); err != nil {
		props.Error = "Please provide a valid email address"
		ui.Render(w, r, pages.Login(props))
		return
	}

	sess, err := h.authService.Login(r.Context(), email, password)
	if err != nil {
		slog.Warn("password login failed", "error", err, "email", email)
		props.Error = "Invalid email or password"
		if !errors.Is(err, service.ErrInvalidCredentials) {
			props.Error = userMessage(w, r, err, "Login failed. Please try again.")
		}
		ui.Render(w, r, pages.Login(props))
		return
	}

	h.authService.SetCookie(w, sess)
	slog.Info("user logged in with password", "email", sess.Email)
	http.Redirect(w, r, afterLogin(props.Next), http.StatusSeeOther)
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Register(pages.RegisterProps{GoogleEnabled: h.authService.GoogleEnabled()}))
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	in := service.RegisterInput{
		Name:            r.FormValue("name"),
		Email:           r.FormValue("email"),
		PhotoURL:        r.FormValue("photoURL"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmPassword"),
	}
	props := pages.RegisterProps{
		Name:          in.Name,
		Email:         in.Email,
		PhotoURL:      in.PhotoURL,
		GoogleEnabled: h.authService.GoogleEnabled(),
	}

	sess, err := h.authService.Register(r.Context(), in)
	if err != nil {
		var fieldErrs validation.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			props.Errors = fieldErrs
		case errors.Is(err, service.ErrEmailAlreadyExists):
			props.Errors = validation.FieldErrors{"email": "an account with this email already exists"}
		default:
			slog.Error("registration failed", "error", err, "email", in.Email)
			props.Error = userMessage(w, r, err, "Registration failed. Please try again.")
		}
		ui.Render(w, r, pages.Register(props))
		return
	}

	h.authService.SetCookie(w, sess)
	http.Redirect(w, r, afterLoginPath, http.StatusSeeOther)
}

// GoogleAuth redirects user to Google OAuth consent screen
func (h *AuthHandler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	state := generateOAuthState()

	url, err := h.authService.GoogleAuthURL(state)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.setShortCookie(w, r, oauthStateCookie, state)
	if next := safeNext(r.URL.Query().Get("next")); next != "" {
		h.setShortCookie(w, r, oauthNextCookie, next)
	}
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallback exchanges the code and signs in at the backend with the
// Google id_token.
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value != state || state == "" {
		slog.Warn("google oauth state validation failed", "error", err)
		h.googleFailed(w, r)
		return
	}
	clearCookie(w, oauthStateCookie)

	next := ""
	if c, err := r.Cookie(oauthNextCookie); err == nil {
		next = safeNext(c.Value)
		clearCookie(w, oauthNextCookie)
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Warn("google oauth callback missing code")
		h.googleFailed(w, r)
		return
	}

	sess, err := h.authService.GoogleExchange(r.Context(), code)
	if err != nil {
		slog.Error("google sign-in failed", "error", err)
		h.googleFailed(w, r)
		return
	}

	h.authService.SetCookie(w, sess)
	slog.Info("user logged in with google", "email", sess.Email)
	http.Redirect(w, r, afterLogin(next), http.StatusSeeOther)
}

func (h *AuthHandler) googleFailed(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Login(pages.LoginProps{
		Error:         "Google sign-in failed. Please try again.",
		GoogleEnabled: h.authService.GoogleEnabled(),
	}))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearCookie(w)
	if sess := ctxkeys.Session(r.Context()); sess != nil {
		slog.Info("user logged out", "email", sess.Email)
	}
	redirect(w, r, "/")
}

func (h *AuthHandler) setShortCookie(w http.ResponseWriter, r *http.Request, name, value string) {
	cfg := ctxkeys.Config(r.Context())
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg != nil && cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   600, // 10 minutes
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:   name,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

func afterLogin(next string) string {
	if next == "" {
		return afterLoginPath
	}
	return next
}

func generateOAuthState() string {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		panic("failed to generate oauth state: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
