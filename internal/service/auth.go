package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/artshowcase/showcase/internal/api"
	"github.com/artshowcase/showcase/internal/config"
	"github.com/artshowcase/showcase/internal/model"
	"github.com/artshowcase/showcase/internal/validation"
)

const AuthCookieName = "auth_token"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidSession     = errors.New("invalid session token")
	ErrSessionExpired     = errors.New("session expired")
	ErrGoogleDisabled     = errors.New("google sign-in is not configured")
)

// AuthService signs users in against the backend and keeps the backend's
// token in a cookie. The token is the only state kept for a session; the
// identity shown in the UI is read from its claims.
type AuthService struct {
	api           *api.Client
	cookieTTL     time.Duration
	secureCookies bool
	google        *oauth2.Config
	now           func() time.Time
}

func NewAuthService(client *api.Client, cfg *config.Config) *AuthService {
	s := &AuthService{
		api:           client,
		cookieTTL:     cfg.AuthCookieTTL,
		secureCookies: cfg.SecureCookies,
		now:           time.Now,
	}
	if cfg.GoogleEnabled() {
		s.google = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  strings.TrimSuffix(cfg.AppURL, "/") + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}
	return s
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) || errors.Is(err, api.ErrNotFound) {
			return nil, fmt.Errorf("login failed: %w", ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return s.fromResult(res)
}

type RegisterInput struct {
	Name            string
	Email           string
	PhotoURL        string
	Password        string
	ConfirmPassword string
}

// Register validates the form and creates the account. Validation errors
// are returned as validation.FieldErrors.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.Session, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	in.PhotoURL = strings.TrimSpace(in.PhotoURL)

	errs := validation.FieldErrors{}
	if err := validation.ValidateName(in.Name); err != nil {
		errs["name"] = err.Error()
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		errs["email"] = err.Error()
	}
	if in.PhotoURL != "" {
		if err := validation.ValidateImageURL(in.PhotoURL); err != nil {
			errs["photoURL"] = "photo URL must be an http(s) link"
		}
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		errs["password"] = err.Error()
	} else if err := validation.ValidatePasswordConfirmation(in.Password, in.ConfirmPassword); err != nil {
		errs["confirmPassword"] = err.Error()
	}
	if len(errs) > 0 {
		return nil, errs
	}

	res, err := s.api.Register(ctx, api.RegisterInput{
		Name:     in.Name,
		Email:    in.Email,
		PhotoURL: in.PhotoURL,
		Password: in.Password,
	})
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			return nil, fmt.Errorf("register failed: %w", ErrEmailAlreadyExists)
		}
		return nil, fmt.Errorf("register failed: %w", err)
	}
	slog.Info("user registered", "email", in.Email)
	return s.fromResult(res)
}

func (s *AuthService) GoogleEnabled() bool {
	return s.google != nil
}

// GoogleAuthURL returns the consent screen URL for the given state.
func (s *AuthService) GoogleAuthURL(state string) (string, error) {
	if s.google == nil {
		return "", ErrGoogleDisabled
	}
	return s.google.AuthCodeURL(state), nil
}

// GoogleExchange trades the callback code for Google's ID token and signs
// in at the backend with it.
func (s *AuthService) GoogleExchange(ctx context.Context, code string) (*model.Session, error) {
	if s.google == nil {
		return nil, ErrGoogleDisabled
	}

	token, err := s.google.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google token exchange failed: %w", err)
	}
	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return nil, errors.New("google returned no id_token")
	}

	res, err := s.api.GoogleLogin(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("google login failed: %w", err)
	}
	return s.fromResult(res)
}

func (s *AuthService) fromResult(res *model.AuthResult) (*model.Session, error) {
	sess, err := s.Session(res.Token)
	if err != nil {
		return nil, err
	}
	// The response body is fresher than the claims.
	if res.User.Email != "" {
		sess.Email = res.User.Email
	}
	if res.User.Name != "" {
		sess.Name = res.User.Name
	}
	if res.User.PhotoURL != "" {
		sess.PhotoURL = res.User.PhotoURL
	}
	return sess, nil
}

type sessionClaims struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	Picture  string `json:"picture"`
	jwt.RegisteredClaims
}

// Session reads the identity from the backend token. The signature is not
// checked here: the backend verifies the token on every API call, and the
// claims only decide what the UI shows.
func (s *AuthService) Session(token string) (*model.Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	claims := &sessionClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	email := claims.Email
	if email == "" && strings.Contains(claims.Subject, "@") {
		email = claims.Subject
	}
	if email == "" {
		return nil, ErrInvalidSession
	}

	sess := &model.Session{
		Token:    token,
		Email:    email,
		Name:     claims.Name,
		PhotoURL: claims.PhotoURL,
	}
	if sess.PhotoURL == "" {
		sess.PhotoURL = claims.Picture
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
		if !s.now().Before(sess.ExpiresAt) {
			return nil, ErrSessionExpired
		}
	}
	return sess, nil
}

// SetCookie stores the session token. The cookie never outlives the token.
func (s *AuthService) SetCookie(w http.ResponseWriter, sess *model.Session) {
	expiry := s.now().Add(s.cookieTTL)
	if !sess.ExpiresAt.IsZero() && sess.ExpiresAt.Before(expiry) {
		expiry = sess.ExpiresAt
	}
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    sess.Token,
		Expires:  expiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearCookie(w http.ResponseWriter) {
	ClearAuthCookie(w, s.secureCookies)
}

// ClearAuthCookie drops the session, e.g. after the backend rejected the
// token with 401.
func ClearAuthCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
