package model

import "time"

// Session is the signed-in identity carried by the backend-issued token.
// The token itself is the only thing persisted client side.
type Session struct {
	Token     string
	Email     string
	Name      string
	PhotoURL  string
	ExpiresAt time.Time
}

func (s *Session) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Email
}

// AuthResult is the backend response to login, register and Google sign-in.
type AuthResult struct {
	Token string `json:"token"`
	User  struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		PhotoURL string `json:"photoURL"`
	} `json:"user"`
}
