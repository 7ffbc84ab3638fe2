package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/artshowcase/showcase/internal/model"
)

// ErrNoToken is returned when the backend accepted credentials but issued no token.
var ErrNoToken = errors.New("backend issued no token")

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL,omitempty"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*model.AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	return c.authenticate(ctx, "/api/auth/login", body)
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (*model.AuthResult, error) {
	return c.authenticate(ctx, "/api/auth/register", in)
}

// GoogleLogin exchanges a Google ID token for a backend session token.
func (c *Client) GoogleLogin(ctx context.Context, idToken string) (*model.AuthResult, error) {
	body := map[string]string{"idToken": idToken}
	return c.authenticate(ctx, "/api/auth/google", body)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*model.AuthResult, error) {
	out := &model.AuthResult{}
	err := c.do(ctx, http.MethodPost, path, nil, body, out)
	if err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, ErrNoToken
	}
	return out, nil
}
