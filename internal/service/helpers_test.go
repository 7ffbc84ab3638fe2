package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/artshowcase/showcase/internal/api"
	"github.com/artshowcase/showcase/internal/model"
)

// newBackend starts a fake backend serving mux and returns an anonymous client for it.
func newBackend(t *testing.T, mux *http.ServeMux) *api.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := api.New(srv.URL, api.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func signToken(t *testing.T, email, name string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"email": email, "name": name}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return tok
}

func session(email string) *model.Session {
	return &model.Session{Token: "tok-" + email, Email: email, Name: strings.Split(email, "@")[0]}
}

// fakeStore records saved and deleted keys.
type fakeStore struct {
	mu      sync.Mutex
	saved   map[string]string
	deleted []string
}

func (s *fakeStore) Save(_ context.Context, key string, body io.Reader, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saved == nil {
		s.saved = map[string]string{}
	}
	s.saved[key] = contentType
	_, _ = io.Copy(io.Discard, body)
	return s.URL(key), nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStore) URL(key string) string {
	return "https://cdn.test/" + key
}

func (s *fakeStore) KeyFromURL(u string) (string, bool) {
	if !strings.HasPrefix(u, "https://cdn.test/") {
		return "", false
	}
	return strings.TrimPrefix(u, "https://cdn.test/"), true
}
