package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artshowcase/showcase/internal/model"
)

// lockedBuffer is written by the controller goroutine and read by the test.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func stubPassword(t *testing.T, pw string, err error) {
	t.Helper()
	orig := readPassword
	readPassword = func(int) ([]byte, error) {
		if err != nil {
			return nil, err
		}
		return []byte(pw), nil
	}
	t.Cleanup(func() { readPassword = orig })
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func signToken(t *testing.T, email string, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"name":  "Ann",
		"exp":   exp.Unix(),
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return tok
}

// runCmd executes the root command against the backend served by mux.
func runCmd(t *testing.T, mux *http.ServeMux, tokenFile, stdin string, args ...string) (string, error) {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(append([]string{"--api", srv.URL, "--token-file", tokenFile}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	s, err := NewTokenStore(path)
	require.NoError(t, err)

	tok, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, s.Save("abc.def"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	tok, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc.def", tok)

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
	tok, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestNewTokenStore_DefaultPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honoured on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	s, err := NewTokenStore("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "artshowcase", "token"), s.Path())
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("  ann@example.com")), "Email", &out)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", got)
	assert.Equal(t, "Email: ", out.String())
}

func TestGetPassword(t *testing.T) {
	stubPassword(t, "Secret1", nil)
	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "Secret1", string(pw))
	assert.Equal(t, "Password: \n", out.String())

	stubPassword(t, "", errors.New("not a terminal"))
	_, err = GetPassword(&out)
	assert.EqualError(t, err, "not a terminal")
}

func TestLoginCommand(t *testing.T) {
	stubPassword(t, "Secret1", nil)
	tok := signToken(t, "ann@example.com", time.Now().Add(time.Hour))
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "Secret1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "bad credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"token": tok})
	})
	tokenFile := filepath.Join(t.TempDir(), "token")

	out, err := runCmd(t, mux, tokenFile, "ann@example.com\n", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "Email: ")
	assert.Contains(t, out, "Logged in as Ann")

	saved, err := os.ReadFile(tokenFile)
	require.NoError(t, err)
	assert.Equal(t, tok, strings.TrimSpace(string(saved)))
}

func TestLoginCommand_InvalidCredentials(t *testing.T) {
	stubPassword(t, "wrong", nil)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "bad credentials"})
	})
	tokenFile := filepath.Join(t.TempDir(), "token")

	_, err := runCmd(t, mux, tokenFile, "", "login", "--email", "ann@example.com")
	assert.EqualError(t, err, "invalid email or password")
	assert.NoFileExists(t, tokenFile)
}

func TestLogoutCommand(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(tokenFile, []byte("tok\n"), 0o600))

	out, err := runCmd(t, http.NewServeMux(), tokenFile, "", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")
	assert.NoFileExists(t, tokenFile)
}

func TestShowCommand(t *testing.T) {
	price := 120.0
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/artworks/7", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, model.Artwork{
			ID:          "7",
			Title:       "Harbour at dusk",
			Category:    model.CategoryPainting,
			UserEmail:   "bob@example.com",
			Medium:      "Oil",
			Description: "**Boats** and lights",
			Price:       &price,
			Visibility:  model.VisibilityPublic,
			Likes:       3,
		})
	})
	mux.HandleFunc("GET /api/artists/bob@example.com", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, model.Artist{Name: "Bob Painter", Email: "bob@example.com"})
	})

	out, err := runCmd(t, mux, filepath.Join(t.TempDir(), "token"), "", "show", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Harbour at dusk\nby Bob Painter")
	assert.Regexp(t, `Price\s+\$120`, out)
	assert.Regexp(t, `Likes\s+3`, out)
	assert.Contains(t, out, "Boats and lights")
	assert.NotContains(t, out, "Visibility")
}

func TestShowCommand_PrivateOfOtherUser(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(tokenFile, []byte(signToken(t, "ann@example.com", time.Now().Add(time.Hour))), 0o600))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/artworks/9", func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "))
		writeJSON(w, http.StatusOK, model.Artwork{ID: "9", Title: "Secret", UserEmail: "bob@example.com", Visibility: model.VisibilityPrivate})
	})

	_, err := runCmd(t, mux, tokenFile, "", "show", "9")
	assert.EqualError(t, err, "artwork 9 not found")
}

func TestShowCommand_ExpiredTokenIsDropped(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(tokenFile, []byte(signToken(t, "ann@example.com", time.Now().Add(-time.Hour))), 0o600))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/artworks/7", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, model.Artwork{ID: "7", Title: "Open", Visibility: model.VisibilityPublic})
	})

	out, err := runCmd(t, mux, tokenFile, "", "show", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Your session has expired")
	assert.NoFileExists(t, tokenFile)
}

func TestExploreCommand_Quit(t *testing.T) {
	out, err := runCmd(t, http.NewServeMux(), filepath.Join(t.TempDir(), "token"), ":q\n", "explore", "--debounce", "1h")
	require.NoError(t, err)
	assert.Contains(t, out, "Type to search")
}
