package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artshowcase/showcase/internal/model"
)

func TestFavoritesPage(t *testing.T) {
	f := newFixture(t)
	f.backend.mux.HandleFunc("GET /api/favorites", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []model.Artwork{artwork("5", "bob@example.com", model.VisibilityPublic)})
	})

	rec := httptest.NewRecorder()
	NewFavoritesHandler(f.favorites).FavoritesPage(rec, request(http.MethodGet, "/app/favorites", ann(), nil))

	body := rec.Body.String()
	assert.Contains(t, body, "Artwork 5")
	assert.Contains(t, body, `hx-delete="/app/favorites/5"`)
}

func TestRemoveFavorite(t *testing.T) {
	t.Run("success re-renders list", func(t *testing.T) {
		f := newFixture(t)
		f.backend.mux.HandleFunc("DELETE /api/favorites/5", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		f.backend.mux.HandleFunc("GET /api/favorites", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []model.Artwork{})
		})

		r := htmx(request(http.MethodDelete, "/app/favorites/5", ann(), nil), "results")
		r.SetPathValue("id", "5")
		rec := httptest.NewRecorder()
		NewFavoritesHandler(f.favorites).Remove(rec, r)

		assert.Contains(t, rec.Body.String(), "Removed from favorites")
		assert.NotContains(t, rec.Body.String(), "Artwork 5")
		assert.Equal(t, []string{"DELETE /api/favorites/5", "GET /api/favorites"}, f.backend.Calls())
	})

	t.Run("failure keeps list", func(t *testing.T) {
		f := newFixture(t)
		f.backend.mux.HandleFunc("DELETE /api/favorites/5", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, nil)
		})

		r := htmx(request(http.MethodDelete, "/app/favorites/5", ann(), nil), "results")
		r.SetPathValue("id", "5")
		rec := httptest.NewRecorder()
		NewFavoritesHandler(f.favorites).Remove(rec, r)

		assert.Equal(t, "none", rec.Header().Get("HX-Reswap"))
		assert.Contains(t, rec.Body.String(), "Failed to remove favorite")
	})

	t.Run("expired token clears session", func(t *testing.T) {
		f := newFixture(t)
		f.backend.mux.HandleFunc("DELETE /api/favorites/5", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "jwt expired"})
		})

		r := htmx(request(http.MethodDelete, "/app/favorites/5", ann(), nil), "results")
		r.SetPathValue("id", "5")
		rec := httptest.NewRecorder()
		NewFavoritesHandler(f.favorites).Remove(rec, r)

		assert.Contains(t, rec.Body.String(), "Your session has expired")
		assert.NotNil(t, authCookie(t, rec))
	})
}
