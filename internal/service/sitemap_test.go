package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artshowcase/showcase/internal/model"
)

func TestSitemapService_IncludesFeatured(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/artworks/featured", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []model.Artwork{
			{ID: "a1", UserEmail: "ada@x.io", Visibility: model.VisibilityPublic, CreatedAt: time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC)},
			{ID: "a2", UserEmail: "ada@x.io", Visibility: model.VisibilityPublic},
		})
	})
	s := NewSitemapService(NewArtworkService(newBackend(t, mux), nil, 6), "https://art.example.com/")

	out, err := s.GenerateSitemap(context.Background())
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, "<loc>https://art.example.com/explore</loc>")
	assert.Contains(t, xml, "<loc>https://art.example.com/artworks/a1</loc>")
	assert.Contains(t, xml, "<lastmod>2025-05-04</lastmod>")
	assert.Contains(t, xml, "<loc>https://art.example.com/artists/ada@x.io</loc>")
	assert.Equal(t, 1, strings.Count(xml, "/artists/"))
}

func TestSitemapService_BackendDownKeepsStaticRoutes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/artworks/featured", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	s := NewSitemapService(NewArtworkService(newBackend(t, mux), nil, 6), "https://art.example.com")

	out, err := s.GenerateSitemap(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(out), "<loc>https://art.example.com/</loc>")
	assert.NotContains(t, string(out), "/artworks/")
}
