package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artshowcase/showcase/internal/listing"
	"github.com/artshowcase/showcase/internal/model"
)

func TestSafeNext(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/app/gallery", "/app/gallery"},
		{"/artworks/1?x=2", "/artworks/1?x=2"},
		{"//evil.test", ""},
		{`/\evil.test`, ""},
		{"https://evil.test/app", ""},
		{"app/gallery", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, safeNext(tt.in), tt.in)
	}
}

func TestCurrentState(t *testing.T) {
	r := httptest.NewRequest(http.MethodPut, "/app/artworks/1", nil)
	r.Header.Set("HX-Current-URL", "https://gallery.test/app/gallery?q=sea&category=Sculpture&sort=title&page=2")

	s := currentState(r)
	assert.Equal(t, "sea", s.Search)
	assert.Equal(t, model.CategorySculpture, s.Category)
	assert.Equal(t, listing.SortTitle, s.Sort)
	assert.Equal(t, 2, s.Page)

	r.Header.Del("HX-Current-URL")
	assert.Equal(t, listing.NewState(), currentState(r))
}

func TestRedirect(t *testing.T) {
	rec := httptest.NewRecorder()
	redirect(rec, httptest.NewRequest(http.MethodPost, "/", nil), "/app/gallery")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/app/gallery", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	redirect(rec, htmx(httptest.NewRequest(http.MethodPost, "/", nil), ""), "/app/gallery")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/app/gallery", rec.Header().Get("HX-Redirect"))
}
