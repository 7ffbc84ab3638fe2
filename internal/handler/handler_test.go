package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/artshowcase/showcase/internal/api"
	"github.com/artshowcase/showcase/internal/config"
	"github.com/artshowcase/showcase/internal/ctxkeys"
	"github.com/artshowcase/showcase/internal/markdown"
	"github.com/artshowcase/showcase/internal/model"
	"github.com/artshowcase/showcase/internal/service"
)

// backend is a fake REST API. Handlers registered on mux answer the
// client; calls records "METHOD path" for every request.
type backend struct {
	mux   *http.ServeMux
	mu    sync.Mutex
	calls []string
}

func (b *backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

type fixture struct {
	backend   *backend
	cfg       *config.Config
	artworks  *service.ArtworkService
	favorites *service.FavoriteService
	artists   *service.ArtistService
	dashboard *service.DashboardService
	auth      *service.AuthService
	sitemap   *service.SitemapService
	md        *markdown.Renderer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	b := &backend{mux: http.NewServeMux()}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, r.Method+" "+r.URL.Path)
		b.mu.Unlock()
		b.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := api.New(srv.URL, api.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	cfg := &config.Config{
		AppName:         "Artshowcase",
		AppEnv:          "development",
		AppURL:          "https://gallery.test",
		AppTagline:      "Discover art",
		ListingPageSize: 12,
		SearchDebounce:  300 * time.Millisecond,
		FeaturedLimit:   6,
		AuthCookieTTL:   time.Hour,
		UploadMaxBytes:  5 << 20,
	}
	artworks := service.NewArtworkService(client, nil, cfg.FeaturedLimit)
	return &fixture{
		backend:   b,
		cfg:       cfg,
		artworks:  artworks,
		favorites: service.NewFavoriteService(client),
		artists:   service.NewArtistService(client, artworks),
		dashboard: service.NewDashboardService(client),
		auth:      service.NewAuthService(client, cfg),
		sitemap:   service.NewSitemapService(artworks, cfg.AppURL),
		md:        markdown.NewRenderer(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func artwork(id, owner string, vis model.Visibility) model.Artwork {
	return model.Artwork{
		ID:         id,
		Title:      "Artwork " + id,
		Category:   model.CategoryPainting,
		UserEmail:  owner,
		ArtistName: strings.Split(owner, "@")[0],
		ImageURL:   "https://img.test/" + id + ".png",
		Medium:     "Oil",
		Visibility: vis,
		Likes:      3,
	}
}

func signToken(t *testing.T, email string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"name":  "Ann",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return tok
}

// request builds a request with the given session (nil for guests) and
// optional form body.
func request(method, target string, sess *model.Session, form url.Values) *http.Request {
	var r *http.Request
	if form != nil {
		r = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	ctx := r.Context()
	if sess != nil {
		ctx = ctxkeys.WithSession(ctx, sess)
	}
	return r.WithContext(ctx)
}

func htmx(r *http.Request, target string) *http.Request {
	r.Header.Set("HX-Request", "true")
	if target != "" {
		r.Header.Set("HX-Target", target)
	}
	return r
}

func ann() *model.Session {
	return &model.Session{Token: "tok-ann", Email: "ann@example.com", Name: "Ann"}
}
