package routes

import (
	"io/fs"
	"net/http"

	"github.com/artshowcase/showcase/assets"
	"github.com/artshowcase/showcase/internal/app"
	"github.com/artshowcase/showcase/internal/handler"
	"github.com/artshowcase/showcase/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler(app.ArtworkService, app.Cfg)
	seo := handler.NewSEOHandler(app.SitemapService, app.Cfg.AppURL)
	artwork := handler.NewArtworkHandler(app.ArtworkService, app.FavoriteService, app.ArtistService, app.Markdown)
	artist := handler.NewArtistHandler(app.ArtistService, app.Markdown, app.Cfg)
	auth := handler.NewAuthHandler(app.AuthService)
	dashboard := handler.NewDashboardHandler(app.DashboardService)
	gallery := handler.NewGalleryHandler(app.ArtworkService, app.ImageService, app.Cfg)
	favorites := handler.NewFavoritesHandler(app.FavoriteService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	// Static files
	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))

	// SEO
	mux.HandleFunc("GET /robots.txt", seo.Robots)
	mux.HandleFunc("GET /sitemap.xml", seo.Sitemap)

	// Browsing
	mux.HandleFunc("GET /{$}", home.HomePage)
	mux.HandleFunc("GET /explore", home.ExplorePage)
	mux.HandleFunc("GET /artworks/{id}", artwork.DetailPage)
	mux.HandleFunc("GET /artists/{email}", artist.ArtistPage)

	// Reactions (guests get a login toast)
	mux.HandleFunc("POST /artworks/{id}/like", artwork.ToggleLike)
	mux.HandleFunc("POST /artworks/{id}/favorite", artwork.ToggleFavorite)

	// Auth (rate limited)
	limited := middleware.RateLimitAuth()
	guest := middleware.Guard(middleware.RequireGuest)
	limitedGuest := middleware.Guard(limited, middleware.RequireGuest)

	mux.HandleFunc("GET /login", guest(auth.LoginPage))
	mux.HandleFunc("GET /register", guest(auth.RegisterPage))
	mux.HandleFunc("POST /login", limitedGuest(auth.Login))
	mux.HandleFunc("POST /register", limitedGuest(auth.Register))
	mux.HandleFunc("POST /logout", auth.Logout)

	// OAuth
	mux.HandleFunc("GET /auth/google", limitedGuest(auth.GoogleAuth))
	mux.HandleFunc("GET /auth/google/callback", limited(auth.GoogleCallback))

	// ============================================================================
	// PROTECTED ROUTES (/app/*)
	// ============================================================================

	authed := middleware.Guard(middleware.RequireAuth)

	mux.HandleFunc("GET /app/dashboard", authed(dashboard.DashboardPage))

	// Gallery
	mux.HandleFunc("GET /app/gallery", authed(gallery.GalleryPage))
	mux.HandleFunc("GET /app/artworks/new", authed(gallery.NewPage))
	mux.HandleFunc("GET /app/artworks/{id}/edit", authed(gallery.EditDialog))
	mux.HandleFunc("GET /app/artworks/{id}/delete", authed(gallery.DeleteDialog))
	mux.HandleFunc("POST /app/artworks", authed(gallery.Create))
	mux.HandleFunc("PUT /app/artworks/{id}", authed(gallery.Update))
	mux.HandleFunc("DELETE /app/artworks/{id}", authed(gallery.Delete))

	// Favorites
	mux.HandleFunc("GET /app/favorites", authed(favorites.FavoritesPage))
	mux.HandleFunc("DELETE /app/favorites/{id}", authed(favorites.Remove))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // Config must be first (needed by SecurityHeaders for S3 endpoint)
		middleware.NonceMiddleware, // Generate CSP nonce for each request (must be before SecurityHeaders)
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.AuthService),
		middleware.WithURLPath,
	)

	return handler
}
