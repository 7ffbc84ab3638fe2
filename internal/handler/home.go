package handler

import (
	"log/slog"
	"net/http"

	"github.com/artshowcase/showcase/internal/config"
	"github.com/artshowcase/showcase/internal/ctxkeys"
	"github.com/artshowcase/showcase/internal/listing"
	"github.com/artshowcase/showcase/internal/service"
	"github.com/artshowcase/showcase/internal/ui"
	"github.com/artshowcase/showcase/internal/ui/pages"
)

type HomeHandler struct {
	artworks *service.ArtworkService
	appName  string
	tagline  string
	explore  listing.Options
}

func NewHomeHandler(artworks *service.ArtworkService, cfg *config.Config) *HomeHandler {
	explore := listing.ExploreOptions
	explore.PageSize = cfg.ListingPageSize
	explore.Debounce = cfg.SearchDebounce
	return &HomeHandler{
		artworks: artworks,
		appName:  cfg.AppName,
		tagline:  cfg.AppTagline,
		explore:  explore,
	}
}

func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	featured, err := h.artworks.Featured(r.Context())
	if err != nil {
		// The page still renders, just without the featured grid
		slog.Error("failed to load featured artworks", "error", err)
	}

	ui.Render(w, r, pages.Home(pages.HomeProps{
		AppName:  h.appName,
		Tagline:  h.tagline,
		Featured: featured,
		SignedIn: ctxkeys.Session(r.Context()) != nil,
	}))
}

// ExplorePage lists public artworks (plus the viewer's own private ones).
func (h *HomeHandler) ExplorePage(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	state := listing.StateFromQuery(r.URL.Query())

	items, err := h.artworks.Search(r.Context(), sess, state.Filter())
	if err != nil {
		slog.Error("failed to search artworks", "error", err, "q", state.Search, "category", state.Category)
		if isHTMX(r) {
			toastError(w, r, userMessage(w, r, err, "Failed to load artworks"))
		}
	}

	v := listing.Refine(items, state, h.explore)
	v.Err = err
	renderListing(w, r, pages.Explore(v, h.explore.Debounce))
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
}
