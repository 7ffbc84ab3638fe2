package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/artshowcase/showcase/internal/config"
	"github.com/artshowcase/showcase/internal/ctxkeys"
	"github.com/artshowcase/showcase/internal/listing"
	"github.com/artshowcase/showcase/internal/markdown"
	"github.com/artshowcase/showcase/internal/service"
	"github.com/artshowcase/showcase/internal/ui"
	"github.com/artshowcase/showcase/internal/ui/pages"
)

type ArtistHandler struct {
	artists *service.ArtistService
	md      *markdown.Renderer
	options listing.Options
}

func NewArtistHandler(artists *service.ArtistService, md *markdown.Renderer, cfg *config.Config) *ArtistHandler {
	opts := listing.ArtistOptions
	opts.PageSize = cfg.ListingPageSize
	opts.Debounce = cfg.SearchDebounce
	return &ArtistHandler{artists: artists, md: md, options: opts}
}

// ArtistPage shows an artist and their public artworks.
func (h *ArtistHandler) ArtistPage(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	state := listing.StateFromQuery(r.URL.Query())

	artist, items, err := h.artists.Gallery(r.Context(), ctxkeys.Session(r.Context()), email, state.Filter())
	if errors.Is(err, service.ErrArtistNotFound) {
		ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
		return
	}
	if artist == nil {
		slog.Error("failed to get artist", "error", err, "email", email)
		ui.RenderStatus(w, r, http.StatusBadGateway, pages.Error(userMessage(w, r, err, "Failed to load artist")))
		return
	}
	if err != nil {
		// Artist known, artworks failed: show the profile with an error state
		slog.Error("failed to get artist artworks", "error", err, "email", email)
		if isHTMX(r) {
			toastError(w, r, userMessage(w, r, err, "Failed to load artworks"))
		}
	}

	v := listing.Refine(items, state, h.options)
	v.Err = err

	bio, mdErr := h.md.HTML(artist.About())
	if mdErr != nil {
		slog.Warn("failed to render artist bio", "error", mdErr, "email", email)
	}

	renderListing(w, r, pages.Artist(pages.ArtistProps{
		Artist:   artist,
		BioHTML:  bio,
		View:     v,
		Debounce: h.options.Debounce,
	}))
}
