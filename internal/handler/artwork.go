package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/artshowcase/showcase/internal/ctxkeys"
	"github.com/artshowcase/showcase/internal/markdown"
	"github.com/artshowcase/showcase/internal/reaction"
	"github.com/artshowcase/showcase/internal/service"
	"github.com/artshowcase/showcase/internal/ui"
	"github.com/artshowcase/showcase/internal/ui/components"
	"github.com/artshowcase/showcase/internal/ui/pages"
)

type ArtworkHandler struct {
	artworks  *service.ArtworkService
	favorites *service.FavoriteService
	artists   *service.ArtistService
	md        *markdown.Renderer
}

func NewArtworkHandler(artworks *service.ArtworkService, favorites *service.FavoriteService, artists *service.ArtistService, md *markdown.Renderer) *ArtworkHandler {
	return &ArtworkHandler{
		artworks:  artworks,
		favorites: favorites,
		artists:   artists,
		md:        md,
	}
}

func (h *ArtworkHandler) DetailPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := ctxkeys.Session(ctx)
	id := r.PathValue("id")

	a, err := h.artworks.ByID(ctx, sess, id)
	if errors.Is(err, service.ErrArtworkNotFound) {
		ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
		return
	}
	if err != nil {
		slog.Error("failed to get artwork", "error", err, "artwork_id", id)
		ui.RenderStatus(w, r, http.StatusBadGateway, pages.Error(userMessage(w, r, err, "Failed to load artwork")))
		return
	}

	props := pages.ArtworkDetailProps{
		Artwork: a,
		Like:    reaction.Toggle{Count: a.Likes},
		IsOwner: a.OwnedBy(ctxkeys.ViewerEmail(ctx)),
	}

	if a.UserEmail != "" {
		artist, err := h.artists.ByEmail(ctx, sess, a.UserEmail)
		if err != nil {
			slog.Warn("failed to get artist for artwork", "error", err, "artwork_id", id)
		}
		props.Artist = artist
	}

	if sess != nil {
		fav, err := h.favorites.IsFavorite(ctx, sess, id)
		if err != nil {
			slog.Warn("failed to check favorite", "error", err, "artwork_id", id)
		}
		props.Favorite = reaction.Toggle{Active: fav}
	}

	props.DescriptionHTML, err = h.md.HTML(a.Description)
	if err != nil {
		slog.Warn("failed to render artwork description", "error", err, "artwork_id", id)
	}

	ui.Render(w, r, pages.ArtworkDetail(props))
}

// ToggleLike applies the like optimistically against the state the button
// carried and answers with the committed or rolled back button.
func (h *ArtworkHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	id := r.PathValue("id")
	liked, _ := strconv.ParseBool(r.FormValue("liked"))
	likes, _ := strconv.Atoi(r.FormValue("likes"))

	t, err := h.artworks.ToggleLike(r.Context(), sess, id, liked, likes)
	if err != nil {
		if !errors.Is(err, service.ErrLoginRequired) {
			slog.Error("failed to toggle like", "error", err, "artwork_id", id)
		}
		toastError(w, r, userMessage(w, r, err, "Failed to update like"))
	}

	ui.Render(w, r, components.LikeButton(id, t))
}

func (h *ArtworkHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	id := r.PathValue("id")
	favorite, _ := strconv.ParseBool(r.FormValue("favorite"))

	t, err := h.favorites.Toggle(r.Context(), sess, id, favorite)
	switch {
	case err != nil:
		if !errors.Is(err, service.ErrLoginRequired) {
			slog.Error("failed to toggle favorite", "error", err, "artwork_id", id)
		}
		toastError(w, r, userMessage(w, r, err, "Failed to update favorites"))
	case t.Active:
		toastSuccess(w, r, "Added to favorites")
	default:
		toastSuccess(w, r, "Removed from favorites")
	}

	ui.Render(w, r, components.FavoriteButton(id, t))
}
