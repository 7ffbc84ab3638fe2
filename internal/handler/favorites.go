package handler

import (
	"log/slog"
	"net/http"

	"github.com/artshowcase/showcase/internal/ctxkeys"
	"github.com/artshowcase/showcase/internal/listing"
	"github.com/artshowcase/showcase/internal/service"
	"github.com/artshowcase/showcase/internal/ui"
	"github.com/artshowcase/showcase/internal/ui/pages"
)

var favoritesOptions = listing.Options{}

type FavoritesHandler struct {
	favorites *service.FavoriteService
}

func NewFavoritesHandler(favorites *service.FavoriteService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

func (h *FavoritesHandler) FavoritesPage(w http.ResponseWriter, r *http.Request) {
	renderListing(w, r, pages.Favorites(h.view(w, r)))
}

func (h *FavoritesHandler) view(w http.ResponseWriter, r *http.Request) listing.View {
	items, err := h.favorites.List(r.Context(), ctxkeys.Session(r.Context()))
	if err != nil {
		slog.Error("failed to get favorites", "error", err, "email", ctxkeys.ViewerEmail(r.Context()))
		if isHTMX(r) {
			toastError(w, r, userMessage(w, r, err, "Failed to load favorites"))
		}
	}
	v := listing.Refine(items, listing.NewState(), favoritesOptions)
	v.Err = err
	return v
}

// Remove drops an artwork from the favorites and re-renders the list.
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.favorites.Remove(r.Context(), ctxkeys.Session(r.Context()), id)
	if err != nil {
		slog.Error("failed to remove favorite", "error", err, "artwork_id", id)
		w.Header().Set("HX-Reswap", "none")
		toastError(w, r, userMessage(w, r, err, "Failed to remove favorite"))
		return
	}

	v := h.view(w, r)
	toastSuccess(w, r, "Removed from favorites")
	ui.Render(w, r, pages.FavoritesResults(v))
}
