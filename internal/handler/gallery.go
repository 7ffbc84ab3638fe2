package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/artshowcase/showcase/internal/config"
	"github.com/artshowcase/showcase/internal/ctxkeys"
	"github.com/artshowcase/showcase/internal/listing"
	"github.com/artshowcase/showcase/internal/model"
	"github.com/artshowcase/showcase/internal/service"
	"github.com/artshowcase/showcase/internal/ui"
	"github.com/artshowcase/showcase/internal/ui/pages"
	"github.com/artshowcase/showcase/internal/validation"
)

// GalleryHandler serves the signed-in artist's own artworks: the gallery
// listing, the add form and the edit/delete dialogs.
type GalleryHandler struct {
	artworks  *service.ArtworkService
	images    *service.ImageService // nil when uploads are disabled
	options   listing.Options
	maxUpload int64
}

func NewGalleryHandler(artworks *service.ArtworkService, images *service.ImageService, cfg *config.Config) *GalleryHandler {
	opts := listing.GalleryOptions
	opts.Debounce = cfg.SearchDebounce
	return &GalleryHandler{
		artworks:  artworks,
		images:    images,
		options:   opts,
		maxUpload: cfg.UploadMaxBytes,
	}
}

func (h *GalleryHandler) GalleryPage(w http.ResponseWriter, r *http.Request) {
	state := listing.StateFromQuery(r.URL.Query())
	v := h.view(w, r, state)
	renderListing(w, r, pages.Gallery(v, h.options.Debounce))
}

// view fetches the owner's artworks for state. A failed fetch yields an
// empty view carrying the error and an error toast.
func (h *GalleryHandler) view(w http.ResponseWriter, r *http.Request, state listing.State) listing.View {
	sess := ctxkeys.Session(r.Context())
	items, err := h.artworks.MineFiltered(r.Context(), sess, state.Filter())
	if err != nil {
		slog.Error("failed to get my artworks", "error", err, "email", ctxkeys.ViewerEmail(r.Context()))
		if isHTMX(r) {
			toastError(w, r, userMessage(w, r, err, "Failed to load your artworks"))
		}
	}
	v := listing.Refine(items, state, h.options)
	v.Err = err
	return v
}

func (h *GalleryHandler) formProps() pages.ArtworkFormProps {
	return pages.ArtworkFormProps{
		UploadsEnabled: h.images != nil,
		MaxUploadMB:    h.maxUpload >> 20,
	}
}

func (h *GalleryHandler) NewPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.NewArtwork(h.formProps()))
}

func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	props := h.formProps()

	in, ok := h.parseForm(w, r, &props)
	if !ok {
		ui.Render(w, r, pages.NewArtworkForm(props))
		return
	}

	err := h.artworks.Create(r.Context(), sess, in)
	if err != nil {
		slog.Error("failed to create artwork", "error", err, "email", sess.Email)
		props.Message = userMessage(w, r, err, "Failed to add artwork")
		ui.Render(w, r, pages.NewArtworkForm(props))
		return
	}

	redirect(w, r, "/app/gallery")
}

func (h *GalleryHandler) EditDialog(w http.ResponseWriter, r *http.Request) {
	a, ok := h.owned(w, r)
	if !ok {
		return
	}
	props := h.formProps()
	props.Form = pages.FormFromArtwork(a)
	ui.Render(w, r, pages.EditArtworkDialog(a.ID, props))
}

// Update saves the edit dialog. On success the dialog closes and the gallery
// results are fetched again; on validation failure the dialog is re-rendered.
func (h *GalleryHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	id := r.PathValue("id")
	props := h.formProps()

	in, ok := h.parseForm(w, r, &props)
	if ok {
		err := h.artworks.Update(r.Context(), sess, id, in)
		if err != nil {
			slog.Error("failed to update artwork", "error", err, "artwork_id", id)
			props.Message = userMessage(w, r, err, "Failed to update artwork")
			ok = false
		}
	}
	if !ok {
		w.Header().Set("HX-Retarget", "#dialog")
		w.Header().Set("HX-Reswap", "innerHTML")
		ui.Render(w, r, pages.EditArtworkDialog(id, props))
		return
	}

	v := h.view(w, r, currentState(r))
	closeDialog(w, r)
	toastSuccess(w, r, "Artwork updated")
	ui.Render(w, r, pages.GalleryResults(v))
}

func (h *GalleryHandler) DeleteDialog(w http.ResponseWriter, r *http.Request) {
	a, ok := h.owned(w, r)
	if !ok {
		return
	}
	ui.Render(w, r, pages.DeleteArtworkDialog(a))
}

func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	id := r.PathValue("id")

	err := h.artworks.Delete(r.Context(), sess, id)
	if err != nil {
		slog.Error("failed to delete artwork", "error", err, "artwork_id", id)
		w.Header().Set("HX-Reswap", "none")
		toastError(w, r, userMessage(w, r, err, "Failed to delete artwork"))
		return
	}

	v := h.view(w, r, currentState(r))
	closeDialog(w, r)
	toastSuccess(w, r, "Artwork deleted")
	ui.Render(w, r, pages.GalleryResults(v))
}

// owned loads the artwork from the path for a dialog, answering with a toast
// when it is missing or belongs to someone else.
func (h *GalleryHandler) owned(w http.ResponseWriter, r *http.Request) (*model.Artwork, bool) {
	sess := ctxkeys.Session(r.Context())
	id := r.PathValue("id")

	a, err := h.artworks.ByID(r.Context(), sess, id)
	if err == nil && !a.OwnedBy(sess.Email) {
		err = service.ErrNotOwner
	}
	if err != nil {
		if !errors.Is(err, service.ErrNotOwner) && !errors.Is(err, service.ErrArtworkNotFound) {
			slog.Error("failed to load artwork for dialog", "error", err, "artwork_id", id)
		}
		w.Header().Set("HX-Reswap", "none")
		toastError(w, r, userMessage(w, r, err, "Failed to load artwork"))
		return nil, false
	}
	return a, true
}

// parseForm reads and validates the artwork form, uploading the image first
// when one was attached. Problems are recorded on props.
func (h *GalleryHandler) parseForm(w http.ResponseWriter, r *http.Request, props *pages.ArtworkFormProps) (model.ArtworkInput, bool) {
	errs := validation.FieldErrors{}

	if h.images != nil {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+1<<20)
		if err := r.ParseMultipartForm(h.maxUpload); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			slog.Warn("failed to parse artwork form", "error", err)
			errs["image"] = "the upload is too large"
		}
	}

	props.Form = validation.ArtworkForm{
		ImageURL:    r.FormValue("imageURL"),
		Title:       r.FormValue("title"),
		Category:    r.FormValue("category"),
		Medium:      r.FormValue("medium"),
		Description: r.FormValue("description"),
		Dimensions:  r.FormValue("dimensions"),
		Price:       r.FormValue("price"),
		Visibility:  r.FormValue("visibility"),
	}

	if h.images != nil && len(errs) == 0 {
		if file, header, err := r.FormFile("image"); err == nil {
			_ = file.Close()
			url, err := h.images.Upload(r.Context(), ctxkeys.Session(r.Context()), header)
			var fe *validation.FileError
			switch {
			case errors.As(err, &fe):
				errs["image"] = fe.Reason
			case err != nil:
				slog.Error("failed to upload artwork image", "error", err)
				errs["image"] = "image upload failed, please try again or use an image URL"
			default:
				// Keep the URL on the form so a validation retry does not upload again
				props.Form.ImageURL = url
			}
		}
	}

	in, err := validation.Artwork(props.Form)
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		for k, v := range fieldErrs {
			if _, ok := errs[k]; !ok {
				errs[k] = v
			}
		}
	}
	if errs["image"] != "" {
		delete(errs, "imageURL")
	}
	if len(errs) > 0 {
		props.Errors = errs
		return model.ArtworkInput{}, false
	}
	return in, true
}
