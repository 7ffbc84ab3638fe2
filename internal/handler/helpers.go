package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"github.com/artshowcase/showcase/internal/api"
	"github.com/artshowcase/showcase/internal/ctxkeys"
	"github.com/artshowcase/showcase/internal/listing"
	"github.com/artshowcase/showcase/internal/service"
	"github.com/artshowcase/showcase/internal/ui"
	"github.com/artshowcase/showcase/internal/ui/components/toast"
	"github.com/artshowcase/showcase/internal/ui/pages"
)

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// renderListing sends only the fragment htmx asked for (the results block or
// the whole listing with its filters) and the full page otherwise.
func renderListing(w http.ResponseWriter, r *http.Request, page templ.Component) {
	w.Header().Add("Vary", "HX-Request")
	if isHTMX(r) {
		switch target := r.Header.Get("HX-Target"); target {
		case pages.FragmentResults, pages.FragmentListing:
			ui.RenderFragment(w, r, page, target)
			return
		}
	}
	ui.Render(w, r, page)
}

func toastError(w http.ResponseWriter, r *http.Request, msg string) {
	ui.RenderOOB(w, r, toast.Error(msg), toast.Target)
}

func toastSuccess(w http.ResponseWriter, r *http.Request, msg string) {
	ui.RenderOOB(w, r, toast.Success(msg), toast.Target)
}

// closeDialog empties the dialog container.
func closeDialog(w http.ResponseWriter, r *http.Request) {
	ui.RenderOOB(w, r, templ.NopComponent, "innerHTML:#dialog")
}

// userMessage turns a service error into the text shown to the user. A 401
// from the backend means the token is no longer accepted, so the cookie is
// dropped too.
func userMessage(w http.ResponseWriter, r *http.Request, err error, fallback string) string {
	switch {
	case errors.Is(err, service.ErrLoginRequired):
		return "Please login to continue"
	case errors.Is(err, api.ErrUnauthorized):
		secure := false
		if cfg := ctxkeys.Config(r.Context()); cfg != nil {
			secure = cfg.SecureCookies
		}
		service.ClearAuthCookie(w, secure)
		return "Your session has expired. Please login again"
	case errors.Is(err, service.ErrNotOwner):
		return "Only the owner can change this artwork"
	case errors.Is(err, service.ErrArtworkNotFound):
		return "Artwork not found"
	}
	return api.Message(err, fallback)
}

// currentState recovers the listing state of the page an htmx request was
// made from. Edit and delete dialogs use it to re-render the same view.
func currentState(r *http.Request) listing.State {
	u, err := url.Parse(r.Header.Get("HX-Current-URL"))
	if err != nil {
		return listing.NewState()
	}
	return listing.StateFromQuery(u.Query())
}

// safeNext accepts only local paths as post-login redirect targets.
func safeNext(next string) string {
	if next == "" || next[0] != '/' || len(next) > 1 && (next[1] == '/' || next[1] == '\\') {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return ""
	}
	return next
}

// redirect sends the browser to path, with HX-Redirect for htmx requests.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", path)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}
