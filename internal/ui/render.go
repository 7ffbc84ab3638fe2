// Package ui writes templ components to HTTP responses.
package ui

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	c "github.com/artshowcase/showcase/internal/ui/components"
)

// Render writes comp with status 200.
func Render(w http.ResponseWriter, r *http.Request, comp templ.Component) {
	RenderStatus(w, r, http.StatusOK, comp)
}

// RenderStatus renders comp into a buffer first, so a failing component yields a
// clean 500 instead of a truncated page. Headers must be set before calling.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, comp templ.Component) {
	var buf bytes.Buffer
	if err := comp.Render(r.Context(), &buf); err != nil {
		slog.Error("render failed", "error", err, "path", r.URL.Path)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	write(w, r, status, &buf)
}

// RenderFragment sends only the parts of comp marked with the given fragment ids.
func RenderFragment(w http.ResponseWriter, r *http.Request, comp templ.Component, ids ...any) {
	var buf bytes.Buffer
	if err := templ.RenderFragments(r.Context(), &buf, comp, ids...); err != nil {
		slog.Error("render fragment failed", "error", err, "path", r.URL.Path, "fragments", ids)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	write(w, r, http.StatusOK, &buf)
}

// RenderOOB appends comp wrapped for an htmx out-of-band swap into target, e.g.
// "beforeend:#toast-container". It may follow a Render in the same response.
func RenderOOB(w http.ResponseWriter, r *http.Request, comp templ.Component, target string) {
	if err := OOB(comp, target).Render(r.Context(), w); err != nil {
		slog.Error("render oob failed", "error", err, "target", target)
	}
}

// OOB wraps comp in a div carrying hx-swap-oob.
func OOB(comp templ.Component, target string) templ.Component {
	return c.Div(c.Attrs{"hx-swap-oob": target}, comp)
}

func write(w http.ResponseWriter, r *http.Request, status int, buf *bytes.Buffer) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("write response failed", "error", err, "path", r.URL.Path)
	}
}
