package handler

import (
	"log/slog"
	"net/http"

	"github.com/artshowcase/showcase/internal/ctxkeys"
	"github.com/artshowcase/showcase/internal/service"
	"github.com/artshowcase/showcase/internal/ui"
	"github.com/artshowcase/showcase/internal/ui/pages"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	stats, err := h.dashboard.Stats(r.Context(), sess)
	if err != nil {
		slog.Error("failed to get dashboard stats", "error", err, "email", sess.Email)
		ui.RenderStatus(w, r, http.StatusBadGateway, pages.Error(userMessage(w, r, err, "Failed to load dashboard")))
		return
	}

	ui.Render(w, r, pages.Dashboard(sess.DisplayName(), stats))
}
