package handler

import (
	"net/http"

	"quiz_admin_console/internal/app/controller"
	"quiz_admin_console/internal/platform/upstream"
	"quiz_admin_console/internal/web"

	"github.com/go-chi/chi/v5"
)

type DashboardHandler struct {
	dashboard *controller.DashboardController
	auth      *controller.AuthController
	renderer  *web.Renderer
}

func NewDashboardHandler(dashboard *controller.DashboardController, auth *controller.AuthController, renderer *web.Renderer) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, auth: auth, renderer: renderer}
}

func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.show)
}

func (h *DashboardHandler) show(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	var errMsg string
	stats, err := h.dashboard.Load(r.Context(), sess.Token)
	if err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		errMsg = "Failed to load dashboard stats. Showing the last loaded data."
	}

	h.renderer.Render(w, r, "dashboard.html", web.PageData{
		Title:  "Dashboard",
		Active: "dashboard",
		Error:  errMsg,
		Data:   stats,
	})
}
