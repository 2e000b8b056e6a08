package handler

import (
	"net/http"

	"quiz_admin_console/internal/app/controller"
	"quiz_admin_console/internal/platform/upstream"
	"quiz_admin_console/internal/web"

	"github.com/go-chi/chi/v5"
)

type AnalyticsHandler struct {
	analytics *controller.AnalyticsController
	auth      *controller.AuthController
	renderer  *web.Renderer
}

func NewAnalyticsHandler(analytics *controller.AnalyticsController, auth *controller.AuthController, renderer *web.Renderer) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, auth: auth, renderer: renderer}
}

func (h *AnalyticsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/analytics", h.show)
}

func (h *AnalyticsHandler) show(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	var errMsg string
	view, err := h.analytics.Load(r.Context(), sess.Token, r.URL.Query().Get("range"))
	if err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		errMsg = "Failed to load analytics. Showing the last loaded data."
	}

	h.renderer.Render(w, r, "analytics.html", web.PageData{
		Title:  "Analytics",
		Active: "analytics",
		Error:  errMsg,
		Data:   view,
	})
}
