package handler

import (
	"net/http"

	"quiz_admin_console/internal/app/controller"
	"quiz_admin_console/internal/app/form"
	"quiz_admin_console/internal/common"
	"quiz_admin_console/internal/domain/model"
	"quiz_admin_console/internal/platform/upstream"
	"quiz_admin_console/internal/web"

	"github.com/go-chi/chi/v5"
)

type NotificationsHandler struct {
	notifications *controller.NotificationsController
	dashboard     *controller.DashboardController
	auth          *controller.AuthController
	renderer      *web.Renderer
}

func NewNotificationsHandler(notifications *controller.NotificationsController, dashboard *controller.DashboardController, auth *controller.AuthController, renderer *web.Renderer) *NotificationsHandler {
	return &NotificationsHandler{
		notifications: notifications,
		dashboard:     dashboard,
		auth:          auth,
		renderer:      renderer,
	}
}

func (h *NotificationsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/notifications", h.show)
	r.Post("/notifications/announcement", h.sendAnnouncement)
	r.Post("/notifications/targeted", h.sendTargeted)
}

type notificationsPage struct {
	Tab                string
	Stats              model.DashboardStats
	Analytics          model.NotificationAnalytics
	Announcement       form.AnnouncementForm
	AnnouncementErrors form.Errors
	Targeted           form.TargetedNotificationForm
	TargetedErrors     form.Errors
}

func notificationsTab(r *http.Request) string {
	switch tab := r.URL.Query().Get("tab"); tab {
	case "targeted", "analytics":
		return tab
	default:
		return "announcement"
	}
}

func (h *NotificationsHandler) show(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	page := notificationsPage{
		Tab:          notificationsTab(r),
		Announcement: form.NewAnnouncementForm(),
		Targeted:     form.NewTargetedNotificationForm(),
	}

	var errMsg string
	stats, err := h.dashboard.Load(r.Context(), sess.Token)
	if err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		errMsg = "Failed to load notification stats. Showing the last loaded data."
	}
	page.Stats = stats

	if page.Tab == "analytics" {
		analytics, err := h.notifications.Analytics(r.Context(), sess.Token)
		if err != nil {
			if upstream.IsAuthFailure(err) {
				expireSession(w, r, h.auth)
				return
			}
			errMsg = "Failed to load notification analytics. Showing the last loaded data."
		}
		page.Analytics = analytics
	}

	h.renderer.Render(w, r, "notifications.html", web.PageData{
		Title:  "Notification Management",
		Active: "notifications",
		Error:  errMsg,
		Data:   page,
	})
}

func (h *NotificationsHandler) sendAnnouncement(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form payload")
		return
	}

	f := form.ParseAnnouncementForm(r.PostForm)
	if errs := f.Validate(); !errs.Valid() {
		h.renderFormError(w, r, sess.Token, notificationsPage{
			Tab:                "announcement",
			Announcement:       f,
			AnnouncementErrors: errs,
			Targeted:           form.NewTargetedNotificationForm(),
		}, "")
		return
	}

	if err := h.notifications.SendAnnouncement(r.Context(), sess.Token, f.Payload()); err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		h.renderFormError(w, r, sess.Token, notificationsPage{
			Tab:          "announcement",
			Announcement: f,
			Targeted:     form.NewTargetedNotificationForm(),
		}, "Failed to send announcement")
		return
	}
	common.Redirect(w, r, "/notifications?tab=announcement", "Announcement sent to all users")
}

func (h *NotificationsHandler) sendTargeted(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form payload")
		return
	}

	f := form.ParseTargetedNotificationForm(r.PostForm)
	if errs := f.Validate(); !errs.Valid() {
		h.renderFormError(w, r, sess.Token, notificationsPage{
			Tab:            "targeted",
			Announcement:   form.NewAnnouncementForm(),
			Targeted:       f,
			TargetedErrors: errs,
		}, "")
		return
	}

	if err := h.notifications.SendTargeted(r.Context(), sess.Token, f.Payload()); err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		h.renderFormError(w, r, sess.Token, notificationsPage{
			Tab:          "targeted",
			Announcement: form.NewAnnouncementForm(),
			Targeted:     f,
		}, "Failed to send targeted notification")
		return
	}
	common.Redirect(w, r, "/notifications?tab=targeted", "Notification sent")
}

// renderFormError re-renders the page with the submitted form intact. The
// stats cards come from the dashboard snapshot so a stats fetch failure never
// masks the form error; a rejected bearer token still ends the session.
func (h *NotificationsHandler) renderFormError(w http.ResponseWriter, r *http.Request, token string, page notificationsPage, errMsg string) {
	stats, err := h.dashboard.Load(r.Context(), token)
	if err != nil && upstream.IsAuthFailure(err) {
		expireSession(w, r, h.auth)
		return
	}
	page.Stats = stats
	h.renderer.Render(w, r, "notifications.html", web.PageData{
		Title:  "Notification Management",
		Active: "notifications",
		Error:  errMsg,
		Data:   page,
	})
}
