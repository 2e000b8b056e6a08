// Package handler wires the console pages to the chi router. Every page
// handler follows the same shape: resolve the session, drive its controller,
// render a template or redirect with a flash message.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"quiz_admin_console/internal/api/middleware"
	"quiz_admin_console/internal/app/controller"
	"quiz_admin_console/internal/common"
	"quiz_admin_console/internal/domain/model"
)

// sessionFromRequest resolves the authenticated session. The session gate
// runs before any page handler, so a miss means the middleware chain is
// misconfigured; the request is bounced to login either way.
func sessionFromRequest(w http.ResponseWriter, r *http.Request) (*model.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return nil, false
	}
	return sess, true
}

// expireSession destroys the server-side session after the admin API rejected
// its bearer token, then sends the admin back to login.
func expireSession(w http.ResponseWriter, r *http.Request, auth *controller.AuthController) {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		if err := auth.Logout(r.Context(), sess.ID); err != nil {
			slog.Warn("failed to delete session after upstream auth failure", "error", err)
		}
	}
	middleware.ClearSessionCookie(w)
	common.RedirectWithError(w, r, "/login", "Your session has expired. Please sign in again.")
}

func queryPage(values url.Values) int {
	page, err := strconv.Atoi(values.Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
