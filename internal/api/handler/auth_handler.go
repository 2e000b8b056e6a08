package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"quiz_admin_console/internal/api/middleware"
	"quiz_admin_console/internal/app/controller"
	"quiz_admin_console/internal/common"
	"quiz_admin_console/internal/common/security"
	"quiz_admin_console/internal/web"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	auth     *controller.AuthController
	renderer *web.Renderer
}

func NewAuthHandler(auth *controller.AuthController, renderer *web.Renderer) *AuthHandler {
	return &AuthHandler{auth: auth, renderer: renderer}
}

func (h *AuthHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/login", h.showLogin)
	r.Post("/login", h.submitLogin)
}

func (h *AuthHandler) RegisterProtectedRoutes(r chi.Router) {
	r.Post("/logout", h.logout)
}

type loginPage struct {
	Email string
}

func (h *AuthHandler) showLogin(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "login.html", web.PageData{
		Title: "Admin Login",
		Data:  loginPage{},
	})
}

func (h *AuthHandler) submitLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form payload")
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	sess, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		h.renderer.Render(w, r, "login.html", web.PageData{
			Title: "Admin Login",
			Error: loginErrorMessage(err),
			Data:  loginPage{Email: email},
		})
		return
	}

	cookieToken, err := security.GenerateSessionToken(sess.ID, sess.UserID, sess.Role)
	if err != nil {
		slog.Error("failed to sign session cookie", "error", err)
		h.renderer.Render(w, r, "login.html", web.PageData{
			Title: "Admin Login",
			Error: "Login failed. Please try again.",
			Data:  loginPage{Email: email},
		})
		return
	}
	middleware.SetSessionCookie(w, cookieToken)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func loginErrorMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrBadRequest):
		return "Email and password are required"
	case errors.Is(err, common.ErrForbidden):
		return "This account does not have admin access"
	case errors.Is(err, common.ErrUnauthorized):
		return "Invalid email or password"
	default:
		return "Login failed. Please try again."
	}
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		if err := h.auth.Logout(r.Context(), sess.ID); err != nil {
			slog.Warn("failed to delete session on logout", "error", err)
		}
	}
	middleware.ClearSessionCookie(w)
	common.Redirect(w, r, "/login", "You have been signed out")
}
