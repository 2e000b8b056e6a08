package handler

import (
	"fmt"
	"net/http"

	"quiz_admin_console/internal/app/controller"
	"quiz_admin_console/internal/app/form"
	"quiz_admin_console/internal/common"
	"quiz_admin_console/internal/domain/model"
	"quiz_admin_console/internal/platform/upstream"
	"quiz_admin_console/internal/web"

	"github.com/go-chi/chi/v5"
)

type UsersHandler struct {
	users    *controller.UsersController
	auth     *controller.AuthController
	renderer *web.Renderer
}

func NewUsersHandler(users *controller.UsersController, auth *controller.AuthController, renderer *web.Renderer) *UsersHandler {
	return &UsersHandler{users: users, auth: auth, renderer: renderer}
}

func (h *UsersHandler) RegisterRoutes(r chi.Router) {
	r.Get("/users", h.list)
	r.Get("/users/new", h.newForm)
	r.Post("/users/new", h.create)
	r.Post("/users/{userID}/status", h.setStatus)
	r.Get("/users/{userID}/delete", h.confirmDelete)
	r.Post("/users/{userID}/delete", h.delete)
}

type usersPage struct {
	View     controller.UsersView
	Filtered []model.User
}

type userFormPage struct {
	Form   form.UserForm
	Errors form.Errors
}

type confirmDeletePage struct {
	Heading     string
	Message     string
	ConfirmPath string
	CancelPath  string
}

func (h *UsersHandler) list(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	q := controller.UsersQuery{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
		Page:   queryPage(r.URL.Query()),
	}

	var errMsg string
	view, err := h.users.Load(r.Context(), sess.Token, q)
	if err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		errMsg = "Failed to load users. Showing the last loaded data."
	}

	h.renderer.Render(w, r, "users.html", web.PageData{
		Title:  "User Management",
		Active: "users",
		Error:  errMsg,
		Data:   usersPage{View: view, Filtered: view.Filtered()},
	})
}

func (h *UsersHandler) newForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "user_form.html", web.PageData{
		Title:  "Add New User",
		Active: "users",
		Data:   userFormPage{Form: form.NewUserForm()},
	})
}

func (h *UsersHandler) create(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form payload")
		return
	}

	f := form.ParseUserForm(r.PostForm)
	if errs := f.Validate(); !errs.Valid() {
		h.renderer.Render(w, r, "user_form.html", web.PageData{
			Title:  "Add New User",
			Active: "users",
			Data:   userFormPage{Form: f, Errors: errs},
		})
		return
	}

	if err := h.users.Create(r.Context(), sess.Token, f.Payload()); err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		h.renderer.Render(w, r, "user_form.html", web.PageData{
			Title:  "Add New User",
			Active: "users",
			Error:  "Failed to create user",
			Data:   userFormPage{Form: f},
		})
		return
	}
	common.Redirect(w, r, "/users", "User created successfully")
}

func (h *UsersHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form payload")
		return
	}

	userID := chi.URLParam(r, "userID")
	active := r.PostFormValue("isActive") == "true"

	if err := h.users.SetStatus(r.Context(), sess.Token, userID, active); err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		common.RedirectWithError(w, r, "/users", "Failed to update user status")
		return
	}

	notice := "User deactivated"
	if active {
		notice = "User activated"
	}
	common.Redirect(w, r, "/users", notice)
}

func (h *UsersHandler) confirmDelete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	message := "Are you sure you want to delete this user? This cannot be undone."
	if u, ok := h.users.Find(userID); ok {
		message = fmt.Sprintf("Are you sure you want to delete %s (%s)? This cannot be undone.", u.Name, u.Email)
	}

	h.renderer.Render(w, r, "confirm_delete.html", web.PageData{
		Title:  "Delete User",
		Active: "users",
		Data: confirmDeletePage{
			Heading:     "Delete User",
			Message:     message,
			ConfirmPath: "/users/" + userID + "/delete",
			CancelPath:  "/users",
		},
	})
}

func (h *UsersHandler) delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}
	userID := chi.URLParam(r, "userID")

	if err := h.users.Delete(r.Context(), sess.Token, userID); err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		common.RedirectWithError(w, r, "/users", "Failed to delete user")
		return
	}
	common.Redirect(w, r, "/users", "User deleted successfully")
}
