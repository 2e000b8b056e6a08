package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"

	"quiz_admin_console/internal/app/controller"
	"quiz_admin_console/internal/app/form"
	"quiz_admin_console/internal/common"
	"quiz_admin_console/internal/domain/model"
	"quiz_admin_console/internal/platform/upstream"
	"quiz_admin_console/internal/web"

	"github.com/go-chi/chi/v5"
)

// maxUploadSize bounds the bulk upload CSV read into memory.
const maxUploadSize = 10 << 20

type QuizHandler struct {
	quizzes  *controller.QuizzesController
	auth     *controller.AuthController
	renderer *web.Renderer
}

func NewQuizHandler(quizzes *controller.QuizzesController, auth *controller.AuthController, renderer *web.Renderer) *QuizHandler {
	return &QuizHandler{quizzes: quizzes, auth: auth, renderer: renderer}
}

func (h *QuizHandler) RegisterRoutes(r chi.Router) {
	r.Get("/quizzes", h.list)
	r.Get("/quizzes/new", h.newForm)
	r.Post("/quizzes/new", h.create)
	r.Get("/quizzes/{questionID}/edit", h.editForm)
	r.Post("/quizzes/{questionID}/edit", h.update)
	r.Post("/quizzes/{questionID}/status", h.setStatus)
	r.Get("/quizzes/{questionID}/delete", h.confirmDelete)
	r.Post("/quizzes/{questionID}/delete", h.delete)
	r.Post("/quizzes/bulk-upload", h.bulkUpload)
}

type quizzesPage struct {
	View       controller.QuizzesView
	Categories []string
}

type quizFormPage struct {
	Form       form.QuizForm
	Errors     form.Errors
	Categories []string
	ActionPath string
	Editing    bool
}

func (h *QuizHandler) list(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	q := controller.QuizzesQuery{
		Category:   r.URL.Query().Get("category"),
		Difficulty: r.URL.Query().Get("difficulty"),
		Active:     r.URL.Query().Get("isActive"),
		Page:       queryPage(r.URL.Query()),
	}

	var errMsg string
	view, err := h.quizzes.Load(r.Context(), sess.Token, q)
	if err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		errMsg = "Failed to load questions. Showing the last loaded data."
	}

	h.renderer.Render(w, r, "quizzes.html", web.PageData{
		Title:  "Quiz Management",
		Active: "quizzes",
		Error:  errMsg,
		Data:   quizzesPage{View: view, Categories: model.QuestionCategories},
	})
}

func (h *QuizHandler) newForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "quiz_form.html", web.PageData{
		Title:  "Add New Question",
		Active: "quizzes",
		Data: quizFormPage{
			Form:       form.NewQuizForm(),
			Categories: model.QuestionCategories,
			ActionPath: "/quizzes/new",
		},
	})
}

func (h *QuizHandler) create(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form payload")
		return
	}

	f := form.ParseQuizForm(r.PostForm)
	page := quizFormPage{
		Form:       f,
		Categories: model.QuestionCategories,
		ActionPath: "/quizzes/new",
	}
	if errs := f.Validate(); !errs.Valid() {
		page.Errors = errs
		h.renderer.Render(w, r, "quiz_form.html", web.PageData{
			Title:  "Add New Question",
			Active: "quizzes",
			Data:   page,
		})
		return
	}

	if err := h.quizzes.Create(r.Context(), sess.Token, f.Payload()); err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		h.renderer.Render(w, r, "quiz_form.html", web.PageData{
			Title:  "Add New Question",
			Active: "quizzes",
			Error:  "Failed to create question",
			Data:   page,
		})
		return
	}
	common.Redirect(w, r, "/quizzes", "Question created successfully")
}

func (h *QuizHandler) editForm(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "questionID")
	q, ok := h.quizzes.Find(questionID)
	if !ok {
		common.RedirectWithError(w, r, "/quizzes", "Question not found")
		return
	}

	h.renderer.Render(w, r, "quiz_form.html", web.PageData{
		Title:  "Edit Question",
		Active: "quizzes",
		Data: quizFormPage{
			Form:       form.QuizFormFromQuestion(q),
			Categories: model.QuestionCategories,
			ActionPath: "/quizzes/" + questionID + "/edit",
			Editing:    true,
		},
	})
}

func (h *QuizHandler) update(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form payload")
		return
	}
	questionID := chi.URLParam(r, "questionID")

	f := form.ParseQuizForm(r.PostForm)
	page := quizFormPage{
		Form:       f,
		Categories: model.QuestionCategories,
		ActionPath: "/quizzes/" + questionID + "/edit",
		Editing:    true,
	}
	if errs := f.Validate(); !errs.Valid() {
		page.Errors = errs
		h.renderer.Render(w, r, "quiz_form.html", web.PageData{
			Title:  "Edit Question",
			Active: "quizzes",
			Data:   page,
		})
		return
	}

	if err := h.quizzes.Update(r.Context(), sess.Token, questionID, f.Payload()); err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		h.renderer.Render(w, r, "quiz_form.html", web.PageData{
			Title:  "Edit Question",
			Active: "quizzes",
			Error:  "Failed to update question",
			Data:   page,
		})
		return
	}
	common.Redirect(w, r, "/quizzes", "Question updated successfully")
}

func (h *QuizHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form payload")
		return
	}

	questionID := chi.URLParam(r, "questionID")
	active := r.PostFormValue("isActive") == "true"

	if err := h.quizzes.SetActive(r.Context(), sess.Token, questionID, active); err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		common.RedirectWithError(w, r, "/quizzes", "Failed to update question status")
		return
	}

	notice := "Question deactivated"
	if active {
		notice = "Question activated"
	}
	common.Redirect(w, r, "/quizzes", notice)
}

func (h *QuizHandler) confirmDelete(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "questionID")

	message := "Are you sure you want to delete this question? This cannot be undone."
	if q, ok := h.quizzes.Find(questionID); ok {
		message = "Are you sure you want to delete the question \"" + q.Question + "\"? This cannot be undone."
	}

	h.renderer.Render(w, r, "confirm_delete.html", web.PageData{
		Title:  "Delete Question",
		Active: "quizzes",
		Data: confirmDeletePage{
			Heading:     "Delete Question",
			Message:     message,
			ConfirmPath: "/quizzes/" + questionID + "/delete",
			CancelPath:  "/quizzes",
		},
	})
}

func (h *QuizHandler) delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}
	questionID := chi.URLParam(r, "questionID")

	if err := h.quizzes.Delete(r.Context(), sess.Token, questionID); err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		common.RedirectWithError(w, r, "/quizzes", "Failed to delete question")
		return
	}
	common.Redirect(w, r, "/quizzes", "Question deleted successfully")
}

// bulkUpload re-wraps the uploaded CSV into a fresh multipart body. The
// incoming body was already consumed by form parsing, so it cannot be
// forwarded as-is.
func (h *QuizHandler) bulkUpload(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		common.RedirectWithError(w, r, "/quizzes", "Invalid upload payload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		common.RedirectWithError(w, r, "/quizzes", "Please choose a CSV file to upload")
		return
	}
	defer file.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", header.Filename)
	if err == nil {
		_, err = io.Copy(part, file)
	}
	if err == nil {
		err = mw.Close()
	}
	if err != nil {
		common.RedirectWithError(w, r, "/quizzes", "Failed to read the uploaded file")
		return
	}

	if err := h.quizzes.BulkUpload(r.Context(), sess.Token, mw.FormDataContentType(), &buf); err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		common.RedirectWithError(w, r, "/quizzes", "Bulk upload failed")
		return
	}
	common.Redirect(w, r, "/quizzes", "Questions uploaded successfully")
}
