package handler

import (
	"io"
	"log/slog"
	"net/http"

	"quiz_admin_console/internal/app/controller"
	"quiz_admin_console/internal/common"
	"quiz_admin_console/internal/domain/model"
	"quiz_admin_console/internal/platform/upstream"
	"quiz_admin_console/internal/web"

	"github.com/go-chi/chi/v5"
)

type TransactionsHandler struct {
	transactions *controller.TransactionsController
	auth         *controller.AuthController
	renderer     *web.Renderer
}

func NewTransactionsHandler(transactions *controller.TransactionsController, auth *controller.AuthController, renderer *web.Renderer) *TransactionsHandler {
	return &TransactionsHandler{transactions: transactions, auth: auth, renderer: renderer}
}

func (h *TransactionsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/transactions", h.list)
	r.Get("/transactions/export", h.export)
}

type transactionsPage struct {
	View  controller.TransactionsView
	Types []string
}

func transactionsQueryFromRequest(r *http.Request) controller.TransactionsQuery {
	return controller.TransactionsQuery{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
		Type:   r.URL.Query().Get("type"),
		Page:   queryPage(r.URL.Query()),
	}
}

func (h *TransactionsHandler) list(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	q := transactionsQueryFromRequest(r)

	var errMsg string
	view, err := h.transactions.Load(r.Context(), sess.Token, q)
	if err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		errMsg = "Failed to load transactions. Showing the last loaded data."
	}

	h.renderer.Render(w, r, "transactions.html", web.PageData{
		Title:  "Transaction Management",
		Active: "transactions",
		Error:  errMsg,
		Data:   transactionsPage{View: view, Types: model.TransactionTypes},
	})
}

func (h *TransactionsHandler) export(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	q := transactionsQueryFromRequest(r)
	body, filename, err := h.transactions.Export(r.Context(), sess.Token, q)
	if err != nil {
		if upstream.IsAuthFailure(err) {
			expireSession(w, r, h.auth)
			return
		}
		common.RedirectWithError(w, r, "/transactions", "Failed to export transactions")
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := io.Copy(w, body); err != nil {
		slog.Warn("transaction export stream interrupted", "error", err)
	}
}
