package controller

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"quiz_admin_console/internal/domain/model"
	"quiz_admin_console/internal/platform/upstream"

	"github.com/gosimple/slug"
)

const transactionsBasePath = "/api/v1/admin/transactions"

// TransactionsQuery is the transactions page filter state; the ledger is
// read-only so these are the only inputs.
type TransactionsQuery struct {
	Search string
	Status string // "", "pending", "completed", "failed"
	Type   string
	Page   int
}

func (q TransactionsQuery) params(pageSize int) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(pageSize))
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	return params
}

type TransactionsView struct {
	Transactions []model.Transaction
	Stats        model.TransactionStats
	Pagination   Pagination
	Query        TransactionsQuery
}

type transactionsListResponse struct {
	Transactions []model.Transaction    `json:"transactions"`
	Stats        model.TransactionStats `json:"stats"`
	Pagination   Pagination             `json:"pagination"`
}

type TransactionsController struct {
	client   *upstream.Client
	pageSize int

	guard   fetchGuard
	mu      sync.Mutex
	last    TransactionsView
	hasLast bool
}

func NewTransactionsController(client *upstream.Client, pageSize int) *TransactionsController {
	return &TransactionsController{client: client, pageSize: pageSize}
}

func (c *TransactionsController) Load(ctx context.Context, token string, q TransactionsQuery) (TransactionsView, error) {
	q.Page = clampPage(q.Page)
	seq := c.guard.begin()

	var resp transactionsListResponse
	if err := c.client.Get(ctx, token, transactionsBasePath+"?"+q.params(c.pageSize).Encode(), &resp); err != nil {
		return c.snapshot(q), err
	}

	view := TransactionsView{
		Transactions: resp.Transactions,
		Stats:        resp.Stats,
		Pagination:   resp.Pagination,
		Query:        q,
	}
	if view.Pagination.Current == 0 {
		view.Pagination = Pagination{Current: q.Page, Pages: 1, Total: len(resp.Transactions)}
	}

	if !c.guard.tryApply(seq) {
		return c.snapshot(q), nil
	}
	c.mu.Lock()
	c.last = view
	c.hasLast = true
	c.mu.Unlock()
	return view, nil
}

func (c *TransactionsController) snapshot(q TransactionsQuery) TransactionsView {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasLast {
		return TransactionsView{Query: q, Pagination: Pagination{Current: 1, Pages: 1}}
	}
	view := c.last
	view.Query = q
	return view
}

// Export streams the CSV blob from the admin API. The suggested filename
// encodes the active filters and today's date.
func (c *TransactionsController) Export(ctx context.Context, token string, q TransactionsQuery) (io.ReadCloser, string, error) {
	params := url.Values{}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	path := transactionsBasePath + "/export"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	body, _, err := c.client.GetRaw(ctx, token, path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to export transactions: %w", err)
	}
	return body, ExportFilename(q, time.Now()), nil
}

// ExportFilename builds e.g. "transactions-withdrawal-pending-2026-09-01.csv".
func ExportFilename(q TransactionsQuery, now time.Time) string {
	parts := []string{"transactions"}
	if q.Type != "" {
		parts = append(parts, q.Type)
	}
	if q.Status != "" {
		parts = append(parts, q.Status)
	}
	return slug.Make(strings.Join(parts, " ")) + "-" + now.Format("2006-01-02") + ".csv"
}
