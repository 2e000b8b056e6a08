package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"quiz_admin_console/internal/domain/model"
)

func TestTransactionsQueryParams(t *testing.T) {
	q := TransactionsQuery{Search: "alice", Status: "pending", Type: "withdrawal", Page: 2}
	got := q.params(20)
	want := url.Values{
		"page": {"2"}, "limit": {"20"},
		"search": {"alice"}, "status": {"pending"}, "type": {"withdrawal"},
	}
	if got.Encode() != want.Encode() {
		t.Errorf("Expected %q, got %q", want.Encode(), got.Encode())
	}

	// Empty filters never appear in the query string.
	got = TransactionsQuery{Page: 1}.params(20)
	if got.Has("search") || got.Has("status") || got.Has("type") {
		t.Errorf("Empty filters leaked into params: %v", got)
	}
}

func TestTransactionsLoadParsesStats(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"transactions": []model.Transaction{
				{ID: "t1", Type: "quiz_reward", Amount: 2.5, Status: model.TransactionCompleted},
			},
			"stats": model.TransactionStats{
				TotalTransactions: 120,
				TotalAmount:       540.25,
				PendingAmount:     12.5,
			},
			"pagination": Pagination{Current: 1, Pages: 6, Total: 120},
		}
		json.NewEncoder(w).Encode(resp)
	})

	c := NewTransactionsController(client, 20)
	view, err := c.Load(context.Background(), "tok", TransactionsQuery{Page: 1})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if view.Stats.TotalTransactions != 120 || view.Stats.PendingAmount != 12.5 {
		t.Errorf("Unexpected stats: %+v", view.Stats)
	}
	if len(view.Transactions) != 1 || view.Transactions[0].Type != "quiz_reward" {
		t.Errorf("Unexpected transactions: %+v", view.Transactions)
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		q    TransactionsQuery
		want string
	}{
		{"no filters", TransactionsQuery{}, "transactions-2026-09-01.csv"},
		{"type only", TransactionsQuery{Type: "withdrawal"}, "transactions-withdrawal-2026-09-01.csv"},
		{"status only", TransactionsQuery{Status: "pending"}, "transactions-pending-2026-09-01.csv"},
		{"type and status", TransactionsQuery{Type: "quiz_reward", Status: "completed"}, "transactions-quiz-reward-completed-2026-09-01.csv"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExportFilename(tc.q, now); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTransactionsExport(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/admin/transactions/export" {
			t.Errorf("Export hit %s", r.URL.Path)
		}
		if r.URL.Query().Get("status") != "pending" || r.URL.Query().Get("type") != "withdrawal" {
			t.Errorf("Export filters missing: %v", r.URL.Query())
		}
		if r.URL.Query().Has("search") || r.URL.Query().Has("page") {
			t.Errorf("Export forwarded list-only params: %v", r.URL.Query())
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("id,amount\nt1,2.50\n"))
	})

	c := NewTransactionsController(client, 20)
	body, filename, err := c.Export(context.Background(), "tok", TransactionsQuery{Search: "alice", Status: "pending", Type: "withdrawal", Page: 3})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	defer body.Close()

	data, _ := io.ReadAll(body)
	if string(data) != "id,amount\nt1,2.50\n" {
		t.Errorf("Unexpected CSV body: %q", data)
	}
	if filename == "" || filename[:13] != "transactions-" {
		t.Errorf("Unexpected filename: %q", filename)
	}
}

func TestTransactionTypeLabel(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{"quiz_reward", "Quiz Reward"},
		{"withdrawal", "Withdrawal"},
		{"tbg_transfer_in", "Tbg Transfer In"},
	}
	for _, tc := range testCases {
		tr := model.Transaction{Type: tc.in}
		if got := tr.TypeLabel(); got != tc.want {
			t.Errorf("TypeLabel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
