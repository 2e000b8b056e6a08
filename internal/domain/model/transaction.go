package model

import (
	"strings"
	"time"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// TransactionTypes is the filter vocabulary for the transactions page.
var TransactionTypes = []string{
	"quiz_reward",
	"withdrawal",
	"referral_bonus",
	"tbg_transfer_in",
	"tbg_transfer_out",
}

// TransactionUser is the embedded user reference on a transaction row.
type TransactionUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Transaction is read-only from the console; no mutation endpoints exist.
type Transaction struct {
	ID          string            `json:"_id"`
	User        TransactionUser   `json:"userId"`
	Type        string            `json:"type"`
	Amount      float64           `json:"amount"`
	Description string            `json:"description"`
	Status      TransactionStatus `json:"status"`
	Reference   string            `json:"reference,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// TypeLabel renders "quiz_reward" as "Quiz Reward" for table cells.
func (t Transaction) TypeLabel() string {
	parts := strings.Split(t.Type, "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

type TransactionStats struct {
	TotalTransactions int     `json:"totalTransactions"`
	TotalAmount       float64 `json:"totalAmount"`
	PendingAmount     float64 `json:"pendingAmount"`
	CompletedAmount   float64 `json:"completedAmount"`
	TodayTransactions int     `json:"todayTransactions"`
	TodayAmount       float64 `json:"todayAmount"`
}
