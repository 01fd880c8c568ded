package models

import "time"

// Transaction types.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction sources.
const (
	SourceSMSAndroid = "sms_android"
	SourceAAIOS      = "aa_ios"
	SourceManual     = "manual"
)

// ValidSource reports whether s is a known transaction source.
func ValidSource(s string) bool {
	return s == SourceSMSAndroid || s == SourceAAIOS || s == SourceManual
}

// Transaction represents a single immutable money movement. Amount is
// an integer in minor currency units and always positive; Type encodes
// the direction. SourceIdentifier, when present, is the external
// idempotency key: at most one transaction per (user, identifier) pair
// is ever persisted.
type Transaction struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Amount           int64     `json:"amount"`
	Type             string    `json:"type"`
	Category         string    `json:"category,omitempty"`
	Description      string    `json:"description,omitempty"`
	TransactionDate  time.Time `json:"transaction_date"`
	Source           string    `json:"source"`
	SourceIdentifier string    `json:"source_identifier,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// TransactionInput is one item of an ingestion batch.
type TransactionInput struct {
	Amount           int64     `json:"amount"`
	Type             string    `json:"type"`
	Category         string    `json:"category"`
	Description      string    `json:"description"`
	TransactionDate  time.Time `json:"transaction_date"`
	SourceIdentifier string    `json:"source_identifier"`
}

// TransactionFilter narrows transaction history queries. Zero values
// mean no constraint.
type TransactionFilter struct {
	Type     string
	Category string
	Start    time.Time
	End      time.Time
}

// SyncResult summarizes one ingestion batch. Duplicates are idempotent
// no-ops, not errors; Failed counts items whose validation or persist
// step failed without affecting their siblings.
type SyncResult struct {
	Synced     int `json:"synced"`
	Duplicates int `json:"duplicates"`
	Failed     int `json:"failed"`
}

// TodaySummary is the income/expense snapshot for the current day in
// the user's timezone.
type TodaySummary struct {
	TotalIncome      int64          `json:"total_income"`
	TotalSpending    int64          `json:"total_spending"`
	Net              int64          `json:"net"`
	TransactionCount int            `json:"transaction_count"`
	Transactions     []*Transaction `json:"transactions"`
}
