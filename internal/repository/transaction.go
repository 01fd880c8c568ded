package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
)

const transactionColumns = `id, user_id, amount, type, category, description,
		transaction_date, source, source_identifier, created_at`

func scanTransaction(row interface{ Scan(...any) error }) (*models.Transaction, error) {
	t := &models.Transaction{}
	var category, description, sourceID sql.NullString
	err := row.Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &category, &description,
		&t.TransactionDate, &t.Source, &sourceID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.Category = category.String
	t.Description = description.String
	t.SourceIdentifier = sourceID.String
	return t, nil
}

func (r *Repository) findBySourceIdentifier(userID, sourceID string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE user_id = $1 AND source_identifier = $2`
	t, err := scanTransaction(r.db.QueryRow(query, userID, sourceID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up transaction: %w", err)
	}
	return t, nil
}

// CreateTransaction persists t unless a transaction with the same
// (user_id, source_identifier) already exists, in which case the
// existing row is returned and created is false. A unique index backs
// the check, so two concurrent ingestions of the same identifier still
// produce exactly one row.
func (r *Repository) CreateTransaction(t *models.Transaction) (*models.Transaction, bool, error) {
	if t.SourceIdentifier != "" {
		existing, err := r.findBySourceIdentifier(t.UserID, t.SourceIdentifier)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, false, nil
		}
	}

	query := `
		INSERT INTO transactions (id, user_id, amount, type, category, description,
			transaction_date, source, source_identifier, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRow(query,
		t.ID, t.UserID, t.Amount, t.Type, nullStr(t.Category), nullStr(t.Description),
		t.TransactionDate, t.Source, nullStr(t.SourceIdentifier)).
		Scan(&t.CreatedAt)
	if err != nil {
		// Lost a race on the unique (user_id, source_identifier) index:
		// treat it as the duplicate it is.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" && t.SourceIdentifier != "" {
			existing, lookupErr := r.findBySourceIdentifier(t.UserID, t.SourceIdentifier)
			if lookupErr == nil && existing != nil {
				return existing, false, nil
			}
		}
		return nil, false, fmt.Errorf("failed to create transaction: %w", err)
	}
	return t, true, nil
}

// SumByType totals transactions of one type within [start, end).
func (r *Repository) SumByType(userID, txType string, start, end time.Time) (int64, error) {
	var total int64
	err := r.db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM transactions
		 WHERE user_id = $1 AND type = $2 AND transaction_date >= $3 AND transaction_date < $4`,
		userID, txType, start, end).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return total, nil
}

// FindTransactionsByUserID retrieves a user's transactions, newest
// first, with optional type/category/date filters.
func (r *Repository) FindTransactionsByUserID(userID string, f models.TransactionFilter) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []any{userID}
	if f.Type != "" {
		args = append(args, f.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if !f.Start.IsZero() {
		args = append(args, f.Start)
		query += fmt.Sprintf(" AND transaction_date >= $%d", len(args))
	}
	if !f.End.IsZero() {
		args = append(args, f.End)
		query += fmt.Sprintf(" AND transaction_date < $%d", len(args))
	}
	query += ` ORDER BY transaction_date DESC, created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// DeleteUserTransactions physically removes all of a user's
// transactions. Only account erasure calls this.
func (r *Repository) DeleteUserTransactions(userID string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM transactions WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
