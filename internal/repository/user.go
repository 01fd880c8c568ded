package repository

import (
	"database/sql"
	"fmt"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/apperrors"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
)

const userColumns = `id, email, password_hash, average_monthly_income, daily_expenses, timezone,
		todays_saving_target, buffer_status, gain_today, spend_today, total_available,
		enable_analytics, enable_transaction_tracking, data_retention_period,
		last_recalculated_at, created_at, updated_at`

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, average_monthly_income, daily_expenses, timezone,
			todays_saving_target, buffer_status, total_available,
			enable_analytics, enable_transaction_tracking, data_retention_period,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query,
		user.ID, user.Email, user.PasswordHash,
		user.AverageMonthlyIncome, user.DailyExpenses, user.Timezone,
		user.TodaysSavingTarget, user.BufferStatus, user.TotalAvailable,
		user.EnableAnalytics, user.EnableTransactionTracking, user.DataRetentionDays).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *Repository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var lastRecalc sql.NullTime
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash,
		&user.AverageMonthlyIncome, &user.DailyExpenses, &user.Timezone,
		&user.TodaysSavingTarget, &user.BufferStatus, &user.GainToday,
		&user.SpendToday, &user.TotalAvailable,
		&user.EnableAnalytics, &user.EnableTransactionTracking, &user.DataRetentionDays,
		&lastRecalc, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	user.LastRecalculatedAt = timePtr(lastRecalc)
	return user, nil
}

// FindUserByID retrieves a user by id, excluding soft-deleted rows.
func (r *Repository) FindUserByID(id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`
	return r.scanUser(r.db.QueryRow(query, id))
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL`
	return r.scanUser(r.db.QueryRow(query, email))
}

// SaveDerivedState replaces the discipline-derived fields of one user
// as a single atomic update.
func (r *Repository) SaveDerivedState(id string, st models.DerivedState) error {
	query := `
		UPDATE users
		SET todays_saving_target = $2, buffer_status = $3, gain_today = $4,
			spend_today = $5, total_available = $6, last_recalculated_at = $7,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.Exec(query, id,
		st.TodaysSavingTarget, st.BufferStatus, st.GainToday,
		st.SpendToday, st.TotalAvailable, st.RecalculatedAt)
	if err != nil {
		return fmt.Errorf("failed to save derived state: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NotFound("user not found")
	}
	return nil
}

// UpdateProfile applies the non-nil fields of upd to the user row.
func (r *Repository) UpdateProfile(id string, upd models.ProfileUpdate) (*models.User, error) {
	query := `
		UPDATE users
		SET timezone = COALESCE($2, timezone),
			enable_analytics = COALESCE($3, enable_analytics),
			enable_transaction_tracking = COALESCE($4, enable_transaction_tracking),
			data_retention_period = COALESCE($5, data_retention_period),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + userColumns
	return r.scanUser(r.db.QueryRow(query, id,
		upd.Timezone, upd.EnableAnalytics, upd.EnableTransactionTracking, upd.DataRetentionDays))
}

// SoftDeleteUser marks the user deleted without removing the row.
func (r *Repository) SoftDeleteUser(id string) error {
	res, err := r.db.Exec(
		`UPDATE users SET deleted_at = CURRENT_TIMESTAMP WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NotFound("user not found")
	}
	return nil
}

// ListUserIDs returns the ids of all live users, for the daily sweep.
func (r *Repository) ListUserIDs() ([]string, error) {
	rows, err := r.db.Query(`SELECT id FROM users WHERE deleted_at IS NULL ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
