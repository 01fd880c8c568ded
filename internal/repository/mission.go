package repository

import (
	"database/sql"
	"fmt"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/apperrors"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
)

const missionColumns = `id, user_id, name, priority, target_amount, duration_days,
		daily_target, amount_saved, order_index, status, completed_at, created_at, updated_at`

// CreateMission inserts a mission, assigning the next order_index
// within the user's priority tier.
func (r *Repository) CreateMission(m *models.Mission) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`SELECT COALESCE(MAX(order_index) + 1, 0) FROM missions WHERE user_id = $1 AND priority = $2`,
		m.UserID, m.Priority).Scan(&m.OrderIndex)
	if err != nil {
		return fmt.Errorf("failed to compute order index: %w", err)
	}

	err = tx.QueryRow(`
		INSERT INTO missions (id, user_id, name, priority, target_amount, duration_days,
			daily_target, amount_saved, order_index, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`,
		m.ID, m.UserID, m.Name, m.Priority, m.TargetAmount, m.DurationDays,
		m.DailyTarget, m.OrderIndex, m.Status).
		Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create mission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit mission: %w", err)
	}
	return nil
}

func scanMission(row interface{ Scan(...any) error }) (*models.Mission, error) {
	m := &models.Mission{}
	var completed sql.NullTime
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Priority, &m.TargetAmount,
		&m.DurationDays, &m.DailyTarget, &m.AmountSaved, &m.OrderIndex,
		&m.Status, &completed, &m.CreatedAt, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("mission not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan mission: %w", err)
	}
	m.CompletedAt = timePtr(completed)
	return m, nil
}

// FindMissionByID retrieves a mission by id
func (r *Repository) FindMissionByID(id string) (*models.Mission, error) {
	query := `SELECT ` + missionColumns + ` FROM missions WHERE id = $1`
	return scanMission(r.db.QueryRow(query, id))
}

// FindMissionsByUserID retrieves a user's missions, optionally filtered
// by status and priority, ordered by tier and position.
func (r *Repository) FindMissionsByUserID(userID string, f models.MissionFilter) ([]*models.Mission, error) {
	query := `SELECT ` + missionColumns + ` FROM missions WHERE user_id = $1`
	args := []any{userID}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Priority != "" {
		args = append(args, f.Priority)
		query += fmt.Sprintf(" AND priority = $%d", len(args))
	}
	query += ` ORDER BY priority, order_index ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	defer rows.Close()

	var missions []*models.Mission
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}
	return missions, rows.Err()
}

// UpdateMission persists the mutable fields of m.
func (r *Repository) UpdateMission(m *models.Mission) error {
	res, err := r.db.Exec(`
		UPDATE missions
		SET name = $2, target_amount = $3, duration_days = $4, daily_target = $5,
			status = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`,
		m.ID, m.Name, m.TargetAmount, m.DurationDays, m.DailyTarget, m.Status)
	if err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NotFound("mission not found")
	}
	return nil
}

// AddToSaved increments a mission's amount_saved and applies the
// automatic active -> completed transition when the target is reached.
// The increment and the transition happen in one statement, so no
// funding path can observe a completed mission without its stamp.
func (r *Repository) AddToSaved(id string, amount int64) (*models.Mission, error) {
	query := `
		UPDATE missions
		SET amount_saved = amount_saved + $2,
			status = CASE WHEN status = 'active' AND amount_saved + $2 >= target_amount
				THEN 'completed' ELSE status END,
			completed_at = CASE WHEN status = 'active' AND amount_saved + $2 >= target_amount
				THEN CURRENT_TIMESTAMP ELSE completed_at END,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING ` + missionColumns
	return scanMission(r.db.QueryRow(query, id, amount))
}

// ArchiveMission marks a mission archived.
func (r *Repository) ArchiveMission(id string) (*models.Mission, error) {
	query := `
		UPDATE missions SET status = 'archived', updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING ` + missionColumns
	return scanMission(r.db.QueryRow(query, id))
}

// DeleteMission removes a mission row.
func (r *Repository) DeleteMission(id string) error {
	res, err := r.db.Exec(`DELETE FROM missions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete mission: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NotFound("mission not found")
	}
	return nil
}

// ReorderMissions rewrites the order_index of every mission in ids to
// its slice position, all inside one transaction. A partial reorder is
// never observable.
func (r *Repository) ReorderMissions(userID, priority string, ids []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i, id := range ids {
		_, err := tx.Exec(
			`UPDATE missions SET order_index = $1, updated_at = CURRENT_TIMESTAMP
			 WHERE id = $2 AND user_id = $3 AND priority = $4`,
			i, id, userID, priority)
		if err != nil {
			return fmt.Errorf("failed to reorder mission %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder: %w", err)
	}
	return nil
}
