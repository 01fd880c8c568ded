package repository

import (
	"fmt"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
)

// CreateAuditLog appends an audit record.
func (r *Repository) CreateAuditLog(entry *models.AuditLog) error {
	query := `
		INSERT INTO audit_logs (user_id, action, entity_type, entity_id, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, entry.UserID, entry.Action, entry.EntityType, entry.EntityID).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// FindAuditLogsByUserID returns a user's audit trail, newest first.
func (r *Repository) FindAuditLogsByUserID(userID string, limit int) ([]*models.AuditLog, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, action, entity_type, entity_id, created_at
		 FROM audit_logs WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	var entries []*models.AuditLog
	for rows.Next() {
		e := &models.AuditLog{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.EntityType, &e.EntityID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
