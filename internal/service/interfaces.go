package service

import (
	"time"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
)

// UserStore is the slice of the repository the services need for users.
type UserStore interface {
	CreateUser(user *models.User) error
	FindUserByID(id string) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	SaveDerivedState(id string, st models.DerivedState) error
	UpdateProfile(id string, upd models.ProfileUpdate) (*models.User, error)
	SoftDeleteUser(id string) error
	ListUserIDs() ([]string, error)
}

// MissionStore is the slice of the repository the services need for missions.
type MissionStore interface {
	CreateMission(m *models.Mission) error
	FindMissionByID(id string) (*models.Mission, error)
	FindMissionsByUserID(userID string, f models.MissionFilter) ([]*models.Mission, error)
	UpdateMission(m *models.Mission) error
	AddToSaved(id string, amount int64) (*models.Mission, error)
	ArchiveMission(id string) (*models.Mission, error)
	DeleteMission(id string) error
	ReorderMissions(userID, priority string, ids []string) error
}

// TransactionStore is the slice of the repository the services need for
// transactions.
type TransactionStore interface {
	CreateTransaction(t *models.Transaction) (*models.Transaction, bool, error)
	SumByType(userID, txType string, start, end time.Time) (int64, error)
	FindTransactionsByUserID(userID string, f models.TransactionFilter) ([]*models.Transaction, error)
	DeleteUserTransactions(userID string) (int64, error)
}

// AuditStore appends and reads audit records.
type AuditStore interface {
	CreateAuditLog(entry *models.AuditLog) error
	FindAuditLogsByUserID(userID string, limit int) ([]*models.AuditLog, error)
}

// Recalculator is the discipline engine surface the other services
// trigger after mutating a user's missions or transactions.
type Recalculator interface {
	Recalc(userID string) error
	ApplyTransaction(userID string, t *models.Transaction) error
}
