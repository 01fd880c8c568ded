package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/apperrors"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
)

// Users serves profile and privacy operations.
type Users struct {
	users        UserStore
	transactions TransactionStore
	audit        AuditStore
	log          *logrus.Logger
}

// NewUsers initializes the user service.
func NewUsers(users UserStore, transactions TransactionStore, audit AuditStore, log *logrus.Logger) *Users {
	return &Users{users: users, transactions: transactions, audit: audit, log: log}
}

// Profile returns the user's full record.
func (s *Users) Profile(userID string) (*models.User, error) {
	return s.users.FindUserByID(userID)
}

// UpdateProfile applies the allowed profile fields.
func (s *Users) UpdateProfile(userID string, upd models.ProfileUpdate) (*models.User, error) {
	if upd.Timezone != nil {
		if _, err := time.LoadLocation(*upd.Timezone); err != nil {
			return nil, apperrors.Validationf("unknown timezone %q", *upd.Timezone)
		}
	}
	if upd.DataRetentionDays != nil && *upd.DataRetentionDays <= 0 {
		return nil, apperrors.Validation("data_retention_period must be positive")
	}
	return s.users.UpdateProfile(userID, upd)
}

// PrivacySettings is the privacy slice of the profile.
type PrivacySettings struct {
	EnableAnalytics           bool `json:"enable_analytics"`
	EnableTransactionTracking bool `json:"enable_transaction_tracking"`
	DataRetentionDays         int  `json:"data_retention_period"`
}

// Privacy returns the user's privacy settings.
func (s *Users) Privacy(userID string) (*PrivacySettings, error) {
	user, err := s.users.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	return &PrivacySettings{
		EnableAnalytics:           user.EnableAnalytics,
		EnableTransactionTracking: user.EnableTransactionTracking,
		DataRetentionDays:         user.DataRetentionDays,
	}, nil
}

// AuditTrail returns the user's most recent audit entries, newest
// first.
func (s *Users) AuditTrail(userID string, limit int) ([]*models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if _, err := s.users.FindUserByID(userID); err != nil {
		return nil, err
	}
	return s.audit.FindAuditLogsByUserID(userID, limit)
}

// Erase physically removes the user's transactions and soft-deletes the
// user row. This is the only path that deletes transaction data.
func (s *Users) Erase(userID string) (int64, error) {
	if _, err := s.users.FindUserByID(userID); err != nil {
		return 0, err
	}

	removed, err := s.transactions.DeleteUserTransactions(userID)
	if err != nil {
		return 0, err
	}
	if err := s.users.SoftDeleteUser(userID); err != nil {
		return removed, err
	}

	if err := s.audit.CreateAuditLog(&models.AuditLog{
		UserID:     userID,
		Action:     "user_data_deleted",
		EntityType: "user",
		EntityID:   userID,
	}); err != nil {
		s.log.WithField("user_id", userID).WithError(err).Warn("failed to write audit log")
	}

	s.log.WithFields(logrus.Fields{
		"user_id":              userID,
		"transactions_removed": removed,
	}).Info("user data erased")
	return removed, nil
}
