// Package mocks provides testify mocks for the service store
// interfaces.
package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
)

// MockUserStore is a mock for service.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserStore) FindUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) FindUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) SaveDerivedState(id string, st models.DerivedState) error {
	args := m.Called(id, st)
	return args.Error(0)
}

func (m *MockUserStore) UpdateProfile(id string, upd models.ProfileUpdate) (*models.User, error) {
	args := m.Called(id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) SoftDeleteUser(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserStore) ListUserIDs() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockMissionStore is a mock for service.MissionStore
type MockMissionStore struct {
	mock.Mock
}

func (m *MockMissionStore) CreateMission(mission *models.Mission) error {
	args := m.Called(mission)
	return args.Error(0)
}

func (m *MockMissionStore) FindMissionByID(id string) (*models.Mission, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mission), args.Error(1)
}

func (m *MockMissionStore) FindMissionsByUserID(userID string, f models.MissionFilter) ([]*models.Mission, error) {
	args := m.Called(userID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Mission), args.Error(1)
}

func (m *MockMissionStore) UpdateMission(mission *models.Mission) error {
	args := m.Called(mission)
	return args.Error(0)
}

func (m *MockMissionStore) AddToSaved(id string, amount int64) (*models.Mission, error) {
	args := m.Called(id, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mission), args.Error(1)
}

func (m *MockMissionStore) ArchiveMission(id string) (*models.Mission, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mission), args.Error(1)
}

func (m *MockMissionStore) DeleteMission(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMissionStore) ReorderMissions(userID, priority string, ids []string) error {
	args := m.Called(userID, priority, ids)
	return args.Error(0)
}

// MockTransactionStore is a mock for service.TransactionStore
type MockTransactionStore struct {
	mock.Mock
}

func (m *MockTransactionStore) CreateTransaction(t *models.Transaction) (*models.Transaction, bool, error) {
	args := m.Called(t)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Transaction), args.Bool(1), args.Error(2)
}

func (m *MockTransactionStore) SumByType(userID, txType string, start, end time.Time) (int64, error) {
	args := m.Called(userID, txType, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionStore) FindTransactionsByUserID(userID string, f models.TransactionFilter) ([]*models.Transaction, error) {
	args := m.Called(userID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

func (m *MockTransactionStore) DeleteUserTransactions(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuditStore is a mock for service.AuditStore
type MockAuditStore struct {
	mock.Mock
}

func (m *MockAuditStore) CreateAuditLog(entry *models.AuditLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockAuditStore) FindAuditLogsByUserID(userID string, limit int) ([]*models.AuditLog, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AuditLog), args.Error(1)
}

// MockRecalculator is a mock for service.Recalculator
type MockRecalculator struct {
	mock.Mock
}

func (m *MockRecalculator) Recalc(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockRecalculator) ApplyTransaction(userID string, t *models.Transaction) error {
	args := m.Called(userID, t)
	return args.Error(0)
}
