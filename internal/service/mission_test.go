package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/apperrors"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/service/mocks"
)

func newTestMissions(store *mocks.MockMissionStore, users *mocks.MockUserStore, audit *mocks.MockAuditStore, discipline *mocks.MockRecalculator) *Missions {
	s := NewMissions(store, users, audit, discipline, testLogger())
	s.now = func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }
	return s
}

func activeMission(id, userID, priority string) *models.Mission {
	return &models.Mission{
		ID:           id,
		UserID:       userID,
		Priority:     priority,
		TargetAmount: 100000,
		DurationDays: 100,
		DailyTarget:  1000,
		Status:       models.MissionActive,
	}
}

func TestCreate_ComputesDailyTarget(t *testing.T) {
	store := new(mocks.MockMissionStore)
	users := new(mocks.MockUserStore)
	audit := new(mocks.MockAuditStore)
	discipline := new(mocks.MockRecalculator)
	s := newTestMissions(store, users, audit, discipline)

	users.On("FindUserByID", "u1").Return(activeUser("u1"), nil)
	store.On("FindMissionsByUserID", "u1", models.MissionFilter{Status: models.MissionActive}).
		Return([]*models.Mission{}, nil)

	var created *models.Mission
	store.On("CreateMission", mock.AnythingOfType("*models.Mission")).
		Run(func(args mock.Arguments) { created = args.Get(0).(*models.Mission) }).
		Return(nil)
	discipline.On("Recalc", "u1").Return(nil)
	audit.On("CreateAuditLog", mock.AnythingOfType("*models.AuditLog")).Return(nil)

	_, err := s.Create("u1", models.MissionInput{
		Name:         "Emergency fund",
		Priority:     models.PriorityNonNegotiable,
		TargetAmount: 1000,
		DurationDays: 30,
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, int64(33), created.DailyTarget) // floor(1000/30)
	assert.Equal(t, models.MissionActive, created.Status)
	discipline.AssertCalled(t, "Recalc", "u1")
}

func TestCreate_ActiveMissionLimit(t *testing.T) {
	store := new(mocks.MockMissionStore)
	users := new(mocks.MockUserStore)
	s := newTestMissions(store, users, new(mocks.MockAuditStore), new(mocks.MockRecalculator))

	users.On("FindUserByID", "u1").Return(activeUser("u1"), nil)
	existing := make([]*models.Mission, maxActiveMissions)
	for i := range existing {
		existing[i] = activeMission("m", "u1", models.PriorityFlexGoals)
	}
	store.On("FindMissionsByUserID", "u1", mock.Anything).Return(existing, nil)

	_, err := s.Create("u1", models.MissionInput{
		Name:         "One too many",
		Priority:     models.PriorityFlexGoals,
		TargetAmount: 1000,
		DurationDays: 10,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdate_RecomputesDailyTarget(t *testing.T) {
	store := new(mocks.MockMissionStore)
	users := new(mocks.MockUserStore)
	audit := new(mocks.MockAuditStore)
	discipline := new(mocks.MockRecalculator)
	s := newTestMissions(store, users, audit, discipline)

	m := activeMission("m1", "u1", models.PriorityBigMoves)
	store.On("FindMissionByID", "m1").Return(m, nil)
	store.On("UpdateMission", mock.AnythingOfType("*models.Mission")).Return(nil)
	discipline.On("Recalc", "u1").Return(nil)
	audit.On("CreateAuditLog", mock.Anything).Return(nil)

	newTarget := int64(9000)
	newDuration := 45
	updated, err := s.Update("u1", "m1", models.MissionUpdate{
		TargetAmount: &newTarget,
		DurationDays: &newDuration,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(200), updated.DailyTarget) // floor(9000/45)
	discipline.AssertCalled(t, "Recalc", "u1")
}

func TestDelete_NonNegotiableForbidden(t *testing.T) {
	store := new(mocks.MockMissionStore)
	s := newTestMissions(store, new(mocks.MockUserStore), new(mocks.MockAuditStore), new(mocks.MockRecalculator))

	store.On("FindMissionByID", "m1").Return(activeMission("m1", "u1", models.PriorityNonNegotiable), nil)

	err := s.Delete("u1", "m1")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	store.AssertNotCalled(t, "DeleteMission", mock.Anything)
}

func TestGet_OtherUsersMission(t *testing.T) {
	store := new(mocks.MockMissionStore)
	s := newTestMissions(store, new(mocks.MockUserStore), new(mocks.MockAuditStore), new(mocks.MockRecalculator))

	store.On("FindMissionByID", "m1").Return(activeMission("m1", "owner", models.PriorityBigMoves), nil)

	_, err := s.Get("intruder", "m1")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
}

func TestAllocate_WaterfallSplit(t *testing.T) {
	store := new(mocks.MockMissionStore)
	users := new(mocks.MockUserStore)
	s := newTestMissions(store, users, new(mocks.MockAuditStore), new(mocks.MockRecalculator))

	users.On("FindUserByID", "u1").Return(activeUser("u1"), nil)
	nn := activeMission("nn", "u1", models.PriorityNonNegotiable)
	bm := activeMission("bm", "u1", models.PriorityBigMoves)
	fg := activeMission("fg", "u1", models.PriorityFlexGoals)
	store.On("FindMissionsByUserID", "u1", mock.Anything).
		Return([]*models.Mission{nn, bm, fg}, nil)

	store.On("AddToSaved", "nn", int64(600)).Return(activeMission("nn", "u1", models.PriorityNonNegotiable), nil)
	store.On("AddToSaved", "bm", int64(300)).Return(activeMission("bm", "u1", models.PriorityBigMoves), nil)
	store.On("AddToSaved", "fg", int64(100)).Return(activeMission("fg", "u1", models.PriorityFlexGoals), nil)

	report, err := s.Allocate("u1", 1000)
	require.NoError(t, err)

	assert.Equal(t, int64(600), report.Tiers[models.PriorityNonNegotiable].Total)
	assert.Equal(t, int64(300), report.Tiers[models.PriorityBigMoves].Total)
	assert.Equal(t, int64(100), report.Tiers[models.PriorityFlexGoals].Total)
	assert.Equal(t, int64(600), report.Tiers[models.PriorityNonNegotiable].Missions["nn"])
	assert.Equal(t, int64(300), report.Tiers[models.PriorityBigMoves].Missions["bm"])
	assert.Equal(t, int64(100), report.Tiers[models.PriorityFlexGoals].Missions["fg"])
	assert.Equal(t, int64(0), report.Unallocated)
	store.AssertExpectations(t)
}

func TestAllocate_EmptyTierLeftUnallocated(t *testing.T) {
	store := new(mocks.MockMissionStore)
	users := new(mocks.MockUserStore)
	s := newTestMissions(store, users, new(mocks.MockAuditStore), new(mocks.MockRecalculator))

	users.On("FindUserByID", "u1").Return(activeUser("u1"), nil)
	nn := activeMission("nn", "u1", models.PriorityNonNegotiable)
	store.On("FindMissionsByUserID", "u1", mock.Anything).Return([]*models.Mission{nn}, nil)
	store.On("AddToSaved", "nn", int64(600)).Return(nn, nil)

	report, err := s.Allocate("u1", 1000)
	require.NoError(t, err)

	// 30% and 10% shares have no missions to fund and are not
	// redistributed.
	assert.Equal(t, int64(600), report.Tiers[models.PriorityNonNegotiable].Total)
	assert.Equal(t, int64(0), report.Tiers[models.PriorityBigMoves].Total)
	assert.Equal(t, int64(0), report.Tiers[models.PriorityFlexGoals].Total)
	assert.Equal(t, int64(400), report.Unallocated)
}

func TestAllocate_CompletesMissionPastTarget(t *testing.T) {
	store := new(mocks.MockMissionStore)
	users := new(mocks.MockUserStore)
	audit := new(mocks.MockAuditStore)
	discipline := new(mocks.MockRecalculator)
	s := newTestMissions(store, users, audit, discipline)

	users.On("FindUserByID", "u1").Return(activeUser("u1"), nil)
	m := &models.Mission{
		ID:           "m1",
		UserID:       "u1",
		Priority:     models.PriorityNonNegotiable,
		TargetAmount: 1000,
		AmountSaved:  900,
		Status:       models.MissionActive,
	}
	store.On("FindMissionsByUserID", "u1", mock.Anything).Return([]*models.Mission{m}, nil)

	completedAt := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	completed := &models.Mission{
		ID:           "m1",
		UserID:       "u1",
		Priority:     models.PriorityNonNegotiable,
		TargetAmount: 1000,
		AmountSaved:  1100, // overshoot is kept, not capped
		Status:       models.MissionCompleted,
		CompletedAt:  &completedAt,
	}
	// 60% of 334 is 200, the exact overshoot increment
	store.On("AddToSaved", "m1", int64(200)).Return(completed, nil)
	discipline.On("Recalc", "u1").Return(nil)
	audit.On("CreateAuditLog", mock.MatchedBy(func(e *models.AuditLog) bool {
		return e.Action == "mission_completed" && e.EntityID == "m1"
	})).Return(nil)

	report, err := s.Allocate("u1", 334)
	require.NoError(t, err)

	assert.Contains(t, report.Completed, "m1")
	audit.AssertExpectations(t)
}

func TestAllocate_RejectsNonPositiveAmount(t *testing.T) {
	s := newTestMissions(new(mocks.MockMissionStore), new(mocks.MockUserStore), new(mocks.MockAuditStore), new(mocks.MockRecalculator))

	_, err := s.Allocate("u1", 0)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestReorder_WritesAuditRow(t *testing.T) {
	store := new(mocks.MockMissionStore)
	audit := new(mocks.MockAuditStore)
	s := newTestMissions(store, new(mocks.MockUserStore), audit, new(mocks.MockRecalculator))

	store.On("ReorderMissions", "u1", models.PriorityBigMoves, []string{"m2", "m1"}).Return(nil)
	audit.On("CreateAuditLog", mock.MatchedBy(func(e *models.AuditLog) bool {
		return e.Action == "missions_reordered" && e.UserID == "u1"
	})).Return(nil)

	require.NoError(t, s.Reorder("u1", models.PriorityBigMoves, []string{"m2", "m1"}))
	audit.AssertExpectations(t)
}

func TestReorder_Validation(t *testing.T) {
	s := newTestMissions(new(mocks.MockMissionStore), new(mocks.MockUserStore), new(mocks.MockAuditStore), new(mocks.MockRecalculator))

	err := s.Reorder("u1", "urgent", []string{"m1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	err = s.Reorder("u1", models.PriorityBigMoves, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
