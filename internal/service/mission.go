package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/apperrors"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
)

// maxActiveMissions caps how many active missions a user may hold.
const maxActiveMissions = 20

// Percentage of an allocation each tier receives.
var tierShares = map[string]int64{
	models.PriorityNonNegotiable: 60,
	models.PriorityBigMoves:      30,
	models.PriorityFlexGoals:     10,
}

// Missions manages savings goals and distributes saved amounts across
// them.
type Missions struct {
	store      MissionStore
	users      UserStore
	audit      AuditStore
	discipline Recalculator
	log        *logrus.Logger
	now        func() time.Time
}

// NewMissions initializes the mission service.
func NewMissions(store MissionStore, users UserStore, audit AuditStore, discipline Recalculator, log *logrus.Logger) *Missions {
	return &Missions{
		store:      store,
		users:      users,
		audit:      audit,
		discipline: discipline,
		log:        log,
		now:        time.Now,
	}
}

func (s *Missions) recordAudit(userID, action, entityID string) {
	err := s.audit.CreateAuditLog(&models.AuditLog{
		UserID:     userID,
		Action:     action,
		EntityType: "mission",
		EntityID:   entityID,
	})
	if err != nil {
		s.log.WithField("user_id", userID).WithError(err).Warn("failed to write audit log")
	}
}

func (s *Missions) recalc(userID string) {
	if err := s.discipline.Recalc(userID); err != nil {
		s.log.WithField("user_id", userID).WithError(err).
			Error("recalculation after mission change failed")
	}
}

func validateMissionInput(in models.MissionInput) error {
	if in.Name == "" {
		return apperrors.Validation("name is required")
	}
	if !models.ValidPriority(in.Priority) {
		return apperrors.Validationf("unknown priority %q", in.Priority)
	}
	if in.TargetAmount <= 0 {
		return apperrors.Validation("target_amount must be positive")
	}
	if in.DurationDays <= 0 {
		return apperrors.Validation("duration_days must be positive")
	}
	return nil
}

// Create adds a mission for the user and triggers a recalculation.
func (s *Missions) Create(userID string, in models.MissionInput) (*models.Mission, error) {
	if _, err := s.users.FindUserByID(userID); err != nil {
		return nil, err
	}
	if err := validateMissionInput(in); err != nil {
		return nil, err
	}

	active, err := s.store.FindMissionsByUserID(userID, models.MissionFilter{Status: models.MissionActive})
	if err != nil {
		return nil, err
	}
	if len(active) >= maxActiveMissions {
		return nil, apperrors.Validationf("mission limit reached (max %d active missions)", maxActiveMissions)
	}

	m := &models.Mission{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         in.Name,
		Priority:     in.Priority,
		TargetAmount: in.TargetAmount,
		DurationDays: in.DurationDays,
		DailyTarget:  in.TargetAmount / int64(in.DurationDays),
		Status:       models.MissionActive,
	}
	if err := s.store.CreateMission(m); err != nil {
		return nil, err
	}
	m.ComputeDerived(s.now())

	s.recalc(userID)
	s.recordAudit(userID, "mission_created", m.ID)
	return m, nil
}

// List returns the user's missions grouped by priority tier.
func (s *Missions) List(userID string, f models.MissionFilter) (map[string][]*models.Mission, error) {
	missions, err := s.store.FindMissionsByUserID(userID, f)
	if err != nil {
		return nil, err
	}

	now := s.now()
	grouped := map[string][]*models.Mission{
		models.PriorityNonNegotiable: {},
		models.PriorityBigMoves:      {},
		models.PriorityFlexGoals:     {},
	}
	for _, m := range missions {
		m.ComputeDerived(now)
		grouped[m.Priority] = append(grouped[m.Priority], m)
	}
	return grouped, nil
}

// Get returns one mission after checking it belongs to the user.
func (s *Missions) Get(userID, missionID string) (*models.Mission, error) {
	m, err := s.store.FindMissionByID(missionID)
	if err != nil {
		return nil, err
	}
	if m.UserID != userID {
		return nil, apperrors.Authorization("mission belongs to another user")
	}
	m.ComputeDerived(s.now())
	return m, nil
}

// Update changes a mission's name, target or duration. daily_target is
// recomputed whenever either of its inputs changes, and a
// recalculation follows.
func (s *Missions) Update(userID, missionID string, upd models.MissionUpdate) (*models.Mission, error) {
	m, err := s.Get(userID, missionID)
	if err != nil {
		return nil, err
	}

	targetsChanged := false
	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, apperrors.Validation("name cannot be empty")
		}
		m.Name = *upd.Name
	}
	if upd.TargetAmount != nil {
		if *upd.TargetAmount <= 0 {
			return nil, apperrors.Validation("target_amount must be positive")
		}
		m.TargetAmount = *upd.TargetAmount
		targetsChanged = true
	}
	if upd.DurationDays != nil {
		if *upd.DurationDays <= 0 {
			return nil, apperrors.Validation("duration_days must be positive")
		}
		m.DurationDays = *upd.DurationDays
		targetsChanged = true
	}
	if targetsChanged {
		m.DailyTarget = m.TargetAmount / int64(m.DurationDays)
	}

	if err := s.store.UpdateMission(m); err != nil {
		return nil, err
	}
	m.ComputeDerived(s.now())

	if targetsChanged {
		s.recalc(userID)
	}
	s.recordAudit(userID, "mission_updated", missionID)
	return m, nil
}

// Delete removes a mission. Non-negotiable missions cannot be deleted,
// only archived.
func (s *Missions) Delete(userID, missionID string) error {
	m, err := s.Get(userID, missionID)
	if err != nil {
		return err
	}
	if m.Priority == models.PriorityNonNegotiable {
		return apperrors.Validation("non-negotiable missions cannot be deleted; archive instead")
	}

	if err := s.store.DeleteMission(missionID); err != nil {
		return err
	}
	s.recalc(userID)
	s.recordAudit(userID, "mission_deleted", missionID)
	return nil
}

// Archive marks a mission archived and triggers a recalculation.
func (s *Missions) Archive(userID, missionID string) (*models.Mission, error) {
	if _, err := s.Get(userID, missionID); err != nil {
		return nil, err
	}

	m, err := s.store.ArchiveMission(missionID)
	if err != nil {
		return nil, err
	}
	m.ComputeDerived(s.now())

	s.recalc(userID)
	s.recordAudit(userID, "mission_archived", missionID)
	return m, nil
}

// Reorder rewrites the ordering of a priority tier in one transaction.
func (s *Missions) Reorder(userID, priority string, orderedIDs []string) error {
	if !models.ValidPriority(priority) {
		return apperrors.Validationf("unknown priority %q", priority)
	}
	if len(orderedIDs) == 0 {
		return apperrors.Validation("a non-empty order is required")
	}
	if err := s.store.ReorderMissions(userID, priority, orderedIDs); err != nil {
		return err
	}
	s.recordAudit(userID, "missions_reordered", priority)
	return nil
}

// Allocate distributes amount across the user's active missions by the
// fixed 60/30/10 waterfall. Each tier's share is truncated to whole
// minor units and split evenly (floored) across the tier's missions; a
// tier with no active missions leaves its share unallocated. Nothing is
// redistributed across tiers: whatever the waterfall cannot place is
// reported in Unallocated. Missions funded past their target transition
// to completed.
func (s *Missions) Allocate(userID string, amount int64) (*models.AllocationReport, error) {
	if amount <= 0 {
		return nil, apperrors.Validation("amount must be positive")
	}
	if _, err := s.users.FindUserByID(userID); err != nil {
		return nil, err
	}

	active, err := s.store.FindMissionsByUserID(userID, models.MissionFilter{Status: models.MissionActive})
	if err != nil {
		return nil, err
	}

	byTier := make(map[string][]*models.Mission)
	for _, m := range active {
		byTier[m.Priority] = append(byTier[m.Priority], m)
	}

	report := &models.AllocationReport{
		Amount: amount,
		Tiers:  make(map[string]models.TierAllocation),
	}

	var distributed int64
	for _, tier := range models.Priorities {
		share := amount * tierShares[tier] / 100
		alloc := models.TierAllocation{Missions: make(map[string]int64)}

		missions := byTier[tier]
		if len(missions) > 0 && share > 0 {
			per := share / int64(len(missions))
			for _, m := range missions {
				if per == 0 {
					break
				}
				updated, err := s.store.AddToSaved(m.ID, per)
				if err != nil {
					return nil, err
				}
				alloc.Missions[m.ID] = per
				alloc.Total += per
				distributed += per

				if updated.Status == models.MissionCompleted && m.Status == models.MissionActive {
					report.Completed = append(report.Completed, m.ID)
					s.log.WithFields(logrus.Fields{
						"user_id":    userID,
						"mission_id": m.ID,
					}).Info("mission completed")
					s.recordAudit(userID, "mission_completed", m.ID)
				}
			}
		}
		report.Tiers[tier] = alloc
	}
	report.Unallocated = amount - distributed

	if len(report.Completed) > 0 {
		s.recalc(userID)
	}
	return report, nil
}
