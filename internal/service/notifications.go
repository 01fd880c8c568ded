package service

import (
	"math"
	"time"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/utils/dates"
)

// Notifications assembles the daily summary payloads clients render
// into notifications. No message content is produced here.
type Notifications struct {
	users    UserStore
	missions MissionStore
	dates    dates.Resolver
	now      func() time.Time
}

// NewNotifications initializes the notification service.
func NewNotifications(users UserStore, missions MissionStore, resolver dates.Resolver) *Notifications {
	return &Notifications{users: users, missions: missions, dates: resolver, now: time.Now}
}

// alertLevel grades today's spending against the saving target.
func alertLevel(spend, target int64) string {
	if target == 0 {
		return models.AlertOK
	}
	if spend >= target {
		return models.AlertCritical
	}
	if spend*2 >= target {
		return models.AlertWarning
	}
	return models.AlertOK
}

// DailySummary returns the morning, midday and evening payloads for a
// user from the current derived state.
func (s *Notifications) DailySummary(userID string) (*models.DailySummary, error) {
	user, err := s.users.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	active, err := s.missions.FindMissionsByUserID(userID, models.MissionFilter{Status: models.MissionActive})
	if err != nil {
		return nil, err
	}

	morning := models.MorningSummary{
		Target:       user.TodaysSavingTarget,
		Buffer:       user.BufferStatus,
		MissionCount: len(active),
	}
	if len(active) > 0 {
		top := active[0]
		top.ComputeDerived(s.now())
		morning.TopMission = top
	}

	pct := 0.0
	if user.TodaysSavingTarget > 0 {
		pct = math.Round(float64(user.SpendToday)/float64(user.TodaysSavingTarget)*10000) / 100
	}
	midday := models.MiddaySummary{
		Spent:      user.SpendToday,
		Target:     user.TodaysSavingTarget,
		Percentage: pct,
		Remaining:  user.BufferStatus - user.SpendToday,
		AlertLevel: alertLevel(user.SpendToday, user.TodaysSavingTarget),
	}

	performance := "on_track"
	if user.GainToday > 0 {
		performance = "ahead"
	} else if user.GainToday < 0 {
		performance = "behind"
	}
	evening := models.EveningSummary{
		Gain:        user.GainToday,
		Spent:       user.SpendToday,
		Target:      user.TodaysSavingTarget,
		Performance: performance,
	}

	return &models.DailySummary{Morning: morning, Midday: midday, Evening: evening}, nil
}
