// Package jobs hosts the scheduled background work.
package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// UserLister enumerates the users the sweep visits.
type UserLister interface {
	ListUserIDs() ([]string, error)
}

// Recalculator recomputes one user's derived financial state.
type Recalculator interface {
	Recalc(userID string) error
}

// DisciplineSweep runs the daily recalculation over every user. Each
// user is attempted exactly once; a failure is logged with the user id
// and skipped, so one bad user never stops the sweep.
type DisciplineSweep struct {
	users      UserLister
	discipline Recalculator
	schedule   string
	log        *logrus.Logger
	cron       *cron.Cron
}

// NewDisciplineSweep initializes the sweep with a cron schedule
// expression (minute hour dom month dow, fixed reference timezone of
// the process).
func NewDisciplineSweep(users UserLister, discipline Recalculator, schedule string, log *logrus.Logger) *DisciplineSweep {
	return &DisciplineSweep{
		users:      users,
		discipline: discipline,
		schedule:   schedule,
		log:        log,
	}
}

// Start registers the sweep with the scheduler and starts it.
func (s *DisciplineSweep) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.schedule, func() { s.Run() }); err != nil {
		return fmt.Errorf("failed to schedule discipline sweep: %w", err)
	}
	s.cron.Start()
	s.log.Infof("Discipline sweep scheduled: %s", s.schedule)
	return nil
}

// Stop halts the scheduler.
func (s *DisciplineSweep) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Run recalculates every user once and reports successes out of total.
func (s *DisciplineSweep) Run() (successes, total int) {
	userIDs, err := s.users.ListUserIDs()
	if err != nil {
		s.log.WithError(err).Error("discipline sweep could not list users")
		return 0, 0
	}
	total = len(userIDs)

	for _, id := range userIDs {
		if err := s.discipline.Recalc(id); err != nil {
			s.log.WithField("user_id", id).WithError(err).
				Error("discipline sweep failed for user")
			continue
		}
		successes++
	}

	s.log.WithFields(logrus.Fields{
		"successes": successes,
		"total":     total,
	}).Info("discipline sweep finished")
	return successes, total
}
