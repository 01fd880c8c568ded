package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/utils/dates"
)

// ComputeBaseline derives the default financial parameters from the
// onboarding income/expense figures, in minor currency units. Zero
// income yields an all-zero baseline. The saving ratio tightens as the
// strain ratio (daily expenses over baseline daily income) rises:
//
//	strain > 0.90         -> 5%
//	0.70 <= strain <= 0.90 -> 10%
//	0.50 <= strain < 0.70  -> 15%
//	strain < 0.50          -> 20%
//
// Comparisons are done in integer arithmetic, so the tier boundaries
// are exact.
func ComputeBaseline(monthlyIncome, dailyExpenses int64) models.Baseline {
	if monthlyIncome <= 0 {
		return models.Baseline{}
	}

	base := monthlyIncome / 30

	var pct int64
	switch {
	case base == 0 || dailyExpenses*100 > base*90:
		// A zero daily income counts as strain ratio 1
		pct = 5
	case dailyExpenses*10 >= base*7:
		pct = 10
	case dailyExpenses*2 >= base:
		pct = 15
	default:
		pct = 20
	}

	target := base * pct / 100
	buffer := base - target
	return models.Baseline{
		TodaysSavingTarget: target,
		BufferStatus:       buffer,
		TotalAvailable:     buffer,
	}
}

// Discipline recomputes a user's derived financial state. It is the
// single writer of those fields: every path in acquires the user's
// lock first.
type Discipline struct {
	users        UserStore
	missions     MissionStore
	transactions TransactionStore
	dates        dates.Resolver
	locks        *userLocks
	log          *logrus.Logger
	now          func() time.Time
}

// NewDiscipline initializes the discipline engine.
func NewDiscipline(users UserStore, missions MissionStore, transactions TransactionStore, resolver dates.Resolver, log *logrus.Logger) *Discipline {
	return &Discipline{
		users:        users,
		missions:     missions,
		transactions: transactions,
		dates:        resolver,
		locks:        newUserLocks(),
		log:          log,
		now:          time.Now,
	}
}

// Recalc re-derives the user's daily saving target, buffer and
// gain/deficit from current missions and today's transaction totals,
// and persists them as one atomic update. It is the authoritative path;
// ApplyTransaction only approximates it between runs.
func (d *Discipline) Recalc(userID string) error {
	unlock := d.locks.lock(userID)
	defer unlock()

	user, err := d.users.FindUserByID(userID)
	if err != nil {
		return err
	}

	active, err := d.missions.FindMissionsByUserID(userID, models.MissionFilter{Status: models.MissionActive})
	if err != nil {
		return err
	}
	var missionDailyTarget int64
	for _, m := range active {
		missionDailyTarget += m.DailyTarget
	}

	baseline := ComputeBaseline(user.AverageMonthlyIncome, user.DailyExpenses)

	// Missions can only raise the commitment above the baseline,
	// never lower it.
	target := baseline.TodaysSavingTarget
	if missionDailyTarget > target {
		target = missionDailyTarget
	}

	now := d.now()
	start, end := d.dates.Bounds(now, user.Timezone)
	income, err := d.transactions.SumByType(userID, models.TypeIncome, start, end)
	if err != nil {
		return err
	}
	spend, err := d.transactions.SumByType(userID, models.TypeExpense, start, end)
	if err != nil {
		return err
	}

	baseDailyIncome := user.AverageMonthlyIncome / 30
	actualAvailable := income - spend
	// gain may be negative: a deficit is recorded as-is, not clamped
	gain := actualAvailable - target
	buffer := baseDailyIncome - spend

	st := models.DerivedState{
		TodaysSavingTarget: target,
		BufferStatus:       buffer,
		GainToday:          gain,
		SpendToday:         spend,
		TotalAvailable:     buffer + gain,
		RecalculatedAt:     now,
	}
	if err := d.users.SaveDerivedState(userID, st); err != nil {
		return err
	}

	d.log.WithFields(logrus.Fields{
		"user_id":       userID,
		"saving_target": target,
		"gain_today":    gain,
	}).Debug("recalculated daily targets")
	return nil
}

// ApplyTransaction folds a single new transaction into the user's
// derived state without re-reading the day's aggregates. The drift this
// accumulates is corrected by the next full Recalc.
func (d *Discipline) ApplyTransaction(userID string, t *models.Transaction) error {
	unlock := d.locks.lock(userID)
	defer unlock()

	user, err := d.users.FindUserByID(userID)
	if err != nil {
		return err
	}

	spend := user.SpendToday
	gain := user.GainToday
	switch t.Type {
	case models.TypeExpense:
		spend += t.Amount
		gain -= t.Amount
	case models.TypeIncome:
		gain += t.Amount
	}

	baseDailyIncome := user.AverageMonthlyIncome / 30
	buffer := baseDailyIncome - spend

	st := models.DerivedState{
		TodaysSavingTarget: user.TodaysSavingTarget,
		BufferStatus:       buffer,
		GainToday:          gain,
		SpendToday:         spend,
		TotalAvailable:     buffer + gain,
		RecalculatedAt:     d.now(),
	}
	return d.users.SaveDerivedState(userID, st)
}
