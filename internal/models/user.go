package models

import "time"

// User represents a user in the system together with the derived
// financial state maintained by the discipline engine. All monetary
// fields are integers in minor currency units.
type User struct {
	ID                        string     `json:"id"`
	Email                     string     `json:"email"`
	PasswordHash              string     `json:"-"` // Not serialized
	AverageMonthlyIncome      int64      `json:"average_monthly_income"`
	DailyExpenses             int64      `json:"daily_expenses"`
	Timezone                  string     `json:"timezone"`
	TodaysSavingTarget        int64      `json:"todays_saving_target"`
	BufferStatus              int64      `json:"buffer_status"`
	GainToday                 int64      `json:"gain_today"`
	SpendToday                int64      `json:"spend_today"`
	TotalAvailable            int64      `json:"total_available"`
	EnableAnalytics           bool       `json:"enable_analytics"`
	EnableTransactionTracking bool       `json:"enable_transaction_tracking"`
	DataRetentionDays         int        `json:"data_retention_period"`
	LastRecalculatedAt        *time.Time `json:"last_recalculated_at,omitempty"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`
}

// Baseline holds the income/expense-derived default financial
// parameters computed at signup and on every recalculation.
type Baseline struct {
	TodaysSavingTarget int64 `json:"todays_saving_target"`
	BufferStatus       int64 `json:"buffer_status"`
	TotalAvailable     int64 `json:"total_available"`
}

// DerivedState is the set of fields the discipline engine replaces on
// every run, written to the user row as one atomic update.
type DerivedState struct {
	TodaysSavingTarget int64
	BufferStatus       int64
	GainToday          int64
	SpendToday         int64
	TotalAvailable     int64
	RecalculatedAt     time.Time
}

// OnboardingInput carries the signup fields the baseline is derived from.
type OnboardingInput struct {
	AverageMonthlyIncome int64  `json:"average_monthly_income"`
	DailyExpenses        int64  `json:"daily_expenses"`
	Timezone             string `json:"timezone"`
}

// ProfileUpdate lists the user fields a client may change. Nil means
// leave unchanged.
type ProfileUpdate struct {
	Timezone                  *string `json:"timezone"`
	EnableAnalytics           *bool   `json:"enable_analytics"`
	EnableTransactionTracking *bool   `json:"enable_transaction_tracking"`
	DataRetentionDays         *int    `json:"data_retention_period"`
}
