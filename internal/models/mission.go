package models

import "time"

// Mission priority tiers, ordered by funding precedence.
const (
	PriorityNonNegotiable = "non_negotiable"
	PriorityBigMoves      = "big_moves"
	PriorityFlexGoals     = "flex_goals"
)

// Mission statuses.
const (
	MissionActive    = "active"
	MissionCompleted = "completed"
	MissionArchived  = "archived"
)

// Priorities lists the valid tiers in funding order.
var Priorities = []string{PriorityNonNegotiable, PriorityBigMoves, PriorityFlexGoals}

// ValidPriority reports whether p is a known priority tier.
func ValidPriority(p string) bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}

// Mission represents a user-defined savings goal.
type Mission struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Name         string     `json:"name"`
	Priority     string     `json:"priority"`
	TargetAmount int64      `json:"target_amount"`
	DurationDays int        `json:"duration_days"`
	DailyTarget  int64      `json:"daily_target"`
	AmountSaved  int64      `json:"amount_saved"`
	OrderIndex   int        `json:"order_index"`
	Status       string     `json:"status"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Derived on read, not stored.
	DaysRemaining      int     `json:"days_remaining"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// ComputeDerived fills the read-only derived fields from the stored ones.
func (m *Mission) ComputeDerived(now time.Time) {
	elapsed := int(now.Sub(m.CreatedAt).Hours() / 24)
	m.DaysRemaining = m.DurationDays - elapsed
	if m.DaysRemaining < 0 {
		m.DaysRemaining = 0
	}
	if m.TargetAmount > 0 {
		pct := float64(m.AmountSaved) / float64(m.TargetAmount) * 100
		if pct > 100 {
			pct = 100
		}
		m.ProgressPercentage = pct
	}
}

// MissionInput carries the client-supplied fields for mission creation.
type MissionInput struct {
	Name         string `json:"name"`
	Priority     string `json:"priority"`
	TargetAmount int64  `json:"target_amount"`
	DurationDays int    `json:"duration_days"`
}

// MissionUpdate lists the mission fields a client may change. Nil means
// leave unchanged.
type MissionUpdate struct {
	Name         *string `json:"name"`
	TargetAmount *int64  `json:"target_amount"`
	DurationDays *int    `json:"duration_days"`
}

// MissionFilter narrows mission queries.
type MissionFilter struct {
	Status   string
	Priority string
}

// TierAllocation reports how one priority tier was funded.
type TierAllocation struct {
	Total    int64            `json:"total"`
	Missions map[string]int64 `json:"missions"` // mission id -> amount
}

// AllocationReport is the result of distributing a savings amount
// across active missions. Unallocated carries whatever the fixed
// waterfall could not place (empty tiers, integer truncation).
type AllocationReport struct {
	Amount      int64                     `json:"amount"`
	Tiers       map[string]TierAllocation `json:"tiers"`
	Unallocated int64                     `json:"unallocated"`
	Completed   []string                  `json:"completed_missions,omitempty"`
}
