package models

// CategorySpend is one slice of the spending breakdown.
type CategorySpend struct {
	Category   string  `json:"category"`
	Amount     int64   `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// AnalyticsReport aggregates a user's transactions over a date range.
type AnalyticsReport struct {
	TotalIncome          int64           `json:"total_income"`
	TotalSpending        int64           `json:"total_spending"`
	NetSavings           int64           `json:"net_savings"`
	AverageDailySpending int64           `json:"average_daily_spending"`
	AverageDailyIncome   int64           `json:"average_daily_income"`
	CategoryBreakdown    []CategorySpend `json:"category_breakdown"`
}

// Alert levels for the midday spending check.
const (
	AlertOK       = "ok"
	AlertWarning  = "warning"
	AlertCritical = "critical"
)

// MorningSummary is the start-of-day notification payload.
type MorningSummary struct {
	Target       int64    `json:"target"`
	Buffer       int64    `json:"buffer"`
	MissionCount int      `json:"mission_count"`
	TopMission   *Mission `json:"top_mission,omitempty"`
}

// MiddaySummary is the intraday spending-check payload.
type MiddaySummary struct {
	Spent      int64   `json:"spent"`
	Target     int64   `json:"target"`
	Percentage float64 `json:"percentage"`
	Remaining  int64   `json:"remaining"`
	AlertLevel string  `json:"alert_level"`
}

// EveningSummary is the end-of-day review payload.
type EveningSummary struct {
	Gain        int64  `json:"gain"`
	Spent       int64  `json:"spent"`
	Target      int64  `json:"target"`
	Performance string `json:"performance"` // ahead, behind, on_track
}

// DailySummary bundles the three notification payloads. It is plain
// data for clients to render; no message content is produced here.
type DailySummary struct {
	Morning MorningSummary `json:"morning"`
	Midday  MiddaySummary  `json:"midday"`
	Evening EveningSummary `json:"evening"`
}
