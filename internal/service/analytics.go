package service

import (
	"math"
	"sort"
	"time"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/apperrors"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/utils/dates"
)

// Analytics aggregates transaction history into reports.
type Analytics struct {
	transactions TransactionStore
	users        UserStore
}

// NewAnalytics initializes the analytics service.
func NewAnalytics(transactions TransactionStore, users UserStore) *Analytics {
	return &Analytics{transactions: transactions, users: users}
}

// RangeStats summarizes a user's transactions between start and end
// (inclusive dates): totals, daily averages and the spending breakdown
// by category, largest first.
func (s *Analytics) RangeStats(userID string, start, end time.Time) (*models.AnalyticsReport, error) {
	if end.Before(start) {
		return nil, apperrors.Validation("end date precedes start date")
	}
	user, err := s.users.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	if !user.EnableAnalytics {
		return nil, apperrors.Authorization("analytics disabled for this account")
	}

	transactions, err := s.transactions.FindTransactionsByUserID(userID, models.TransactionFilter{
		Start: start,
		End:   end.AddDate(0, 0, 1),
	})
	if err != nil {
		return nil, err
	}

	report := &models.AnalyticsReport{}
	byCategory := make(map[string]int64)
	for _, t := range transactions {
		switch t.Type {
		case models.TypeIncome:
			report.TotalIncome += t.Amount
		case models.TypeExpense:
			report.TotalSpending += t.Amount
			if t.Category != "" {
				byCategory[t.Category] += t.Amount
			}
		}
	}
	report.NetSavings = report.TotalIncome - report.TotalSpending

	days := int64(dates.DaysBetween(start, end)) + 1
	report.AverageDailySpending = report.TotalSpending / days
	report.AverageDailyIncome = report.TotalIncome / days

	for category, amount := range byCategory {
		pct := 0.0
		if report.TotalSpending > 0 {
			pct = math.Round(float64(amount)/float64(report.TotalSpending)*10000) / 100
		}
		report.CategoryBreakdown = append(report.CategoryBreakdown, models.CategorySpend{
			Category:   category,
			Amount:     amount,
			Percentage: pct,
		})
	}
	sort.Slice(report.CategoryBreakdown, func(i, j int) bool {
		return report.CategoryBreakdown[i].Amount > report.CategoryBreakdown[j].Amount
	})

	return report, nil
}
