package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/apperrors"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/service/mocks"
)

func TestRangeStats(t *testing.T) {
	transactions := new(mocks.MockTransactionStore)
	users := new(mocks.MockUserStore)
	s := NewAnalytics(transactions, users)

	u := activeUser("u1")
	u.EnableAnalytics = true
	users.On("FindUserByID", "u1").Return(u, nil)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	transactions.On("FindTransactionsByUserID", "u1", models.TransactionFilter{
		Start: start,
		End:   end.AddDate(0, 0, 1),
	}).Return([]*models.Transaction{
		{Type: models.TypeIncome, Amount: 10000},
		{Type: models.TypeExpense, Amount: 3000, Category: "food"},
		{Type: models.TypeExpense, Amount: 1000, Category: "transport"},
		{Type: models.TypeExpense, Amount: 1000}, // uncategorized
	}, nil)

	report, err := s.RangeStats("u1", start, end)
	require.NoError(t, err)

	assert.Equal(t, int64(10000), report.TotalIncome)
	assert.Equal(t, int64(5000), report.TotalSpending)
	assert.Equal(t, int64(5000), report.NetSavings)

	// Ten inclusive days.
	assert.Equal(t, int64(500), report.AverageDailySpending)
	assert.Equal(t, int64(1000), report.AverageDailyIncome)

	require.Len(t, report.CategoryBreakdown, 2)
	assert.Equal(t, "food", report.CategoryBreakdown[0].Category)
	assert.Equal(t, int64(3000), report.CategoryBreakdown[0].Amount)
	assert.Equal(t, 60.0, report.CategoryBreakdown[0].Percentage)
	assert.Equal(t, "transport", report.CategoryBreakdown[1].Category)
	assert.Equal(t, 20.0, report.CategoryBreakdown[1].Percentage)
}

func TestRangeStats_InvertedRange(t *testing.T) {
	s := NewAnalytics(new(mocks.MockTransactionStore), new(mocks.MockUserStore))

	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	_, err := s.RangeStats("u1", start, start.AddDate(0, 0, -1))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestRangeStats_AnalyticsDisabled(t *testing.T) {
	transactions := new(mocks.MockTransactionStore)
	users := new(mocks.MockUserStore)
	s := NewAnalytics(transactions, users)

	u := activeUser("u1")
	u.EnableAnalytics = false
	users.On("FindUserByID", "u1").Return(u, nil)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := s.RangeStats("u1", start, start)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
	transactions.AssertNotCalled(t, "FindTransactionsByUserID", "u1")
}
