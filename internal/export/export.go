// Package export renders a user's complete data for portability.
package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
)

// UserSource provides the user row for an export.
type UserSource interface {
	FindUserByID(id string) (*models.User, error)
}

// MissionSource provides the missions for an export.
type MissionSource interface {
	FindMissionsByUserID(userID string, f models.MissionFilter) ([]*models.Mission, error)
}

// TransactionSource provides the transactions for an export.
type TransactionSource interface {
	FindTransactionsByUserID(userID string, f models.TransactionFilter) ([]*models.Transaction, error)
}

// Account is the full JSON export payload.
type Account struct {
	ExportedAt   time.Time             `json:"exported_at"`
	User         *models.User          `json:"user"`
	Missions     []*models.Mission     `json:"missions"`
	Transactions []*models.Transaction `json:"transactions"`
}

// Exporter assembles account exports in JSON and XML form.
type Exporter struct {
	users        UserSource
	missions     MissionSource
	transactions TransactionSource
	now          func() time.Time
}

// NewExporter initializes an exporter.
func NewExporter(users UserSource, missions MissionSource, transactions TransactionSource) *Exporter {
	return &Exporter{users: users, missions: missions, transactions: transactions, now: time.Now}
}

func (e *Exporter) collect(userID string) (*Account, error) {
	user, err := e.users.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	missions, err := e.missions.FindMissionsByUserID(userID, models.MissionFilter{})
	if err != nil {
		return nil, err
	}
	transactions, err := e.transactions.FindTransactionsByUserID(userID, models.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	return &Account{
		ExportedAt:   e.now(),
		User:         user,
		Missions:     missions,
		Transactions: transactions,
	}, nil
}

// JSON returns the account export as a serializable struct.
func (e *Exporter) JSON(userID string) (*Account, error) {
	return e.collect(userID)
}

// XML renders the account export as an XML document.
func (e *Exporter) XML(userID string) ([]byte, error) {
	account, err := e.collect(userID)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("account")
	root.CreateAttr("exported_at", account.ExportedAt.Format(time.RFC3339))

	userEl := root.CreateElement("user")
	userEl.CreateAttr("id", account.User.ID)
	userEl.CreateElement("email").SetText(account.User.Email)
	userEl.CreateElement("timezone").SetText(account.User.Timezone)
	userEl.CreateElement("average_monthly_income").SetText(formatAmount(account.User.AverageMonthlyIncome))
	userEl.CreateElement("daily_expenses").SetText(formatAmount(account.User.DailyExpenses))
	userEl.CreateElement("todays_saving_target").SetText(formatAmount(account.User.TodaysSavingTarget))
	userEl.CreateElement("total_available").SetText(formatAmount(account.User.TotalAvailable))

	missionsEl := root.CreateElement("missions")
	for _, m := range account.Missions {
		el := missionsEl.CreateElement("mission")
		el.CreateAttr("id", m.ID)
		el.CreateAttr("status", m.Status)
		el.CreateElement("name").SetText(m.Name)
		el.CreateElement("priority").SetText(m.Priority)
		el.CreateElement("target_amount").SetText(formatAmount(m.TargetAmount))
		el.CreateElement("duration_days").SetText(strconv.Itoa(m.DurationDays))
		el.CreateElement("daily_target").SetText(formatAmount(m.DailyTarget))
		el.CreateElement("amount_saved").SetText(formatAmount(m.AmountSaved))
	}

	txEl := root.CreateElement("transactions")
	for _, t := range account.Transactions {
		el := txEl.CreateElement("transaction")
		el.CreateAttr("id", t.ID)
		el.CreateAttr("source", t.Source)
		el.CreateElement("amount").SetText(formatAmount(t.Amount))
		el.CreateElement("type").SetText(t.Type)
		if t.Category != "" {
			el.CreateElement("category").SetText(t.Category)
		}
		el.CreateElement("date").SetText(t.TransactionDate.Format(time.RFC3339))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}
	return out, nil
}

func formatAmount(v int64) string {
	return strconv.FormatInt(v, 10)
}
