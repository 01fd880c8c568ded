package export

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/service/mocks"
)

func newTestExporter(users *mocks.MockUserStore, missions *mocks.MockMissionStore, transactions *mocks.MockTransactionStore) *Exporter {
	e := NewExporter(users, missions, transactions)
	e.now = func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }
	return e
}

func exportFixtures() (*models.User, []*models.Mission, []*models.Transaction) {
	user := &models.User{
		ID:                   "u1",
		Email:                "u1@example.com",
		Timezone:             "Asia/Kolkata",
		AverageMonthlyIncome: 30000,
		DailyExpenses:        20000,
		TodaysSavingTarget:   50,
		TotalAvailable:       950,
	}
	missions := []*models.Mission{{
		ID:           "m1",
		UserID:       "u1",
		Name:         "Emergency fund",
		Priority:     models.PriorityNonNegotiable,
		TargetAmount: 100000,
		DurationDays: 100,
		DailyTarget:  1000,
		AmountSaved:  2500,
		Status:       models.MissionActive,
	}}
	transactions := []*models.Transaction{{
		ID:              "t1",
		UserID:          "u1",
		Amount:          120,
		Type:            models.TypeExpense,
		Category:        "food",
		Source:          models.SourceManual,
		TransactionDate: time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC),
	}}
	return user, missions, transactions
}

func TestJSON_CollectsAccount(t *testing.T) {
	users := new(mocks.MockUserStore)
	missions := new(mocks.MockMissionStore)
	transactions := new(mocks.MockTransactionStore)
	e := newTestExporter(users, missions, transactions)

	user, ms, txs := exportFixtures()
	users.On("FindUserByID", "u1").Return(user, nil)
	missions.On("FindMissionsByUserID", "u1", models.MissionFilter{}).Return(ms, nil)
	transactions.On("FindTransactionsByUserID", "u1", models.TransactionFilter{}).Return(txs, nil)

	account, err := e.JSON("u1")
	require.NoError(t, err)

	assert.Equal(t, "u1", account.User.ID)
	assert.Len(t, account.Missions, 1)
	assert.Len(t, account.Transactions, 1)
	assert.Equal(t, time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), account.ExportedAt)
}

func TestXML_RendersAccountDocument(t *testing.T) {
	users := new(mocks.MockUserStore)
	missions := new(mocks.MockMissionStore)
	transactions := new(mocks.MockTransactionStore)
	e := newTestExporter(users, missions, transactions)

	user, ms, txs := exportFixtures()
	users.On("FindUserByID", "u1").Return(user, nil)
	missions.On("FindMissionsByUserID", "u1", models.MissionFilter{}).Return(ms, nil)
	transactions.On("FindTransactionsByUserID", "u1", models.TransactionFilter{}).Return(txs, nil)

	out, err := e.XML("u1")
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("account")
	require.NotNil(t, root)

	userEl := root.SelectElement("user")
	require.NotNil(t, userEl)
	assert.Equal(t, "u1", userEl.SelectAttrValue("id", ""))
	assert.Equal(t, "u1@example.com", userEl.SelectElement("email").Text())
	assert.Equal(t, "50", userEl.SelectElement("todays_saving_target").Text())

	missionEls := root.SelectElement("missions").SelectElements("mission")
	require.Len(t, missionEls, 1)
	assert.Equal(t, "m1", missionEls[0].SelectAttrValue("id", ""))
	assert.Equal(t, "2500", missionEls[0].SelectElement("amount_saved").Text())

	txEls := root.SelectElement("transactions").SelectElements("transaction")
	require.Len(t, txEls, 1)
	assert.Equal(t, "120", txEls[0].SelectElement("amount").Text())
	assert.Equal(t, "food", txEls[0].SelectElement("category").Text())
}

func TestXML_UserLookupFailureSurfaced(t *testing.T) {
	users := new(mocks.MockUserStore)
	e := newTestExporter(users, new(mocks.MockMissionStore), new(mocks.MockTransactionStore))

	users.On("FindUserByID", "ghost").Return(nil, assert.AnError)

	_, err := e.XML("ghost")
	require.Error(t, err)
}
