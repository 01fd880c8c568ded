package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/apperrors"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/utils/dates"
)

// Transactions ingests transaction batches and serves history queries.
type Transactions struct {
	store      TransactionStore
	users      UserStore
	discipline Recalculator
	dates      dates.Resolver
	log        *logrus.Logger
	now        func() time.Time
}

// NewTransactions initializes the transaction service.
func NewTransactions(store TransactionStore, users UserStore, discipline Recalculator, resolver dates.Resolver, log *logrus.Logger) *Transactions {
	return &Transactions{
		store:      store,
		users:      users,
		discipline: discipline,
		dates:      resolver,
		log:        log,
		now:        time.Now,
	}
}

func validateItem(in models.TransactionInput) error {
	if in.Amount <= 0 {
		return apperrors.Validation("amount must be positive")
	}
	if in.Type != models.TypeIncome && in.Type != models.TypeExpense {
		return apperrors.Validationf("unknown transaction type %q", in.Type)
	}
	if in.TransactionDate.IsZero() {
		return apperrors.Validation("transaction_date is required")
	}
	return nil
}

// Sync ingests a batch of transactions from one source. Items that
// carry a source identifier already seen for this user are idempotent
// no-ops counted as duplicates. A validation or persistence failure on
// one item is logged and does not abort its siblings. Every synced item
// is folded into the user's derived state immediately; one
// authoritative recalculation follows any batch that synced something.
func (s *Transactions) Sync(userID, source string, items []models.TransactionInput) (*models.SyncResult, error) {
	if !models.ValidSource(source) {
		return nil, apperrors.Validationf("unknown source %q", source)
	}
	if _, err := s.users.FindUserByID(userID); err != nil {
		return nil, err
	}

	result := &models.SyncResult{}
	for _, in := range items {
		t, created, err := s.createOne(userID, source, in)
		if err != nil {
			result.Failed++
			s.log.WithFields(logrus.Fields{
				"user_id":           userID,
				"source":            source,
				"source_identifier": in.SourceIdentifier,
			}).WithError(err).Warn("skipping transaction")
			continue
		}
		if !created {
			result.Duplicates++
			continue
		}
		result.Synced++

		if err := s.discipline.ApplyTransaction(userID, t); err != nil {
			s.log.WithField("user_id", userID).WithError(err).
				Warn("failed to apply transaction to derived state")
		}
	}

	if result.Synced > 0 {
		if err := s.discipline.Recalc(userID); err != nil {
			s.log.WithField("user_id", userID).WithError(err).
				Error("post-sync recalculation failed")
		}
	}
	return result, nil
}

// ManualEntry records a single user-entered transaction and triggers a
// recalculation. Unlike batch sync, validation failures are returned to
// the caller.
func (s *Transactions) ManualEntry(userID string, in models.TransactionInput) (*models.Transaction, error) {
	if _, err := s.users.FindUserByID(userID); err != nil {
		return nil, err
	}

	t, created, err := s.createOne(userID, models.SourceManual, in)
	if err != nil {
		return nil, err
	}
	if created {
		if err := s.discipline.Recalc(userID); err != nil {
			s.log.WithField("user_id", userID).WithError(err).
				Error("post-entry recalculation failed")
		}
	}
	return t, nil
}

func (s *Transactions) createOne(userID, source string, in models.TransactionInput) (*models.Transaction, bool, error) {
	if err := validateItem(in); err != nil {
		return nil, false, err
	}

	category := in.Category
	if category == "" {
		category = InferCategory(in.Description)
	}

	t := &models.Transaction{
		ID:               uuid.New().String(),
		UserID:           userID,
		Amount:           in.Amount,
		Type:             in.Type,
		Category:         category,
		Description:      in.Description,
		TransactionDate:  in.TransactionDate,
		Source:           source,
		SourceIdentifier: in.SourceIdentifier,
	}
	return s.store.CreateTransaction(t)
}

// History returns a user's transactions grouped by YYYY-MM-DD date.
func (s *Transactions) History(userID string, f models.TransactionFilter) (map[string][]*models.Transaction, error) {
	if _, err := s.users.FindUserByID(userID); err != nil {
		return nil, err
	}
	transactions, err := s.store.FindTransactionsByUserID(userID, f)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]*models.Transaction)
	for _, t := range transactions {
		day := t.TransactionDate.Format("2006-01-02")
		grouped[day] = append(grouped[day], t)
	}
	return grouped, nil
}

// TodaySummary returns today's totals and transactions in the user's
// timezone.
func (s *Transactions) TodaySummary(userID string) (*models.TodaySummary, error) {
	user, err := s.users.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	start, end := s.dates.Bounds(s.now(), user.Timezone)
	income, err := s.store.SumByType(userID, models.TypeIncome, start, end)
	if err != nil {
		return nil, err
	}
	spending, err := s.store.SumByType(userID, models.TypeExpense, start, end)
	if err != nil {
		return nil, err
	}
	transactions, err := s.store.FindTransactionsByUserID(userID, models.TransactionFilter{Start: start, End: end})
	if err != nil {
		return nil, err
	}

	return &models.TodaySummary{
		TotalIncome:      income,
		TotalSpending:    spending,
		Net:              income - spending,
		TransactionCount: len(transactions),
		Transactions:     transactions,
	}, nil
}
