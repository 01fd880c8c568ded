package handler

import (
	"net/http"
	"time"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/apperrors"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/middleware"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
)

type syncRequest struct {
	Transactions []models.TransactionInput `json:"transactions"`
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request, source string) {
	var req syncRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	result, err := h.transactions.Sync(middleware.UserID(r), source, req.Transactions)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// SyncSMS ingests a batch parsed from Android SMS.
func (h *Handler) SyncSMS(w http.ResponseWriter, r *http.Request) {
	h.sync(w, r, models.SourceSMSAndroid)
}

// SyncAA ingests a batch from the iOS account aggregator.
func (h *Handler) SyncAA(w http.ResponseWriter, r *http.Request) {
	h.sync(w, r, models.SourceAAIOS)
}

// CreateTransaction records a manual entry.
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in models.TransactionInput
	if err := decodeBody(r, &in); err != nil {
		h.respondError(w, err)
		return
	}

	t, err := h.transactions.ManualEntry(middleware.UserID(r), in)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, t)
}

func parseDateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apperrors.Validationf("invalid %s date %q", name, raw)
	}
	return t, nil
}

// TransactionHistory returns filtered history grouped by date.
func (h *Handler) TransactionHistory(w http.ResponseWriter, r *http.Request) {
	start, err := parseDateParam(r, "start_date")
	if err != nil {
		h.respondError(w, err)
		return
	}
	end, err := parseDateParam(r, "end_date")
	if err != nil {
		h.respondError(w, err)
		return
	}
	if !end.IsZero() {
		end = end.AddDate(0, 0, 1) // inclusive end date
	}

	f := models.TransactionFilter{
		Type:     r.URL.Query().Get("type"),
		Category: r.URL.Query().Get("category"),
		Start:    start,
		End:      end,
	}
	grouped, err := h.transactions.History(middleware.UserID(r), f)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, grouped)
}

// TodaySummary returns today's totals in the user's timezone.
func (h *Handler) TodaySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.transactions.TodaySummary(middleware.UserID(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, summary)
}
