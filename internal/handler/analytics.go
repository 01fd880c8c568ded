package handler

import (
	"net/http"
	"time"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/middleware"
)

// Analytics returns range statistics. Defaults to the last 30 days.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
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
	if end.IsZero() {
		end = time.Now().Truncate(24 * time.Hour)
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -29)
	}

	report, err := h.analytics.RangeStats(middleware.UserID(r), start, end)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, report)
}

// DailySummary returns the notification payloads for the current day.
func (h *Handler) DailySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.notifications.DailySummary(middleware.UserID(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, summary)
}

// TriggerSweep runs the discipline sweep on demand, for operators and
// external schedulers.
func (h *Handler) TriggerSweep(w http.ResponseWriter, r *http.Request) {
	successes, total := h.sweep.Run()
	h.respondJSON(w, http.StatusOK, map[string]int{
		"successes": successes,
		"total":     total,
	})
}
