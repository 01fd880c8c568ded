// Package handler exposes the service layer over HTTP.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/apperrors"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/export"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/jobs"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/service"
)

// Handler bundles the HTTP endpoints.
type Handler struct {
	auth          *service.Auth
	users         *service.Users
	missions      *service.Missions
	transactions  *service.Transactions
	analytics     *service.Analytics
	notifications *service.Notifications
	exporter      *export.Exporter
	sweep         *jobs.DisciplineSweep
	log           *logrus.Logger
}

// NewHandler initializes the handler set.
func NewHandler(auth *service.Auth, users *service.Users, missions *service.Missions,
	transactions *service.Transactions, analytics *service.Analytics,
	notifications *service.Notifications, exporter *export.Exporter,
	sweep *jobs.DisciplineSweep, log *logrus.Logger) *Handler {
	return &Handler{
		auth:          auth,
		users:         users,
		missions:      missions,
		transactions:  transactions,
		analytics:     analytics,
		notifications: notifications,
		exporter:      exporter,
		sweep:         sweep,
		log:           log,
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			h.log.WithError(err).Error("failed to encode response")
		}
	}
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		h.log.WithError(err).Error("request failed")
		h.respondJSON(w, status, map[string]string{"error": "internal error"})
		return
	}
	h.respondJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.Validation("invalid request body")
	}
	return nil
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
