package handler

import (
	"net/http"
	"strconv"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/middleware"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
)

// Profile returns the authenticated user's record.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Profile(middleware.UserID(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

// UpdateProfile applies partial profile changes.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var upd models.ProfileUpdate
	if err := decodeBody(r, &upd); err != nil {
		h.respondError(w, err)
		return
	}

	user, err := h.users.UpdateProfile(middleware.UserID(r), upd)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

// PrivacySettings returns the privacy slice of the profile.
func (h *Handler) PrivacySettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.users.Privacy(middleware.UserID(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, settings)
}

// AuditTrail returns the user's recent audit entries.
func (h *Handler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.users.AuditTrail(middleware.UserID(r), limit)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, entries)
}

type eraseRequest struct {
	Password string `json:"password"`
}

// EraseAccount deletes the user's data after re-verifying the password.
func (h *Handler) EraseAccount(w http.ResponseWriter, r *http.Request) {
	var req eraseRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	userID := middleware.UserID(r)
	if err := h.auth.VerifyPassword(userID, req.Password); err != nil {
		h.respondError(w, err)
		return
	}

	removed, err := h.users.Erase(userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{
		"message":              "user data deleted",
		"transactions_removed": removed,
	})
}

// ExportAccount streams the user's full data, as XML when requested
// with ?format=xml and JSON otherwise.
func (h *Handler) ExportAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	if r.URL.Query().Get("format") == "xml" {
		out, err := h.exporter.XML(userID)
		if err != nil {
			h.respondError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusOK)
		w.Write(out)
		return
	}

	account, err := h.exporter.JSON(userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, account)
}
