package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/middleware"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
)

// CreateMission handles mission creation
func (h *Handler) CreateMission(w http.ResponseWriter, r *http.Request) {
	var in models.MissionInput
	if err := decodeBody(r, &in); err != nil {
		h.respondError(w, err)
		return
	}

	mission, err := h.missions.Create(middleware.UserID(r), in)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, mission)
}

// ListMissions returns the user's missions grouped by priority.
func (h *Handler) ListMissions(w http.ResponseWriter, r *http.Request) {
	f := models.MissionFilter{
		Status:   r.URL.Query().Get("status"),
		Priority: r.URL.Query().Get("priority"),
	}
	grouped, err := h.missions.List(middleware.UserID(r), f)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, grouped)
}

// GetMission returns one mission.
func (h *Handler) GetMission(w http.ResponseWriter, r *http.Request) {
	mission, err := h.missions.Get(middleware.UserID(r), mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, mission)
}

// UpdateMission applies partial mission changes.
func (h *Handler) UpdateMission(w http.ResponseWriter, r *http.Request) {
	var upd models.MissionUpdate
	if err := decodeBody(r, &upd); err != nil {
		h.respondError(w, err)
		return
	}

	mission, err := h.missions.Update(middleware.UserID(r), mux.Vars(r)["id"], upd)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, mission)
}

// DeleteMission removes a mission.
func (h *Handler) DeleteMission(w http.ResponseWriter, r *http.Request) {
	if err := h.missions.Delete(middleware.UserID(r), mux.Vars(r)["id"]); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "mission deleted"})
}

// ArchiveMission archives a mission.
func (h *Handler) ArchiveMission(w http.ResponseWriter, r *http.Request) {
	mission, err := h.missions.Archive(middleware.UserID(r), mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, mission)
}

type reorderRequest struct {
	Priority string   `json:"priority"`
	Order    []string `json:"order"`
}

// ReorderMissions rewrites the ordering of one priority tier.
func (h *Handler) ReorderMissions(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	if err := h.missions.Reorder(middleware.UserID(r), req.Priority, req.Order); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "missions reordered"})
}

type allocateRequest struct {
	Amount int64 `json:"amount"`
}

// AllocateSavings distributes a savings amount across active missions.
func (h *Handler) AllocateSavings(w http.ResponseWriter, r *http.Request) {
	var req allocateRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	report, err := h.missions.Allocate(middleware.UserID(r), req.Amount)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, report)
}
