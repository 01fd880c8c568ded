package handler

import (
	"net/http"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
)

type signUpRequest struct {
	Email    string                 `json:"email"`
	Password string                 `json:"password"`
	models.OnboardingInput
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// SignUp handles user registration
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	user, token, err := h.auth.SignUp(req.Email, req.Password, req.OnboardingInput)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	user, token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}
