package api

import (
	"errors"
	"net/http"
	"strings"

	"hospitalinventory/m/domain"
	"hospitalinventory/m/internal/auth"
)

type signupRequest struct {
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	DateOfBirth *domain.Date `json:"dateOfBirth"`
	Email       string       `json:"email"`
	Position    string       `json:"position"`
	IDNumber    string       `json:"idNumber"`
	PhoneNumber string       `json:"phoneNumber"`
	Password    string       `json:"password"`
}

func (req signupRequest) complete() bool {
	for _, v := range []string{req.FirstName, req.LastName, req.Email, req.Position, req.IDNumber, req.PhoneNumber, req.Password} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return req.DateOfBirth != nil
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if !req.complete() {
		respondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	user := domain.User{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		DateOfBirth: *req.DateOfBirth,
		Email:       req.Email,
		Position:    strings.TrimSpace(req.Position),
		IDNumber:    req.IDNumber,
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
	}
	created, err := h.auth.Signup(r.Context(), user, req.Password)
	switch {
	case errors.Is(err, auth.ErrEmailExists):
		respondMessage(w, http.StatusConflict, "Email already exists!")
		return
	case errors.Is(err, auth.ErrIDNumberExists):
		respondMessage(w, http.StatusConflict, "ID Number already exists!")
		return
	case errors.Is(err, auth.ErrPasswordTooLong):
		respondMessage(w, http.StatusBadRequest, "Password must be at most 72 bytes")
		return
	case err != nil:
		h.serverError(w, r, "unable to complete registration", err)
		return
	}

	h.log.Info(r.Context(), "user registered", "user_id", created.ID)
	respondMessage(w, http.StatusCreated, "User registered successfully!")
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, loginResponse{Status: "error", Message: err.Error()})
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		respondJSON(w, http.StatusBadRequest, loginResponse{Status: "error", Message: "Missing required fields"})
		return
	}

	_, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		respondJSON(w, http.StatusUnauthorized, loginResponse{Status: "error", Message: "Invalid username or password!"})
		return
	}
	if err != nil {
		h.log.Error(r.Context(), "login failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, loginResponse{Status: "error", Message: "unable to verify credentials"})
		return
	}
	respondJSON(w, http.StatusOK, loginResponse{Status: "success", Message: "Login successful!"})
}
