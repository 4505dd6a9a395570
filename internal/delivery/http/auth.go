package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/1230harry/commercial-db-api/internal/service"
)

const msgInvalidCredentials = "Invalid credentials"

// AuthService is the signup/login surface.
type AuthService interface {
	Signup(ctx context.Context, req service.SignupRequest) (int64, error)
	Login(ctx context.Context, username, password string) (*service.LoginResult, error)
}

var (
	signupFields = []string{"fullname", "email", "contact", "username", "password", "admin"}
	loginFields  = []string{"username", "password"}
)

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	values, err := decodeFields(w, r, signupFields)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	id, err := h.auth.Signup(r.Context(), service.SignupRequest{
		Fullname: optionalString(values["fullname"]),
		Email:    optionalString(values["email"]),
		Contact:  optionalString(values["contact"]),
		Username: optionalString(values["username"]),
		Password: optionalString(values["password"]),
		Admin:    truthy(values["admin"]),
	})
	if err != nil {
		writeStoreError(w, r, "Failed to create user", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created",
		"userId":  id,
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	values, err := decodeFields(w, r, loginFields)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	username, okUser := optionalString(values["username"]).Get()
	password, okPass := optionalString(values["password"]).Get()
	if !okUser || !okPass {
		writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	res, err := h.auth.Login(r.Context(), username, password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}
	if err != nil {
		writeStoreError(w, r, "Failed to log in", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFrom(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome to the Admin Dashboard",
		"user":    claims,
	})
}
