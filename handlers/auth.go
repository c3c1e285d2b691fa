// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/obiady/mealvote/cliparse"
	"github.com/obiady/mealvote/middleware"
	"github.com/obiady/mealvote/models"
)

type AuthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// Login handles POST /auth/login
// Creates the user on first login; later logins return the stored row
// untouched, so the name supplied here never overwrites an existing one.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Phone == "" || req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Phone and name are required")
		return
	}

	// Insert user if doesn't exist
	_, err := h.db.Exec(`
		INSERT INTO users (phone, name)
		VALUES ($1, $2)
		ON CONFLICT (phone) DO NOTHING
	`, req.Phone, req.Name)

	if err != nil {
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.getUserByPhone(req.Phone)
	if err != nil {
		slog.Error("failed to query user after login", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("user logged in", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, user)
}

// SetupLogin handles POST /auth/setup-login
// Like Login, but a brand-new user signing up with the bootstrap phone
// receives the admin flag. Existing users are returned as-is.
func (h *AuthHandler) SetupLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Phone == "" || req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Phone and name are required")
		return
	}

	// Check if user already exists
	user, err := h.getUserByPhone(req.Phone)
	if err == nil {
		middleware.JSONResponse(w, http.StatusOK, user)
		return
	}
	if err != sql.ErrNoRows {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// New user - the bootstrap phone becomes an admin
	isAdmin := req.Phone == h.cfg.AdminPhone

	_, err = h.db.Exec(`
		INSERT INTO users (phone, name, is_admin)
		VALUES ($1, $2, $3)
	`, req.Phone, req.Name, isAdmin)

	if err != nil {
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err = h.getUserByPhone(req.Phone)
	if err != nil {
		slog.Error("failed to query user after setup login", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("user created", "user_id", user.ID, "is_admin", user.IsAdmin)

	middleware.JSONResponse(w, http.StatusOK, user)
}

func (h *AuthHandler) getUserByPhone(phone string) (models.User, error) {
	var user models.User
	err := h.db.QueryRow(`
		SELECT id, phone, name, is_admin FROM users WHERE phone = $1
	`, phone).Scan(&user.ID, &user.Phone, &user.Name, &user.IsAdmin)
	return user, err
}
