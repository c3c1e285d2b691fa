// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/obiady/mealvote/cliparse"
	"github.com/obiady/mealvote/middleware"
	"github.com/obiady/mealvote/models"
)

type UserHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

// ListUsers handles GET /users
// Every user with per-course voting status flags, ordered by name.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT u.id, u.phone, u.name, u.is_admin,
		       EXISTS(SELECT 1 FROM votes WHERE user_id = u.id AND course = 'first') AS has_first_vote,
		       EXISTS(SELECT 1 FROM votes WHERE user_id = u.id AND course = 'second') AS has_second_vote
		FROM users u
		ORDER BY u.name
	`)
	if err != nil {
		slog.Error("failed to query users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer rows.Close()

	users := []models.UserWithVotes{}
	for rows.Next() {
		var user models.UserWithVotes
		err := rows.Scan(&user.ID, &user.Phone, &user.Name, &user.IsAdmin,
			&user.HasFirstVote, &user.HasSecondVote)
		if err != nil {
			slog.Error("failed to scan user", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		users = append(users, user)
	}

	middleware.JSONResponse(w, http.StatusOK, users)
}

// DeleteUser handles DELETE /users
// The user's votes go first, then the user row, in one transaction.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Only admins can delete users
	if !req.IsAdmin {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only admins can delete users")
		return
	}

	if req.UserID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "User ID is required")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM votes WHERE user_id = $1`, req.UserID); err != nil {
		slog.Error("failed to delete user votes", "error", err, "user_id", req.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if _, err := tx.Exec(`DELETE FROM users WHERE id = $1`, req.UserID); err != nil {
		slog.Error("failed to delete user", "error", err, "user_id", req.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit user deletion", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("user deleted", "user_id", req.UserID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// UpdateUser handles PATCH /users
// Applies whichever optional fields were supplied: the admin flag, the
// display name, or both. A blank or whitespace-only new name is ignored.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Only admins can update user status
	if !req.IsAdmin {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only admins can update users")
		return
	}

	if req.UserID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "User ID is required")
		return
	}

	if req.NewIsAdmin != nil {
		_, err := h.db.Exec(`
			UPDATE users SET is_admin = $1 WHERE id = $2
		`, *req.NewIsAdmin, req.UserID)
		if err != nil {
			slog.Error("failed to update admin flag", "error", err, "user_id", req.UserID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		slog.Info("admin flag updated", "user_id", req.UserID, "is_admin", *req.NewIsAdmin)
	}

	if req.NewName != nil {
		if name := strings.TrimSpace(*req.NewName); name != "" {
			_, err := h.db.Exec(`
				UPDATE users SET name = $1 WHERE id = $2
			`, name, req.UserID)
			if err != nil {
				slog.Error("failed to rename user", "error", err, "user_id", req.UserID)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			slog.Info("user renamed", "user_id", req.UserID)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
