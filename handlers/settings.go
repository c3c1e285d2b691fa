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

type SettingsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSettingsHandler(db *sql.DB, cfg cliparse.Config) *SettingsHandler {
	return &SettingsHandler{db: db, cfg: cfg}
}

// GetSettings handles GET /settings
// Returns the full settings table as a flat key->value map.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		slog.Error("failed to query settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer rows.Close()

	settings := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			slog.Error("failed to scan setting", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		settings[key] = value
	}

	middleware.JSONResponse(w, http.StatusOK, settings)
}

// SetSetting handles POST /settings
func (h *SettingsHandler) SetSetting(w http.ResponseWriter, r *http.Request) {
	var req models.SetSettingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Only admins can update settings
	if !req.IsAdmin {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only admins can update settings")
		return
	}

	if req.Key == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Setting key is required")
		return
	}

	// Update or insert setting
	_, err := h.db.Exec(`
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, req.Key, req.Value)

	if err != nil {
		slog.Error("failed to upsert setting", "error", err, "key", req.Key)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("setting updated", "key", req.Key)

	middleware.JSONResponse(w, http.StatusOK, models.SetSettingResponse{
		Success: true,
		Key:     req.Key,
		Value:   req.Value,
	})
}
