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

type DishHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewDishHandler(db *sql.DB, cfg cliparse.Config) *DishHandler {
	return &DishHandler{db: db, cfg: cfg}
}

// ListDishes handles GET /dishes
// An invalid course query value is ignored and the full list is returned.
func (h *DishHandler) ListDishes(w http.ResponseWriter, r *http.Request) {
	course := r.URL.Query().Get("course")

	var rows *sql.Rows
	var err error

	if models.ValidCourse(course) {
		rows, err = h.db.Query(`
			SELECT id, name, course FROM dishes
			WHERE course = $1
			ORDER BY name
		`, course)
	} else {
		rows, err = h.db.Query(`
			SELECT id, name, course FROM dishes
			ORDER BY course, name
		`)
	}

	if err != nil {
		slog.Error("failed to query dishes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer rows.Close()

	dishes := []models.Dish{}
	for rows.Next() {
		var dish models.Dish
		if err := rows.Scan(&dish.ID, &dish.Name, &dish.Course); err != nil {
			slog.Error("failed to scan dish", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		dishes = append(dishes, dish)
	}

	middleware.JSONResponse(w, http.StatusOK, dishes)
}

// CreateDish handles POST /dishes
func (h *DishHandler) CreateDish(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDishRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Only admins can add dishes
	if !req.IsAdmin {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only admins can add dishes")
		return
	}

	if req.Name == "" || !models.ValidCourse(req.Course) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Name and valid course are required")
		return
	}

	var dish models.Dish
	err := h.db.QueryRow(`
		INSERT INTO dishes (name, course)
		VALUES ($1, $2)
		RETURNING id, name, course
	`, req.Name, req.Course).Scan(&dish.ID, &dish.Name, &dish.Course)

	if err != nil {
		slog.Error("failed to insert dish", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("dish created", "dish_id", dish.ID, "course", dish.Course)

	middleware.JSONResponse(w, http.StatusCreated, dish)
}

// DeleteDishes handles DELETE /dishes
// Three selectors, checked in order: clearAll wipes everything, course
// clears one course, dishId removes a single dish. Votes referencing the
// removed dishes go first; both deletes share one transaction.
func (h *DishHandler) DeleteDishes(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteDishRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Only admins can delete dishes
	if !req.IsAdmin {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only admins can delete dishes")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer tx.Rollback()

	switch {
	case req.ClearAll:
		if _, err := tx.Exec(`DELETE FROM votes`); err != nil {
			slog.Error("failed to clear votes", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if _, err := tx.Exec(`DELETE FROM dishes`); err != nil {
			slog.Error("failed to clear dishes", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}

	case models.ValidCourse(req.Course):
		if _, err := tx.Exec(`
			DELETE FROM votes
			WHERE dish_id IN (SELECT id FROM dishes WHERE course = $1)
		`, req.Course); err != nil {
			slog.Error("failed to delete votes for course", "error", err, "course", req.Course)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if _, err := tx.Exec(`DELETE FROM dishes WHERE course = $1`, req.Course); err != nil {
			slog.Error("failed to delete dishes for course", "error", err, "course", req.Course)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}

	case req.DishID != 0:
		if _, err := tx.Exec(`DELETE FROM votes WHERE dish_id = $1`, req.DishID); err != nil {
			slog.Error("failed to delete votes for dish", "error", err, "dish_id", req.DishID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if _, err := tx.Exec(`DELETE FROM dishes WHERE id = $1`, req.DishID); err != nil {
			slog.Error("failed to delete dish", "error", err, "dish_id", req.DishID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}

	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "Dish ID, course, or clearAll is required")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit dish deletion", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("dishes deleted", "dish_id", req.DishID, "course", req.Course, "clear_all", req.ClearAll)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
