// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/obiady/mealvote/cliparse"
	"github.com/obiady/mealvote/middleware"
	"github.com/obiady/mealvote/models"
)

type VoteHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg}
}

// CastVote handles POST /votes
// Upserts into the caller's (user, course) slot; voting again for the same
// course replaces the earlier selection. The menus_locked setting is not
// enforced here - the lock is a client-side courtesy.
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserID == 0 || req.DishID == 0 || req.Course == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userId, dishId, and course are required")
		return
	}

	if !models.ValidCourse(req.Course) {
		middleware.ErrorResponse(w, http.StatusBadRequest, `course must be either "first" or "second"`)
		return
	}

	// The dish must exist and belong to the claimed course
	var dishID int64
	err := h.db.QueryRow(`
		SELECT id FROM dishes WHERE id = $1 AND course = $2
	`, req.DishID, req.Course).Scan(&dishID)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Dish not found")
		return
	}
	if err != nil {
		slog.Error("failed to query dish", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Insert or update vote
	_, err = h.db.Exec(`
		INSERT INTO votes (user_id, dish_id, course)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, course) DO UPDATE SET
			dish_id = excluded.dish_id,
			created_at = CURRENT_TIMESTAMP
	`, req.UserID, req.DishID, req.Course)

	if err != nil {
		slog.Error("failed to upsert vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var vote models.Vote
	err = h.db.QueryRow(`
		SELECT id, user_id, dish_id, course FROM votes
		WHERE user_id = $1 AND course = $2
	`, req.UserID, req.Course).Scan(&vote.ID, &vote.UserID, &vote.DishID, &vote.Course)

	if err != nil {
		slog.Error("failed to query vote after upsert", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("vote cast", "user_id", vote.UserID, "dish_id", vote.DishID, "course", vote.Course)

	middleware.JSONResponse(w, http.StatusOK, vote)
}

// GetVoteCounts handles GET /votes
// The leaderboard: every dish with its aggregated vote count, most votes
// first, ties broken alphabetically by name. Zero-vote dishes are included.
func (h *VoteHandler) GetVoteCounts(w http.ResponseWriter, r *http.Request) {
	course := r.URL.Query().Get("course")

	if models.ValidCourse(course) {
		rows, err := h.db.Query(`
			SELECT d.id, d.name, COUNT(v.id) AS vote_count
			FROM dishes d
			LEFT JOIN votes v ON d.id = v.dish_id
			WHERE d.course = $1
			GROUP BY d.id, d.name
			ORDER BY vote_count DESC, d.name
		`, course)
		if err != nil {
			slog.Error("failed to query vote counts", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		defer rows.Close()

		counts := []models.DishVoteCount{}
		for rows.Next() {
			var row models.DishVoteCount
			if err := rows.Scan(&row.ID, &row.Name, &row.VoteCount); err != nil {
				slog.Error("failed to scan vote count", "error", err)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			counts = append(counts, row)
		}

		middleware.JSONResponse(w, http.StatusOK, counts)
		return
	}

	rows, err := h.db.Query(`
		SELECT d.id, d.name, d.course, COUNT(v.id) AS vote_count
		FROM dishes d
		LEFT JOIN votes v ON d.id = v.dish_id
		GROUP BY d.id, d.name, d.course
		ORDER BY d.course, vote_count DESC, d.name
	`)
	if err != nil {
		slog.Error("failed to query vote counts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer rows.Close()

	counts := []models.DishVoteCount{}
	for rows.Next() {
		var row models.DishVoteCount
		if err := rows.Scan(&row.ID, &row.Name, &row.Course, &row.VoteCount); err != nil {
			slog.Error("failed to scan vote count", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		counts = append(counts, row)
	}

	middleware.JSONResponse(w, http.StatusOK, counts)
}

// GetUserVote handles GET /user-vote
// Returns the caller's current selection for one course, or JSON null when
// no vote has been cast yet.
func (h *VoteHandler) GetUserVote(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	userIDStr := query.Get("userId")
	course := query.Get("course")

	if userIDStr == "" || course == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userId and course are required")
		return
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userId must be a number")
		return
	}

	if !models.ValidCourse(course) {
		middleware.ErrorResponse(w, http.StatusBadRequest, `course must be either "first" or "second"`)
		return
	}

	var vote models.UserVote
	err = h.db.QueryRow(`
		SELECT dish_id, course FROM votes
		WHERE user_id = $1 AND course = $2
	`, userID, course).Scan(&vote.DishID, &vote.Course)

	if err == sql.ErrNoRows {
		middleware.JSONResponse(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		slog.Error("failed to query user vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, vote)
}

// GetDishVoters handles GET /dish-voters
// Lists the users behind one dish's votes, ordered by name.
func (h *VoteHandler) GetDishVoters(w http.ResponseWriter, r *http.Request) {
	dishIDStr := r.URL.Query().Get("dishId")
	if dishIDStr == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "dishId is required")
		return
	}

	dishID, err := strconv.ParseInt(dishIDStr, 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "dishId must be a number")
		return
	}

	rows, err := h.db.Query(`
		SELECT u.id, u.name, u.phone
		FROM votes v
		JOIN users u ON v.user_id = u.id
		WHERE v.dish_id = $1
		ORDER BY u.name
	`, dishID)
	if err != nil {
		slog.Error("failed to query dish voters", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer rows.Close()

	voters := []models.Voter{}
	for rows.Next() {
		var voter models.Voter
		if err := rows.Scan(&voter.ID, &voter.Name, &voter.Phone); err != nil {
			slog.Error("failed to scan voter", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		voters = append(voters, voter)
	}

	middleware.JSONResponse(w, http.StatusOK, voters)
}
