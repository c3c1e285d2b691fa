// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/obiady/mealvote/cliparse"
	"github.com/obiady/mealvote/handlers"
	"github.com/obiady/mealvote/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	dishHandler := handlers.NewDishHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)
	settingsHandler := handlers.NewSettingsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Login
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /auth/setup-login", middleware.WithLogging(authHandler.SetupLogin))

	// Dish management
	mux.HandleFunc("GET /dishes", middleware.WithLogging(dishHandler.ListDishes))
	mux.HandleFunc("POST /dishes", middleware.WithLogging(dishHandler.CreateDish))
	mux.HandleFunc("DELETE /dishes", middleware.WithLogging(dishHandler.DeleteDishes))

	// Voting
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.CastVote))
	mux.HandleFunc("GET /votes", middleware.WithLogging(voteHandler.GetVoteCounts))
	mux.HandleFunc("GET /user-vote", middleware.WithLogging(voteHandler.GetUserVote))
	mux.HandleFunc("GET /dish-voters", middleware.WithLogging(voteHandler.GetDishVoters))

	// User administration
	mux.HandleFunc("GET /users", middleware.WithLogging(userHandler.ListUsers))
	mux.HandleFunc("DELETE /users", middleware.WithLogging(userHandler.DeleteUser))
	mux.HandleFunc("PATCH /users", middleware.WithLogging(userHandler.UpdateUser))

	// Settings
	mux.HandleFunc("GET /settings", middleware.WithLogging(settingsHandler.GetSettings))
	mux.HandleFunc("POST /settings", middleware.WithLogging(settingsHandler.SetSetting))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mealvote API v1"))
	})

	return mux
}
