// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Mealvote API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AuthHandler: login and setup-login (user upsert by phone)
  - DishHandler: dish listing and admin dish management
  - VoteHandler: casting votes, leaderboard counts, per-user votes, voters
  - UserHandler: user administration with voting-status flags
  - SettingsHandler: the key/value settings store

Handlers are created via constructor functions that accept *sql.DB and Config:

	dishHandler := handlers.NewDishHandler(db, cfg)

# Voting Flow

	POST /auth/login        → Login (create on first call, then stable)
	GET  /dishes?course=    → ListDishes
	POST /votes             → CastVote (upsert per user+course)
	GET  /user-vote         → GetUserVote (null until a vote exists)
	GET  /votes?course=     → GetVoteCounts (leaderboard)

# Admin Operations

	POST   /dishes    → CreateDish
	DELETE /dishes    → DeleteDishes (dishId | course | clearAll)
	GET    /users     → ListUsers
	DELETE /users     → DeleteUser
	PATCH  /users     → UpdateUser (newIsAdmin, newName)
	POST   /settings  → SetSetting

Mutating operations require isAdmin=true in the request body. The flag is
client-supplied and trusted as-is; there is no server-side session, so this
is not a security boundary.

# Cascades

Deleting a dish or user deletes its dependent votes first, inside a single
transaction. The schema's foreign keys are declarative only.
*/
package handlers
