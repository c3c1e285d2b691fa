// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: phone, name
  - CreateDishRequest: name, course, isAdmin
  - DeleteDishRequest: dishId | course | clearAll, isAdmin
  - CastVoteRequest: userId, dishId, course
  - DeleteUserRequest: userId, isAdmin
  - UpdateUserRequest: userId, isAdmin, newIsAdmin?, newName?
  - SetSettingRequest: key, value, isAdmin

Mutating requests carry the caller's isAdmin flag; handlers reject them
with 403 when it is false. There is no server-side session, so the flag
is trusted as supplied.

# Response Types

  - SuccessResponse: success
  - SetSettingResponse: success, key, value
  - ErrorResponse: error

# Domain Types

  - User: user row as returned by the login endpoints
  - UserWithVotes: user plus has_first_vote / has_second_vote flags
  - Dish: a menu entry for one course
  - Vote: a user's stored selection for one course
  - UserVote: the dish_id/course pair behind GET /user-vote
  - DishVoteCount: one leaderboard row
  - Voter: a user listed under GET /dish-voters

# Constants

Courses:

	CourseFirst  = "first"
	CourseSecond = "second"

Settings keys:

	SettingMenusLocked = "menus_locked"
	SettingSurveyDate  = "survey_date"
*/
package models
