// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Course values for dishes and votes
const (
	CourseFirst  = "first"
	CourseSecond = "second"
)

// Well-known settings keys
const (
	SettingMenusLocked = "menus_locked"
	SettingSurveyDate  = "survey_date"
)

// ValidCourse reports whether s names one of the two meal courses.
func ValidCourse(s string) bool {
	return s == CourseFirst || s == CourseSecond
}

// Request types

type LoginRequest struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

type CreateDishRequest struct {
	Name    string `json:"name"`
	Course  string `json:"course"`
	IsAdmin bool   `json:"isAdmin"`
}

// DeleteDishRequest selects dishes to delete: one dish by id, every dish
// of a course, or everything via ClearAll. Exactly one selector is used;
// ClearAll wins over Course, Course over DishID.
type DeleteDishRequest struct {
	DishID   int64  `json:"dishId"`
	Course   string `json:"course"`
	ClearAll bool   `json:"clearAll"`
	IsAdmin  bool   `json:"isAdmin"`
}

type CastVoteRequest struct {
	UserID int64  `json:"userId"`
	DishID int64  `json:"dishId"`
	Course string `json:"course"`
}

type DeleteUserRequest struct {
	UserID  int64 `json:"userId"`
	IsAdmin bool  `json:"isAdmin"`
}

// UpdateUserRequest uses pointers for the optional fields so "absent" and
// "zero value" stay distinguishable after JSON decoding.
type UpdateUserRequest struct {
	UserID     int64   `json:"userId"`
	IsAdmin    bool    `json:"isAdmin"`
	NewIsAdmin *bool   `json:"newIsAdmin,omitempty"`
	NewName    *string `json:"newName,omitempty"`
}

type SetSettingRequest struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	IsAdmin bool   `json:"isAdmin"`
}

// Response types

type SuccessResponse struct {
	Success bool `json:"success"`
}

type SetSettingResponse struct {
	Success bool   `json:"success"`
	Key     string `json:"key"`
	Value   string `json:"value"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Domain types

type User struct {
	ID      int64  `json:"id"`
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// UserWithVotes is a user row joined with per-course vote existence flags.
type UserWithVotes struct {
	User
	HasFirstVote  bool `json:"has_first_vote"`
	HasSecondVote bool `json:"has_second_vote"`
}

type Dish struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Course string `json:"course"`
}

type Vote struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	DishID int64  `json:"dish_id"`
	Course string `json:"course"`
}

// UserVote is the current selection for one user and course.
type UserVote struct {
	DishID int64  `json:"dish_id"`
	Course string `json:"course"`
}

// DishVoteCount is one leaderboard row. Course is omitted when the
// leaderboard was already filtered to a single course.
type DishVoteCount struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Course    string `json:"course,omitempty"`
	VoteCount int    `json:"vote_count"`
}

// Voter identifies a user who voted for a particular dish.
type Voter struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
