// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/obiady/mealvote/models"
)

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mealvote: %s (status %d)", e.Message, e.StatusCode)
}

// Client is a typed client for the Mealvote HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Login returns the user for phone, creating one on first call. The stored
// name is never overwritten by repeat logins.
func (c *Client) Login(ctx context.Context, phone, name string) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/auth/login", models.LoginRequest{Phone: phone, Name: name}, &user)
	return user, err
}

// SetupLogin is Login through the bootstrap endpoint: a brand-new user with
// the reserved admin phone comes back with is_admin set.
func (c *Client) SetupLogin(ctx context.Context, phone, name string) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/auth/setup-login", models.LoginRequest{Phone: phone, Name: name}, &user)
	return user, err
}

// Dishes lists dishes, optionally filtered to one course. Pass "" for all.
func (c *Client) Dishes(ctx context.Context, course string) ([]models.Dish, error) {
	path := "/dishes"
	if course != "" {
		path += "?course=" + url.QueryEscape(course)
	}
	var dishes []models.Dish
	err := c.do(ctx, http.MethodGet, path, nil, &dishes)
	return dishes, err
}

func (c *Client) CreateDish(ctx context.Context, name, course string, isAdmin bool) (models.Dish, error) {
	var dish models.Dish
	err := c.do(ctx, http.MethodPost, "/dishes", models.CreateDishRequest{
		Name:    name,
		Course:  course,
		IsAdmin: isAdmin,
	}, &dish)
	return dish, err
}

// DeleteDish removes one dish and its votes.
func (c *Client) DeleteDish(ctx context.Context, dishID int64, isAdmin bool) error {
	return c.do(ctx, http.MethodDelete, "/dishes", models.DeleteDishRequest{
		DishID:  dishID,
		IsAdmin: isAdmin,
	}, nil)
}

// ClearCourse removes every dish of one course and their votes.
func (c *Client) ClearCourse(ctx context.Context, course string, isAdmin bool) error {
	return c.do(ctx, http.MethodDelete, "/dishes", models.DeleteDishRequest{
		Course:  course,
		IsAdmin: isAdmin,
	}, nil)
}

// ClearAllDishes wipes the whole menu and every vote.
func (c *Client) ClearAllDishes(ctx context.Context, isAdmin bool) error {
	return c.do(ctx, http.MethodDelete, "/dishes", models.DeleteDishRequest{
		ClearAll: true,
		IsAdmin:  isAdmin,
	}, nil)
}

// CastVote records the user's selection for one course, replacing any
// earlier vote in that course.
func (c *Client) CastVote(ctx context.Context, userID, dishID int64, course string) (models.Vote, error) {
	var vote models.Vote
	err := c.do(ctx, http.MethodPost, "/votes", models.CastVoteRequest{
		UserID: userID,
		DishID: dishID,
		Course: course,
	}, &vote)
	return vote, err
}

// VoteCounts fetches the leaderboard, optionally filtered to one course.
func (c *Client) VoteCounts(ctx context.Context, course string) ([]models.DishVoteCount, error) {
	path := "/votes"
	if course != "" {
		path += "?course=" + url.QueryEscape(course)
	}
	var counts []models.DishVoteCount
	err := c.do(ctx, http.MethodGet, path, nil, &counts)
	return counts, err
}

// UserVote returns the user's current selection for a course, or nil when
// no vote has been cast yet.
func (c *Client) UserVote(ctx context.Context, userID int64, course string) (*models.UserVote, error) {
	path := fmt.Sprintf("/user-vote?userId=%d&course=%s", userID, url.QueryEscape(course))
	var vote *models.UserVote
	if err := c.do(ctx, http.MethodGet, path, nil, &vote); err != nil {
		return nil, err
	}
	return vote, nil
}

// DishVoters lists the users who voted for one dish.
func (c *Client) DishVoters(ctx context.Context, dishID int64) ([]models.Voter, error) {
	path := fmt.Sprintf("/dish-voters?dishId=%d", dishID)
	var voters []models.Voter
	err := c.do(ctx, http.MethodGet, path, nil, &voters)
	return voters, err
}

// Users lists every user with their per-course voting status.
func (c *Client) Users(ctx context.Context) ([]models.UserWithVotes, error) {
	var users []models.UserWithVotes
	err := c.do(ctx, http.MethodGet, "/users", nil, &users)
	return users, err
}

func (c *Client) DeleteUser(ctx context.Context, userID int64, isAdmin bool) error {
	return c.do(ctx, http.MethodDelete, "/users", models.DeleteUserRequest{
		UserID:  userID,
		IsAdmin: isAdmin,
	}, nil)
}

// SetAdmin grants or revokes another user's admin flag.
func (c *Client) SetAdmin(ctx context.Context, userID int64, isAdmin, newIsAdmin bool) error {
	return c.do(ctx, http.MethodPatch, "/users", models.UpdateUserRequest{
		UserID:     userID,
		IsAdmin:    isAdmin,
		NewIsAdmin: &newIsAdmin,
	}, nil)
}

// RenameUser changes another user's display name.
func (c *Client) RenameUser(ctx context.Context, userID int64, isAdmin bool, newName string) error {
	return c.do(ctx, http.MethodPatch, "/users", models.UpdateUserRequest{
		UserID:  userID,
		IsAdmin: isAdmin,
		NewName: &newName,
	}, nil)
}

// Settings fetches the full key->value settings map.
func (c *Client) Settings(ctx context.Context) (map[string]string, error) {
	var settings map[string]string
	err := c.do(ctx, http.MethodGet, "/settings", nil, &settings)
	return settings, err
}

func (c *Client) SetSetting(ctx context.Context, key, value string, isAdmin bool) error {
	return c.do(ctx, http.MethodPost, "/settings", models.SetSettingRequest{
		Key:     key,
		Value:   value,
		IsAdmin: isAdmin,
	}, nil)
}

// MenusLocked reports whether voting is currently locked.
func (c *Client) MenusLocked(ctx context.Context) (bool, error) {
	settings, err := c.Settings(ctx)
	if err != nil {
		return false, err
	}
	return settings[models.SettingMenusLocked] == "1", nil
}
