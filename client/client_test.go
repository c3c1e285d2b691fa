// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/obiady/mealvote/models"
	"github.com/obiady/mealvote/router"
	"github.com/obiady/mealvote/testutil"
)

// startTestServer runs the real router against a throwaway sqlite database
// and returns a client pointed at it.
func startTestServer(t *testing.T) *Client {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	srv := httptest.NewServer(router.NewRouter(conn, cfg))
	t.Cleanup(srv.Close)

	return New(srv.URL)
}

func TestClientLoginAndVote(t *testing.T) {
	c := startTestServer(t)
	ctx := context.Background()

	admin, err := c.SetupLogin(ctx, "111111111", "Szef")
	if err != nil {
		t.Fatalf("SetupLogin failed: %v", err)
	}
	if !admin.IsAdmin {
		t.Fatal("Expected bootstrap phone to produce an admin")
	}

	voter, err := c.Login(ctx, "500100100", "Adam")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if voter.IsAdmin {
		t.Error("Plain login must never grant admin")
	}

	dish, err := c.CreateDish(ctx, "Zupa pomidorowa", models.CourseFirst, true)
	if err != nil {
		t.Fatalf("CreateDish failed: %v", err)
	}
	if dish.ID == 0 {
		t.Fatal("Expected dish id from server")
	}

	vote, err := c.CastVote(ctx, voter.ID, dish.ID, models.CourseFirst)
	if err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if vote.UserID != voter.ID || vote.DishID != dish.ID {
		t.Errorf("Unexpected vote: %+v", vote)
	}

	counts, err := c.VoteCounts(ctx, models.CourseFirst)
	if err != nil {
		t.Fatalf("VoteCounts failed: %v", err)
	}
	if len(counts) != 1 || counts[0].VoteCount != 1 {
		t.Errorf("Unexpected leaderboard: %+v", counts)
	}

	voters, err := c.DishVoters(ctx, dish.ID)
	if err != nil {
		t.Fatalf("DishVoters failed: %v", err)
	}
	if len(voters) != 1 || voters[0].Name != "Adam" {
		t.Errorf("Unexpected voters: %+v", voters)
	}
}

func TestClientUserVoteNil(t *testing.T) {
	c := startTestServer(t)
	ctx := context.Background()

	voter, err := c.Login(ctx, "500100100", "Adam")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// No vote yet: the server answers JSON null, the client returns nil
	vote, err := c.UserVote(ctx, voter.ID, models.CourseFirst)
	if err != nil {
		t.Fatalf("UserVote failed: %v", err)
	}
	if vote != nil {
		t.Errorf("Expected nil before voting, got %+v", vote)
	}

	dish, err := c.CreateDish(ctx, "Rosol", models.CourseFirst, true)
	if err != nil {
		t.Fatalf("CreateDish failed: %v", err)
	}
	if _, err := c.CastVote(ctx, voter.ID, dish.ID, models.CourseFirst); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}

	vote, err = c.UserVote(ctx, voter.ID, models.CourseFirst)
	if err != nil {
		t.Fatalf("UserVote failed: %v", err)
	}
	if vote == nil || vote.DishID != dish.ID {
		t.Errorf("Expected vote for dish %d, got %+v", dish.ID, vote)
	}
}

func TestClientAPIError(t *testing.T) {
	c := startTestServer(t)
	ctx := context.Background()

	_, err := c.CreateDish(ctx, "Zupa", models.CourseFirst, false)
	if err == nil {
		t.Fatal("Expected error for non-admin dish creation")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != 403 {
		t.Errorf("Expected status 403, got %d", apiErr.StatusCode)
	}
	if apiErr.Message == "" {
		t.Error("Expected server error message to be preserved")
	}
}

func TestClientSettings(t *testing.T) {
	c := startTestServer(t)
	ctx := context.Background()

	locked, err := c.MenusLocked(ctx)
	if err != nil {
		t.Fatalf("MenusLocked failed: %v", err)
	}
	if locked {
		t.Error("Expected voting to start unlocked")
	}

	if err := c.SetSetting(ctx, models.SettingMenusLocked, "1", true); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}

	locked, err = c.MenusLocked(ctx)
	if err != nil {
		t.Fatalf("MenusLocked failed: %v", err)
	}
	if !locked {
		t.Error("Expected voting to be locked after update")
	}
}

func TestWatchSettings(t *testing.T) {
	c := startTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan map[string]string, 8)
	done := make(chan error, 1)
	go func() {
		done <- c.WatchSettings(ctx, 10*time.Millisecond, func(s map[string]string) {
			changes <- s
		})
	}()

	// First successful poll always fires
	select {
	case s := <-changes:
		if s[models.SettingMenusLocked] != "0" {
			t.Errorf("Expected initial menus_locked=0, got %v", s)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for initial settings")
	}

	if err := c.SetSetting(ctx, models.SettingMenusLocked, "1", true); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}

	// The change shows up on a later poll
	select {
	case s := <-changes:
		if s[models.SettingMenusLocked] != "1" {
			t.Errorf("Expected menus_locked=1 after update, got %v", s)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for settings change")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watcher did not stop after cancel")
	}
}
