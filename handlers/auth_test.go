// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/obiady/mealvote/models"
	"github.com/obiady/mealvote/testutil"
)

func TestLogin(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(conn, cfg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, user *models.User)
	}{
		{
			name:           "first login creates the user",
			requestBody:    models.LoginRequest{Phone: "600100200", Name: "Ala"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, user *models.User) {
				if user.ID == 0 {
					t.Error("Expected non-zero user id")
				}
				if user.Phone != "600100200" || user.Name != "Ala" {
					t.Errorf("Unexpected user row: %+v", user)
				}
				if user.IsAdmin {
					t.Error("Plain login must never grant admin")
				}
			},
		},
		{
			name:           "missing phone",
			requestBody:    models.LoginRequest{Name: "Ala"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			requestBody:    models.LoginRequest{Phone: "600100200"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/auth/login", tt.requestBody)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil {
				var user models.User
				testutil.AssertJSON(t, w, &user)
				tt.checkResponse(t, &user)
			}
		})
	}
}

func TestLogin_Idempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(conn, cfg)

	// First login
	req := testutil.MakeRequest("POST", "/auth/login", models.LoginRequest{Phone: "600100200", Name: "Ala"})
	w := httptest.NewRecorder()
	handler.Login(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var first models.User
	testutil.AssertJSON(t, w, &first)

	// Second login with a different name
	req = testutil.MakeRequest("POST", "/auth/login", models.LoginRequest{Phone: "600100200", Name: "Alicja"})
	w = httptest.NewRecorder()
	handler.Login(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var second models.User
	testutil.AssertJSON(t, w, &second)

	if second.ID != first.ID {
		t.Errorf("Repeat login must return the same user id: %d vs %d", first.ID, second.ID)
	}
	if second.Name != "Ala" {
		t.Errorf("Repeat login must not overwrite the stored name, got %q", second.Name)
	}

	// Still exactly one user row
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 user, got %d", count)
	}
}

func TestSetupLogin(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(conn, cfg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectAdmin    bool
	}{
		{
			name:           "bootstrap phone gets admin",
			requestBody:    models.LoginRequest{Phone: cfg.AdminPhone, Name: "Szef"},
			expectedStatus: http.StatusOK,
			expectAdmin:    true,
		},
		{
			name:           "other phones do not",
			requestBody:    models.LoginRequest{Phone: "700800900", Name: "Ola"},
			expectedStatus: http.StatusOK,
			expectAdmin:    false,
		},
		{
			name:           "missing fields",
			requestBody:    models.LoginRequest{Phone: "700800900"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/auth/setup-login", tt.requestBody)
			w := httptest.NewRecorder()

			handler.SetupLogin(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusOK {
				var user models.User
				testutil.AssertJSON(t, w, &user)
				if user.IsAdmin != tt.expectAdmin {
					t.Errorf("Expected is_admin=%v, got %v", tt.expectAdmin, user.IsAdmin)
				}
			}
		})
	}
}

func TestSetupLogin_ExistingUserUntouched(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(conn, cfg)

	// The bootstrap phone already exists as a non-admin (created via plain login)
	userID := testutil.CreateTestUser(t, conn, cfg.AdminPhone, "Janek", false)

	req := testutil.MakeRequest("POST", "/auth/setup-login", models.LoginRequest{Phone: cfg.AdminPhone, Name: "Szef"})
	w := httptest.NewRecorder()
	handler.SetupLogin(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var user models.User
	testutil.AssertJSON(t, w, &user)

	if user.ID != userID {
		t.Errorf("Expected existing user id %d, got %d", userID, user.ID)
	}
	if user.Name != "Janek" {
		t.Errorf("Existing name must survive setup-login, got %q", user.Name)
	}
	if user.IsAdmin {
		t.Error("setup-login must not promote an existing user")
	}
}
