// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is a typed Go client for the Mealvote API.

# Usage

	c := client.New("http://localhost:3180")

	user, err := c.Login(ctx, "600700800", "Ala")
	dishes, err := c.Dishes(ctx, models.CourseFirst)
	_, err = c.CastVote(ctx, user.ID, dishes[0].ID, models.CourseFirst)

Every method takes a context and maps non-2xx responses to *APIError, so
callers can branch on the status code:

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		// not an admin
	}

UserVote returns (nil, nil) while the user has no selection for the course.

# Live Settings

WatchSettings polls the settings map on a ticker and invokes the callback
on every change - the lock flag and survey date are updated by an admin
while voters have the page open:

	err := c.WatchSettings(ctx, 5*time.Second, func(s map[string]string) {
		locked := s[models.SettingMenusLocked] == "1"
		...
	})
*/
package client
