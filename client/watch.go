// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"log/slog"
	"maps"
	"time"
)

// WatchSettings polls GET /settings every interval and invokes fn whenever
// the returned map differs from the previous poll, including the first
// successful one. Poll errors are logged and the next tick retries. Blocks
// until ctx is done and returns ctx.Err().
func (c *Client) WatchSettings(ctx context.Context, interval time.Duration, fn func(map[string]string)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last map[string]string
	for {
		settings, err := c.Settings(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("settings poll failed", "error", err)
		} else if !maps.Equal(settings, last) {
			last = settings
			fn(settings)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
