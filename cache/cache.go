// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package cache invalidates cached renderings of the public pages after
// a write. The voting engine treats invalidation as best-effort: a
// failed invalidation is logged by the caller, never surfaced to the
// voter.
package cache

import "context"

// View names whose cached renderings depend on vote data.
const (
	ViewHome    = "home"
	ViewRanking = "ranking"
	ViewAdmin   = "admin"
)

// Invalidator drops cached page renderings by view name.
type Invalidator interface {
	Invalidate(ctx context.Context, views ...string) error
	Close() error
}

// Noop is the Invalidator used when no cache backend is configured.
type Noop struct{}

func (Noop) Invalidate(ctx context.Context, views ...string) error { return nil }
func (Noop) Close() error                                          { return nil }
