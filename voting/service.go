// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting is the vote integrity and ranking-aggregation engine.

The engine holds no state between invocations: every operation re-reads
what it needs through the store gateway. It covers:

  - vote ingestion with blacklist and duplicate enforcement
  - the fraud-detection purge (garbage and repeat-abuser rules)
  - bulk administrative vote injection and removal
  - the public ranking computation
  - locale administration (create, edit, delete with vote cascade)

All admin-only operations take the caller's isAdmin capability as a
plain boolean and touch the store only when it is true.
*/
package voting

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/vota-locales/cache"
	"github.com/danielhkuo/vota-locales/event"
	"github.com/danielhkuo/vota-locales/metrics"
	"github.com/danielhkuo/vota-locales/store"
)

// Batch sizes are dictated by the backing store's per-request row
// limits.
const (
	scanPageSize    = 2000 // fraud-scan read window
	deleteBatchSize = 100  // fraud-purge delete batch
	insertBatchSize = 1000 // bulk-injection insert batch
)

// MaxInjectAmount bounds a single injection request.
const MaxInjectAmount = 10000

// Service wires the engine to its collaborators. Blacklist membership
// and the elevated service-role key are injected configuration.
type Service struct {
	store          store.Gateway
	blacklist      map[string]struct{}
	serviceRoleKey string
	cache          cache.Invalidator
	events         event.VotePublisher
	metrics        *metrics.VoteMetrics
}

// Options carries the injected configuration and collaborators for a
// Service. Cache and Events may be nil; no-op implementations are
// substituted. Metrics is required.
type Options struct {
	Blacklist      []string
	ServiceRoleKey string
	Cache          cache.Invalidator
	Events         event.VotePublisher
	Metrics        *metrics.VoteMetrics
}

func New(gw store.Gateway, opts Options) *Service {
	bl := make(map[string]struct{}, len(opts.Blacklist))
	for _, contact := range opts.Blacklist {
		bl[contact] = struct{}{}
	}

	inv := opts.Cache
	if inv == nil {
		inv = cache.Noop{}
	}
	pub := opts.Events
	if pub == nil {
		pub = event.Noop{}
	}

	return &Service{
		store:          gw,
		blacklist:      bl,
		serviceRoleKey: opts.ServiceRoleKey,
		cache:          inv,
		events:         pub,
		metrics:        opts.Metrics,
	}
}

// invalidateViews drops the cached public pages after a committed
// write. Best-effort: failures are logged and swallowed.
func (s *Service) invalidateViews(ctx context.Context, views ...string) {
	if err := s.cache.Invalidate(ctx, views...); err != nil {
		slog.Warn("cache invalidation failed", "views", views, "error", err)
	}
}
