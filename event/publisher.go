// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package event publishes accepted votes to an audit stream. Downstream
// consumers (live dashboards, offline fraud analysis) read the stream;
// the voting engine only writes, best-effort, after the vote is
// committed.
package event

import (
	"context"
	"time"
)

// VoteEvent is the wire record for one accepted vote. Voter identity is
// deliberately not included.
type VoteEvent struct {
	VoteID    string    `json:"vote_id"`
	LocaleID  string    `json:"locale_id"`
	CreatedAt time.Time `json:"created_at"`
}

type VotePublisher interface {
	Publish(ctx context.Context, ev VoteEvent) error
	Close() error
}

// Noop is the VotePublisher used when no brokers are configured.
type Noop struct{}

func (Noop) Publish(ctx context.Context, ev VoteEvent) error { return nil }
func (Noop) Close() error                                    { return nil }
