// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store defines the gateway to the persistent record store and
// its SQL implementation. The voting engine only sees the Gateway
// interface; everything it needs is re-read from the store on every
// operation.
package store

import (
	"context"
	"strings"

	"github.com/danielhkuo/vota-locales/models"
)

// Gateway is the persistence capability the voting engine operates
// through. Implementations must be safe for concurrent use.
type Gateway interface {
	// Locales
	InsertLocale(ctx context.Context, name, description, imageURL string) (string, error)
	UpdateLocale(ctx context.Context, id, name, description, imageURL string) error
	DeleteLocale(ctx context.Context, id string) error
	ListLocales(ctx context.Context) ([]models.Locale, error)

	// Votes
	InsertVote(ctx context.Context, localeID, voterName, voterContact string) (string, error)
	InsertVotesBatch(ctx context.Context, votes []models.Vote) (int, error)
	CountVotes(ctx context.Context, localeID, voterContact string) (int, error)
	ListVotesPage(ctx context.Context, localeID string, offset, limit int) ([]models.Vote, error)
	RecentVoteIDs(ctx context.Context, localeID string, limit int) ([]string, error)
	DeleteVotesByID(ctx context.Context, ids []string) (int, error)
	DeleteVotesByLocale(ctx context.Context, localeID string) error

	// Aggregates
	VoteCountsByLocale(ctx context.Context) (map[string]int, error)
}

// IsUniqueViolation reports whether err is a duplicate-key error from
// either supported backend. lib/pq returns SQLSTATE 23505; modernc
// sqlite reports "UNIQUE constraint failed" in the message.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
