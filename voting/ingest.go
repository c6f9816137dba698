// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/vota-locales/cache"
	"github.com/danielhkuo/vota-locales/event"
	"github.com/danielhkuo/vota-locales/metrics"
	"github.com/danielhkuo/vota-locales/store"
)

// SubmitVote records one vote for a locale. The pipeline short-circuits
// in order: blacklist, input validation, exact duplicate check, insert.
// Nothing is written before the insert, so no step needs rollback.
//
// The duplicate check matches the literal contact string, not a
// normalized form; normalization is the fraud purge's concern. The
// store-level unique constraint backs the same rule, so a concurrent
// submission that slips past the check still comes back as a duplicate.
func (s *Service) SubmitVote(ctx context.Context, localeID, name, contact string) (string, error) {
	name = strings.TrimSpace(name)
	contact = strings.TrimSpace(contact)

	if _, banned := s.blacklist[contact]; banned {
		// Security event: log the attempt, tell the caller nothing
		// beyond the rejection itself.
		slog.Warn("blocked blacklisted vote attempt", "locale_id", localeID)
		s.metrics.VotesRejected.WithLabelValues(metrics.ReasonBlacklisted).Inc()
		return "", blacklistedError()
	}

	if name == "" || contact == "" {
		s.metrics.VotesRejected.WithLabelValues(metrics.ReasonInvalid).Inc()
		return "", validationError("Nombre y contacto son requeridos.")
	}

	count, err := s.store.CountVotes(ctx, localeID, contact)
	if err != nil {
		slog.Error("error checking existing votes", "locale_id", localeID, "error", err)
		s.metrics.VotesRejected.WithLabelValues(metrics.ReasonStore).Inc()
		return "", storeError("Error de conexión. Intenta de nuevo.", err)
	}
	if count > 0 {
		s.metrics.VotesRejected.WithLabelValues(metrics.ReasonDuplicate).Inc()
		return "", duplicateVoteError()
	}

	voteID, err := s.store.InsertVote(ctx, localeID, name, contact)
	if err != nil {
		if store.IsUniqueViolation(err) {
			// Lost the race with a concurrent submission for the same
			// (locale, contact) pair.
			s.metrics.VotesRejected.WithLabelValues(metrics.ReasonDuplicate).Inc()
			return "", duplicateVoteError()
		}
		slog.Error("vote insertion error", "locale_id", localeID, "error", err)
		s.metrics.VotesRejected.WithLabelValues(metrics.ReasonStore).Inc()
		return "", storeError("Error al registrar el voto.", err)
	}

	s.metrics.VotesAccepted.WithLabelValues(localeID).Inc()
	s.invalidateViews(ctx, cache.ViewHome, cache.ViewRanking, cache.ViewAdmin)

	ev := event.VoteEvent{VoteID: voteID, LocaleID: localeID, CreatedAt: time.Now()}
	if err := s.events.Publish(ctx, ev); err != nil {
		slog.Warn("failed to publish vote event", "vote_id", voteID, "error", err)
	}

	return voteID, nil
}
