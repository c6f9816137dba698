// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/vota-locales/cache"
	"github.com/danielhkuo/vota-locales/models"
)

// abuserThreshold is the per-locale occurrence count above which a
// normalized contact is treated as a repeat abuser. All of the abuser's
// records are purged, including the first three.
const abuserThreshold = 3

// PurgeResult reports what a fraud purge did.
type PurgeResult struct {
	Scanned   int    // vote records read
	Deleted   int    // rows the store reported deleted
	Truncated bool   // the full scan stopped early on a read error
	Message   string // user-facing summary
}

// PurgeFraudVotes scans every vote for the locale, classifies garbage
// and repeat-abuser records, and deletes them in bounded batches.
//
// Classification happens over a snapshot of the full scan; votes
// inserted while the purge runs simply are not considered this pass. A
// page-read failure stops the scan but the purge still classifies and
// deletes from whatever was read, reporting the truncation.
func (s *Service) PurgeFraudVotes(ctx context.Context, isAdmin bool, localeID string) (PurgeResult, error) {
	if !isAdmin {
		return PurgeResult{}, unauthorizedError()
	}

	votes, truncated := s.scanAllVotes(ctx, localeID)

	doomed := classifyFraud(votes)
	if len(doomed) == 0 {
		result := PurgeResult{
			Scanned:   len(votes),
			Truncated: truncated,
			Message:   "No se encontraron votos fraudulentos.",
		}
		return result, nil
	}

	deleted := 0
	for start := 0; start < len(doomed); start += deleteBatchSize {
		end := min(start+deleteBatchSize, len(doomed))
		n, err := s.store.DeleteVotesByID(ctx, doomed[start:end])
		if err != nil {
			// Skip the failed batch; its records survive this pass.
			slog.Error("fraud purge batch failed",
				"locale_id", localeID, "batch_start", start, "error", err)
			continue
		}
		deleted += n
	}

	s.metrics.VotesPurged.WithLabelValues(localeID).Add(float64(deleted))
	s.invalidateViews(ctx, cache.ViewHome, cache.ViewRanking, cache.ViewAdmin)
	slog.Info("fraud purge completed",
		"locale_id", localeID, "scanned", len(votes), "flagged", len(doomed), "deleted", deleted)

	return PurgeResult{
		Scanned:   len(votes),
		Deleted:   deleted,
		Truncated: truncated,
		Message:   "Se eliminaron " + humanize.Comma(int64(deleted)) + " votos fraudulentos.",
	}, nil
}

// scanAllVotes reads the locale's votes in fixed windows until a short
// page. The returned flag reports whether a read error cut the scan
// short of end-of-data.
func (s *Service) scanAllVotes(ctx context.Context, localeID string) ([]models.Vote, bool) {
	var all []models.Vote
	for page := 0; ; page++ {
		window, err := s.store.ListVotesPage(ctx, localeID, page*scanPageSize, scanPageSize)
		if err != nil {
			slog.Error("fraud scan page read failed",
				"locale_id", localeID, "page", page, "error", err)
			return all, true
		}
		all = append(all, window...)
		if len(window) < scanPageSize {
			return all, false
		}
	}
}

// classifyFraud returns the ids of every vote that fails the garbage
// rule plus every vote belonging to a repeat abuser.
//
// Garbage: the contact normalizes to fewer than 7 or more than 15
// digits, or the raw contact contains a letter. Garbage records are
// excluded from the frequency tally.
//
// Abuser: a normalized contact with more than abuserThreshold
// well-formed records for this locale; every one of its records is
// flagged.
func classifyFraud(votes []models.Vote) []string {
	var doomed []string
	freq := make(map[string]int)

	for _, v := range votes {
		if isGarbageContact(v.VoterContact) {
			doomed = append(doomed, v.ID)
			continue
		}
		freq[normalizeContact(v.VoterContact)]++
	}

	abusers := make(map[string]struct{})
	for key, n := range freq {
		if n > abuserThreshold {
			abusers[key] = struct{}{}
		}
	}
	if len(abusers) == 0 {
		return doomed
	}

	for _, v := range votes {
		if isGarbageContact(v.VoterContact) {
			continue // already flagged
		}
		if _, hit := abusers[normalizeContact(v.VoterContact)]; hit {
			doomed = append(doomed, v.ID)
		}
	}
	return doomed
}

// normalizeContact strips every non-digit character.
func normalizeContact(contact string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, contact)
}

func isGarbageContact(contact string) bool {
	for _, r := range contact {
		if unicode.IsLetter(r) {
			return true
		}
	}
	digits := len(normalizeContact(contact))
	return digits < 7 || digits > 15
}
