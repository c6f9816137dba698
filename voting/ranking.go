// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"log/slog"
	"sort"

	"github.com/danielhkuo/vota-locales/models"
)

// Ranking returns every locale with its vote total, sorted by votes
// descending. The sort is stable over the name-ordered locale fetch, so
// equal counts keep alphabetical order; that tie-break is incidental,
// not contractual.
//
// Degradation policy: if the vote aggregate fails, every locale is
// reported with zero votes; if the locale list itself cannot be read,
// the ranking is empty. Neither case is an error to the caller.
func (s *Service) Ranking(ctx context.Context) []models.RankedLocale {
	locales, err := s.store.ListLocales(ctx)
	if err != nil {
		slog.Error("error fetching locales for ranking", "error", err)
		return []models.RankedLocale{}
	}

	counts, err := s.store.VoteCountsByLocale(ctx)
	if err != nil {
		slog.Error("error fetching vote counts for ranking", "error", err)
		counts = map[string]int{}
	}

	ranking := make([]models.RankedLocale, len(locales))
	for i, l := range locales {
		ranking[i] = models.RankedLocale{
			ID:       l.ID,
			Name:     l.Name,
			ImageURL: l.ImageURL,
			Votes:    counts[l.ID],
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Votes > ranking[j].Votes
	})

	return ranking
}
