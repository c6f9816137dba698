// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielhkuo/vota-locales/metrics"
	"github.com/danielhkuo/vota-locales/models"
)

// newTestService wires the engine to a fake gateway with a throwaway
// metrics registry.
func newTestService(gw *fakeGateway) *Service {
	return New(gw, Options{
		Blacklist:      []string{"93928", "6245893"},
		ServiceRoleKey: "test-service-role-key",
		Metrics:        metrics.NewVoteMetrics("test", prometheus.NewRegistry()),
	})
}

// fakeGateway is an in-memory store.Gateway with per-method error
// injection, used to exercise the engine's failure policies without a
// database.
type fakeGateway struct {
	locales []models.Locale
	votes   []models.Vote
	nextID  int

	// error injection
	listLocalesErr error
	countErr       error
	insertErr      error
	recentErr      error
	aggregateErr   error
	pageErrAt      int // fail ListVotesPage at this page number; -1 never
	batchErrAt     int // fail InsertVotesBatch at this call index; -1 never
	deleteErrAt    int // fail DeleteVotesByID at this call index; -1 never

	// recording
	pageReads     int
	insertBatches [][]models.Vote
	deleteCalls   [][]string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{pageErrAt: -1, batchErrAt: -1, deleteErrAt: -1}
}

func (f *fakeGateway) addVote(localeID, name, contact string) string {
	f.nextID++
	id := fmt.Sprintf("v%d", f.nextID)
	f.votes = append(f.votes, models.Vote{
		ID:           id,
		LocaleID:     localeID,
		VoterName:    name,
		VoterContact: contact,
		CreatedAt:    time.Unix(int64(f.nextID), 0),
	})
	return id
}

func (f *fakeGateway) InsertLocale(ctx context.Context, name, description, imageURL string) (string, error) {
	f.nextID++
	id := fmt.Sprintf("l%d", f.nextID)
	f.locales = append(f.locales, models.Locale{ID: id, Name: name, Description: description, ImageURL: imageURL})
	return id, nil
}

func (f *fakeGateway) UpdateLocale(ctx context.Context, id, name, description, imageURL string) error {
	for i := range f.locales {
		if f.locales[i].ID == id {
			f.locales[i].Name = name
			f.locales[i].Description = description
			f.locales[i].ImageURL = imageURL
			return nil
		}
	}
	return errors.New("no rows")
}

func (f *fakeGateway) DeleteLocale(ctx context.Context, id string) error {
	for i := range f.locales {
		if f.locales[i].ID == id {
			f.locales = append(f.locales[:i], f.locales[i+1:]...)
			return nil
		}
	}
	return errors.New("no rows")
}

func (f *fakeGateway) ListLocales(ctx context.Context) ([]models.Locale, error) {
	if f.listLocalesErr != nil {
		return nil, f.listLocalesErr
	}
	return append([]models.Locale{}, f.locales...), nil
}

func (f *fakeGateway) InsertVote(ctx context.Context, localeID, voterName, voterContact string) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	return f.addVote(localeID, voterName, voterContact), nil
}

func (f *fakeGateway) InsertVotesBatch(ctx context.Context, votes []models.Vote) (int, error) {
	call := len(f.insertBatches)
	f.insertBatches = append(f.insertBatches, votes)
	if call == f.batchErrAt {
		return 0, errors.New("batch insert failed")
	}
	for _, v := range votes {
		f.addVote(v.LocaleID, v.VoterName, v.VoterContact)
	}
	return len(votes), nil
}

func (f *fakeGateway) CountVotes(ctx context.Context, localeID, voterContact string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	count := 0
	for _, v := range f.votes {
		if v.LocaleID == localeID && v.VoterContact == voterContact {
			count++
		}
	}
	return count, nil
}

func (f *fakeGateway) ListVotesPage(ctx context.Context, localeID string, offset, limit int) ([]models.Vote, error) {
	if limit > 0 && offset/limit == f.pageErrAt {
		return nil, errors.New("page read failed")
	}
	f.pageReads++

	var all []models.Vote
	for _, v := range f.votes {
		if v.LocaleID == localeID {
			all = append(all, v)
		}
	}
	if offset >= len(all) {
		return []models.Vote{}, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (f *fakeGateway) RecentVoteIDs(ctx context.Context, localeID string, limit int) ([]string, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	var ids []string
	// votes are appended in creation order; walk backwards
	for i := len(f.votes) - 1; i >= 0 && len(ids) < limit; i-- {
		if f.votes[i].LocaleID == localeID {
			ids = append(ids, f.votes[i].ID)
		}
	}
	return ids, nil
}

func (f *fakeGateway) DeleteVotesByID(ctx context.Context, ids []string) (int, error) {
	call := len(f.deleteCalls)
	f.deleteCalls = append(f.deleteCalls, ids)
	if call == f.deleteErrAt {
		return 0, errors.New("delete batch failed")
	}

	doomed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}
	kept := f.votes[:0]
	deleted := 0
	for _, v := range f.votes {
		if _, hit := doomed[v.ID]; hit {
			deleted++
			continue
		}
		kept = append(kept, v)
	}
	f.votes = kept
	return deleted, nil
}

func (f *fakeGateway) DeleteVotesByLocale(ctx context.Context, localeID string) error {
	kept := f.votes[:0]
	for _, v := range f.votes {
		if v.LocaleID != localeID {
			kept = append(kept, v)
		}
	}
	f.votes = kept
	return nil
}

func (f *fakeGateway) VoteCountsByLocale(ctx context.Context) (map[string]int, error) {
	if f.aggregateErr != nil {
		return nil, f.aggregateErr
	}
	counts := make(map[string]int)
	for _, v := range f.votes {
		counts[v.LocaleID]++
	}
	return counts, nil
}
