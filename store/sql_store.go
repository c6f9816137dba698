// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/vota-locales/models"
)

// SQLStore implements Gateway on a database/sql connection. The SQL is
// restricted to what SQLite and PostgreSQL both accept, including $1
// placeholders (SQLite supports the $N form natively).
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Locales

func (s *SQLStore) InsertLocale(ctx context.Context, name, description, imageURL string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO locales (id, name, description, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, name, description, imageURL, time.Now())
	if err != nil {
		return "", fmt.Errorf("insert locale: %w", err)
	}
	return id, nil
}

func (s *SQLStore) UpdateLocale(ctx context.Context, id, name, description, imageURL string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE locales SET name = $1, description = $2, image_url = $3
		WHERE id = $4
	`, name, description, imageURL, id)
	if err != nil {
		return fmt.Errorf("update locale: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update locale: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteLocale removes the locale row. Associated votes are expected to
// be deleted first via DeleteVotesByLocale; the schema cascade covers
// backends where that ordering was skipped.
func (s *SQLStore) DeleteLocale(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM locales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete locale: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete locale: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *SQLStore) ListLocales(ctx context.Context) ([]models.Locale, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, image_url, created_at
		FROM locales
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	defer rows.Close()

	locales := []models.Locale{}
	for rows.Next() {
		var l models.Locale
		var description sql.NullString
		if err := rows.Scan(&l.ID, &l.Name, &description, &l.ImageURL, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan locale: %w", err)
		}
		l.Description = description.String
		locales = append(locales, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	return locales, nil
}

// Votes

func (s *SQLStore) InsertVote(ctx context.Context, localeID, voterName, voterContact string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO votes (id, locale_id, voter_name, voter_contact, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, localeID, voterName, voterContact, time.Now())
	if err != nil {
		return "", err
	}
	return id, nil
}

// InsertVotesBatch inserts all given votes in one transaction and
// returns how many rows were written. Vote IDs are assigned here when
// empty. All-or-nothing per call; callers slice their own batches.
func (s *SQLStore) InsertVotesBatch(ctx context.Context, votes []models.Vote) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin batch insert: %w", err)
	}
	defer tx.Rollback()

	inserted := 0
	for _, v := range votes {
		id := v.ID
		if id == "" {
			id = uuid.NewString()
		}
		createdAt := v.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO votes (id, locale_id, voter_name, voter_contact, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, id, v.LocaleID, v.VoterName, v.VoterContact, createdAt); err != nil {
			return 0, fmt.Errorf("batch insert vote: %w", err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit batch insert: %w", err)
	}
	return inserted, nil
}

func (s *SQLStore) CountVotes(ctx context.Context, localeID, voterContact string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM votes
		WHERE locale_id = $1 AND voter_contact = $2
	`, localeID, voterContact).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count votes: %w", err)
	}
	return count, nil
}

// ListVotesPage returns one window of the full scan, ordered by
// creation time so pagination is stable across pages.
func (s *SQLStore) ListVotesPage(ctx context.Context, localeID string, offset, limit int) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, locale_id, voter_name, voter_contact, created_at
		FROM votes
		WHERE locale_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`, localeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list votes page: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.LocaleID, &v.VoterName, &v.VoterContact, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list votes page: %w", err)
	}
	return votes, nil
}

func (s *SQLStore) RecentVoteIDs(ctx context.Context, localeID string, limit int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM votes
		WHERE locale_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, localeID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent vote ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan vote id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent vote ids: %w", err)
	}
	return ids, nil
}

// DeleteVotesByID deletes the given id set in one statement and returns
// how many rows the store reports deleted.
func (s *SQLStore) DeleteVotesByID(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := make([]byte, 0, len(ids)*4)
	args := make([]any, len(ids))
	for i, id := range ids {
		if i > 0 {
			placeholders = append(placeholders, ',')
		}
		placeholders = fmt.Appendf(placeholders, "$%d", i+1)
		args[i] = id
	}

	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM votes WHERE id IN (%s)`, placeholders), args...)
	if err != nil {
		return 0, fmt.Errorf("delete votes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete votes: %w", err)
	}
	return int(n), nil
}

func (s *SQLStore) DeleteVotesByLocale(ctx context.Context, localeID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM votes WHERE locale_id = $1`, localeID)
	if err != nil {
		return fmt.Errorf("delete locale votes: %w", err)
	}
	return nil
}

// Aggregates

// VoteCountsByLocale returns the per-locale vote totals in a single
// grouped query. Locales with no votes are absent from the map.
func (s *SQLStore) VoteCountsByLocale(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT locale_id, COUNT(*) FROM votes GROUP BY locale_id
	`)
	if err != nil {
		return nil, fmt.Errorf("vote counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var localeID string
		var count int
		if err := rows.Scan(&localeID, &count); err != nil {
			return nil, fmt.Errorf("scan vote count: %w", err)
		}
		counts[localeID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vote counts: %w", err)
	}
	return counts, nil
}
