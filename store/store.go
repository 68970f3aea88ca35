// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/lyric-match/models"
)

// DefaultLeaderboardSize is used when TopN is called with n <= 0
const DefaultLeaderboardSize = 10

// ErrStorage wraps every failure reading or writing the score table
var ErrStorage = errors.New("score storage error")

// Store persists per-username scores
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetOrCreate returns the first record for username (lowest id).
// If none exists it returns an unsaved record with score 0.
func (s *Store) GetOrCreate(ctx context.Context, username string) (*models.UserScore, error) {
	rec := &models.UserScore{Username: username}

	err := s.db.QueryRowContext(ctx, `
		SELECT id, score
		FROM user_scores
		WHERE username = $1
		ORDER BY id
		LIMIT 1
	`, username).Scan(&rec.ID, &rec.Score)

	if err == sql.ErrNoRows {
		return rec, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: query user score: %w", ErrStorage, err)
	}

	return rec, nil
}

// IncrementAndSave adds one to the record's score and writes it.
// New records are inserted; saved records are incremented in place with
// score = score + 1, so concurrent increments of the same row are not lost.
// On success rec holds the stored id and score.
func (s *Store) IncrementAndSave(ctx context.Context, rec *models.UserScore) error {
	if rec == nil {
		return fmt.Errorf("%w: nil record", ErrStorage)
	}

	if !rec.Saved() {
		score := rec.Score + 1
		var id int64
		err := s.db.QueryRowContext(ctx, `
			INSERT INTO user_scores (username, score)
			VALUES ($1, $2)
			RETURNING id
		`, rec.Username, score).Scan(&id)
		if err != nil {
			return fmt.Errorf("%w: insert user score: %w", ErrStorage, err)
		}
		rec.ID = id
		rec.Score = score
		return nil
	}

	var score int
	err := s.db.QueryRowContext(ctx, `
		UPDATE user_scores
		SET score = score + 1
		WHERE id = $1
		RETURNING score
	`, rec.ID).Scan(&score)
	if err != nil {
		return fmt.Errorf("%w: update user score %d: %w", ErrStorage, rec.ID, err)
	}
	rec.Score = score

	return nil
}

// RecordCorrectGuess is the upsert run on a correct answer
func (s *Store) RecordCorrectGuess(ctx context.Context, username string) (*models.UserScore, error) {
	rec, err := s.GetOrCreate(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.IncrementAndSave(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// TopN returns up to n entries ordered by score, highest first.
// Order among equal scores is whatever the database returns.
func (s *Store) TopN(ctx context.Context, n int) ([]models.LeaderboardEntry, error) {
	if n <= 0 {
		n = DefaultLeaderboardSize
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT username, score
		FROM user_scores
		ORDER BY score DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("%w: query leaderboard: %w", ErrStorage, err)
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.Score); err != nil {
			return nil, fmt.Errorf("%w: scan leaderboard row: %w", ErrStorage, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate leaderboard: %w", ErrStorage, err)
	}

	return entries, nil
}
