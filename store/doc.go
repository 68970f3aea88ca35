// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists per-username scores in the user_scores table.

A Store is created once at startup and passed to handlers:

	scores := store.New(conn)

# Recording a Correct Guess

	rec, err := scores.GetOrCreate(ctx, "alice") // unsaved if alice is new
	err = scores.IncrementAndSave(ctx, rec)      // insert or score = score + 1

RecordCorrectGuess does both.

Increments of an existing row are atomic. Two first-ever correct guesses for
the same new username can still insert two rows, since username is not
unique; GetOrCreate then always reads the oldest one.

# Leaderboard

	entries, err := scores.TopN(ctx, store.DefaultLeaderboardSize)

Entries are sorted by score descending. Ties have no defined order.

# Errors

Every database failure is wrapped with ErrStorage:

	if errors.Is(err, store.ErrStorage) { ... }
*/
package store
