// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Lyric Match API.

# Handler Types

  - GameHandler: lyric generation and answer checking
  - LeaderboardHandler: top scores

Handlers are created with their dependencies injected:

	scores := store.New(db)
	gameHandler := handlers.NewGameHandler(scores, lyrics.NewClient(cfg, nil))
	leaderboardHandler := handlers.NewLeaderboardHandler(scores)

# Round Flow

A round is held entirely by the client:

	POST /generate-lyric → GenerateLyric (returns lyric_snippet, correct_title)
	POST /check-answer   → CheckAnswer (user_guess, correct_title, username)

CheckAnswer compares guess and title case-insensitively. A match adds one
point to the username's score. Because the client supplies correct_title,
the server cannot tell a real round from a forged one.

# Errors

  - 400: body is not valid JSON or a field has the wrong type
  - 422: a required field is missing (empty strings are accepted)
  - 500: text generation or storage failed (details are only logged)
*/
package handlers
