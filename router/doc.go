// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Lyric Match API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, lyrics.NewClient(cfg, nil))

# Endpoints

	GET  /               - Welcome message
	GET  /health         - Liveness check
	POST /generate-lyric - Pick a song and return a lyric snippet
	POST /check-answer   - Compare a guess and update the score
	GET  /leaderboard    - Top 10 scores

Unknown paths return 404; known paths with the wrong method return 405.

# Handler Initialization

The router builds one score store and shares it between handlers:

	scores := store.New(db)
	gameHandler := handlers.NewGameHandler(scores, generator)
	leaderboardHandler := handlers.NewLeaderboardHandler(scores)
*/
package router
