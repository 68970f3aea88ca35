// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/lyric-match/handlers"
	"github.com/danielhkuo/lyric-match/lyrics"
	"github.com/danielhkuo/lyric-match/middleware"
	"github.com/danielhkuo/lyric-match/models"
	"github.com/danielhkuo/lyric-match/store"
)

func NewRouter(db *sql.DB, generator lyrics.Generator) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	scores := store.New(db)
	gameHandler := handlers.NewGameHandler(scores, generator)
	leaderboardHandler := handlers.NewLeaderboardHandler(scores)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Game rounds
	mux.HandleFunc("POST /generate-lyric", middleware.WithLogging(gameHandler.GenerateLyric))
	mux.HandleFunc("POST /check-answer", middleware.WithLogging(gameHandler.CheckAnswer))

	// Scores
	mux.HandleFunc("GET /leaderboard", middleware.WithLogging(leaderboardHandler.GetLeaderboard))

	// Root endpoint
	mux.HandleFunc("GET /{$}", middleware.WithLogging(func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: models.WelcomeMessage})
	}))

	return mux
}
