// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lyric-match/middleware"
	"github.com/danielhkuo/lyric-match/store"
)

type LeaderboardHandler struct {
	scores *store.Store
}

func NewLeaderboardHandler(scores *store.Store) *LeaderboardHandler {
	return &LeaderboardHandler{scores: scores}
}

// GetLeaderboard handles GET /leaderboard
// Returns the top scores, highest first
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.scores.TopN(r.Context(), store.DefaultLeaderboardSize)
	if err != nil {
		slog.Error("failed to query leaderboard",
			"error", err,
			"request_id", middleware.RequestID(r.Context()),
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}
