// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lyric-match/lyrics"
	"github.com/danielhkuo/lyric-match/middleware"
	"github.com/danielhkuo/lyric-match/models"
	"github.com/danielhkuo/lyric-match/store"
)

type GameHandler struct {
	scores    *store.Store
	generator lyrics.Generator
}

func NewGameHandler(scores *store.Store, generator lyrics.Generator) *GameHandler {
	return &GameHandler{scores: scores, generator: generator}
}

// GenerateLyric handles POST /generate-lyric
// The correct title goes back to the client; nothing is kept server-side.
func (h *GameHandler) GenerateLyric(w http.ResponseWriter, r *http.Request) {
	title := lyrics.PickTitle()

	snippet, err := h.generator.GenerateSnippet(r.Context(), title)
	if err != nil {
		slog.Error("failed to generate lyric snippet",
			"error", err,
			"title", title,
			"request_id", middleware.RequestID(r.Context()),
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate lyrics")
		return
	}

	slog.Info("lyric generated", "title", title, "snippet_len", len(snippet))

	middleware.JSONResponse(w, http.StatusOK, models.GenerateLyricResponse{
		LyricSnippet: snippet,
		CorrectTitle: title,
	})
}

// CheckAnswer handles POST /check-answer
func (h *GameHandler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.CheckAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if field := req.MissingField(); field != "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, field+" is required")
		return
	}

	correctTitle := *req.CorrectTitle
	isCorrect := lyrics.TitlesMatch(*req.UserGuess, correctTitle)

	// Rounds live on the client, so a title outside the catalog means the
	// request was not built from a generated round
	if !lyrics.IsKnownTitle(correctTitle) {
		slog.Warn("answer checked against unknown title",
			"title", correctTitle,
			"username", *req.Username,
			"request_id", middleware.RequestID(r.Context()),
		)
	}

	if isCorrect {
		rec, err := h.scores.RecordCorrectGuess(r.Context(), *req.Username)
		if err != nil {
			slog.Error("failed to update score",
				"error", err,
				"username", *req.Username,
				"request_id", middleware.RequestID(r.Context()),
			)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		slog.Info("correct guess", "username", rec.Username, "score", rec.Score)
	}

	middleware.JSONResponse(w, http.StatusOK, models.CheckAnswerResponse{
		IsCorrect:    isCorrect,
		CorrectTitle: correctTitle,
	})
}
