// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Lyric Match API server.

Lyric Match is a song-guessing game backend. It asks a language model for a
few lines of a randomly chosen song, checks the player's guess against the
title, and keeps a per-user score with a top-10 leaderboard.

# Starting the Server

The only required setting is the API key for the text generation service:

	OPENROUTER_API_KEY=sk-or-... go run .

Or with flags:

	go run . -p 8000 -api-key sk-or-... -d lyricmatch.db

A .env file in the working directory is loaded first.

# Configuration

  - PORT (-p): Server port (default: 8000)
  - DATABASE_URL (-d): SQLite path or PostgreSQL DSN (default: lyricmatch.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - OPENROUTER_API_KEY (-api-key): required
  - LLM_BASE_URL, LLM_MODEL, LLM_SITE_URL, LLM_SITE_NAME: text generation
  - CORS_ORIGIN (-cors-origin): frontend origin (default: http://localhost:3000)

# Architecture

  - handlers: HTTP request handlers (game rounds, leaderboard)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - store: Score persistence
  - lyrics: Title list and language model client
  - db: Drivers and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
