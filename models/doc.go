// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CheckAnswerRequest: user_guess, correct_title, username (all required,
    empty strings allowed)

# Response Types

Types for JSON responses:

  - MessageResponse: message
  - GenerateLyricResponse: lyric_snippet, correct_title
  - CheckAnswerResponse: is_correct, correct_title
  - LeaderboardEntry: username, score
  - ErrorResponse: error, message

# Domain Types

  - UserScore: persisted per-username score counter

A round (generated title plus snippet) is never stored; the client sends the
title back with its guess.
*/
package models
