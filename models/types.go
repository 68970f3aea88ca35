package models

// WelcomeMessage is returned by GET /
const WelcomeMessage = "Welcome to the Lyric Match API!"

// Request types

// Pointer fields let handlers tell a missing field from an empty string.
// Empty strings are accepted as-is.
type CheckAnswerRequest struct {
	UserGuess    *string `json:"user_guess"`
	CorrectTitle *string `json:"correct_title"`
	Username     *string `json:"username"`
}

// MissingField returns the name of the first required field that was absent
// from the request body, or "" if all are present.
func (r CheckAnswerRequest) MissingField() string {
	switch {
	case r.UserGuess == nil:
		return "user_guess"
	case r.CorrectTitle == nil:
		return "correct_title"
	case r.Username == nil:
		return "username"
	}
	return ""
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type GenerateLyricResponse struct {
	LyricSnippet string `json:"lyric_snippet"`
	CorrectTitle string `json:"correct_title"`
}

type CheckAnswerResponse struct {
	IsCorrect    bool   `json:"is_correct"`
	CorrectTitle string `json:"correct_title"`
}

type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// Domain types

// UserScore is one row of the user_scores table.
// ID is zero until the record has been inserted.
type UserScore struct {
	ID       int64
	Username string
	Score    int
}

// Saved reports whether the record exists in storage
func (u *UserScore) Saved() bool {
	return u.ID != 0
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
