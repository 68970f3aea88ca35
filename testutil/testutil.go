// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/danielhkuo/lyric-match/cliparse"
	"github.com/danielhkuo/lyric-match/db"
)

// SetupTestDB creates a fresh SQLite database with the full schema.
// The file lives in t.TempDir and is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.DatabaseSQLite, filepath.Join(t.TempDir(), "lyricmatch_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseURL:  "lyricmatch_test.db",
		DatabaseType: cliparse.DatabaseSQLite,
		LLMAPIKey:    "sk-test",
		LLMBaseURL:   cliparse.DefaultLLMBaseURL,
		LLMModel:     cliparse.DefaultLLMModel,
		SiteName:     cliparse.DefaultSiteName,
		CORSOrigin:   cliparse.DefaultCORSOrigin,
	}
}

// FakeGenerator returns a canned snippet (or error) and records titles asked for
type FakeGenerator struct {
	Snippet string
	Err     error

	mu     sync.Mutex
	titles []string
}

func (g *FakeGenerator) GenerateSnippet(ctx context.Context, title string) (string, error) {
	g.mu.Lock()
	g.titles = append(g.titles, title)
	g.mu.Unlock()

	if g.Err != nil {
		return "", g.Err
	}
	return g.Snippet, nil
}

// Titles returns the titles passed to GenerateSnippet so far
func (g *FakeGenerator) Titles() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.titles...)
}

// SeedScore inserts a score row directly and returns its id
func SeedScore(t *testing.T, db *sql.DB, username string, score int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO user_scores (username, score)
		VALUES ($1, $2)
		RETURNING id
	`, username, score).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to seed score: %v", err)
	}

	return id
}

// ScoreOf returns the score of the first row for username, or -1 if none
func ScoreOf(t *testing.T, db *sql.DB, username string) int {
	t.Helper()

	var score int
	err := db.QueryRow(`
		SELECT score FROM user_scores WHERE username = $1 ORDER BY id LIMIT 1
	`, username).Scan(&score)
	if err == sql.ErrNoRows {
		return -1
	}
	if err != nil {
		t.Fatalf("Failed to query score: %v", err)
	}

	return score
}

// CountRows returns the number of rows in user_scores
func CountRows(t *testing.T, db *sql.DB) int {
	t.Helper()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM user_scores").Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var raw []byte
		if s, ok := body.(string); ok {
			raw = []byte(s)
		} else {
			raw, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// CaptureLogs routes the default slog logger into a JSON buffer until the
// test ends. Tests using it must not run in parallel.
func CaptureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

// FindLog returns the first JSON log record whose msg equals msg, or nil
func FindLog(t *testing.T, buf *bytes.Buffer, msg string) map[string]any {
	t.Helper()

	dec := json.NewDecoder(bytes.NewReader(buf.Bytes()))
	for dec.More() {
		var rec map[string]any
		if err := dec.Decode(&rec); err != nil {
			t.Fatalf("Failed to decode log record: %v", err)
		}
		if rec["msg"] == msg {
			return rec
		}
	}
	return nil
}
