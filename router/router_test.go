// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/lyric-match/models"
	"github.com/danielhkuo/lyric-match/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewRouter(db, &testutil.FakeGenerator{Snippet: "test lyrics"})
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var resp models.MessageResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Welcome to the Lyric Match API!" {
		t.Errorf("Unexpected welcome message '%s'", resp.Message)
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
		body   interface{}
		status int
	}{
		{"GET", "/", nil, http.StatusOK},
		{"GET", "/health", nil, http.StatusOK},
		{"POST", "/generate-lyric", nil, http.StatusOK},
		{"POST", "/check-answer", map[string]string{"user_guess": "a", "correct_title": "b", "username": "c"}, http.StatusOK},
		{"GET", "/leaderboard", nil, http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := testutil.MakeRequest(tc.method, tc.path, tc.body, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tc.status)
			if tc.path != "/health" && w.Header().Get("Content-Type") != "application/json" {
				t.Errorf("Expected JSON response, got Content-Type %q", w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"GET", "/generate-lyric"},
		{"GET", "/check-answer"},
		{"POST", "/leaderboard"},
		{"DELETE", "/leaderboard"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/leaderboard", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID on logged routes")
	}
}

func TestCheckThenLeaderboard(t *testing.T) {
	mux := newTestRouter(t)

	body := map[string]string{"user_guess": "Hello", "correct_title": "hello", "username": "alice"}
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("POST", "/check-answer", body, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/leaderboard", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	if got := strings.TrimSpace(w.Body.String()); got != `[{"username":"alice","score":2}]` {
		t.Errorf("Unexpected leaderboard %s", got)
	}
}
