// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/votestore"
)

// DefaultPolls returns the poll set used by most tests: a two-answer
// lunch poll and a yes/no retro poll.
func DefaultPolls() []models.Poll {
	return []models.Poll{
		{
			ID:       "lunch",
			Title:    "Team lunch",
			Question: "Where should we eat?",
			Answers: []models.Answer{
				{ID: "pizza", Text: "Pizza"},
				{ID: "sushi", Text: "Sushi"},
			},
		},
		{
			ID:       "retro",
			Title:    "Retro format",
			Question: "Keep the current retro format?",
			Answers: []models.Answer{
				{ID: "yes", Text: "Yes"},
				{ID: "no", Text: "No"},
			},
		},
	}
}

// WriteConfig writes a poll configuration file into a temp dir and
// returns its path.
func WriteConfig(t *testing.T, active bool, polls []models.Poll) string {
	t.Helper()

	data, err := json.Marshal(models.PollConfig{Active: active, Polls: polls})
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// RewriteConfig overwrites an existing config file in place, simulating
// an operator edit between requests.
func RewriteConfig(t *testing.T, path string, active bool, polls []models.Poll) {
	t.Helper()

	data, err := json.Marshal(models.PollConfig{Active: active, Polls: polls})
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}
}

// NewStore creates a vote store rooted in a fresh temp dir.
func NewStore(t *testing.T) *votestore.Store {
	t.Helper()
	return votestore.New(t.TempDir())
}

// SeedVote records a vote directly through the store.
func SeedVote(t *testing.T, store *votestore.Store, pollID, userID, answerID string) {
	t.Helper()
	if err := store.Save(pollID, userID, answerID); err != nil {
		t.Fatalf("Failed to seed vote %s/%s=%s: %v", pollID, userID, answerID, err)
	}
}

// MakeFormRequest builds a form-encoded POST request.
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// WithUserCookie attaches an identity cookie to a request.
func WithUserCookie(req *http.Request, userID string) *http.Request {
	req.AddCookie(&http.Cookie{Name: models.CookieName, Value: userID})
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
