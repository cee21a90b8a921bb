package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelis/revu/internal/review"
)

var testCommit = review.Commit{
	Hash:    "0123456789abcdef0123456789abcdef01234567",
	Author:  "Ann Author",
	Date:    "2026-08-01 10:00:00 +0000",
	Message: "fix widget",
}

func geminiReply(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return string(b)
}

func TestAnalyze_NoAPIKey_NoNetworkCalls(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, geminiReply("Score: 9/10"))
	}))
	defer srv.Close()

	a := New("", "gemini-2.0-flash", 3000, nil, WithBaseURL(srv.URL))
	got := a.Analyze(context.Background(), testCommit, "diff")

	assert.Equal(t, review.ScoreUnavailable, got.Score)
	assert.Contains(t, got.Feedback, "no API key configured")
	assert.Empty(t, got.Suggestions)
	assert.Equal(t, 0, calls)
}

func TestAnalyze_Success(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-goog-api-key")
		fmt.Fprint(w, geminiReply("Decent change. Score: 8/10\n\nSuggestions:\n- add tests\n- split the function"))
	}))
	defer srv.Close()

	a := New("test-key", "gemini-2.0-flash", 3000, nil, WithBaseURL(srv.URL))
	got := a.Analyze(context.Background(), testCommit, "diff --git a/x b/x")

	assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "8", got.Score)
	assert.Contains(t, got.Feedback, "Decent change")
	assert.Equal(t, []string{"add tests", "split the function"}, got.Suggestions)
}

func TestAnalyze_PromptCarriesCommitAndTruncatedDiff(t *testing.T) {
	var prompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req geminiRequest
		require.NoError(t, json.Unmarshal(body, &req))
		prompt = req.Contents[0].Parts[0].Text
		fmt.Fprint(w, geminiReply("ok"))
	}))
	defer srv.Close()

	a := New("test-key", "gemini-2.0-flash", 10, nil, WithBaseURL(srv.URL))
	a.Analyze(context.Background(), testCommit, strings.Repeat("x", 50))

	assert.Contains(t, prompt, testCommit.Hash)
	assert.Contains(t, prompt, "Ann Author")
	assert.Contains(t, prompt, "fix widget")
	// Hard prefix cut at MaxDiffSize.
	assert.Contains(t, prompt, strings.Repeat("x", 10))
	assert.NotContains(t, prompt, strings.Repeat("x", 11))
}

func TestAnalyze_RedactsSecretsFromDiff(t *testing.T) {
	var prompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req geminiRequest
		require.NoError(t, json.Unmarshal(body, &req))
		prompt = req.Contents[0].Parts[0].Text
		fmt.Fprint(w, geminiReply("ok"))
	}))
	defer srv.Close()

	a := New("test-key", "gemini-2.0-flash", 3000, nil, WithBaseURL(srv.URL))
	a.Analyze(context.Background(), testCommit, `+password: "supersecretvalue"`)

	assert.NotContains(t, prompt, "supersecretvalue")
	assert.Contains(t, prompt, "[REDACTED]")
}

func TestAnalyze_APIErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, "quota exceeded")
	}))
	defer srv.Close()

	a := New("test-key", "gemini-2.0-flash", 3000, nil, WithBaseURL(srv.URL))
	got := a.Analyze(context.Background(), testCommit, "diff")

	assert.Equal(t, review.ScoreError, got.Score)
	assert.Contains(t, got.Feedback, "API Error: 429")
	assert.Contains(t, got.Feedback, "quota exceeded")
	assert.Empty(t, got.Suggestions)
}

func TestAnalyze_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	a := New("test-key", "gemini-2.0-flash", 3000, nil, WithBaseURL(srv.URL))
	got := a.Analyze(context.Background(), testCommit, "diff")

	assert.Equal(t, review.ScoreError, got.Score)
	assert.Contains(t, got.Feedback, "Analysis failed:")
}

func TestAnalyze_MalformedJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer srv.Close()

	a := New("test-key", "gemini-2.0-flash", 3000, nil, WithBaseURL(srv.URL))
	got := a.Analyze(context.Background(), testCommit, "diff")

	assert.Equal(t, review.ScoreError, got.Score)
	assert.Contains(t, got.Feedback, "Analysis failed:")
}

func TestAnalyze_EmptyCandidatesDegradeToNA(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer srv.Close()

	a := New("test-key", "gemini-2.0-flash", 3000, nil, WithBaseURL(srv.URL))
	got := a.Analyze(context.Background(), testCommit, "diff")

	assert.Equal(t, review.ScoreUnavailable, got.Score)
	assert.Equal(t, "", got.Feedback)
}
