package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/avelis/revu/internal/redact"
	"github.com/avelis/revu/internal/review"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	requestTimeout = 30 * time.Second
)

// Analyzer reviews commits through the Gemini generateContent endpoint.
type Analyzer struct {
	apiKey      string
	model       string
	baseURL     string
	maxDiffSize int
	client      *http.Client
	log         *slog.Logger
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithBaseURL points the analyzer at a different endpoint. Used by tests.
func WithBaseURL(base string) Option {
	return func(a *Analyzer) { a.baseURL = base }
}

// New creates an Analyzer. An empty apiKey disables analysis: every call
// returns the "N/A" sentinel without touching the network.
func New(apiKey, model string, maxDiffSize int, log *slog.Logger, opts ...Option) *Analyzer {
	if log == nil {
		log = slog.Default()
	}
	a := &Analyzer{
		apiKey:      apiKey,
		model:       model,
		baseURL:     defaultBaseURL,
		maxDiffSize: maxDiffSize,
		client:      &http.Client{Timeout: requestTimeout},
		log:         log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Analyze reviews one commit's diff. All failure modes degrade to a
// structured Analysis carrying a sentinel score.
func (a *Analyzer) Analyze(ctx context.Context, commit review.Commit, diff string) review.Analysis {
	if a.apiKey == "" {
		return review.Analysis{
			Score:    review.ScoreUnavailable,
			Feedback: "AI analysis unavailable - no API key configured",
		}
	}

	if len(diff) > a.maxDiffSize {
		a.log.Debug("diff truncated", "commit", commit.ShortHash(), "from", len(diff), "to", a.maxDiffSize)
		diff = diff[:a.maxDiffSize]
	}
	diff = redact.Secrets(diff)

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: buildPrompt(commit, diff)}}}},
	})
	if err != nil {
		return failed(err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", a.baseURL, a.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return failed(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-goog-api-key", a.apiKey)

	a.log.Debug("requesting analysis", "commit", commit.ShortHash())
	resp, err := a.client.Do(httpReq)
	if err != nil {
		a.log.Error("analysis request failed", "commit", commit.ShortHash(), "err", err)
		return failed(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failed(err)
	}

	a.log.Info("analysis response", "commit", commit.ShortHash(), "status", resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		a.log.Error("analysis API error", "status", resp.StatusCode, "body", string(body))
		return review.Analysis{
			Score:    review.ScoreError,
			Feedback: fmt.Sprintf("API Error: %d - %s", resp.StatusCode, string(body)),
		}
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return failed(err)
	}

	// A well-formed response with no candidates or parts degrades to empty
	// feedback, which score extraction maps to "N/A".
	var feedback string
	if len(result.Candidates) > 0 && len(result.Candidates[0].Content.Parts) > 0 {
		feedback = result.Candidates[0].Content.Parts[0].Text
	}

	analysis := review.Analysis{
		Score:       extractScore(feedback),
		Feedback:    feedback,
		Suggestions: extractSuggestions(feedback),
	}
	a.log.Debug("analysis complete", "commit", commit.ShortHash(), "score", analysis.Score)
	return analysis
}

func failed(err error) review.Analysis {
	return review.Analysis{
		Score:    review.ScoreError,
		Feedback: fmt.Sprintf("Analysis failed: %v", err),
	}
}
