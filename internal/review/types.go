package review

// Sentinel scores. Anything else stored in Analysis.Score is a decimal
// digit string in [1,10].
const (
	// ScoreUnavailable means no analysis was attempted (no API key, or no
	// recognizable score in the model's feedback).
	ScoreUnavailable = "N/A"
	// ScoreError means analysis was attempted and failed.
	ScoreError = "Error"
)

// MaxSuggestions caps the suggestion list extracted from model feedback.
const MaxSuggestions = 5

// Commit is one parsed line of commit history.
type Commit struct {
	Hash    string
	Author  string
	Date    string
	Message string
}

// ShortHash returns the first 8 characters of the commit hash.
func (c Commit) ShortHash() string {
	if len(c.Hash) > 8 {
		return c.Hash[:8]
	}
	return c.Hash
}

// Analysis is the structured result of reviewing one commit's diff.
type Analysis struct {
	Score       string
	Feedback    string
	Suggestions []string
}

// Numeric reports whether the score is a plain digit string rather than a
// sentinel. Only numeric scores participate in averages.
func (a Analysis) Numeric() bool {
	if a.Score == "" {
		return false
	}
	for _, r := range a.Score {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Review ties a commit and its analysis to the repository it came from.
type Review struct {
	Repository string
	Commit     Commit
	Analysis   Analysis
}

// NumericScores returns the numeric score strings across reviews, in order.
func NumericScores(reviews []Review) []string {
	var scores []string
	for _, r := range reviews {
		if r.Analysis.Numeric() {
			scores = append(scores, r.Analysis.Score)
		}
	}
	return scores
}

// AverageScore computes the mean of the numeric scores, excluding sentinels
// from both the sum and the denominator. ok is false when no review carries
// a numeric score.
func AverageScore(reviews []Review) (avg float64, ok bool) {
	var sum, n int
	for _, r := range reviews {
		if !r.Analysis.Numeric() {
			continue
		}
		v := 0
		for _, d := range r.Analysis.Score {
			v = v*10 + int(d-'0')
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}
