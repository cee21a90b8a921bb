package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalysisNumeric(t *testing.T) {
	cases := []struct {
		score string
		want  bool
	}{
		{"7", true},
		{"10", true},
		{ScoreUnavailable, false},
		{ScoreError, false},
		{"", false},
		{"7.5", false},
	}
	for _, tc := range cases {
		a := Analysis{Score: tc.score}
		assert.Equal(t, tc.want, a.Numeric(), "score %q", tc.score)
	}
}

func TestAverageScore_ExcludesSentinels(t *testing.T) {
	reviews := []Review{
		{Analysis: Analysis{Score: "8"}},
		{Analysis: Analysis{Score: ScoreUnavailable}},
		{Analysis: Analysis{Score: "6"}},
	}
	avg, ok := AverageScore(reviews)
	assert.True(t, ok)
	assert.Equal(t, 7.0, avg)
}

func TestAverageScore_NoNumericScores(t *testing.T) {
	reviews := []Review{
		{Analysis: Analysis{Score: ScoreUnavailable}},
		{Analysis: Analysis{Score: ScoreError}},
	}
	_, ok := AverageScore(reviews)
	assert.False(t, ok)

	_, ok = AverageScore(nil)
	assert.False(t, ok)
}

func TestNumericScores_PreservesOrder(t *testing.T) {
	reviews := []Review{
		{Analysis: Analysis{Score: "3"}},
		{Analysis: Analysis{Score: ScoreError}},
		{Analysis: Analysis{Score: "9"}},
	}
	assert.Equal(t, []string{"3", "9"}, NumericScores(reviews))
}

func TestCommitShortHash(t *testing.T) {
	c := Commit{Hash: "0123456789abcdef0123456789abcdef01234567"}
	assert.Equal(t, "01234567", c.ShortHash())

	short := Commit{Hash: "abc"}
	assert.Equal(t, "abc", short.ShortHash())
}

func TestRepoNameFromURL(t *testing.T) {
	assert.Equal(t, "widget", RepoNameFromURL("https://github.com/octocat/widget.git"))
	assert.Equal(t, "widget", RepoNameFromURL("https://github.com/octocat/widget"))
	assert.Equal(t, "widget", RepoNameFromURL("git@github.com:octocat/widget.git"))
}
