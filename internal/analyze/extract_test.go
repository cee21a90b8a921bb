package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avelis/revu/internal/review"
)

func TestExtractScore(t *testing.T) {
	cases := []struct {
		name     string
		feedback string
		want     string
	}{
		{"plain score", "Overall this is solid. Score: 7/10", "7"},
		{"spaced fraction", "score: 8 / 10 overall", "8"},
		{"bare fraction", "I'd rate this 9/10.", "9"},
		{"score without denominator", "Quality score: 6", "6"},
		{"uppercase", "SCORE: 10/10", "10"},
		{"out of range", "the score is 11", review.ScoreUnavailable},
		{"zero rejected", "Score: 0/10", review.ScoreUnavailable},
		{"no pattern", "Looks reasonable, no complaints.", review.ScoreUnavailable},
		{"empty", "", review.ScoreUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractScore(tc.feedback))
		})
	}
}

func TestExtractScore_PatternPriorityBeatsPosition(t *testing.T) {
	// The bare fraction appears first in the text, but the explicit
	// "score:" pattern is tried first and wins.
	feedback := "Readability is 3/10 at best, but overall score: 9/10."
	assert.Equal(t, "9", extractScore(feedback))
}

func TestExtractSuggestions_BlankLineKeepsCollecting(t *testing.T) {
	feedback := "Suggestions:\n- do X\n- do Y\n\nMore prose"
	assert.Equal(t, []string{"do X", "do Y"}, extractSuggestions(feedback))
}

func TestExtractSuggestions_ProseEndsCollection(t *testing.T) {
	feedback := strings.Join([]string{
		"Suggestions:",
		"- first",
		"this continuation line ends the list",
		"- not captured",
	}, "\n")
	assert.Equal(t, []string{"first"}, extractSuggestions(feedback))
}

func TestExtractSuggestions_Retrigger(t *testing.T) {
	feedback := strings.Join([]string{
		"Suggestions:",
		"- first",
		"prose break",
		"Things to improve:",
		"* second",
		"• third",
	}, "\n")
	assert.Equal(t, []string{"first", "second", "third"}, extractSuggestions(feedback))
}

func TestExtractSuggestions_TriggerWordInBulletRearmsInsteadOfCapturing(t *testing.T) {
	feedback := strings.Join([]string{
		"Suggestions:",
		"- improve naming",
		"- use contexts",
	}, "\n")
	assert.Equal(t, []string{"use contexts"}, extractSuggestions(feedback))
}

func TestExtractSuggestions_CapsAtFive(t *testing.T) {
	lines := []string{"Suggestions:"}
	for i := 0; i < 9; i++ {
		lines = append(lines, "- item "+string(rune('a'+i)))
	}
	got := extractSuggestions(strings.Join(lines, "\n"))
	assert.Len(t, got, review.MaxSuggestions)
	assert.Equal(t, "item a", got[0])
	assert.Equal(t, "item e", got[4])
}

func TestExtractSuggestions_NoTriggerNoCapture(t *testing.T) {
	feedback := "- stray bullet\n- another"
	assert.Empty(t, extractSuggestions(feedback))
}
