package analyze

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/avelis/revu/internal/review"
)

// scorePatterns are tried in order of decreasing specificity. Only the
// first occurrence per pattern is considered: a pattern whose first match
// is out of range falls through to the next pattern, not to its own later
// matches.
var scorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`score[:\s]*(\d+)/10`),
	regexp.MustCompile(`score[:\s]*(\d+)\s*/\s*10`),
	regexp.MustCompile(`(\d+)/10`),
	regexp.MustCompile(`score[:\s]*(\d+)`),
}

// extractScore pulls a 1-10 quality score out of free-form feedback.
// Returns "N/A" when no pattern yields an in-range value.
func extractScore(feedback string) string {
	lower := strings.ToLower(feedback)
	for _, pat := range scorePatterns {
		m := pat.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 10 {
			return m[1]
		}
	}
	return review.ScoreUnavailable
}

var bulletMarkers = []string{"-", "*", "•"}

// extractSuggestions scans feedback line by line. A line mentioning
// "suggestion" or "improve" starts collection; bulleted lines are captured;
// any other non-empty line ends collection until the next trigger. Blank
// lines leave the state untouched. At most MaxSuggestions are returned.
//
// A bulleted line that itself contains a trigger word re-arms collection
// instead of being captured.
func extractSuggestions(feedback string) []string {
	var suggestions []string
	collecting := false

	for _, line := range strings.Split(feedback, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		switch {
		case strings.Contains(lower, "suggestion") || strings.Contains(lower, "improve"):
			collecting = true
		case collecting && startsWithBullet(line):
			suggestions = append(suggestions, trimBullet(line))
		case collecting && line != "":
			collecting = false
		}
	}

	if len(suggestions) > review.MaxSuggestions {
		suggestions = suggestions[:review.MaxSuggestions]
	}
	return suggestions
}

func startsWithBullet(line string) bool {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

func trimBullet(line string) string {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return strings.TrimSpace(strings.TrimPrefix(line, m))
		}
	}
	return line
}
