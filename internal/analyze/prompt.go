package analyze

import (
	"fmt"

	"github.com/avelis/revu/internal/review"
)

const promptTemplate = `Please review this Git commit and provide feedback:

Commit Hash: %s
Author: %s
Date: %s
Message: %s

Diff:
%s

Please analyze this commit and provide:
1. A quality score (1-10)
2. Overall feedback
3. Specific suggestions for improvement
4. Code quality concerns
5. Best practices compliance

Focus on:
- Code clarity and readability
- Potential bugs or issues
- Security concerns
- Performance implications
- Testing considerations
- Documentation needs`

func buildPrompt(c review.Commit, diff string) string {
	return fmt.Sprintf(promptTemplate, c.Hash, c.Author, c.Date, c.Message, diff)
}
