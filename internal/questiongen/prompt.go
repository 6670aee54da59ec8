package questiongen

import (
	"fmt"
	"strings"

	"github.com/sambit/prepdrill/internal/drill"
)

const systemPrompt = `You are a question setter for Indian bank exams (IBPS, SBI, RBI prelims).

Rules:
- Generate quantitative aptitude questions of the requested topic at genuine prelims difficulty.
- Use plain ASCII text for all math. No LaTeX, no Unicode symbols. Use / for fractions, * or x for multiplication, and standard operators.
- Each question must be solvable in under 30 seconds by a well-prepared candidate using speed techniques.
- The correct answer must be exact and unambiguous.
- The explanation must show the fastest solution path, naming the trick used (digit-sum check, approximation, option elimination).
- Do not repeat question patterns within the batch.`

// topicGuidance holds per-topic instructions appended to the user message.
var topicGuidance = map[drill.Topic]string{
	drill.TopicSimplification: `Topic: Simplification
Each question is an arithmetic expression to evaluate exactly, using BODMAS,
percentages, fractions or surds. The answer is a single number.
Leave options empty; the candidate types the answer.`,

	drill.TopicSeries: `Topic: Number Series
Each question shows a sequence with one missing term marked "?". Use standard
prelims patterns: differences, ratios, squares, cubes, alternating or mixed
operations. The answer is the missing number.
Leave options empty; the candidate types the answer.`,

	drill.TopicQuadratic: `Topic: Quadratic Comparison
Each question gives two quadratic equations, one in x and one in y. The
candidate solves both and compares the roots. The answer must be exactly one
of: "x > y", "x < y", "x >= y", "x <= y", "x = y or no relation".
Provide those five strings as options, in that order.`,

	drill.TopicApproximation: `Topic: Approximation
Each question is a messy arithmetic expression where the candidate finds the
approximate value by rounding. The answer is the closest round number.
Leave options empty; the candidate types the answer.`,
}

// buildUserMessage constructs the user message for a batch request.
func buildUserMessage(input BatchInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate exactly %d questions.\n\n", input.Count)

	if g, ok := topicGuidance[input.Topic]; ok {
		b.WriteString(g)
	} else {
		fmt.Fprintf(&b, "Topic: %s", input.Topic.DisplayName())
	}

	return b.String()
}
