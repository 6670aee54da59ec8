package coach

import (
	"fmt"
	"strings"
)

const coachSystemPrompt = `You are a bank-exam mentor reviewing a candidate's timed quantitative aptitude drill. Your advice is read in ten seconds on a results screen.`

func buildCoachUserMessage(sum Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", sum.Topic.DisplayName())
	fmt.Fprintf(&b, "Score: %.1f%% (%d questions)\n", sum.Score, sum.TotalQuestions)
	fmt.Fprintf(&b, "Time taken: %ds\n", sum.TimeTakenSec)
	fmt.Fprintf(&b, "Best streak: %d\n", sum.MaxStreak)

	b.WriteString("\nPer question:\n")
	for i, q := range sum.Questions {
		status := "correct"
		switch {
		case q.TimedOut:
			status = "timed out"
		case !q.IsCorrect:
			status = "wrong"
		}
		fmt.Fprintf(&b, "%d. %s in %ds (answer was %s)\n", i+1, status, q.TimeSpentSec, q.CorrectAnswer)
	}

	b.WriteString(`
Instructions:
Write 2-3 sentences of coaching for this candidate:
1. Name the single biggest issue you see (accuracy, speed, or timeouts on specific questions).
2. Give one concrete speed technique or practice habit for this topic.
3. Be direct and encouraging. No filler, no headings, no lists.`)

	return b.String()
}
