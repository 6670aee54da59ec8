package drill

import (
	"fmt"
	"time"
)

// Finalize builds a DrillResult from a complete details sequence. The
// details length must equal totalQuestions; the max streak is recomputed
// from the final sequence rather than trusted from any incremental
// counter, so partial bookkeeping can never leak into the result.
func Finalize(details []DetailEntry, totalQuestions, elapsedSec int, topic Topic, now time.Time) (*DrillResult, error) {
	if len(details) != totalQuestions {
		return nil, fmt.Errorf("%w: %d of %d questions recorded", ErrNotFinished, len(details), totalQuestions)
	}
	if totalQuestions == 0 {
		return nil, fmt.Errorf("%w: empty drill", ErrNotFinished)
	}

	correct := 0
	for _, d := range details {
		if d.IsCorrect {
			correct++
		}
	}
	score := 100 * float64(correct) / float64(totalQuestions)

	out := make([]DetailEntry, len(details))
	copy(out, details)

	return &DrillResult{
		ID:             fmt.Sprintf("drill-%d", now.UnixMilli()),
		Date:           now,
		Topic:          topic,
		Score:          score,
		TotalQuestions: totalQuestions,
		TimeTakenSec:   elapsedSec,
		Accuracy:       score,
		MaxStreak:      longestRun(out),
		Details:        out,
	}, nil
}

// longestRun scans details in order and returns the length of the longest
// run of consecutive correct entries.
func longestRun(details []DetailEntry) int {
	best, run := 0, 0
	for _, d := range details {
		if d.IsCorrect {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}
