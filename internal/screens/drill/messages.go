package drill

import (
	"time"

	engine "github.com/sambit/prepdrill/internal/drill"
)

// batchReadyMsg is sent when the question batch fetch completes. Gen ties
// the completion to the fetch that produced it; stale completions are
// discarded.
type batchReadyMsg struct {
	Gen       int
	Questions []engine.Question
	Err       error
}

// timerTickMsg is sent every second to drive the countdown.
type timerTickMsg time.Time
