package drill

import "time"

// Question is a single drill question as delivered by the generation service.
type Question struct {
	// ID is an opaque unique identifier assigned by the service.
	ID string

	// Type is the topic this question belongs to.
	Type Topic

	// Text is the problem statement shown to the user.
	Text string

	// CorrectAnswer is the canonical answer string, e.g. "144" or "x > y".
	CorrectAnswer string

	// Explanation is a short rationale shown in post-drill review.
	Explanation string

	// Options holds up to 5 candidate answers. Empty for free-text
	// questions. When present, one option must equal CorrectAnswer
	// under Normalize.
	Options []string
}

// AnswerTimeout is the sentinel recorded as the user's answer when a
// question ends by skip or countdown expiry.
const AnswerTimeout = "Timeout"

// DetailEntry is the per-question outcome recorded during a drill.
type DetailEntry struct {
	QuestionID    string
	IsCorrect     bool
	UserAnswer    string
	CorrectAnswer string
	TimeSpentSec  int
}

// DrillResult is the finished outcome of one drill.
type DrillResult struct {
	// ID is a time-derived session-unique identifier.
	ID string

	// Date is when the drill finished.
	Date time.Time

	// Topic is the drill's topic.
	Topic Topic

	// Score is the percentage of correct answers in [0, 100], unrounded.
	Score float64

	// TotalQuestions is the number of questions presented.
	TotalQuestions int

	// TimeTakenSec is the wall-clock duration of the whole drill.
	TimeTakenSec int

	// Accuracy mirrors Score. Kept as a separate field so the display
	// layer can diverge the two later without touching the core.
	Accuracy float64

	// MaxStreak is the longest run of consecutive correct answers.
	MaxStreak int

	// Details holds one entry per question, in presentation order.
	Details []DetailEntry
}
