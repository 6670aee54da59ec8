package drill

import (
	"errors"
	"time"
)

// State is the coarse lifecycle phase of a drill.
type State int

const (
	StateLoading  State = iota // questions not yet available
	StateActive                // serving question at Index()
	StateFinished              // every question has a recorded outcome
)

// DefaultQuestionBudget is the per-question countdown in timed mode.
const DefaultQuestionBudget = 30 * time.Second

// DefaultCount is the number of questions in a standard drill.
const DefaultCount = 5

var (
	// ErrEmptyAnswer is returned when Submit is called with a blank
	// answer. The question stays active and the countdown keeps running.
	ErrEmptyAnswer = errors.New("empty answer")

	// ErrNotActive is returned for terminal events outside Active state.
	ErrNotActive = errors.New("drill is not active")

	// ErrNotFinished is returned when Finalize is called before every
	// question has produced a detail entry.
	ErrNotFinished = errors.New("drill is not finished")
)

// Config selects the drill variant.
type Config struct {
	// QuestionBudget is the per-question countdown. Zero means untimed.
	QuestionBudget time.Duration
}

// Timed reports whether a per-question countdown applies.
func (c Config) Timed() bool { return c.QuestionBudget > 0 }

// Outcome describes the result of one terminal event on a question.
type Outcome struct {
	Correct bool
	Done    bool // true when this event finished the drill
}

// Machine is the drill state machine. It exclusively owns the in-progress
// details buffer until Finalize hands the finished result to the caller.
// All methods take the current time explicitly so the machine itself is
// deterministic and clock-free.
type Machine struct {
	topic     Topic
	cfg       Config
	questions []Question

	state   State
	index   int
	details []DetailEntry

	streak    int
	maxStreak int

	startedAt     time.Time
	questionStart time.Time
}

// NewMachine creates a machine over a non-empty question batch and starts
// the drill at question 0. An empty batch is "no drill available" and must
// be handled by the caller before constructing a machine.
func NewMachine(topic Topic, questions []Question, cfg Config, now time.Time) (*Machine, error) {
	if len(questions) == 0 {
		return nil, errors.New("no questions in batch")
	}
	return &Machine{
		topic:         topic,
		cfg:           cfg,
		questions:     questions,
		state:         StateActive,
		details:       make([]DetailEntry, 0, len(questions)),
		startedAt:     now,
		questionStart: now,
	}, nil
}

// State returns the current lifecycle phase.
func (m *Machine) State() State { return m.state }

// Topic returns the drill's topic.
func (m *Machine) Topic() Topic { return m.topic }

// Index returns the 0-based index of the active question.
func (m *Machine) Index() int { return m.index }

// Total returns the number of questions in the drill.
func (m *Machine) Total() int { return len(m.questions) }

// CorrectCount returns the number of correct answers recorded so far.
func (m *Machine) CorrectCount() int {
	n := 0
	for _, d := range m.details {
		if d.IsCorrect {
			n++
		}
	}
	return n
}

// Current returns the active question, or nil outside Active state.
func (m *Machine) Current() *Question {
	if m.state != StateActive {
		return nil
	}
	return &m.questions[m.index]
}

// Remaining returns the countdown left for the active question. The bool
// is false in untimed mode, where no budget applies.
func (m *Machine) Remaining(now time.Time) (time.Duration, bool) {
	if !m.cfg.Timed() || m.state != StateActive {
		return 0, false
	}
	left := m.cfg.QuestionBudget - now.Sub(m.questionStart)
	if left < 0 {
		left = 0
	}
	return left, true
}

// Expired reports whether the active question's countdown has hit zero.
func (m *Machine) Expired(now time.Time) bool {
	left, timed := m.Remaining(now)
	return timed && left <= 0
}

// Submit records an explicit answer for the active question. A blank
// answer is rejected with ErrEmptyAnswer and no state changes.
func (m *Machine) Submit(answer string, now time.Time) (Outcome, error) {
	if m.state != StateActive {
		return Outcome{}, ErrNotActive
	}
	if Normalize(answer) == "" {
		return Outcome{}, ErrEmptyAnswer
	}
	q := m.questions[m.index]
	correct := IsCorrect(answer, q.CorrectAnswer)
	return m.record(answer, correct, now), nil
}

// Skip records the active question as not answered. Skip and countdown
// expiry converge on the same outcome path: sentinel answer, scored
// incorrect unconditionally.
func (m *Machine) Skip(now time.Time) (Outcome, error) {
	if m.state != StateActive {
		return Outcome{}, ErrNotActive
	}
	return m.record(AnswerTimeout, false, now), nil
}

// Expire is the countdown-expiry terminal event. Whatever text the user
// had typed at expiry is never evaluated.
func (m *Machine) Expire(now time.Time) (Outcome, error) {
	return m.Skip(now)
}

// record appends the detail entry for the active question and advances.
// The entry is appended unconditionally, including for the final question,
// before the machine can ever report Finished — Finalize trusts only this
// buffer.
func (m *Machine) record(userAnswer string, correct bool, now time.Time) Outcome {
	q := m.questions[m.index]
	m.details = append(m.details, DetailEntry{
		QuestionID:    q.ID,
		IsCorrect:     correct,
		UserAnswer:    userAnswer,
		CorrectAnswer: q.CorrectAnswer,
		TimeSpentSec:  int(now.Sub(m.questionStart).Seconds()),
	})

	if correct {
		m.streak++
		if m.streak > m.maxStreak {
			m.maxStreak = m.streak
		}
	} else {
		m.streak = 0
	}

	if m.index == len(m.questions)-1 {
		m.state = StateFinished
		return Outcome{Correct: correct, Done: true}
	}

	m.index++
	m.questionStart = now
	return Outcome{Correct: correct}
}

// Finalize aggregates the completed drill into a DrillResult. It operates
// only on the details buffer and fails unless every question has exactly
// one recorded entry.
func (m *Machine) Finalize(now time.Time) (*DrillResult, error) {
	if m.state != StateFinished {
		return nil, ErrNotFinished
	}
	elapsed := int(now.Sub(m.startedAt).Seconds())
	return Finalize(m.details, len(m.questions), elapsed, m.topic, now)
}
