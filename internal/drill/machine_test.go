package drill

import (
	"errors"
	"testing"
	"time"
)

func testQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:            string(rune('a' + i)),
			Type:          TopicSeries,
			Text:          "What comes next: 2, 4, 8, 16, ?",
			CorrectAnswer: "32",
			Explanation:   "Each term doubles.",
		}
	}
	return qs
}

func timedMachine(t *testing.T, n int) (*Machine, time.Time) {
	t.Helper()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m, err := NewMachine(TopicSeries, testQuestions(n), Config{QuestionBudget: DefaultQuestionBudget}, now)
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	return m, now
}

func TestNewMachine_EmptyBatch(t *testing.T) {
	_, err := NewMachine(TopicSeries, nil, Config{}, time.Now())
	if err == nil {
		t.Fatal("expected error for empty batch — drill must not start")
	}
}

func TestMachine_MonotonicAdvance(t *testing.T) {
	m, now := timedMachine(t, 3)

	if m.Index() != 0 || m.State() != StateActive {
		t.Fatalf("initial state = %v index %d, want Active 0", m.State(), m.Index())
	}

	for i := 0; i < 3; i++ {
		if m.Index() != i {
			t.Errorf("index = %d, want %d", m.Index(), i)
		}
		out, err := m.Submit("32", now.Add(time.Duration(i+1)*5*time.Second))
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if i < 2 && out.Done {
			t.Errorf("question %d reported Done early", i)
		}
		if i == 2 && !out.Done {
			t.Error("last question did not finish the drill")
		}
	}

	if m.State() != StateFinished {
		t.Errorf("state = %v, want Finished", m.State())
	}
	if m.Current() != nil {
		t.Error("Current must be nil after finish")
	}
}

func TestMachine_EmptySubmitRejected(t *testing.T) {
	m, now := timedMachine(t, 2)

	_, err := m.Submit("   ", now)
	if !errors.Is(err, ErrEmptyAnswer) {
		t.Fatalf("err = %v, want ErrEmptyAnswer", err)
	}
	if m.Index() != 0 || m.State() != StateActive {
		t.Error("empty submit must not change state")
	}
	if left, timed := m.Remaining(now.Add(10 * time.Second)); !timed || left != 20*time.Second {
		t.Errorf("countdown must keep running, remaining = %v", left)
	}
}

func TestMachine_TimeoutSentinel(t *testing.T) {
	m, now := timedMachine(t, 1)

	expiry := now.Add(DefaultQuestionBudget)
	if !m.Expired(expiry) {
		t.Fatal("expected countdown expiry at budget")
	}
	out, err := m.Expire(expiry)
	if err != nil {
		t.Fatalf("Expire: %v", err)
	}
	if out.Correct {
		t.Error("timed-out question must be scored incorrect")
	}

	res, err := m.Finalize(expiry)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	d := res.Details[0]
	if d.UserAnswer != AnswerTimeout {
		t.Errorf("UserAnswer = %q, want %q", d.UserAnswer, AnswerTimeout)
	}
	if d.IsCorrect {
		t.Error("IsCorrect = true, want false for timeout")
	}
	if d.TimeSpentSec != 30 {
		t.Errorf("TimeSpentSec = %d, want 30", d.TimeSpentSec)
	}
}

func TestMachine_SkipRecordsSameAsTimeout(t *testing.T) {
	m, now := timedMachine(t, 2)

	if _, err := m.Skip(now.Add(3 * time.Second)); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if _, err := m.Expire(now.Add(6 * time.Second)); err != nil {
		t.Fatalf("Expire: %v", err)
	}

	res, err := m.Finalize(now.Add(6 * time.Second))
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	for i, d := range res.Details {
		if d.UserAnswer != AnswerTimeout || d.IsCorrect {
			t.Errorf("details[%d] = %+v, want timeout sentinel and incorrect", i, d)
		}
	}
}

func TestMachine_UntimedNoCountdown(t *testing.T) {
	now := time.Now()
	m, err := NewMachine(TopicSeries, testQuestions(1), Config{}, now)
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	if _, timed := m.Remaining(now.Add(time.Hour)); timed {
		t.Error("untimed drill must report no countdown")
	}
	if m.Expired(now.Add(time.Hour)) {
		t.Error("untimed drill must never expire")
	}
}

func TestMachine_FinalizeBeforeFinishedRejected(t *testing.T) {
	m, now := timedMachine(t, 2)
	if _, err := m.Submit("32", now); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := m.Finalize(now); !errors.Is(err, ErrNotFinished) {
		t.Fatalf("err = %v, want ErrNotFinished", err)
	}
}

func TestMachine_TerminalEventsAfterFinishRejected(t *testing.T) {
	m, now := timedMachine(t, 1)
	if _, err := m.Submit("32", now); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := m.Submit("32", now); !errors.Is(err, ErrNotActive) {
		t.Errorf("Submit after finish: err = %v, want ErrNotActive", err)
	}
	if _, err := m.Skip(now); !errors.Is(err, ErrNotActive) {
		t.Errorf("Skip after finish: err = %v, want ErrNotActive", err)
	}
}

func TestMachine_ThreeCorrectThenTwoWrong(t *testing.T) {
	m, now := timedMachine(t, 5)

	at := now
	for i := 0; i < 3; i++ {
		at = at.Add(4 * time.Second)
		if _, err := m.Submit("32", at); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		at = at.Add(4 * time.Second)
		if _, err := m.Submit("99", at); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	res, err := m.Finalize(at)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if res.Score != 60 {
		t.Errorf("Score = %v, want 60", res.Score)
	}
	if res.MaxStreak != 3 {
		t.Errorf("MaxStreak = %d, want 3", res.MaxStreak)
	}
	if res.TimeTakenSec != 20 {
		t.Errorf("TimeTakenSec = %d, want 20", res.TimeTakenSec)
	}
}

func TestMachine_SkipFirstThenFourCorrect(t *testing.T) {
	m, now := timedMachine(t, 5)

	if _, err := m.Skip(now.Add(2 * time.Second)); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	at := now.Add(2 * time.Second)
	for i := 0; i < 4; i++ {
		at = at.Add(4 * time.Second)
		if _, err := m.Submit(" 32 ", at); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	res, err := m.Finalize(at)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if res.Score != 80 {
		t.Errorf("Score = %v, want 80", res.Score)
	}
	if res.MaxStreak != 4 {
		t.Errorf("MaxStreak = %d, want 4", res.MaxStreak)
	}
}
