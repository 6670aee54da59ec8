package coach

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sambit/prepdrill/internal/drill"
	"github.com/sambit/prepdrill/internal/llm"
)

func sampleResult() *drill.DrillResult {
	return &drill.DrillResult{
		ID:             "drill-1",
		Topic:          drill.TopicSeries,
		Score:          60,
		Accuracy:       60,
		TotalQuestions: 5,
		TimeTakenSec:   112,
		MaxStreak:      3,
		Details: []drill.DetailEntry{
			{QuestionID: "q1", IsCorrect: true, UserAnswer: "32", CorrectAnswer: "32", TimeSpentSec: 14},
			{QuestionID: "q2", IsCorrect: true, UserAnswer: "81", CorrectAnswer: "81", TimeSpentSec: 20},
			{QuestionID: "q3", IsCorrect: true, UserAnswer: "125", CorrectAnswer: "125", TimeSpentSec: 18},
			{QuestionID: "q4", IsCorrect: false, UserAnswer: "48", CorrectAnswer: "56", TimeSpentSec: 30},
			{QuestionID: "q5", IsCorrect: false, UserAnswer: drill.AnswerTimeout, CorrectAnswer: "99", TimeSpentSec: 30},
		},
	}
}

func TestNewSummary_ReducesResult(t *testing.T) {
	sum := NewSummary(sampleResult())

	if sum.Topic != drill.TopicSeries {
		t.Errorf("topic = %q", sum.Topic)
	}
	if len(sum.Questions) != 5 {
		t.Fatalf("expected 5 question summaries, got %d", len(sum.Questions))
	}
	if !sum.Questions[0].IsCorrect || sum.Questions[0].TimedOut {
		t.Errorf("q1 summary = %+v", sum.Questions[0])
	}
	if sum.Questions[4].IsCorrect || !sum.Questions[4].TimedOut {
		t.Errorf("q5 summary = %+v, want incorrect timeout", sum.Questions[4])
	}
}

func TestPromptNeverContainsUserAnswers(t *testing.T) {
	sum := NewSummary(sampleResult())
	msg := buildCoachUserMessage(sum)

	// The candidate typed "48" for q4; only correct answers may appear.
	if strings.Contains(msg, "48") {
		t.Errorf("prompt leaked a raw user answer:\n%s", msg)
	}
	if !strings.Contains(msg, "56") {
		t.Errorf("prompt missing correct answer:\n%s", msg)
	}
	if !strings.Contains(msg, "timed out") {
		t.Errorf("prompt missing timeout marker:\n%s", msg)
	}
}

func TestAdvise_ReturnsLLMAdvice(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"advice":"Your series pattern recognition is solid but you lose time past question three. Drill mixed-operator series for 15 minutes daily."}`)},
	)
	c := New(mock, DefaultConfig())

	advice := c.Advise(context.Background(), NewSummary(sampleResult()))
	if advice == Fallback {
		t.Fatal("expected LLM advice, got fallback")
	}
	if !strings.Contains(advice, "series") {
		t.Errorf("unexpected advice: %q", advice)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestAdvise_FallbackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	c := New(mock, DefaultConfig())

	advice := c.Advise(context.Background(), NewSummary(sampleResult()))
	if advice != Fallback {
		t.Fatalf("expected fallback, got %q", advice)
	}
}

func TestAdvise_FallbackOnMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{not json}`)},
	)
	c := New(mock, DefaultConfig())

	advice := c.Advise(context.Background(), NewSummary(sampleResult()))
	if advice != Fallback {
		t.Fatalf("expected fallback, got %q", advice)
	}
}

func TestAdvise_FallbackOnEmptyAdvice(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"advice":""}`)},
	)
	c := New(mock, DefaultConfig())

	advice := c.Advise(context.Background(), NewSummary(sampleResult()))
	if advice != Fallback {
		t.Fatalf("expected fallback, got %q", advice)
	}
}
