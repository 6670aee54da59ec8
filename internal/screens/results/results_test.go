package results

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sambit/prepdrill/internal/coach"
	"github.com/sambit/prepdrill/internal/drill"
	"github.com/sambit/prepdrill/internal/llm"
	"github.com/sambit/prepdrill/internal/user"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testResult() *drill.DrillResult {
	return &drill.DrillResult{
		ID:             "drill-1",
		Date:           time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Topic:          drill.TopicSeries,
		Score:          100 * 2.0 / 3.0,
		TotalQuestions: 3,
		TimeTakenSec:   58,
		Accuracy:       100 * 2.0 / 3.0,
		MaxStreak:      2,
		Details: []drill.DetailEntry{
			{QuestionID: "q1", IsCorrect: true, UserAnswer: "31", CorrectAnswer: "31", TimeSpentSec: 12},
			{QuestionID: "q2", IsCorrect: true, UserAnswer: "144", CorrectAnswer: "144", TimeSpentSec: 18},
			{QuestionID: "q3", IsCorrect: false, UserAnswer: drill.AnswerTimeout, CorrectAnswer: "92", TimeSpentSec: 30},
		},
	}
}

func testQuestions() []drill.Question {
	return []drill.Question{
		{ID: "q1", Text: "7, 13, 19, 25, ?", CorrectAnswer: "31", Explanation: "Add 6."},
		{ID: "q2", Text: "1, 8, 27, 64, ?", CorrectAnswer: "144", Explanation: "Not cubes here."},
		{ID: "q3", Text: "2, 6, 18, 54, ?", CorrectAnswer: "92", Explanation: "Times 3, minus a bit."},
	}
}

func testCoach(advice string) *coach.Coach {
	content, _ := json.Marshal(map[string]string{"advice": advice})
	provider := llm.NewMockProvider(llm.MockResponse{Content: content})
	return coach.New(provider, coach.DefaultConfig())
}

func testResults(advice string) (*ResultsScreen, *user.Session) {
	sess := &user.Session{User: user.New("Sam")}
	return New(sess, testCoach(advice), testResult(), testQuestions()), sess
}

func TestResultsScreen_InitRecordsHistoryOnce(t *testing.T) {
	r, sess := testResults("Nice work.")

	cmd := r.Init()
	if cmd == nil {
		t.Fatal("expected an advice command from Init")
	}
	if got := len(sess.User.History()); got != 1 {
		t.Fatalf("history length = %d, want 1", got)
	}

	// A second Init must not record the result again.
	r.Init()
	if got := len(sess.User.History()); got != 1 {
		t.Errorf("history length after second Init = %d, want 1", got)
	}
}

func TestResultsScreen_AdviceShownWhenReady(t *testing.T) {
	r, _ := testResults("Slow down on series questions.")

	cmd := r.Init()
	msg := cmd()

	scr, _ := r.Update(msg)
	rs := scr.(*ResultsScreen)

	view := rs.View(80, 30)
	if !strings.Contains(view, "Slow down on series questions.") {
		t.Error("expected the advice text in the view")
	}
}

func TestResultsScreen_StaleAdviceIgnored(t *testing.T) {
	r, _ := testResults("Nice work.")
	r.Init()

	scr, _ := r.Update(adviceReadyMsg{Gen: 99, Advice: "stale"})
	rs := scr.(*ResultsScreen)

	if rs.advice == "stale" {
		t.Error("expected stale advice to be dropped")
	}
	if !rs.adviceLoading {
		t.Error("expected advice to still be loading")
	}
}

func TestResultsScreen_FallbackOnProviderError(t *testing.T) {
	sess := &user.Session{User: user.New("Sam")}
	provider := llm.NewMockProvider() // empty queue: every call fails
	coachSvc := coach.New(provider, coach.DefaultConfig())
	r := New(sess, coachSvc, testResult(), testQuestions())

	msg := r.Init()()
	scr, _ := r.Update(msg)
	rs := scr.(*ResultsScreen)

	view := rs.View(80, 30)
	if !strings.Contains(view, coach.Fallback) {
		t.Error("expected the fallback advice in the view")
	}
}

func TestResultsScreen_ViewShowsScoreAndDetails(t *testing.T) {
	r, _ := testResults("Nice work.")

	view := r.View(80, 30)
	if !strings.Contains(view, "66.7%") {
		t.Error("expected the score in the view")
	}
	if !strings.Contains(view, "2/3 correct") {
		t.Error("expected the correct count in the view")
	}
	if !strings.Contains(view, "timed out") {
		t.Error("expected the timeout marker in the view")
	}
	if !strings.Contains(view, "Add 6.") {
		t.Error("expected the selected question's explanation in the view")
	}
}

func TestResultsScreen_ReviewNavigation(t *testing.T) {
	r, _ := testResults("Nice work.")

	scr, _ := r.Update(keyPress('j'))
	rs := scr.(*ResultsScreen)
	if rs.selected != 1 {
		t.Errorf("selected = %d, want 1", rs.selected)
	}

	view := rs.View(80, 30)
	if !strings.Contains(view, "Not cubes here.") {
		t.Error("expected the second question's explanation after navigating")
	}
}
