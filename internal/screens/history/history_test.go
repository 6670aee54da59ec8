package history

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sambit/prepdrill/internal/drill"
	"github.com/sambit/prepdrill/internal/user"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func result(topic drill.Topic, score float64, finished time.Time) drill.DrillResult {
	return drill.DrillResult{
		ID:             "drill-" + topic.DisplayName(),
		Date:           finished,
		Topic:          topic,
		Score:          score,
		TotalQuestions: 2,
		Accuracy:       score,
		Details: []drill.DetailEntry{
			{QuestionID: "q1", IsCorrect: true, UserAnswer: "5", CorrectAnswer: "5", TimeSpentSec: 10},
			{QuestionID: "q2", IsCorrect: false, UserAnswer: drill.AnswerTimeout, CorrectAnswer: "9", TimeSpentSec: 30},
		},
	}
}

func TestHistoryScreen_EmptyState(t *testing.T) {
	sess := &user.Session{User: user.New("Sam")}
	h := New(sess)

	view := h.View(80, 24)
	if !strings.Contains(view, "No drills yet") {
		t.Error("expected the empty-state message")
	}
}

func TestHistoryScreen_NewestFirst(t *testing.T) {
	sess := &user.Session{User: user.New("Sam")}
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	sess.User.AddResult(result(drill.TopicSeries, 40, base))
	sess.User.AddResult(result(drill.TopicQuadratic, 80, base.Add(time.Hour)))

	h := New(sess)
	if h.results[0].Topic != drill.TopicQuadratic {
		t.Errorf("first listed topic = %v, want the most recent drill", h.results[0].Topic)
	}

	view := h.View(80, 24)
	quadIdx := strings.Index(view, "Quadratic")
	seriesIdx := strings.Index(view, "Series")
	if quadIdx == -1 || seriesIdx == -1 {
		t.Fatal("expected both drills in the view")
	}
	if quadIdx > seriesIdx {
		t.Error("expected the newest drill listed first")
	}
}

func TestHistoryScreen_ExpandDetails(t *testing.T) {
	sess := &user.Session{User: user.New("Sam")}
	sess.User.AddResult(result(drill.TopicSeries, 50, time.Now()))

	h := New(sess)
	view := h.View(80, 24)
	if strings.Contains(view, "timed out") {
		t.Fatal("expected details collapsed by default")
	}

	scr, _ := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	hs := scr.(*HistoryScreen)
	view = hs.View(80, 24)
	if !strings.Contains(view, "timed out") {
		t.Error("expected details after Enter")
	}

	scr, _ = hs.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	hs = scr.(*HistoryScreen)
	view = hs.View(80, 24)
	if strings.Contains(view, "timed out") {
		t.Error("expected details collapsed after second Enter")
	}
}

func TestHistoryScreen_Navigation(t *testing.T) {
	sess := &user.Session{User: user.New("Sam")}
	now := time.Now()
	sess.User.AddResult(result(drill.TopicSeries, 40, now))
	sess.User.AddResult(result(drill.TopicQuadratic, 80, now.Add(time.Minute)))

	h := New(sess)
	scr, _ := h.Update(keyPress('j'))
	hs := scr.(*HistoryScreen)
	if hs.selected != 1 {
		t.Errorf("selected = %d, want 1", hs.selected)
	}

	// Down at the bottom stays put.
	scr, _ = hs.Update(keyPress('j'))
	hs = scr.(*HistoryScreen)
	if hs.selected != 1 {
		t.Errorf("selected = %d, want 1 at the bottom", hs.selected)
	}
}
