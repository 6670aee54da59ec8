package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sambit/prepdrill/internal/drill"
	"github.com/sambit/prepdrill/internal/router"
	drillscreen "github.com/sambit/prepdrill/internal/screens/drill"
	"github.com/sambit/prepdrill/internal/screens/history"
	"github.com/sambit/prepdrill/internal/user"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testSession() *user.Session {
	return &user.Session{
		User: user.New("Sam"),
		Mode: drill.Config{QuestionBudget: drill.DefaultQuestionBudget},
	}
}

func TestHomeScreen_SelectTopicPushesDrill(t *testing.T) {
	h := New(testSession(), nil, nil)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from topic selection")
	}

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*drillscreen.DrillScreen); !ok {
		t.Errorf("pushed screen = %T, want *drillscreen.DrillScreen", push.Screen)
	}
}

func TestHomeScreen_HistoryEntry(t *testing.T) {
	h := New(testSession(), nil, nil)

	// Navigate past the four topics to HISTORY.
	for i := 0; i < len(drill.AllTopics()); i++ {
		h.Update(keyPress('j'))
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from history selection")
	}

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*history.HistoryScreen); !ok {
		t.Errorf("pushed screen = %T, want *history.HistoryScreen", push.Screen)
	}
}

func TestHomeScreen_ToggleMode(t *testing.T) {
	sess := testSession()
	h := New(sess, nil, nil)

	if !sess.Mode.Timed() {
		t.Fatal("expected timed mode by default")
	}

	h.Update(keyPress('t'))
	if sess.Mode.Timed() {
		t.Error("expected untimed mode after toggle")
	}

	h.Update(keyPress('t'))
	if !sess.Mode.Timed() {
		t.Error("expected timed mode after second toggle")
	}
	if sess.Mode.QuestionBudget != drill.DefaultQuestionBudget {
		t.Errorf("budget = %v, want %v", sess.Mode.QuestionBudget, drill.DefaultQuestionBudget)
	}
}

func TestHomeScreen_View(t *testing.T) {
	h := New(testSession(), nil, nil)

	view := h.View(80, 24)
	if !strings.Contains(view, "Sam") {
		t.Error("expected the greeting to include the candidate name")
	}
	if !strings.Contains(view, "Timed") {
		t.Error("expected the mode line in the view")
	}
	for _, topic := range drill.AllTopics() {
		if !strings.Contains(view, topic.DisplayName()) {
			t.Errorf("expected topic %q in the view", topic.DisplayName())
		}
	}
}

func TestHomeScreen_ViewShowsLastScore(t *testing.T) {
	sess := testSession()
	sess.User.AddResult(drill.DrillResult{
		Topic:          drill.TopicSeries,
		Score:          80,
		TotalQuestions: 5,
	})
	h := New(sess, nil, nil)

	view := h.View(80, 24)
	if !strings.Contains(view, "80.0%") {
		t.Error("expected the last drill score in the view")
	}
}
