package drill

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	engine "github.com/sambit/prepdrill/internal/drill"
	"github.com/sambit/prepdrill/internal/router"
	"github.com/sambit/prepdrill/internal/screen"
	"github.com/sambit/prepdrill/internal/screens/results"
	"github.com/sambit/prepdrill/internal/user"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuestions() []engine.Question {
	return []engine.Question{
		{ID: "q1", Type: engine.TopicSimplification, Text: "45 + 55 = ?", CorrectAnswer: "100", Explanation: "Add."},
		{ID: "q2", Type: engine.TopicSimplification, Text: "12 * 5 = ?", CorrectAnswer: "60", Explanation: "Multiply."},
		{ID: "q3", Type: engine.TopicSimplification, Text: "90 / 3 = ?", CorrectAnswer: "30", Explanation: "Divide."},
	}
}

func testDrill(cfg engine.Config) *DrillScreen {
	sess := &user.Session{User: user.New("Sam"), Mode: cfg}
	return New(sess, nil, nil, engine.TopicSimplification)
}

func readyDrill(t *testing.T, cfg engine.Config) *DrillScreen {
	t.Helper()
	s := testDrill(cfg)
	scr, _ := s.Update(batchReadyMsg{Gen: 1, Questions: testQuestions()})
	ds := scr.(*DrillScreen)
	if ds.loading {
		t.Fatal("expected drill to leave loading state")
	}
	return ds
}

func TestDrillScreen_LoadingView(t *testing.T) {
	s := testDrill(engine.Config{})
	view := s.View(80, 24)
	if !strings.Contains(view, "Fetching") {
		t.Error("expected loading message in view")
	}
}

func TestDrillScreen_StaleBatchIgnored(t *testing.T) {
	s := testDrill(engine.Config{})
	scr, cmd := s.Update(batchReadyMsg{Gen: 99, Questions: testQuestions()})
	ds := scr.(*DrillScreen)
	if !ds.loading {
		t.Error("expected stale batch to be dropped")
	}
	if cmd != nil {
		t.Error("expected no command for stale batch")
	}
}

func TestDrillScreen_FetchErrorRoutesBack(t *testing.T) {
	s := testDrill(engine.Config{})
	_, cmd := s.Update(batchReadyMsg{Gen: 1, Err: errors.New("provider down")})
	if cmd == nil {
		t.Fatal("expected a command on fetch error")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on fetch error")
	}
}

func TestDrillScreen_EmptyBatchRoutesBack(t *testing.T) {
	s := testDrill(engine.Config{})
	_, cmd := s.Update(batchReadyMsg{Gen: 1, Questions: nil})
	if cmd == nil {
		t.Fatal("expected a command on empty batch")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on empty batch")
	}
}

func TestDrillScreen_QuestionView(t *testing.T) {
	s := readyDrill(t, engine.Config{})
	view := s.View(80, 24)
	if !strings.Contains(view, "45 + 55") {
		t.Error("expected the first question in the view")
	}
	if !strings.Contains(view, "1/3") {
		t.Error("expected the progress counter in the view")
	}
}

func TestDrillScreen_EmptySubmitIsNoop(t *testing.T) {
	s := readyDrill(t, engine.Config{})

	scr, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	ds := scr.(*DrillScreen)

	if cmd != nil {
		t.Error("expected no command for an empty submit")
	}
	if ds.machine.Index() != 0 {
		t.Errorf("index = %d, want 0 after empty submit", ds.machine.Index())
	}
	if ds.machine.State() != engine.StateActive {
		t.Error("expected drill to stay active after empty submit")
	}
}

func TestDrillScreen_SubmitAdvances(t *testing.T) {
	s := readyDrill(t, engine.Config{})

	s.input.Model.SetValue("100")
	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	ds := scr.(*DrillScreen)

	if ds.machine.Index() != 1 {
		t.Errorf("index = %d, want 1 after submit", ds.machine.Index())
	}
	if ds.machine.CorrectCount() != 1 {
		t.Errorf("correct = %d, want 1", ds.machine.CorrectCount())
	}
}

func TestDrillScreen_SkipAdvances(t *testing.T) {
	s := readyDrill(t, engine.Config{})

	scr, _ := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	ds := scr.(*DrillScreen)

	if ds.machine.Index() != 1 {
		t.Errorf("index = %d, want 1 after skip", ds.machine.Index())
	}
	if ds.machine.CorrectCount() != 0 {
		t.Errorf("correct = %d, want 0 after skip", ds.machine.CorrectCount())
	}
}

func TestDrillScreen_FinishReplacesWithResults(t *testing.T) {
	s := readyDrill(t, engine.Config{})

	answers := []string{"100", "60", "wrong"}
	var cmd tea.Cmd
	var scr screen.Screen = s
	for _, a := range answers {
		ds := scr.(*DrillScreen)
		ds.input.Model.SetValue(a)
		scr, cmd = ds.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	}

	if cmd == nil {
		t.Fatal("expected a command after the last answer")
	}
	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.ReplaceScreenMsg", msg)
	}
	if _, ok := rep.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("replacement screen = %T, want *results.ResultsScreen", rep.Screen)
	}
}

func TestDrillScreen_CountdownExpiryAdvances(t *testing.T) {
	cfg := engine.Config{QuestionBudget: 30 * time.Second}
	s := readyDrill(t, cfg)

	scr, cmd := s.Update(timerTickMsg(time.Now().Add(31 * time.Second)))
	ds := scr.(*DrillScreen)

	if ds.machine.Index() != 1 {
		t.Errorf("index = %d, want 1 after expiry", ds.machine.Index())
	}
	if cmd == nil {
		t.Error("expected the tick chain to continue")
	}
}

func TestDrillScreen_UntimedHasNoCountdown(t *testing.T) {
	s := readyDrill(t, engine.Config{})
	view := s.View(80, 24)
	if strings.Contains(view, "30s") {
		t.Error("expected no countdown in untimed mode")
	}
}

func TestDrillScreen_MultipleChoice(t *testing.T) {
	questions := []engine.Question{
		{
			ID:            "q1",
			Type:          engine.TopicQuadratic,
			Text:          "I. x^2 = 16  II. y^2 = 25",
			CorrectAnswer: "x < y",
			Explanation:   "Compare roots.",
			Options:       []string{"x > y", "x < y", "x >= y", "x <= y", "x = y or no relation"},
		},
	}
	sess := &user.Session{User: user.New("Sam"), Mode: engine.Config{}}
	s := New(sess, nil, nil, engine.TopicQuadratic)
	scr, _ := s.Update(batchReadyMsg{Gen: 1, Questions: questions})
	ds := scr.(*DrillScreen)

	if !ds.mcActive {
		t.Fatal("expected option list for a question with options")
	}

	// Select the second option and submit; single question, so done.
	scr, _ = ds.Update(keyPress('j'))
	ds = scr.(*DrillScreen)
	_, cmd := ds.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after submitting the only question")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg after the drill finished")
	}
}

func TestDrillScreen_QuitConfirm(t *testing.T) {
	s := readyDrill(t, engine.Config{})

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	ds := scr.(*DrillScreen)
	if !ds.showingQuitConfirm {
		t.Fatal("expected quit confirmation after Esc")
	}

	scr, _ = ds.Update(keyPress('n'))
	ds = scr.(*DrillScreen)
	if ds.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed by N")
	}

	scr, _ = ds.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	ds = scr.(*DrillScreen)
	_, cmd := ds.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after confirming quit")
	}
}

func TestDrillScreen_HandlesEsc(t *testing.T) {
	s := testDrill(engine.Config{})
	if !s.HandlesEsc() {
		t.Error("expected the drill screen to intercept Esc")
	}
}

func TestDrillScreen_KeyHints(t *testing.T) {
	s := readyDrill(t, engine.Config{})
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
