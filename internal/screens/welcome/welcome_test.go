package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sambit/prepdrill/internal/router"
	"github.com/sambit/prepdrill/internal/screen"
)

// stubHome stands in for the home screen in transition tests.
type stubHome struct {
	name string
}

func (s *stubHome) Init() tea.Cmd                           { return nil }
func (s *stubHome) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubHome) View(width, height int) string           { return "" }
func (s *stubHome) Title() string                           { return "Stub" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestWelcome() (*WelcomeScreen, *[]string) {
	var names []string
	w := New(func(name string) screen.Screen {
		names = append(names, name)
		return &stubHome{name: name}
	})
	return w, &names
}

func TestWelcomeScreen_EnterTransitions(t *testing.T) {
	w, names := newTestWelcome()

	for _, r := range "Sam" {
		w.Update(keyPress(r))
	}
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a transition command")
	}

	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.ReplaceScreenMsg", msg)
	}
	if _, ok := rep.Screen.(*stubHome); !ok {
		t.Errorf("replacement screen = %T, want *stubHome", rep.Screen)
	}

	if len(*names) != 1 || (*names)[0] != "Sam" {
		t.Errorf("factory names = %v, want [Sam]", *names)
	}
}

func TestWelcomeScreen_BlankNameStillTransitions(t *testing.T) {
	w, names := newTestWelcome()

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a transition command for blank name")
	}
	if len(*names) != 1 || (*names)[0] != "" {
		t.Errorf("factory names = %v, want one blank entry", *names)
	}
}

func TestWelcomeScreen_TransitionsOnlyOnce(t *testing.T) {
	w, names := newTestWelcome()

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	_, cmd = w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command on second Enter")
	}
	if len(*names) != 1 {
		t.Errorf("factory called %d times, want 1", len(*names))
	}
}

func TestWelcomeScreen_View(t *testing.T) {
	w, _ := newTestWelcome()
	view := w.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view")
	}
	if !strings.Contains(view, "name") {
		t.Error("expected the name prompt in the view")
	}
}

func TestRenderBanner_CompactFallback(t *testing.T) {
	wide := RenderBanner(80)
	narrow := RenderBanner(40)
	if wide == narrow {
		t.Error("expected a compact banner for narrow terminals")
	}
}
