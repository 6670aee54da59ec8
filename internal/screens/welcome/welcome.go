// Package welcome implements the name-entry screen shown at startup.
package welcome

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sambit/prepdrill/internal/router"
	"github.com/sambit/prepdrill/internal/screen"
	"github.com/sambit/prepdrill/internal/ui/components"
	"github.com/sambit/prepdrill/internal/ui/layout"
	"github.com/sambit/prepdrill/internal/ui/theme"
)

const nameCharLimit = 24

// WelcomeScreen asks for the candidate's name before handing over to the
// home screen. The name is a display label only; anything goes, and a
// blank entry falls back to a default downstream.
type WelcomeScreen struct {
	homeFactory  func(name string) screen.Screen
	input        components.TextInput
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// homeFactory once a name has been entered.
func New(homeFactory func(name string) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		input:       components.NewTextInput("your name", nameCharLimit),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if kmsg.String() == "enter" {
			return w, w.transition()
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

// transition replaces this screen with home so Esc can never lead back to
// name entry mid-session.
func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory(w.input.Value())
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	banner := RenderBanner(width)

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Timed math drills for bank exam prep")

	prompt := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("What should we call you?")

	inputLine := w.input.View()

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("press Enter to continue")

	content := banner + "\n\n" + tagline + "\n\n\n" + prompt + "\n\n" + inputLine + "\n\n" + hint

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// KeyHints returns footer hints for the welcome screen.
func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
