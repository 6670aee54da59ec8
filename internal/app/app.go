// Package app wires the screens, router, and frame chrome into the root
// Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sambit/prepdrill/internal/coach"
	"github.com/sambit/prepdrill/internal/drill"
	"github.com/sambit/prepdrill/internal/questiongen"
	"github.com/sambit/prepdrill/internal/router"
	"github.com/sambit/prepdrill/internal/screen"
	"github.com/sambit/prepdrill/internal/screens/home"
	"github.com/sambit/prepdrill/internal/screens/welcome"
	"github.com/sambit/prepdrill/internal/ui/layout"
	"github.com/sambit/prepdrill/internal/user"
)

// Options carries the services the screens depend on.
type Options struct {
	Fetcher *questiongen.Fetcher
	Coach   *coach.Coach
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *user.Session
	width  int
	height int
}

// newAppModel creates an AppModel starting at the welcome screen. The
// session context is created here and handed to every screen explicitly.
func newAppModel(opts Options) AppModel {
	sess := &user.Session{
		Mode: drill.Config{QuestionBudget: drill.DefaultQuestionBudget},
	}

	welcomeScreen := welcome.New(func(name string) screen.Screen {
		sess.User = user.New(name)
		return home.New(sess, opts.Fetcher, opts.Coach)
	})

	return AppModel{
		router: router.New(welcomeScreen),
		sess:   sess,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens with unfinished work intercept Esc themselves.
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	candidate := ""
	if m.sess.User != nil {
		candidate = m.sess.User.Name
	}

	header := layout.RenderHeader(title, candidate, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if len(footerHints) == 0 {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
