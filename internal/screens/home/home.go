// Package home implements the topic-selection screen shown after name
// entry.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sambit/prepdrill/internal/coach"
	"github.com/sambit/prepdrill/internal/drill"
	"github.com/sambit/prepdrill/internal/questiongen"
	"github.com/sambit/prepdrill/internal/router"
	"github.com/sambit/prepdrill/internal/screen"
	drillscreen "github.com/sambit/prepdrill/internal/screens/drill"
	"github.com/sambit/prepdrill/internal/screens/history"
	"github.com/sambit/prepdrill/internal/ui/components"
	"github.com/sambit/prepdrill/internal/ui/layout"
	"github.com/sambit/prepdrill/internal/ui/theme"
	"github.com/sambit/prepdrill/internal/user"
)

// HomeScreen is the main menu: one entry per topic plus history and exit.
type HomeScreen struct {
	sess *user.Session
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. Topic entries read the drill mode from the
// session at selection time, so the T toggle applies to the next drill
// without rebuilding the menu.
func New(sess *user.Session, fetcher *questiongen.Fetcher, coachSvc *coach.Coach) *HomeScreen {
	items := make([]components.MenuItem, 0, len(drill.AllTopics())+2)

	for _, topic := range drill.AllTopics() {
		topic := topic
		items = append(items, components.MenuItem{
			Label: topic.DisplayName(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: drillscreen.New(sess, fetcher, coachSvc, topic),
					}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label: "HISTORY",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(sess)}
			}
		},
	})

	items = append(items, components.MenuItem{
		Label: "EXIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{
		sess: sess,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "t" {
			h.toggleMode()
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// toggleMode flips the session between timed and untimed drills.
func (h *HomeScreen) toggleMode() {
	if h.sess.Mode.Timed() {
		h.sess.Mode.QuestionBudget = 0
	} else {
		h.sess.Mode.QuestionBudget = drill.DefaultQuestionBudget
	}
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "T", Description: "Toggle mode"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	name := ""
	if h.sess.User != nil {
		name = h.sess.User.Name
	}
	greeting := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Welcome, %s!", name))
	sections = append(sections, greeting)

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Pick a topic to start a drill."))

	sections = append(sections, h.renderModeLine())
	sections = append(sections, h.menu.View())

	if last := h.lastScoreLine(); last != "" {
		sections = append(sections, last)
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderModeLine() string {
	mode := "Untimed"
	if h.sess.Mode.Timed() {
		mode = fmt.Sprintf("Timed (%ds per question)", int(h.sess.Mode.QuestionBudget.Seconds()))
	}
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render("Mode: " + mode)
}

// lastScoreLine shows the most recent drill score, if any.
func (h *HomeScreen) lastScoreLine() string {
	if h.sess.User == nil {
		return ""
	}
	history := h.sess.User.History()
	if len(history) == 0 {
		return ""
	}
	last := history[len(history)-1]
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Last drill: %.1f%% on %s", last.Score, last.Topic.DisplayName()))
}
