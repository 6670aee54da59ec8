// Package history implements the drill-history screen for the current
// session. History lives in memory only and starts empty every launch.
package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sambit/prepdrill/internal/drill"
	"github.com/sambit/prepdrill/internal/screen"
	"github.com/sambit/prepdrill/internal/ui/layout"
	"github.com/sambit/prepdrill/internal/ui/theme"
	"github.com/sambit/prepdrill/internal/user"
)

// HistoryScreen lists the drills finished this session, newest first.
type HistoryScreen struct {
	sess     *user.Session
	results  []drill.DrillResult
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen over the session's results.
func New(sess *user.Session) *HistoryScreen {
	history := sess.User.History()

	// Newest first for display; storage order is oldest first.
	results := make([]drill.DrillResult, len(history))
	for i, res := range history {
		results[len(history)-1-i] = res
	}

	return &HistoryScreen{
		sess:     sess,
		results:  results,
		expanded: make(map[int]bool),
	}
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(h.results)-1 {
			h.selected++
		}
	case "enter":
		if len(h.results) > 0 {
			h.expanded[h.selected] = !h.expanded[h.selected]
		}
	}

	return h, nil
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) View(width, height int) string {
	if len(h.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  No drills yet this session.\n\n  Finish a drill and it will show up here.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, res := range h.results {
		line := fmt.Sprintf("%s  %5.1f%%  %d/%d  streak %d  %s",
			res.Date.Format("15:04"),
			res.Score,
			correctCount(res),
			res.TotalQuestions,
			res.MaxStreak,
			res.Topic.DisplayName(),
		)

		prefix := "    "
		if i == h.selected {
			prefix = "  ▸ "
			line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
		} else {
			line = lipgloss.NewStyle().Foreground(theme.Text).Render(line)
		}
		b.WriteString(prefix + line + "\n")

		if h.expanded[i] {
			b.WriteString(renderDetails(res, width))
		}
	}

	return b.String()
}

// renderDetails renders the per-question breakdown of one result.
func renderDetails(res drill.DrillResult, width int) string {
	var b strings.Builder
	for j, d := range res.Details {
		marker := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		if d.IsCorrect {
			marker = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		}

		answer := d.UserAnswer
		if answer == drill.AnswerTimeout {
			answer = "timed out"
		}

		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("        %s Q%d: %s (answer: %s, %ds)", marker, j+1, answer, d.CorrectAnswer, d.TimeSpentSec)))
		b.WriteString("\n")
	}
	return b.String()
}

func correctCount(res drill.DrillResult) int {
	n := 0
	for _, d := range res.Details {
		if d.IsCorrect {
			n++
		}
	}
	return n
}
