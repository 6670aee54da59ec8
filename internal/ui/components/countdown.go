package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sambit/prepdrill/internal/ui/theme"
)

// lowSecondsThreshold switches the bar to the warning color.
const lowSecondsThreshold = 10

// CountdownBar displays remaining time for the current question as a
// draining horizontal bar with a seconds readout.
type CountdownBar struct {
	RemainingSec int
	TotalSec     int
	Width        int
}

// NewCountdownBar creates a countdown bar.
func NewCountdownBar(remainingSec, totalSec, width int) CountdownBar {
	return CountdownBar{
		RemainingSec: remainingSec,
		TotalSec:     totalSec,
		Width:        width,
	}
}

// View renders the countdown bar.
func (c CountdownBar) View() string {
	readout := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%2ds ", c.RemainingSec))

	barWidth := c.Width - lipgloss.Width(readout)
	if barWidth < 4 {
		barWidth = 4
	}

	frac := 0.0
	if c.TotalSec > 0 {
		frac = float64(c.RemainingSec) / float64(c.TotalSec)
	}

	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fillStyle := theme.CountdownSafe
	if c.RemainingSec <= lowSecondsThreshold {
		fillStyle = theme.CountdownLow
	}

	filledStr := fillStyle.Render(strings.Repeat(" ", filled))
	emptyStr := theme.CountdownEmpty.Render(strings.Repeat(" ", empty))

	return readout + filledStr + emptyStr
}
