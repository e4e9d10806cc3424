package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"sysdash/ui/tui/styles"
	"sysdash/ui/tui/widgets"
)

const (
	zoneKillConfirm = "kill_confirm"
	zoneKillCancel  = "kill_cancel"
)

// killDialog is the modal confirmation shown before terminating a process.
// While it is open it captures all key and mouse input.
type killDialog struct {
	request widgets.KillRequestMsg
	focused int // 0 = confirm, 1 = cancel
}

func newKillDialog(req widgets.KillRequestMsg) *killDialog {
	// Cancel starts focused so a stray enter doesn't kill anything.
	return &killDialog{request: req, focused: 1}
}

// HandleKey returns (confirmed, closed).
func (d *killDialog) HandleKey(msg tea.KeyMsg) (bool, bool) {
	switch msg.String() {
	case "y":
		return true, true
	case "n", "esc", "q":
		return false, true
	case "left", "right", "tab":
		d.focused = 1 - d.focused
		return false, false
	case "enter":
		return d.focused == 0, true
	}
	return false, false
}

// HandleMouse returns (confirmed, closed).
func (d *killDialog) HandleMouse(msg tea.MouseMsg) (bool, bool) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return false, false
	}
	if zone.Get(zoneKillConfirm).InBounds(msg) {
		return true, true
	}
	if zone.Get(zoneKillCancel).InBounds(msg) {
		return false, true
	}
	return false, false
}

func (d *killDialog) View(width, height int) string {
	question := fmt.Sprintf("Kill process %q (pid %d)?", d.request.Name, d.request.PID)

	confirm := dialogButton("Kill", d.focused == 0)
	cancel := dialogButton("Cancel", d.focused == 1)
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		zone.Mark(zoneKillConfirm, confirm),
		"  ",
		zone.Mark(zoneKillCancel, cancel),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Critical).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Center, question, "", buttons))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func dialogButton(label string, focused bool) string {
	style := lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#FFF7DB"))
	if focused {
		style = style.Background(styles.Highlight).Bold(true)
	} else {
		style = style.Background(styles.Subtle)
	}
	return style.Render(label)
}
