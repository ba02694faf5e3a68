package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type alertKind int

const (
	alertInfo alertKind = iota
	alertSuccess
	alertFail
)

const alertTTL = 3 * time.Second

// alertMsg asks RootModel to show a toast. Alerts outlive page switches, so
// a page that navigates away right after a delete still gets its message on
// screen.
type alertMsg struct {
	kind alertKind
	text string
}

func showAlert(kind alertKind, text string) tea.Cmd {
	return func() tea.Msg {
		return alertMsg{kind: kind, text: text}
	}
}

type alertModel struct {
	current alertMsg
	visible bool
	seq     int
}

// show replaces the visible alert and schedules its removal.
func (a *alertModel) show(msg alertMsg) tea.Cmd {
	a.current = msg
	a.visible = true
	a.seq++

	seq := a.seq
	return tea.Tick(alertTTL, func(time.Time) tea.Msg {
		return clearAlertMsg{seq: seq}
	})
}

// clear hides the alert unless a newer one replaced it.
func (a *alertModel) clear(msg clearAlertMsg) {
	if msg.seq == a.seq {
		a.visible = false
	}
}

func (a alertModel) View() string {
	if !a.visible {
		return ""
	}
	style, ok := alertStyles[a.current.kind]
	if !ok {
		style = alertStyles[alertInfo]
	}
	return style.Render(a.current.text)
}
