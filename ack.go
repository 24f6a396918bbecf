package main

import (
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// AckMessage is shown after a successful copy
	AckMessage = "✓ Copied!"

	// AckDuration is how long the acknowledgement stays visible
	AckDuration = 2 * time.Second
)

var ackStyle = lipgloss.NewStyle().
	Foreground(Success).
	Background(Base).
	Bold(true).
	Padding(0, 1)

// ackModel is the transient copy acknowledgement. Each Show replaces the
// timer, and timeouts from replaced timers are ignored.
type ackModel struct {
	message string
	timer   timer.Model
}

// Show activates the acknowledgement and starts a fresh timer.
func (m ackModel) Show() (ackModel, tea.Cmd) {
	m.message = AckMessage
	m.timer = timer.NewWithInterval(AckDuration, AckDuration)
	return m, m.timer.Init()
}

// Update advances the timer and clears the message when it times out
func (m ackModel) Update(msg tea.Msg) (ackModel, tea.Cmd) {
	if msg, ok := msg.(timer.TimeoutMsg); ok {
		if msg.ID == m.timer.ID() {
			m.message = ""
		}
		return m, nil
	}

	t, cmd := m.timer.Update(msg)
	m.timer = t
	return m, cmd
}

// Message returns the current acknowledgement, empty when inactive
func (m ackModel) Message() string {
	return m.message
}

// Active reports whether the acknowledgement is visible
func (m ackModel) Active() bool {
	return m.message != ""
}

func (m ackModel) View() string {
	if !m.Active() {
		return ""
	}
	return ackStyle.Render(m.message)
}
