package main

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

func TestAckModel_Inactive(t *testing.T) {
	var m ackModel

	if m.Active() {
		t.Error("Expected zero acknowledgement to be inactive")
	}
	if m.Message() != "" {
		t.Errorf("Expected empty message, got '%s'", m.Message())
	}
	if m.View() != "" {
		t.Errorf("Expected empty view, got '%s'", m.View())
	}
}

func TestAckModel_Show(t *testing.T) {
	m, cmd := ackModel{}.Show()

	if m.Message() != AckMessage {
		t.Errorf("Expected '%s', got '%s'", AckMessage, m.Message())
	}
	if cmd == nil {
		t.Error("Expected Show to return the timer command")
	}
	if m.timer.Timeout != AckDuration {
		t.Errorf("Expected timeout %v, got %v", AckDuration, m.timer.Timeout)
	}
	if !strings.Contains(m.View(), AckMessage) {
		t.Errorf("Expected view to contain '%s', got '%s'", AckMessage, m.View())
	}
}

func TestAckModel_Timeout(t *testing.T) {
	m, _ := ackModel{}.Show()

	m, _ = m.Update(timer.TimeoutMsg{ID: m.timer.ID()})
	if m.Active() {
		t.Error("Expected acknowledgement to clear on timeout")
	}
}

func TestAckModel_StaleTimeoutIgnored(t *testing.T) {
	first, _ := ackModel{}.Show()
	staleID := first.timer.ID()

	second, _ := first.Show()
	if second.timer.ID() == staleID {
		t.Fatal("Expected a new timer for every Show")
	}

	second, _ = second.Update(timer.TimeoutMsg{ID: staleID})
	if second.Message() != AckMessage {
		t.Error("Expected a replaced timer not to clear the acknowledgement")
	}

	second, _ = second.Update(timer.TimeoutMsg{ID: second.timer.ID()})
	if second.Active() {
		t.Error("Expected the current timer to clear the acknowledgement")
	}
}

func TestAckModel_Update_OtherMessages(t *testing.T) {
	m, _ := ackModel{}.Show()

	m, _ = m.Update(tea.KeyMsg{})
	if m.Message() != AckMessage {
		t.Error("Expected unrelated messages to leave the acknowledgement alone")
	}
}

func TestAckModel_TimerWaitsFullDuration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping timing test in short mode")
	}

	start := time.Now()
	m, cmd := ackModel{}.Show()

	msg := cmd()
	elapsed := time.Since(start)

	tick, ok := msg.(timer.TickMsg)
	if !ok {
		t.Fatalf("Expected timer.TickMsg, got %T", msg)
	}
	if tick.ID != m.timer.ID() {
		t.Errorf("Expected tick for timer %d, got %d", m.timer.ID(), tick.ID)
	}
	if elapsed < AckDuration {
		t.Errorf("Expected first tick after at least %v, got %v", AckDuration, elapsed)
	}

	m, next := m.Update(tick)
	if next == nil {
		t.Error("Expected timeout command after the timer ran out")
	}
	if !m.timer.Timedout() {
		t.Error("Expected timer to have timed out after one interval")
	}
}
