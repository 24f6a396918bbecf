package main

import (
	"encoding/json"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// readStoredHistory decodes the history record straight from the storage file
func readStoredHistory(t *testing.T, path string) History {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read storage file: %v", err)
	}

	var items map[string]string
	if err := json.Unmarshal(data, &items); err != nil {
		t.Fatalf("storage file is not a JSON object: %v", err)
	}
	raw, ok := items[HistoryStorageKey]
	if !ok {
		t.Fatalf("storage file has no %q key: %s", HistoryStorageKey, data)
	}

	var history History
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		t.Fatalf("history record is not a JSON array: %v", err)
	}
	return history
}

func newFileApp(t *testing.T, path string, restore bool) (*App, *fakeClipboard) {
	t.Helper()
	cb := &fakeClipboard{}
	app := NewApp(Options{
		Generator: NewColorGenerator(rand.NewPCG(7, 7)),
		Clipboard: cb,
		Storage:   NewFileStorage(path),
		Restore:   restore,
	})
	return app, cb
}

// Test the complete widget flow against a real storage file
func TestApplicationFlow_FileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", StorageFileName)
	app, cb := newFileApp(t, path, false)

	if cmd := app.Init(); cmd != nil {
		t.Fatal("Expected startup write to succeed")
	}
	if got := readStoredHistory(t, path); !slices.Equal(got, NewHistory()) {
		t.Errorf("Expected startup record %v, got %v", NewHistory(), got)
	}

	app, _ = send(t, app, tea.WindowSizeMsg{Width: 100, Height: 30})
	for range 6 {
		app, _ = send(t, app, spaceKey)
	}

	if len(app.History()) != MaxHistory {
		t.Fatalf("Expected %d history entries, got %d", MaxHistory, len(app.History()))
	}
	if got := readStoredHistory(t, path); !slices.Equal(got, app.History()) {
		t.Errorf("Expected stored history %v, got %v", app.History(), got)
	}

	// Pick the oldest entry; it becomes current and is copied
	oldest := app.History()[MaxHistory-1]
	app, cmd := send(t, app, runeKey('5'))
	if app.Current() != oldest {
		t.Errorf("Expected current %s, got %s", oldest, app.Current())
	}
	if cmd == nil {
		t.Fatal("Expected a copy command")
	}
	app, cmd = send(t, app, cmd())

	if !slices.Equal(cb.written, []string{string(oldest)}) {
		t.Errorf("Expected clipboard writes [%s], got %v", oldest, cb.written)
	}
	if app.Acknowledgement() != AckMessage {
		t.Errorf("Expected acknowledgement %q, got %q", AckMessage, app.Acknowledgement())
	}
	if cmd == nil {
		t.Error("Expected a timer command for the acknowledgement")
	}

	// Selecting does not touch the record
	if got := readStoredHistory(t, path); !slices.Equal(got, app.History()) {
		t.Errorf("Expected stored history unchanged by selection, got %v", got)
	}

	app, _ = send(t, app, timer.TimeoutMsg{ID: app.ack.timer.ID()})
	if app.Acknowledgement() != "" {
		t.Errorf("Expected acknowledgement to clear, got %q", app.Acknowledgement())
	}

	if view := app.View(); view == "" {
		t.Error("Expected non-empty view")
	}
}

// Test that a second session can pick up where the first left off
func TestApplicationFlow_RestoreSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), StorageFileName)

	first, _ := newFileApp(t, path, false)
	first.Init()
	first, _ = send(t, first, spaceKey)
	first, _ = send(t, first, spaceKey)
	saved := slices.Clone(first.History())

	second, _ := newFileApp(t, path, true)
	if !slices.Equal(second.History(), saved) {
		t.Errorf("Expected restored history %v, got %v", saved, second.History())
	}
	if second.Current() != saved[0] {
		t.Errorf("Expected restored current %s, got %s", saved[0], second.Current())
	}

	// Restoring is opt-in; a fresh session overwrites the record at Init
	third, _ := newFileApp(t, path, false)
	third.Init()
	if got := readStoredHistory(t, path); !slices.Equal(got, NewHistory()) {
		t.Errorf("Expected startup record %v, got %v", NewHistory(), got)
	}
}

// Test the widget inside a real bubbletea program with input disabled
func TestApplicationFlow_Program(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping program test in short mode")
	}

	path := filepath.Join(t.TempDir(), StorageFileName)
	app, _ := newFileApp(t, path, false)

	program := tea.NewProgram(app,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)

	go func() {
		for range 3 {
			program.Send(spaceKey)
		}
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		t.Fatalf("Expected program to exit cleanly, got: %v", err)
	}
	if app.Err() != nil {
		t.Fatalf("Expected no fatal error, got: %v", app.Err())
	}

	if len(app.History()) != 4 {
		t.Errorf("Expected 4 history entries, got %v", app.History())
	}
	if got := readStoredHistory(t, path); !slices.Equal(got, app.History()) {
		t.Errorf("Expected stored history %v, got %v", app.History(), got)
	}
}

// Test that a long session keeps the record bounded
func TestLongSession(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping long session test in short mode")
	}

	path := filepath.Join(t.TempDir(), StorageFileName)
	app, _ := newFileApp(t, path, false)
	app.Init()

	for range 500 {
		app, _ = send(t, app, spaceKey)
	}

	got := readStoredHistory(t, path)
	if len(got) != MaxHistory {
		t.Fatalf("Expected %d stored entries, got %d", MaxHistory, len(got))
	}
	for _, c := range got {
		if !generatedColorPattern.MatchString(string(c)) {
			t.Errorf("Expected #RRGGBB color in record, got %s", c)
		}
	}
}

// Benchmark the full generate cycle against a real storage file
func BenchmarkGenerate(b *testing.B) {
	app := NewApp(Options{
		Clipboard: &fakeClipboard{},
		Storage:   NewFileStorage(filepath.Join(b.TempDir(), StorageFileName)),
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		app.Update(spaceKey)
	}
}
