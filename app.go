package main

import (
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Clickable zone names
const (
	zoneGenerate = "generate"
	zoneCopy     = "copy"
	zoneHistory  = "history-"
)

// Options configures a new App
type Options struct {
	Generator *ColorGenerator
	Clipboard Clipboard
	Storage   Storage
	// Zones enables mouse targets. Nil disables mouse handling.
	Zones  *zone.Manager
	Logger *slog.Logger
	// Restore loads the persisted history instead of starting from DefaultColor
	Restore bool
}

// App is the color widget: it owns the current color, the history and the
// copy acknowledgement.
type App struct {
	generator *ColorGenerator
	clipboard Clipboard
	storage   Storage
	zones     *zone.Manager
	zoneID    string
	logger    *slog.Logger
	keys      KeyMap
	help      help.Model

	current Color
	history History
	ack     ackModel
	err     error

	width, height int
}

// storageFailedMsg carries a fatal persistence error
type storageFailedMsg struct {
	err error
}

// NewApp creates a new application instance
func NewApp(opts Options) *App {
	app := &App{
		generator: opts.Generator,
		clipboard: opts.Clipboard,
		storage:   opts.Storage,
		zones:     opts.Zones,
		logger:    opts.Logger,
		keys:      NewKeyMap(),
		help:      help.New(),
		current:   DefaultColor,
		history:   NewHistory(),
	}

	if app.generator == nil {
		app.generator = NewColorGenerator(nil)
	}
	if app.logger == nil {
		app.logger = slog.New(slog.DiscardHandler)
	}
	if app.zones != nil {
		app.zoneID = app.zones.NewPrefix()
	}

	if opts.Restore {
		app.restoreHistory()
	}

	return app
}

// restoreHistory replaces the startup history with the persisted one
func (app *App) restoreHistory() {
	history, ok, err := LoadHistory(app.storage)
	if err != nil {
		app.logger.Warn("ignoring persisted history", "error", err)
		return
	}
	if !ok || len(history) == 0 {
		app.logger.Debug("no persisted history")
		return
	}

	app.history = history
	app.current = history[0]
	app.logger.Info("restored history", "entries", len(history))
}

// Current returns the color on display
func (app *App) Current() Color {
	return app.current
}

// History returns the recent colors, newest first
func (app *App) History() History {
	return app.history
}

// Acknowledgement returns the copy acknowledgement, empty when inactive
func (app *App) Acknowledgement() string {
	return app.ack.Message()
}

// Err returns the fatal error that stopped the widget, if any
func (app *App) Err() error {
	return app.err
}

// Init implements tea.Model interface
func (app *App) Init() tea.Cmd {
	return app.persistHistory()
}

// Update implements tea.Model interface
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return app.handleKeyMsg(msg)
	case tea.MouseMsg:
		return app.handleMouseMsg(msg)
	case tea.WindowSizeMsg:
		return app.handleWindowSizeMsg(msg)
	case ClipboardWrittenMsg:
		return app.handleClipboardWritten(msg)
	case storageFailedMsg:
		return app.handleStorageFailed(msg)
	case timer.TickMsg, timer.TimeoutMsg, timer.StartStopMsg:
		var cmd tea.Cmd
		app.ack, cmd = app.ack.Update(msg)
		return app, cmd
	}

	return app, nil
}

// handleKeyMsg processes keyboard input
func (app *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, app.keys.Quit):
		return app, tea.Quit
	case key.Matches(msg, app.keys.Generate):
		return app, app.generateColor()
	case key.Matches(msg, app.keys.Copy):
		return app, app.copyCurrent()
	case key.Matches(msg, app.keys.Select):
		return app, app.selectHistory(historyIndex(msg.String()))
	case key.Matches(msg, app.keys.Help):
		app.help.ShowAll = !app.help.ShowAll
	}

	return app, nil
}

// handleMouseMsg maps left clicks on buttons and history swatches
func (app *App) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if app.zones == nil {
		return app, nil
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return app, nil
	}

	switch {
	case app.clicked(zoneGenerate, msg):
		return app, app.generateColor()
	case app.clicked(zoneCopy, msg):
		return app, app.copyCurrent()
	}

	for i := range app.history {
		if app.clicked(historyZone(i), msg) {
			return app, app.selectHistory(i)
		}
	}

	return app, nil
}

// handleWindowSizeMsg processes window resize events
func (app *App) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	app.width, app.height = msg.Width, msg.Height
	app.help.Width = msg.Width
	return app, nil
}

// handleClipboardWritten shows the acknowledgement after a successful copy.
// Failures are not shown.
func (app *App) handleClipboardWritten(msg ClipboardWrittenMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		appErr := classifyError(msg.Err)
		app.logger.Debug("clipboard write failed",
			"color", msg.Color,
			"backend", app.clipboard.Name(),
			"type", appErr.Type,
			"error", msg.Err)
		return app, nil
	}

	app.logger.Debug("copied color", "color", msg.Color, "backend", app.clipboard.Name())

	var cmd tea.Cmd
	app.ack, cmd = app.ack.Show()
	return app, cmd
}

// handleStorageFailed stops the program; run reports the error
func (app *App) handleStorageFailed(msg storageFailedMsg) (tea.Model, tea.Cmd) {
	app.err = msg.err
	app.logger.Error("storage write failed", "error", msg.err)
	return app, tea.Quit
}

// generateColor makes a new random color current and records it
func (app *App) generateColor() tea.Cmd {
	c := app.generator.Next()
	app.current = c
	app.history = app.history.Push(c)
	return app.persistHistory()
}

// selectHistory makes history entry i current and copies it. The history
// itself is left as is.
func (app *App) selectHistory(i int) tea.Cmd {
	c, ok := app.history.At(i)
	if !ok {
		return nil
	}
	app.current = c
	return app.copyCurrent()
}

// copyCurrent writes the current color to the clipboard
func (app *App) copyCurrent() tea.Cmd {
	return copyColorCmd(app.clipboard, app.current)
}

// persistHistory writes the whole history. A failure becomes a
// storageFailedMsg so the program quits.
func (app *App) persistHistory() tea.Cmd {
	if err := SaveHistory(app.storage, app.history); err != nil {
		app.err = err
		return func() tea.Msg { return storageFailedMsg{err: err} }
	}
	return nil
}

// mark wraps s in a clickable zone when mouse support is enabled
func (app *App) mark(name, s string) string {
	if app.zones == nil {
		return s
	}
	return app.zones.Mark(app.zoneID+name, s)
}

func (app *App) clicked(name string, msg tea.MouseMsg) bool {
	z := app.zones.Get(app.zoneID + name)
	return z != nil && z.InBounds(msg)
}

func historyZone(i int) string {
	return zoneHistory + strconv.Itoa(i)
}
