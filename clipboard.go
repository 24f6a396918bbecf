package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
)

// Clipboard backends
const (
	ClipboardAuto   = "auto"
	ClipboardSystem = "system"
	ClipboardOSC52  = "osc52"
)

// Clipboard accepts plain-text writes.
type Clipboard interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error
}

// systemClipboard uses the platform clipboard (pbcopy, xclip, xsel,
// wl-copy or the Windows API).
type systemClipboard struct{}

func (systemClipboard) Name() string { return ClipboardSystem }

func (systemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// osc52Clipboard asks the terminal emulator to set the clipboard.
type osc52Clipboard struct {
	out  io.Writer
	tmux bool
}

func (c osc52Clipboard) Name() string { return ClipboardOSC52 }

func (c osc52Clipboard) WriteText(text string) error {
	seq := osc52.New(text)
	if c.tmux {
		seq = seq.Tmux()
	}
	_, err := seq.WriteTo(c.out)
	return err
}

// NewClipboard returns the backend named by backend. OSC 52 sequences are
// written to out.
func NewClipboard(backend string, out io.Writer) (Clipboard, error) {
	_, inTmux := os.LookupEnv("TMUX")
	terminal := osc52Clipboard{out: out, tmux: inTmux}

	switch backend {
	case ClipboardAuto, "":
		if clipboard.Unsupported {
			return terminal, nil
		}
		return systemClipboard{}, nil
	case ClipboardSystem:
		if clipboard.Unsupported {
			return nil, ErrClipboardUnavailable
		}
		return systemClipboard{}, nil
	case ClipboardOSC52:
		return terminal, nil
	default:
		return nil, fmt.Errorf("%w: unknown clipboard backend %q", ErrInvalidConfig, backend)
	}
}

// ClipboardWrittenMsg is sent when a clipboard write has completed
type ClipboardWrittenMsg struct {
	Color Color
	Err   error
}

// copyColorCmd writes c to the clipboard outside the update loop
func copyColorCmd(cb Clipboard, c Color) tea.Cmd {
	return func() tea.Msg {
		return ClipboardWrittenMsg{Color: c, Err: cb.WriteText(string(c))}
	}
}
