package main

import (
	"errors"
	"fmt"
)

// Application errors
var (
	ErrStorage              = errors.New("storage failure")
	ErrClipboardUnavailable = errors.New("clipboard unavailable on this system")
	ErrInvalidColor         = errors.New("invalid color")
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrNotATerminal         = errors.New("stdout is not a terminal")
)

// StorageError reports a failed read or write of the persistence record.
type StorageError struct {
	Op   string // "read" or "write"
	Key  string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("storage %s %q in %s: %v", e.Op, e.Key, e.Path, e.Err)
	}
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}

// ColorError reports a string that is not a #RRGGBB color.
type ColorError struct {
	Value string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("invalid color %q: want #RRGGBB", e.Value)
}

func (e *ColorError) Unwrap() error {
	return ErrInvalidColor
}

// AppError pairs an error with its category and a hint for the user
type AppError struct {
	Type       ErrorType
	Err        error
	Suggestion string
}

func (e AppError) Error() string {
	return e.Err.Error()
}

func (e AppError) Unwrap() error {
	return e.Err
}

// ErrorType categorizes an AppError
type ErrorType int

const (
	ErrorTypeStorage ErrorType = iota
	ErrorTypeClipboard
	ErrorTypeConfig
	ErrorTypeTerminal
	ErrorTypeUnknown
)

// String returns the string representation of the error type
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeStorage:
		return "storage"
	case ErrorTypeClipboard:
		return "clipboard"
	case ErrorTypeConfig:
		return "config"
	case ErrorTypeTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// classifyError creates an AppError with appropriate type and suggestions
func classifyError(err error) *AppError {
	switch {
	case errors.Is(err, ErrStorage):
		return &AppError{
			Type:       ErrorTypeStorage,
			Err:        err,
			Suggestion: "Check that the storage file is writable and the disk is not full.",
		}
	case errors.Is(err, ErrClipboardUnavailable):
		return &AppError{
			Type:       ErrorTypeClipboard,
			Err:        err,
			Suggestion: "Install xclip, xsel or wl-clipboard, or set clipboard.backend = \"osc52\".",
		}
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrInvalidColor):
		return &AppError{
			Type:       ErrorTypeConfig,
			Err:        err,
			Suggestion: "Fix the configuration file or the command line flags.",
		}
	case errors.Is(err, ErrNotATerminal):
		return &AppError{
			Type:       ErrorTypeTerminal,
			Err:        err,
			Suggestion: "Run swatch in an interactive terminal, or use 'swatch history'.",
		}
	default:
		return &AppError{
			Type:       ErrorTypeUnknown,
			Err:        err,
			Suggestion: "An unexpected error occurred. Please try again.",
		}
	}
}
