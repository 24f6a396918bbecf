// Package main implements swatch, a terminal color swatch that generates
// random colors, copies them to the clipboard and remembers the last few.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Application constants
const (
	// ExitCodeError indicates an error occurred during execution
	ExitCodeError = 1

	AppName         = "swatch"
	ConfigFileName  = "config.toml"
	StorageFileName = "storage.json"
	DebugLogFile    = "messages.log"

	// Environment variables
	EnvStorage      = "SWATCH_STORAGE"
	EnvClipboard    = "SWATCH_CLIPBOARD"
	EnvColorProfile = "SWATCH_COLOR_PROFILE"
	EnvRestore      = "SWATCH_RESTORE"
	EnvDebug        = "DEBUG"
)

// History output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var version = "dev"

// flags holds command line overrides; only flags that were set apply
type flags struct {
	configPath   string
	storagePath  string
	restore      bool
	clipboard    string
	colorProfile string
	noMouse      bool
	format       string
}

// main is the entry point of the application
func main() {
	if err := newRootCmd().Execute(); err != nil {
		appErr := classifyError(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", appErr.Err)
		fmt.Fprintf(os.Stderr, "%s\n", appErr.Suggestion)
		os.Exit(ExitCodeError)
	}
}

// newRootCmd builds the swatch command tree
func newRootCmd() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "A terminal color swatch and random color generator",
		Long: `swatch shows a color swatch filling the terminal.

Press space (or click "Generate color") for a new random color, c to copy
the current color, and 1-5 (or click a recent color) to pick a color from
the history and copy it. The last five colors are saved after every change.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&f.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&f.storagePath, "storage", "", "path to the history storage file")
	rootCmd.Flags().BoolVar(&f.restore, "restore", false, "start from the saved history")
	rootCmd.Flags().StringVar(&f.clipboard, "clipboard", "", "clipboard backend (auto, system, osc52)")
	rootCmd.Flags().StringVar(&f.colorProfile, "color-profile", "", "color profile (auto, truecolor, ansi256, ansi)")
	rootCmd.Flags().BoolVar(&f.noMouse, "no-mouse", false, "disable mouse support")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Print the saved color history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return printHistory(cmd.OutOrStdout(), NewFileStorage(cfg.Storage.Path), f.format)
		},
	}
	historyCmd.Flags().StringVarP(&f.format, "format", "f", FormatText, "output format (text, json, yaml)")
	rootCmd.AddCommand(historyCmd)

	return rootCmd
}

// loadConfig reads the config file and applies flags that were set
func loadConfig(cmd *cobra.Command, f flags) (*Config, error) {
	var cfg *Config
	var err error
	if f.configPath != "" {
		cfg, err = LoadConfigFromFile(f.configPath)
	} else {
		cfg, err = LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	changed := cmd.Flags().Changed
	if changed("storage") {
		cfg.Storage.Path = expandHome(f.storagePath)
	}
	if changed("restore") {
		cfg.History.Restore = f.restore
	}
	if changed("clipboard") {
		cfg.Clipboard.Backend = f.clipboard
	}
	if changed("color-profile") {
		cfg.UI.ColorProfile = f.colorProfile
	}
	if changed("no-mouse") {
		cfg.UI.Mouse = !f.noMouse
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run executes the main application logic
func run(cfg *Config) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return ErrNotATerminal
	}

	logger, logFile, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	cfg.applyColorProfile()

	cb, err := NewClipboard(cfg.Clipboard.Backend, os.Stderr)
	if err != nil {
		return err
	}

	logger.Info("starting",
		"version", version,
		"storage", cfg.Storage.Path,
		"clipboard", cb.Name(),
		"restore", cfg.History.Restore,
		"mouse", cfg.UI.Mouse)

	opts := Options{
		Clipboard: cb,
		Storage:   NewFileStorage(cfg.Storage.Path).WithLogger(logger),
		Logger:    logger,
		Restore:   cfg.History.Restore,
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		zones := zone.New()
		defer zones.Close()
		opts.Zones = zones
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	app := NewApp(opts)
	program := tea.NewProgram(app, programOpts...)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI application: %w", err)
	}

	return app.Err()
}

// printHistory writes the persisted history to w in the given format
func printHistory(w io.Writer, s Storage, format string) error {
	history, _, err := LoadHistory(s)
	if err != nil {
		return err
	}
	if history == nil {
		history = History{}
	}

	switch format {
	case FormatText:
		var b strings.Builder
		for _, c := range history {
			fmt.Fprintf(&b, "%s  %s\n", c, c.RGB())
		}
		_, err = io.WriteString(w, b.String())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(history)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(history)
	default:
		return fmt.Errorf("%w: unknown format %q (want text, json or yaml)", ErrInvalidConfig, format)
	}
}
