package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color profiles accepted by ui.color_profile
const (
	ProfileAuto      = "auto"
	ProfileTrueColor = "truecolor"
	ProfileANSI256   = "ansi256"
	ProfileANSI      = "ansi"
)

// Config is the swatch configuration file.
type Config struct {
	Storage   StorageConfig   `toml:"storage"`
	History   HistoryConfig   `toml:"history"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	UI        UIConfig        `toml:"ui"`
	Log       LogConfig       `toml:"log"`
}

// StorageConfig locates the persistence file
type StorageConfig struct {
	Path string `toml:"path"`
}

// HistoryConfig controls what happens to persisted history at startup
type HistoryConfig struct {
	Restore bool `toml:"restore"`
}

// ClipboardConfig selects the clipboard backend: auto, system or osc52
type ClipboardConfig struct {
	Backend string `toml:"backend"`
}

// UIConfig holds rendering options
type UIConfig struct {
	ColorProfile string `toml:"color_profile"`
	Mouse        bool   `toml:"mouse"`
}

// LogConfig holds logging options. An empty File disables logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LoadConfig reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/swatch/config.toml
//  2. ~/.config/swatch/config.toml
//
// If no file exists, returns DefaultConfig() with environment overrides.
func LoadConfig() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadConfigFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadConfigFromFile reads configuration from a specific file path.
func LoadConfigFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	cfg, err := LoadConfigFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigFromReader reads configuration from an io.Reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: DefaultStoragePath(),
		},
		Clipboard: ClipboardConfig{
			Backend: ClipboardAuto,
		},
		UI: UIConfig{
			ColorProfile: ProfileAuto,
			Mouse:        true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	if !slices.Contains([]string{ClipboardAuto, ClipboardSystem, ClipboardOSC52}, c.Clipboard.Backend) {
		return fmt.Errorf("%w: clipboard.backend %q (want auto, system or osc52)", ErrInvalidConfig, c.Clipboard.Backend)
	}
	if !slices.Contains([]string{ProfileAuto, ProfileTrueColor, ProfileANSI256, ProfileANSI}, c.UI.ColorProfile) {
		return fmt.Errorf("%w: ui.color_profile %q (want auto, truecolor, ansi256 or ansi)", ErrInvalidConfig, c.UI.ColorProfile)
	}
	if _, err := parseLogLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("%w: storage.path is empty", ErrInvalidConfig)
	}
	return nil
}

// applyColorProfile forces the lipgloss color profile unless it is auto
func (c *Config) applyColorProfile() {
	switch c.UI.ColorProfile {
	case ProfileTrueColor:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case ProfileANSI256:
		lipgloss.SetColorProfile(termenv.ANSI256)
	case ProfileANSI:
		lipgloss.SetColorProfile(termenv.ANSI)
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvStorage); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv(EnvClipboard); v != "" {
		cfg.Clipboard.Backend = v
	}
	if v := os.Getenv(EnvColorProfile); v != "" {
		cfg.UI.ColorProfile = v
	}
	if v := os.Getenv(EnvRestore); v != "" {
		cfg.History.Restore = v == "true" || v == "1"
	}
	if _, ok := os.LookupEnv(EnvDebug); ok {
		cfg.Log.Level = "debug"
		if cfg.Log.File == "" {
			cfg.Log.File = DebugLogFile
		}
	}
	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	cfg.Log.File = expandHome(cfg.Log.File)
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, AppName, ConfigFileName))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, AppName, ConfigFileName))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// parseLogLevel accepts debug, info, warn and error
func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, s)
	}
	return level, nil
}

// newLogger opens the log file named in cfg. The returned closer must be
// closed when the program exits.
func newLogger(cfg LogConfig) (*slog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}

	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: level,
	}))
	return logger, f, nil
}
