package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// HistoryStorageKey is the storage key holding the serialized history
const HistoryStorageKey = "colorHistory"

// Storage is a string key-value store that survives between sessions.
type Storage interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
}

// errCorruptStorage marks a storage file that is not a JSON object
var errCorruptStorage = errors.New("storage file is not a JSON object")

// FileStorage keeps every key in a single JSON object file.
type FileStorage struct {
	path   string
	logger *slog.Logger
}

// NewFileStorage returns a store backed by the file at path. The file and
// its directory are created on the first write.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path, logger: slog.New(slog.DiscardHandler)}
}

// WithLogger sets the logger used to report unreadable storage content
func (s *FileStorage) WithLogger(logger *slog.Logger) *FileStorage {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Path returns the backing file path
func (s *FileStorage) Path() string {
	return s.path
}

// GetItem returns the value stored under key. A missing file is an empty store.
func (s *FileStorage) GetItem(key string) (string, bool, error) {
	items, err := s.readItems()
	if err != nil {
		return "", false, err
	}
	value, ok := items[key]
	return value, ok, nil
}

// SetItem stores value under key, replacing the previous value. A file
// that cannot be decoded is replaced rather than blocking the write.
func (s *FileStorage) SetItem(key, value string) error {
	items, err := s.readItems()
	if errors.Is(err, errCorruptStorage) {
		s.logger.Warn("discarding unreadable storage file", "path", s.path, "error", err)
		items = map[string]string{}
	} else if err != nil {
		return err
	}
	items[key] = value

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode storage: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	return atomicWrite(s.path, data, dir)
}

func (s *FileStorage) readItems() (map[string]string, error) {
	items := map[string]string{}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return items, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}
	if len(data) == 0 {
		return items, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", errCorruptStorage, err)
	}

	for k, v := range raw {
		var value string
		if err := json.Unmarshal(v, &value); err != nil {
			s.logger.Warn("skipping non-string storage entry", "path", s.path, "key", k)
			continue
		}
		items[k] = value
	}
	return items, nil
}

// atomicWrite writes data to path via a temporary file and rename.
func atomicWrite(path string, data []byte, tmpDir string) error {
	tmp, err := os.CreateTemp(tmpDir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	success = true
	return nil
}

// SaveHistory writes the full history under HistoryStorageKey.
func SaveHistory(s Storage, history History) error {
	data, err := json.Marshal(history)
	if err != nil {
		return &StorageError{Op: "write", Key: HistoryStorageKey, Path: storagePath(s), Err: err}
	}

	if err := s.SetItem(HistoryStorageKey, string(data)); err != nil {
		return &StorageError{Op: "write", Key: HistoryStorageKey, Path: storagePath(s), Err: err}
	}

	return nil
}

// LoadHistory reads the persisted history. ok is false when nothing has
// been stored yet.
func LoadHistory(s Storage) (history History, ok bool, err error) {
	value, found, err := s.GetItem(HistoryStorageKey)
	if err != nil {
		return nil, false, &StorageError{Op: "read", Key: HistoryStorageKey, Path: storagePath(s), Err: err}
	}
	if !found {
		return nil, false, nil
	}

	var values []string
	if err := json.Unmarshal([]byte(value), &values); err != nil {
		return nil, false, &StorageError{Op: "read", Key: HistoryStorageKey, Path: storagePath(s), Err: err}
	}

	history, err = historyFromStrings(values)
	if err != nil {
		return nil, false, &StorageError{Op: "read", Key: HistoryStorageKey, Path: storagePath(s), Err: err}
	}

	return history, true, nil
}

func storagePath(s Storage) string {
	if fsStore, ok := s.(*FileStorage); ok {
		return fsStore.Path()
	}
	return ""
}

// DefaultStoragePath returns $XDG_DATA_HOME/swatch/storage.json, falling
// back to ~/.local/share.
func DefaultStoragePath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(xdgDataHome(home), AppName, StorageFileName)
}

// xdgDataHome returns XDG_DATA_HOME or ~/.local/share as fallback.
func xdgDataHome(home string) string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "share")
}
