package drawlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"inspiration_drawer/drawer"
)

// FileStore keeps the log as one indented JSON array.
type FileStore struct {
	Path string
}

// Load returns an empty log when the file does not exist yet.
func (s *FileStore) Load() ([]drawer.LogEntry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []drawer.LogEntry{}, nil
		}
		return nil, err
	}

	var entries []drawer.LogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &ParseError{Path: s.Path, Err: err}
	}
	if entries == nil {
		entries = []drawer.LogEntry{}
	}
	return entries, nil
}

// Save overwrites the file in place. The write is not atomic: a crash
// halfway leaves a truncated file that the next Load reports as a
// ParseError.
func (s *FileStore) Save(entries []drawer.LogEntry) error {
	if entries == nil {
		entries = []drawer.LogEntry{}
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return os.WriteFile(s.Path, buf.Bytes(), 0o600)
}
