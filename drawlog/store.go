package drawlog

import (
	"fmt"

	"inspiration_drawer/drawer"
)

// Store 讀寫整份抽籤紀錄，每次都是完整覆寫。
type Store interface {
	Load() ([]drawer.LogEntry, error)
	Save(entries []drawer.LogEntry) error
}

// ParseError reports a log file whose content could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse draw log %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Open returns the store for backend ("json" or "sqlite") at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", "json":
		return &FileStore{Path: path}, nil
	case "sqlite":
		return &SQLiteStore{Path: path}, nil
	default:
		return nil, fmt.Errorf("unknown log store %q", backend)
	}
}
