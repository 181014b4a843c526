package drawlog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"inspiration_drawer/drawer"
)

func TestSQLiteStore_EmptyDatabase(t *testing.T) {
	s := &SQLiteStore{Path: filepath.Join(t.TempDir(), "draws.db")}
	entries, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSQLiteStore_SaveReplacesRows(t *testing.T) {
	s := &SQLiteStore{Path: filepath.Join(t.TempDir(), "draws.db")}

	require.NoError(t, s.Save([]drawer.LogEntry{sampleEntry("a"), sampleEntry("b"), sampleEntry("c")}))
	want := []drawer.LogEntry{sampleEntry("冰"), sampleEntry("雷")}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, want[0].ID, got[0].ID)
	require.Equal(t, want[1].Result, got[1].Result)
}

func TestOpen(t *testing.T) {
	s, err := Open("", "x.json")
	require.NoError(t, err)
	require.IsType(t, &FileStore{}, s)

	s, err = Open("sqlite", "x.db")
	require.NoError(t, err)
	require.IsType(t, &SQLiteStore{}, s)

	_, err = Open("redis", "x")
	require.Error(t, err)
}
