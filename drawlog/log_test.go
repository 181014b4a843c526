package drawlog

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspiration_drawer/drawer"
)

func TestLogRecord_CapsAtFiveMostRecentFirst(t *testing.T) {
	log := NewLog(&FileStore{Path: filepath.Join(t.TempDir(), "draw_log.json")})

	var recorded []drawer.LogEntry
	for _, item := range []string{"1", "2", "3", "4", "5", "6"} {
		e := sampleEntry(item)
		recorded = append(recorded, e)
		kept, err := log.Record(e)
		require.NoError(t, err)
		require.LessOrEqual(t, len(kept), MaxEntries)
	}

	entries, err := log.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 5)
	require.Equal(t, recorded[5].ID, entries[0].ID)
	for i := range entries {
		require.Equal(t, recorded[5-i].ID, entries[i].ID)
	}
}

func TestLogRecord_SQLiteBackend(t *testing.T) {
	log := NewLog(&SQLiteStore{Path: filepath.Join(t.TempDir(), "draws.db")})
	for i := 0; i < 7; i++ {
		_, err := log.Record(sampleEntry("x"))
		require.NoError(t, err)
	}
	entries, err := log.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 5)
}

func TestLogRecord_CorruptFileIsNotOverwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draw_log.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))
	log := NewLog(&FileStore{Path: path})

	_, err := log.Record(sampleEntry("勇者"))
	var perr *ParseError
	require.True(t, errors.As(err, &perr))

	_, err = log.Entries()
	require.True(t, errors.As(err, &perr))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "not json", string(data))
}

func TestLogRecord_ConcurrentWritersKeepCap(t *testing.T) {
	log := NewLog(&FileStore{Path: filepath.Join(t.TempDir(), "draw_log.json")})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := log.Record(sampleEntry("並行"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entries, err := log.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 5)
}

func TestLogFind(t *testing.T) {
	log := NewLog(&FileStore{Path: filepath.Join(t.TempDir(), "draw_log.json")})
	e := sampleEntry("光")
	_, err := log.Record(e)
	require.NoError(t, err)

	got, ok, err := log.Find(e.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, e.Titles, got.Titles)

	_, ok, err = log.Find("missing")
	require.NoError(t, err)
	require.False(t, ok)
}
