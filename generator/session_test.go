package generator

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"inspiration_drawer/drawer"
	"inspiration_drawer/drawlog"
)

type failingSuggester struct{}

func (failingSuggester) Suggest(context.Context, drawer.Result) ([]Suggestion, error) {
	return nil, errors.New("model down")
}

func newTestSession(t *testing.T, suggester Suggester) *Session {
	t.Helper()
	sess, err := NewSession(SessionConfig{
		Boxes: []drawer.Box{
			{Title: "角色身份", Items: "勇者, 刺客, 科學家", Count: 1},
			{Title: "角色屬性", Items: "火, 冰, 雷, 光", Count: 2},
		},
		Sampler:   drawer.NewSampler(11),
		Suggester: suggester,
		Log:       drawlog.NewLog(&drawlog.FileStore{Path: filepath.Join(t.TempDir(), "draw_log.json")}),
	})
	require.NoError(t, err)
	return sess
}

func TestNewSession_RequiresLog(t *testing.T) {
	_, err := NewSession(SessionConfig{})
	require.Error(t, err)
}

func TestSessionDraw_RecordsEntry(t *testing.T) {
	sess := newTestSession(t, nil)

	entry, err := sess.Draw(context.Background())
	require.NoError(t, err)
	require.Len(t, entry.Result, 2)
	attrs, _ := entry.Result.Get("角色屬性")
	require.Len(t, attrs, 2)
	require.Len(t, entry.Titles, SuggestionCount)
	require.Len(t, entry.Directions, SuggestionCount)

	history, err := sess.History()
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, entry.ID, history[0].ID)

	got, ok, err := sess.Lookup(entry.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, entry.Titles, got.Titles)
	require.Equal(t, entry.Directions, got.Directions)
}

func TestSessionDraw_SixDrawsKeepFive(t *testing.T) {
	sess := newTestSession(t, nil)
	var last drawer.LogEntry
	for i := 0; i < 6; i++ {
		var err error
		last, err = sess.Draw(context.Background())
		require.NoError(t, err)
	}
	history, err := sess.History()
	require.NoError(t, err)
	require.Len(t, history, 5)
	require.Equal(t, last.ID, history[0].ID)
}

func TestSessionDrawBoxes_OverridesConfiguredBoxes(t *testing.T) {
	sess := newTestSession(t, nil)
	entry, err := sess.DrawBoxes(context.Background(), []drawer.Box{{Title: "世界觀", Items: "後末日", Count: 3}})
	require.NoError(t, err)
	require.Equal(t, drawer.Result{{Title: "世界觀", Items: []string{"後末日"}}}, entry.Result)
	require.Len(t, sess.Boxes(), 2)
}

func TestSessionDraw_SuggestErrorWritesNothing(t *testing.T) {
	sess := newTestSession(t, failingSuggester{})
	_, err := sess.Draw(context.Background())
	require.ErrorIs(t, err, ErrSuggest)
	require.EqualError(t, err, "suggest titles: model down")

	history, err := sess.History()
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestSessionDraw_EmptyDrawRecordsSentinelWithoutDirections(t *testing.T) {
	sess := newTestSession(t, nil)
	entry, err := sess.DrawBoxes(context.Background(), []drawer.Box{{Title: "空", Items: " , ", Count: 2}})
	require.NoError(t, err)
	require.Equal(t, []string{NoSuggestion}, entry.Titles)
	require.Nil(t, entry.Directions)
}
