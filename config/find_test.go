package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"inspiration_drawer/drawer"
)

func TestFindBox(t *testing.T) {
	cfg := Default()
	cfg.Boxes = append(cfg.Boxes, BoxConfig{Title: "Element", Items: "Fire, Ice"})

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "exact", query: "世界觀", want: 3},
		{name: "case insensitive", query: "element", want: 5},
		{name: "typo", query: "角色身分", want: 0},
		{name: "latin typo", query: "Elemnt", want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cfg.FindBox(tt.query)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFindBox_Unknown(t *testing.T) {
	cfg := Default()
	for _, q := range []string{"", "角色", "x", "完全不同的名字"} {
		_, err := cfg.FindBox(q)
		require.ErrorIs(t, err, ErrUnknownBox, "query %q", q)
	}
}

func TestFindBox_Ambiguous(t *testing.T) {
	cfg := Config{Boxes: []BoxConfig{{Title: "abcd"}, {Title: "abce"}}}
	_, err := cfg.FindBox("abcf")
	require.ErrorContains(t, err, "ambiguous")
}

func TestFindBox_RepeatedTitleResolvesToLastBox(t *testing.T) {
	cfg := Config{Boxes: []BoxConfig{
		{Title: "角色", Items: "勇者", Count: 1},
		{Title: "世界", Items: "後末日", Count: 1},
		{Title: "角色", Items: "刺客, 科學家", Count: 1},
	}}
	for _, q := range []string{"角色", " 角色 "} {
		got, err := cfg.FindBox(q)
		require.NoError(t, err)
		require.Equal(t, 2, got, "query %q", q)
	}

	latin := Config{Boxes: []BoxConfig{{Title: "Element"}, {Title: "World"}, {Title: "Element"}}}
	for _, q := range []string{"Element", "element", "Elemnt"} {
		got, err := latin.FindBox(q)
		require.NoError(t, err)
		require.Equal(t, 2, got, "query %q", q)
	}
}

func TestApplyCounts_RepeatedTitleChangesVisibleDraw(t *testing.T) {
	cfg := Config{Boxes: []BoxConfig{
		{Title: "角色", Items: "勇者", Count: 1},
		{Title: "角色", Items: "刺客, 科學家", Count: 1},
	}}
	require.NoError(t, cfg.ApplyCounts(map[string]int{"角色": 2}))
	require.Equal(t, 1, cfg.Boxes[0].Count)
	require.Equal(t, 2, cfg.Boxes[1].Count)

	result := drawer.NewSampler(5).Draw(cfg.DrawBoxes())
	items, ok := result.Get("角色")
	require.True(t, ok)
	require.ElementsMatch(t, []string{"刺客", "科學家"}, items)
}

func TestApplyCounts(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyCounts(map[string]int{"角色屬性": 3, "世界观": 2}))
	require.Equal(t, 3, cfg.Boxes[1].Count)
	require.Equal(t, 2, cfg.Boxes[3].Count)

	require.Error(t, cfg.ApplyCounts(map[string]int{"不存在": 1}))
}
