package drawer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseItems(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "plain", raw: "Fire, Ice, Lightning, Light", want: []string{"Fire", "Ice", "Lightning", "Light"}},
		{name: "empty", raw: "", want: []string{}},
		{name: "only delimiters", raw: " , ,,  ", want: []string{}},
		{name: "trailing comma", raw: "勇者, 刺客, 科學家,", want: []string{"勇者", "刺客", "科學家"}},
		{name: "inner spaces kept", raw: "魔法 現代 ,後末日", want: []string{"魔法 現代", "後末日"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseItems(tt.raw))
		})
	}
}

func TestParseItems_Idempotent(t *testing.T) {
	raw := " 冷靜, 衝動 ,, 傲嬌 "
	require.Equal(t, ParseItems(raw), ParseItems(raw))
}

func TestBoxEffective(t *testing.T) {
	box := Box{Title: "Element", Items: "Fire, Ice", Count: 5}
	require.Equal(t, 2, box.Effective())

	box.Count = -1
	require.Equal(t, 0, box.Effective())

	box = Box{Items: "", Count: 3}
	require.Equal(t, 0, box.Effective())
}
