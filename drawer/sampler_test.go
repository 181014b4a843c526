package drawer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDraw_ExampleElementBox(t *testing.T) {
	s := NewSampler(42)
	box := Box{Title: "Element", Items: "Fire, Ice, Lightning, Light", Count: 2}

	res := s.Draw([]Box{box})
	got, ok := res.Get("Element")
	require.True(t, ok)
	require.Len(t, got, 2)
	require.NotEqual(t, got[0], got[1])
	for _, item := range got {
		require.Contains(t, []string{"Fire", "Ice", "Lightning", "Light"}, item)
	}
}

func TestDraw_EmptyContents(t *testing.T) {
	s := NewSampler(1)
	res := s.Draw([]Box{{Title: "空", Items: "", Count: 3}})
	got, ok := res.Get("空")
	require.True(t, ok)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestDraw_ZeroCount(t *testing.T) {
	s := NewSampler(1)
	res := s.Draw([]Box{{Title: "屬性", Items: "火, 冰", Count: 0}})
	got, _ := res.Get("屬性")
	require.Empty(t, got)
}

func TestDraw_LengthIsClampedAndDistinct(t *testing.T) {
	s := NewSampler(7)
	items := "a, b, c, d, e"
	for r := 0; r <= 8; r++ {
		for trial := 0; trial < 20; trial++ {
			res := s.Draw([]Box{{Title: "box", Items: items, Count: r}})
			got, _ := res.Get("box")
			require.Len(t, got, min(r, 5))

			seen := map[string]bool{}
			for _, item := range got {
				require.Contains(t, ParseItems(items), item)
				require.False(t, seen[item], "duplicate item %q", item)
				seen[item] = true
			}
		}
	}
}

func TestDraw_KeepsBoxOrder(t *testing.T) {
	s := NewSampler(3)
	res := s.Draw([]Box{
		{Title: "世界觀", Items: "後末日", Count: 1},
		{Title: "角色身份", Items: "勇者", Count: 1},
		{Title: "主題劇情", Items: "拯救世界", Count: 1},
	})
	require.Len(t, res, 3)
	require.Equal(t, "世界觀", res[0].Title)
	require.Equal(t, "角色身份", res[1].Title)
	require.Equal(t, "主題劇情", res[2].Title)
}

func TestDraw_DuplicateTitleTakesLaterBox(t *testing.T) {
	s := NewSampler(3)
	res := s.Draw([]Box{
		{Title: "角色", Items: "勇者", Count: 1},
		{Title: "世界", Items: "後末日", Count: 1},
		{Title: "角色", Items: "刺客", Count: 1},
	})
	require.Len(t, res, 2)
	require.Equal(t, "角色", res[0].Title)
	require.Equal(t, []string{"刺客"}, res[0].Items)
}

func TestSampler_SeedIsDeterministic(t *testing.T) {
	a := NewSampler(12345)
	b := NewSampler(12345)
	items := ParseItems("1,2,3,4,5,6,7,8,9,10")
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Sample(items, 4), b.Sample(items, 4))
	}
}

func TestSampler_EveryItemCanBeDrawn(t *testing.T) {
	s := NewSampler(99)
	items := ParseItems("火, 冰, 雷, 光")
	counts := map[string]int{}
	for i := 0; i < 4000; i++ {
		for _, item := range s.Sample(items, 1) {
			counts[item]++
		}
	}
	require.Len(t, counts, 4)
	for item, c := range counts {
		// expected 1000 each
		require.InDelta(t, 1000, c, 200, "item %q drawn %d times", item, c)
	}
}

func TestSample_DoesNotReorderInput(t *testing.T) {
	s := NewSampler(5)
	items := []string{"a", "b", "c"}
	_ = s.Sample(items, 3)
	require.Equal(t, []string{"a", "b", "c"}, items)
}

func TestSeedWordChangesWithSalt(t *testing.T) {
	require.NotEqual(t, seedWord(99, "draw"), seedWord(99, "pick"))
}
