package generator

import (
	"context"
	"fmt"
	"strings"

	"inspiration_drawer/drawer"
)

// maxPicks 是套入模板的元素上限。
const maxPicks = 3

// TemplateSuggester fills fixed title templates with a random pick of the
// drawn items. It never fails.
type TemplateSuggester struct {
	sampler *drawer.Sampler
}

// NewTemplateSuggester picks template items with sampler; a nil sampler
// is replaced by a randomly seeded one.
func NewTemplateSuggester(sampler *drawer.Sampler) *TemplateSuggester {
	if sampler == nil {
		sampler = drawer.NewSampler(0)
	}
	return &TemplateSuggester{sampler: sampler}
}

func (s *TemplateSuggester) Suggest(_ context.Context, result drawer.Result) ([]Suggestion, error) {
	return s.suggestions(result.Pool()), nil
}

func (s *TemplateSuggester) suggestions(pool []string) []Suggestion {
	if len(pool) == 0 {
		return noSuggestion()
	}
	picks := s.sampler.Sample(pool, maxPicks)
	joined := strings.Join(picks, "、")
	first, last := picks[0], picks[len(picks)-1]
	return []Suggestion{
		{
			Title:     fmt.Sprintf("關於%s的故事", joined),
			Direction: fmt.Sprintf("圍繞%s展開，一段無法回頭的旅程就此開始。", joined),
		},
		{
			Title:     fmt.Sprintf("探索%s的冒險", joined),
			Direction: fmt.Sprintf("從%s出發，在%s之中尋找命運的答案。", first, last),
		},
		{
			Title:     fmt.Sprintf("%s與%s的傳說", first, last),
			Direction: fmt.Sprintf("%s與%s的命運交織，寫下流傳後世的一頁。", first, last),
		},
	}
}

// directionFor builds a direction for a model title that came without one.
func directionFor(title string, keywords []string) string {
	var used []string
	for _, kw := range keywords {
		if kw != "" && strings.Contains(title, kw) {
			used = append(used, kw)
		}
	}
	if len(used) == 0 {
		return ""
	}
	return fmt.Sprintf("圍繞%s展開，一段無法回頭的旅程就此開始。", strings.Join(used, "、"))
}
