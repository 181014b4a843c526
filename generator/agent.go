package generator

import (
	"context"
	"errors"
	"log"

	"inspiration_drawer/drawer"
)

// Agent 透過 LLM 推薦故事名稱；回覆不合格時退回模板推薦。
type Agent struct {
	llm      LLMClient
	fallback *TemplateSuggester
	logger   *log.Logger
}

func NewAgent(llm LLMClient, fallback *TemplateSuggester, logger *log.Logger) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if fallback == nil {
		fallback = NewTemplateSuggester(nil)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Agent{llm: llm, fallback: fallback, logger: logger}, nil
}

// Suggest returns model suggestions, or template suggestions when the
// reply does not hold SuggestionCount usable lines. Transport errors are
// returned.
func (a *Agent) Suggest(ctx context.Context, result drawer.Result) ([]Suggestion, error) {
	pool := result.Pool()
	if len(pool) == 0 {
		return noSuggestion(), nil
	}

	prompt := BuildTitlePrompt(result, SuggestionCount)
	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	suggestions, err := ParseSuggestions(raw, prompt.Keywords, SuggestionCount)
	if err != nil {
		a.logger.Printf("[WARN] [suggest] falling back to templates: %v", err)
		return a.fallback.suggestions(pool), nil
	}
	return suggestions, nil
}
