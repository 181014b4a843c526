package generator

import "context"

// LLMClient 是推薦故事名稱所用的模型介面，測試時可換成 MockLLM。
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings 由設定檔的 llm 區塊轉換而來。
type LLMSettings struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64 // 0 leaves the provider default
}
