package generator

import (
	"context"
	"fmt"
	"strings"
)

// MockLLM 不呼叫外部模型，直接用提示中的關鍵字拼出名稱，便於本地除錯。
type MockLLM struct{}

func (MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	if len(prompt.Keywords) == 0 {
		return "", nil
	}
	var sb strings.Builder
	for i := 0; i < SuggestionCount; i++ {
		kw := prompt.Keywords[i%len(prompt.Keywords)]
		fmt.Fprintf(&sb, "%d. 《%s的第%d章》｜%s在第%d章登場。\n", i+1, kw, i+1, kw, i+1)
	}
	return sb.String(), nil
}
