package generator

import (
	"fmt"
	"strings"

	"inspiration_drawer/drawer"
)

// Prompt 表示傳給 LLM 的訊息。
type Prompt struct {
	System   string
	User     string
	Keywords []string
}

// BuildTitlePrompt asks for n story titles, each with a one-line story
// direction, built from the drawn items.
func BuildTitlePrompt(result drawer.Result, n int) Prompt {
	var sb strings.Builder
	sb.WriteString("你是一名小說編輯，請根據抽到的靈感元素推薦故事名稱。\n")
	sb.WriteString("要求：\n")
	sb.WriteString(fmt.Sprintf("- 只輸出 %d 行，格式為「名稱｜一句故事方向」，不要編號以外的說明。\n", n))
	sb.WriteString("- 每個名稱與故事方向都至少包含一個下列元素的原文。\n")
	sb.WriteString("- 不要引入清單以外的專有名詞。\n")

	var user strings.Builder
	user.WriteString("抽籤結果：\n")
	for _, d := range result {
		if len(d.Items) == 0 {
			continue
		}
		user.WriteString(fmt.Sprintf("- %s：%s\n", d.Title, strings.Join(d.Items, "、")))
	}

	return Prompt{
		System:   sb.String(),
		User:     user.String(),
		Keywords: result.Pool(),
	}
}
