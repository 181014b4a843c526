package generator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var listMarkerRE = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)、:：])\s*`)

// directionSep 分隔名稱與故事方向，全形與半形皆可。
var directionSep = regexp.MustCompile(`\s*[｜|]\s*`)

// ParseSuggestions 把模型回覆整理成 n 個建議。每行是「名稱｜故事方向」，
// 方向可省略；名稱與方向都必須提到抽到的元素。
func ParseSuggestions(raw string, keywords []string, n int) ([]Suggestion, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("model returned no titles")
	}

	var out []Suggestion
	for _, line := range strings.Split(raw, "\n") {
		line = listMarkerRE.ReplaceAllString(strings.TrimSpace(line), "")
		parts := directionSep.Split(line, 2)
		title := cleanTitle(parts[0])
		if title == "" {
			continue
		}
		if !mentionsAny(title, keywords) {
			return nil, fmt.Errorf("title %q mentions no drawn item", title)
		}
		direction := ""
		if len(parts) == 2 {
			direction = strings.TrimSpace(parts[1])
		}
		switch {
		case direction == "":
			direction = directionFor(title, keywords)
		case !mentionsAny(direction, keywords):
			return nil, fmt.Errorf("direction %q mentions no drawn item", direction)
		}
		out = append(out, Suggestion{Title: title, Direction: direction})
		if len(out) == n {
			break
		}
	}
	if len(out) < n {
		return nil, fmt.Errorf("model returned %d titles, want %d", len(out), n)
	}
	return out, nil
}

func cleanTitle(s string) string {
	s = strings.Trim(strings.TrimSpace(s), " \t\"'“”「」")
	s = strings.TrimPrefix(s, "《")
	s = strings.TrimSuffix(s, "》")
	return strings.TrimSpace(s)
}

func mentionsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
