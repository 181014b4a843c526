package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"inspiration_drawer/drawer"
)

const timeLayout = "2006-01-02 15:04:05"

// Markdown renders one draw: the items per box, then the numbered titles,
// each followed by its story direction as a quote.
func Markdown(entry drawer.LogEntry) string {
	var sb strings.Builder
	sb.WriteString("## ✨ 抽籤結果\n\n")
	writeResult(&sb, entry.Result)
	sb.WriteString("\n## 📚 推薦故事名稱\n\n")
	for i, title := range entry.Titles {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, escape(title)))
		if d := entry.Direction(i); d != "" {
			sb.WriteString(fmt.Sprintf("   > %s\n", escape(d)))
		}
	}
	return sb.String()
}

// HistoryMarkdown renders the retained log, most recent first.
func HistoryMarkdown(entries []drawer.LogEntry) string {
	var sb strings.Builder
	sb.WriteString("# 📜 過往抽籤紀錄\n\n")
	if len(entries) == 0 {
		sb.WriteString("尚無任何抽籤紀錄。\n")
		return sb.String()
	}
	for _, e := range entries {
		stamp := "時間未知"
		if !e.Timestamp.IsZero() {
			stamp = e.Timestamp.Local().Format(timeLayout)
		}
		sb.WriteString(fmt.Sprintf("### 🕒 %s\n\n", stamp))
		writeResult(&sb, e.Result)
		if len(e.Titles) > 0 {
			sb.WriteString("\n")
			for i, title := range e.Titles {
				sb.WriteString(fmt.Sprintf("> %s\n", escape(title)))
				if d := e.Direction(i); d != "" {
					sb.WriteString(fmt.Sprintf("> *%s*\n", escape(d)))
				}
				sb.WriteString(">\n")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func writeResult(sb *strings.Builder, result drawer.Result) {
	for _, d := range result {
		sb.WriteString(fmt.Sprintf("- **%s**：%s\n", escape(d.Title), escape(JoinItems(d.Items))))
	}
}

// JoinItems joins drawn items for display; an empty draw shows a dash.
func JoinItems(items []string) string {
	if len(items) == 0 {
		return "—"
	}
	return strings.Join(items, "、")
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`, "<", `\<`, "#", `\#`,
)

func escape(s string) string {
	return mdEscaper.Replace(s)
}

// HTML converts markdown with goldmark. Raw HTML in the input is not
// passed through.
func HTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Page wraps the rendered history in a minimal standalone document.
func Page(entries []drawer.LogEntry) (string, error) {
	body, err := HTML(HistoryMarkdown(entries))
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("<!doctype html>\n<html lang=\"zh-Hant\">\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>靈感抽籤發想機</title>\n")
	sb.WriteString(`<style>body{max-width:720px;margin:2em auto;font-family:sans-serif;line-height:1.6}blockquote{color:#555;margin:0 0 0 1em}</style>`)
	sb.WriteString("\n</head>\n<body>\n")
	sb.WriteString(body)
	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}
