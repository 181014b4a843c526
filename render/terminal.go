package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"inspiration_drawer/drawer"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	boxStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Terminal renders one draw for the terminal.
func Terminal(entry drawer.LogEntry) string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render("✨ 抽籤結果"))
	sb.WriteString("\n")
	writeTerminalResult(&sb, entry.Result)
	sb.WriteString("\n")
	sb.WriteString(headingStyle.Render("📚 推薦故事名稱"))
	sb.WriteString("\n")
	for i, title := range entry.Titles {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, titleStyle.Render(title)))
		if d := entry.Direction(i); d != "" {
			sb.WriteString("     " + subtleStyle.Render(d) + "\n")
		}
	}
	return sb.String()
}

// TerminalHistory renders the retained log for the terminal.
func TerminalHistory(entries []drawer.LogEntry) string {
	if len(entries) == 0 {
		return subtleStyle.Render("尚無任何抽籤紀錄。") + "\n"
	}
	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		stamp := "時間未知"
		if !e.Timestamp.IsZero() {
			stamp = e.Timestamp.Local().Format(timeLayout)
		}
		sb.WriteString(headingStyle.Render("🕒 " + stamp))
		if e.ID != "" {
			sb.WriteString(" " + subtleStyle.Render(e.ID))
		}
		sb.WriteString("\n")
		writeTerminalResult(&sb, e.Result)
		for i, title := range e.Titles {
			sb.WriteString("  › " + titleStyle.Render(title) + "\n")
			if d := e.Direction(i); d != "" {
				sb.WriteString("    " + subtleStyle.Render(d) + "\n")
			}
		}
	}
	return sb.String()
}

func writeTerminalResult(sb *strings.Builder, result drawer.Result) {
	for _, d := range result {
		sb.WriteString(fmt.Sprintf("  %s：%s\n", boxStyle.Render(d.Title), JoinItems(d.Items)))
	}
}
