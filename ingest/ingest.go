// Package ingest turns documents into box contents.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"inspiration_drawer/drawer"
)

// ReadItems returns a delimiter-separated item string built from the file
// at path: every non-empty line becomes an item, lines starting with '#'
// are skipped, and commas inside a line still split it. .txt, .md, .csv
// and extensionless files are read as plain text; .pdf goes through the
// pdf text extractor.
func ReadItems(path string) (string, error) {
	var (
		text string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".md", ".csv", "":
		var raw []byte
		raw, err = os.ReadFile(path)
		text = string(raw)
	case ".pdf":
		text, err = parsePDF(path)
	default:
		return "", fmt.Errorf("unsupported items file type: %s", ext)
	}
	if err != nil {
		return "", err
	}
	return joinLines(text), nil
}

func parsePDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no extractable text found in pdf")
	}
	return b.String(), nil
}

func joinLines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, drawer.Delimiter+" ")
}
