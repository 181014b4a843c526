package drawer

import "strings"

// Delimiter 分隔籤盒內容的字元。
const Delimiter = ","

// Box 是一個籤盒：標題、原始內容字串與每次要抽的數量。
type Box struct {
	Title string `json:"title"`
	Items string `json:"items"`
	Count int    `json:"count"`
}

// ParseItems splits raw on Delimiter, trims every fragment and drops the
// empty ones.
func ParseItems(raw string) []string {
	parts := strings.Split(raw, Delimiter)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		items = append(items, p)
	}
	return items
}

// ItemList returns the parsed items of the box.
func (b Box) ItemList() []string {
	return ParseItems(b.Items)
}

// Effective is the number of items a draw will actually take from the box.
// Over-requests are clamped to the available items.
func (b Box) Effective() int {
	n := b.Count
	if avail := len(b.ItemList()); n > avail {
		n = avail
	}
	if n < 0 {
		return 0
	}
	return n
}
