package generator

import (
	"context"

	"inspiration_drawer/drawer"
)

// SuggestionCount 是每次抽籤推薦的故事名稱數量。
const SuggestionCount = 3

// NoSuggestion is the single suggestion returned when nothing was drawn.
const NoSuggestion = "沒有抽到任何籤，無法推薦故事名稱"

// Suggestion is one story title with a one-line story direction. Both
// only mention drawn items; Direction may be empty.
type Suggestion struct {
	Title     string `json:"title"`
	Direction string `json:"direction,omitempty"`
}

// Suggester turns a draw result into story suggestions. An empty draw
// yields exactly one suggestion titled NoSuggestion; otherwise
// SuggestionCount suggestions that only mention drawn items.
type Suggester interface {
	Suggest(ctx context.Context, result drawer.Result) ([]Suggestion, error)
}

// Split separates titles from directions for a log entry. directions is
// nil when no suggestion carries one.
func Split(suggestions []Suggestion) (titles, directions []string) {
	titles = make([]string, 0, len(suggestions))
	hasDirection := false
	for _, s := range suggestions {
		titles = append(titles, s.Title)
		if s.Direction != "" {
			hasDirection = true
		}
	}
	if !hasDirection {
		return titles, nil
	}
	directions = make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		directions = append(directions, s.Direction)
	}
	return titles, directions
}

func noSuggestion() []Suggestion {
	return []Suggestion{{Title: NoSuggestion}}
}
