package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

var ErrUnknownBox = errors.New("unknown box")

// FindBox resolves name to a box index: exact title first, then
// case-insensitive, then the closest title within a small edit distance.
// The last box wins when titles repeat, since a draw shows the later
// box's items under a repeated title.
func (c Config) FindBox(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return -1, fmt.Errorf("%w: empty name", ErrUnknownBox)
	}
	for i := len(c.Boxes) - 1; i >= 0; i-- {
		if c.Boxes[i].Title == name {
			return i, nil
		}
	}
	for i := len(c.Boxes) - 1; i >= 0; i-- {
		if strings.EqualFold(c.Boxes[i].Title, name) {
			return i, nil
		}
	}

	if utf8.RuneCountInString(name) < 2 {
		return -1, fmt.Errorf("%w %q (have: %s)", ErrUnknownBox, name, c.titleList())
	}
	best, bestDist, tie := -1, 0, false
	for i, b := range c.Boxes {
		dist := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(b.Title))
		if dist > levenshteinLimit(utf8.RuneCountInString(b.Title)) {
			continue
		}
		switch {
		case best == -1 || dist < bestDist:
			best, bestDist, tie = i, dist, false
		case dist == bestDist && b.Title != c.Boxes[best].Title:
			tie = true
		case dist == bestDist:
			best = i
		}
	}
	if best == -1 {
		return -1, fmt.Errorf("%w %q (have: %s)", ErrUnknownBox, name, c.titleList())
	}
	if tie {
		return -1, fmt.Errorf("%w: %q is ambiguous (have: %s)", ErrUnknownBox, name, c.titleList())
	}
	return best, nil
}

// ApplyCounts overrides box counts by name, e.g. from `--pick 世界觀=2`.
func (c *Config) ApplyCounts(picks map[string]int) error {
	for name, n := range picks {
		i, err := c.FindBox(name)
		if err != nil {
			return err
		}
		c.Boxes[i].Count = n
	}
	return nil
}

func (c Config) titleList() string {
	titles := make([]string, 0, len(c.Boxes))
	for _, b := range c.Boxes {
		titles = append(titles, b.Title)
	}
	return strings.Join(titles, ", ")
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
