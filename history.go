package main

import "fmt"

// MaxHistory is the number of recent colors kept
const MaxHistory = 5

// History holds recently used colors, newest first.
type History []Color

// NewHistory returns the startup history containing only DefaultColor.
func NewHistory() History {
	return History{DefaultColor}
}

// Push returns a new history with c prepended and the oldest entries
// dropped beyond MaxHistory. The receiver is left untouched.
func (h History) Push(c Color) History {
	updated := make(History, min(len(h)+1, MaxHistory))
	updated[0] = c
	copy(updated[1:], h)
	return updated
}

// At returns the entry at index i, newest first.
func (h History) At(i int) (Color, bool) {
	if i < 0 || i >= len(h) {
		return "", false
	}
	return h[i], true
}

// historyFromStrings validates persisted entries and applies the size bound.
func historyFromStrings(values []string) (History, error) {
	if len(values) > MaxHistory {
		values = values[:MaxHistory]
	}

	history := make(History, 0, len(values))
	for i, v := range values {
		c, err := ParseColor(v)
		if err != nil {
			return nil, fmt.Errorf("history entry %d: %w", i, err)
		}
		history = append(history, c)
	}

	return history, nil
}
