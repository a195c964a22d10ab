package widgets

import "strings"

// Key is a navigation key understood by the search panel.
type Key string

const (
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyEnter  Key = "enter"
	KeyEscape Key = "escape"
)

// ParseKey accepts both the short names and browser key names ("ArrowDown",
// "Escape", "Esc").
func ParseKey(value string) (Key, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "up", "arrowup":
		return KeyUp, true
	case "down", "arrowdown":
		return KeyDown, true
	case "enter", "return":
		return KeyEnter, true
	case "escape", "esc":
		return KeyEscape, true
	}
	return "", false
}
