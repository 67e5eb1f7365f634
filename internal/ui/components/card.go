package components

import (
	"github.com/abhisek/multiquiz/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked sections
// so bordered boxes line up.
func ContentWidth(frameWidth int) int {
	// Leave room for border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Render(content)
}
