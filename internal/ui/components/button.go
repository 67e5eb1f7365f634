package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/multiquiz/internal/ui/theme"
)

// Button is a styled, non-interactive button. The owning screen decides
// what a press does; the button only renders its enablement and focus.
type Button struct {
	Label   string
	Enabled bool
	Focused bool
}

// NewButton creates a new button.
func NewButton(label string, enabled bool) Button {
	return Button{Label: label, Enabled: enabled}
}

// View renders the button.
func (b Button) View() string {
	switch {
	case !b.Enabled:
		return theme.ButtonDisabled.Render(b.Label)
	case b.Focused:
		return theme.ButtonFocused.Render("▸ " + b.Label)
	default:
		return theme.ButtonEnabled.Render(b.Label)
	}
}

// ButtonRow lays buttons out left to right with a one-column gap.
func ButtonRow(buttons ...Button) string {
	views := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			views = append(views, " ")
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
