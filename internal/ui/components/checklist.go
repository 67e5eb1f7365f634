package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/multiquiz/internal/ui/theme"
)

// ItemMark is the post-submit verdict drawn next to a checklist item.
type ItemMark int

const (
	MarkNone ItemMark = iota
	MarkRight
	MarkWrong
)

// ChecklistItem is one selectable line.
type ChecklistItem struct {
	Label   string
	Checked bool
	Mark    ItemMark
}

// Checklist is a multi-select list with a cursor. It has as many rows as
// items; callers own the checked state and push it in before rendering.
type Checklist struct {
	Items  []ChecklistItem
	Cursor int

	// Locked hides the cursor and draws marks instead of checkboxes.
	Locked bool
}

// NewChecklist creates a checklist with the cursor on the first item.
func NewChecklist(labels []string) Checklist {
	items := make([]ChecklistItem, len(labels))
	for i, l := range labels {
		items[i] = ChecklistItem{Label: l}
	}
	return Checklist{Items: items}
}

// Up moves the cursor up, stopping at the first item.
func (c *Checklist) Up() {
	if c.Cursor > 0 {
		c.Cursor--
	}
}

// Down moves the cursor down, stopping at the last item.
func (c *Checklist) Down() {
	if c.Cursor < len(c.Items)-1 {
		c.Cursor++
	}
}

// View renders one row per item.
func (c Checklist) View(width int) string {
	var b strings.Builder
	for i, item := range c.Items {
		prefix := "  "
		if i == c.Cursor && !c.Locked {
			prefix = "▸ "
		}
		box := "[ ]"
		if item.Checked {
			box = "[x]"
		}
		line := fmt.Sprintf("%s%s %d. %s", prefix, box, i+1, item.Label)
		if c.Locked {
			line += markSuffix(item.Mark)
		}

		style := theme.Unselected
		switch {
		case c.Locked && item.Mark == MarkRight:
			style = theme.Correct
		case c.Locked && item.Mark == MarkWrong:
			style = theme.Incorrect
		case c.Locked:
			style = theme.Dimmed
		case i == c.Cursor:
			style = theme.Cursor
		}
		b.WriteString(style.Width(width).Render(line))
		if i < len(c.Items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func markSuffix(m ItemMark) string {
	switch m {
	case MarkRight:
		return "  ✔"
	case MarkWrong:
		return "  ✘"
	default:
		return ""
	}
}
