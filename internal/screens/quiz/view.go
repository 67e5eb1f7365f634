package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	core "github.com/abhisek/multiquiz/internal/quiz"
	"github.com/abhisek/multiquiz/internal/ui/components"
	"github.com/abhisek/multiquiz/internal/ui/layout"
	"github.com/abhisek/multiquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	if s.session.Completed() {
		body = s.renderCompleted(cw, height)
	} else {
		body = s.renderQuestion(cw)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderQuestion renders the prompt, options, feedback and buttons.
func (s *QuizScreen) renderQuestion(cw int) string {
	q, _ := s.session.Current()

	var b strings.Builder

	progress := components.NewProgressBar("Progress", s.session.Index(), s.session.Total(), cw)
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Prompt.Width(cw).Render(
		fmt.Sprintf("Question %d: %s", s.session.Index()+1, q.Prompt)))
	b.WriteString("\n\n")

	b.WriteString(s.list.View(cw))
	b.WriteString("\n\n")

	b.WriteString(s.renderFeedbackLine(cw))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render(core.TotalText(s.session.Score())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, s.renderButtons()))

	return b.String()
}

// renderFeedbackLine shows the selection warning, the scored feedback, or
// a blank line to keep the layout from jumping.
func (s *QuizScreen) renderFeedbackLine(cw int) string {
	if s.warning != "" {
		return theme.Warning.Width(cw).Align(lipgloss.Center).Render(s.warning)
	}
	fb, ok := s.session.Feedback()
	if !ok {
		return ""
	}
	style := theme.Incorrect
	if fb.Positive() {
		style = theme.Correct
	}
	return style.Width(cw).Align(lipgloss.Center).Render(fb.Text())
}

func (s *QuizScreen) renderButtons() string {
	state := s.session.State()
	submit := components.NewButton("Submit", state.CanSubmit())
	next := components.NewButton("Next", state.CanAdvance())
	retake := components.NewButton("Retake", true)

	switch {
	case state.CanSubmit():
		submit.Focused = true
	case state.CanAdvance():
		next.Focused = true
	default:
		retake.Focused = true
	}
	return components.ButtonRow(submit, next, retake)
}

// renderCompleted renders the final score and, when there is room, the
// per-question history.
func (s *QuizScreen) renderCompleted(cw, height int) string {
	c, _ := s.session.Completion()

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(c.Text()))
	b.WriteString("\n\n")

	results := s.session.Results()
	switch {
	case len(results) == 0:
		b.WriteString(theme.Hint.Width(cw).Align(lipgloss.Center).Render("No questions were loaded."))
	case layout.IsCompactHeight(height) && len(results) > height/3:
		b.WriteString(theme.Hint.Width(cw).Align(lipgloss.Center).Render(
			fmt.Sprintf("%d questions answered", len(results))))
	default:
		b.WriteString(components.Card(renderHistory(results, cw-6), cw))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, s.renderButtons()))

	return b.String()
}

// renderHistory lists each answered question with its delta.
func renderHistory(results []core.Result, width int) string {
	rows := make([]string, 0, len(results))
	for i, r := range results {
		delta := fmt.Sprintf("%+.2f", r.Feedback.Delta)
		style := theme.Incorrect
		if r.Feedback.Positive() {
			style = theme.Correct
		}

		prompt := fmt.Sprintf("%d. %s", i+1, r.Question.Prompt)
		maxPrompt := width - lipgloss.Width(delta) - 2
		if maxPrompt > 1 && lipgloss.Width(prompt) > maxPrompt {
			prompt = truncate(prompt, maxPrompt)
		}
		gap := width - lipgloss.Width(prompt) - lipgloss.Width(delta)
		if gap < 1 {
			gap = 1
		}
		rows = append(rows, theme.Unselected.Render(prompt)+strings.Repeat(" ", gap)+style.Render(delta))
	}
	return strings.Join(rows, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
