package home

import (
	"fmt"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/multiquiz/internal/question"
	"github.com/abhisek/multiquiz/internal/router"
	"github.com/abhisek/multiquiz/internal/screen"
	"github.com/abhisek/multiquiz/internal/ui/components"
	"github.com/abhisek/multiquiz/internal/ui/layout"
	"github.com/abhisek/multiquiz/internal/ui/theme"
)

const titleArt = "M · U · L · T · I · Q · U · I · Z"

// QuizFactory builds a fresh quiz screen for each START QUIZ.
type QuizFactory func() screen.Screen

// HomeScreen is the main menu screen.
type HomeScreen struct {
	menu  components.Menu
	set   *question.Set
	start QuizFactory
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen for set. start is called on every START QUIZ.
func New(set *question.Set, start QuizFactory) *HomeScreen {
	h := &HomeScreen{set: set, start: start}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "START QUIZ", Action: h.startQuiz, Disabled: start == nil},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) startQuiz() tea.Cmd {
	next := h.start()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return append(
		layout.HintsFor(h.menu.Keys.Up, h.menu.Keys.Select),
		layout.KeyHint{Key: "ctrl+c", Description: "quit"},
	)
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Width(cw).Render(titleArt),
		"",
		theme.Subtitle.Width(cw).Render(h.describeSet()),
		"",
		h.menu.View(min(cw, 32)),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// describeSet summarises what START QUIZ will load.
func (h *HomeScreen) describeSet() string {
	n := h.set.Len()
	noun := "questions"
	if n == 1 {
		noun = "question"
	}
	if h.set == nil || h.set.Source == "" {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %s from %s", n, noun, filepath.Base(h.set.Source))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
