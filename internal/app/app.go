package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/multiquiz/internal/question"
	"github.com/abhisek/multiquiz/internal/quiz"
	"github.com/abhisek/multiquiz/internal/router"
	"github.com/abhisek/multiquiz/internal/screen"
	"github.com/abhisek/multiquiz/internal/screens/home"
	quizscreen "github.com/abhisek/multiquiz/internal/screens/quiz"
	"github.com/abhisek/multiquiz/internal/ui/layout"
)

// Options holds the dependencies injected into the app.
type Options struct {
	// Set is the loaded question set. A nil or empty set is allowed.
	Set *question.Set

	// Shuffle randomizes question order on every start and retake.
	Shuffle bool

	// SessionOptions are appended to the options every new session gets.
	SessionOptions []quiz.SessionOption

	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var questions []question.Question
	if opts.Set != nil {
		questions = opts.Set.Questions
	}

	sessionOpts := []quiz.SessionOption{quiz.WithLogger(log)}
	if !opts.Shuffle {
		sessionOpts = append(sessionOpts, quiz.WithoutShuffle())
	}
	sessionOpts = append(sessionOpts, opts.SessionOptions...)

	start := func() screen.Screen {
		return quizscreen.New(quiz.NewSession(questions, sessionOpts...), log)
	}

	return AppModel{
		router: router.New(home.New(opts.Set, start)),
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "esc", Description: "back"},
			{Key: "ctrl+c", Description: "quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
