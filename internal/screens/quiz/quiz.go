package quiz

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	core "github.com/abhisek/multiquiz/internal/quiz"
	"github.com/abhisek/multiquiz/internal/screen"
	"github.com/abhisek/multiquiz/internal/ui/components"
	"github.com/abhisek/multiquiz/internal/ui/layout"
)

// QuizScreen implements screen.Screen over a quiz session. Every key press
// maps to at most one session operation.
type QuizScreen struct {
	session *core.Session
	log     *zap.Logger
	keys    keyMap
	list    components.Checklist

	// warning is shown in place of feedback after a rejected submit.
	warning string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen driving session. A nil logger discards logs.
func New(session *core.Session, log *zap.Logger) *QuizScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &QuizScreen{
		session: session,
		log:     log.Named("quiz-screen"),
		keys:    newKeyMap(),
	}
	s.reload()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(s.keys.hints()...)
}

// Status shows the question counter and running total.
func (s *QuizScreen) Status() string {
	if s.session.Completed() {
		return fmt.Sprintf("Done  ★ %.2f  ", s.session.Score())
	}
	return fmt.Sprintf("Q %d/%d  ★ %.2f  ", s.session.Index()+1, s.session.Total(), s.session.Score())
}

// Session exposes the driven session, mainly for tests.
func (s *QuizScreen) Session() *core.Session {
	return s.session
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.keys.Retake):
		s.session.Retake()
		s.reload()
	case key.Matches(kmsg, s.keys.Up):
		s.list.Up()
	case key.Matches(kmsg, s.keys.Down):
		s.list.Down()
	case key.Matches(kmsg, s.keys.Toggle):
		s.toggle(s.list.Cursor)
	case key.Matches(kmsg, s.keys.Pick):
		idx := int(kmsg.String()[0] - '1')
		if s.toggle(idx) {
			s.list.Cursor = idx
		}
	case key.Matches(kmsg, s.keys.Submit):
		s.submit()
	case key.Matches(kmsg, s.keys.Next):
		s.advance()
	}
	return s, nil
}

// toggle flips option idx and reports whether the session accepted it.
func (s *QuizScreen) toggle(idx int) bool {
	if err := s.session.Toggle(idx); err != nil {
		s.reject("toggle", err)
		return false
	}
	s.warning = ""
	s.syncList()
	return true
}

func (s *QuizScreen) submit() {
	if _, err := s.session.SubmitSelection(); err != nil {
		if errors.Is(err, core.ErrNoSelection) {
			s.warning = core.SelectionPrompt
			return
		}
		s.reject("submit", err)
		return
	}
	s.warning = ""
	s.syncList()
}

func (s *QuizScreen) advance() {
	if _, err := s.session.Advance(); err != nil {
		s.reject("advance", err)
		return
	}
	s.reload()
}

// reject logs a refused operation. Validation failures are expected
// input; anything else means the key map let through a key the state
// machine does not allow.
func (s *QuizScreen) reject(op string, err error) {
	if core.IsValidation(err) {
		s.log.Debug("input ignored", zap.String("op", op), zap.Error(err))
		return
	}
	s.log.Error("operation rejected", zap.String("op", op), zap.Error(err))
}

// reload rebuilds the checklist for the current question.
func (s *QuizScreen) reload() {
	s.warning = ""
	opts := s.session.Options()
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Text
	}
	s.list = components.NewChecklist(labels)
	s.syncList()
}

// syncList copies selection and marks from the session into the
// checklist and refreshes key enablement.
func (s *QuizScreen) syncList() {
	state := s.session.State()
	marks := s.session.Marks()
	for i := range s.list.Items {
		s.list.Items[i].Checked = s.session.IsSelected(i)
		s.list.Items[i].Mark = components.MarkNone
		if i < len(marks) {
			s.list.Items[i].Mark = itemMark(marks[i])
		}
	}
	s.list.Locked = state == core.StateAnswered
	s.keys.sync(state)
}

func itemMark(m core.Mark) components.ItemMark {
	switch m {
	case core.MarkCorrect:
		return components.MarkRight
	case core.MarkIncorrect:
		return components.MarkWrong
	default:
		return components.MarkNone
	}
}
