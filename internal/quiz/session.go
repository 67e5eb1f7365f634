package quiz

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/multiquiz/internal/question"
)

// Result records one committed question for the completion breakdown.
type Result struct {
	Question question.Question
	Selected []int
	Feedback Feedback
}

// Session is the quiz progress state machine. It is not safe for
// concurrent use; the presentation layer drives it from a single loop.
type Session struct {
	source    []question.Question
	questions []question.Question

	index    int
	score    float64
	state    State
	selected map[int]bool
	feedback *Feedback
	results  []Result

	id      string
	attempt int

	shuffle   bool
	shuffleFn func(n int, swap func(i, j int))
	newID     func() string
	baseLog   *zap.Logger
	log       *zap.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRand shuffles with r instead of the global source.
func WithRand(r *rand.Rand) SessionOption {
	return func(s *Session) { s.shuffleFn = r.Shuffle }
}

// WithoutShuffle keeps the loaded question order.
func WithoutShuffle() SessionOption {
	return func(s *Session) { s.shuffle = false }
}

// WithLogger sets the logger used for transitions and commits.
func WithLogger(l *zap.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.baseLog = l
		}
	}
}

// WithIDFunc overrides session ID generation.
func WithIDFunc(fn func() string) SessionOption {
	return func(s *Session) { s.newID = fn }
}

// NewSession creates a session over questions and runs the initialization
// transition: AwaitingAnswer on the first question, or Completed with score
// 0 when there are no questions. The slice is copied.
func NewSession(questions []question.Question, opts ...SessionOption) *Session {
	s := &Session{
		source:    append([]question.Question(nil), questions...),
		shuffle:   true,
		shuffleFn: rand.Shuffle,
		newID:     uuid.NewString,
		baseLog:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.start()
	return s
}

// start resets every field and shuffles a fresh copy of the source order.
func (s *Session) start() {
	s.attempt++
	s.id = s.newID()
	s.log = s.baseLog.With(zap.String("session_id", s.id))
	s.questions = append([]question.Question(nil), s.source...)
	if s.shuffle {
		s.shuffleFn(len(s.questions), func(i, j int) {
			s.questions[i], s.questions[j] = s.questions[j], s.questions[i]
		})
	}
	s.index = 0
	s.score = 0
	s.results = nil
	s.clearQuestion()

	if len(s.questions) == 0 {
		s.setState(StateCompleted)
		return
	}
	s.setState(StateAwaitingAnswer)
}

func (s *Session) clearQuestion() {
	s.selected = make(map[int]bool)
	s.feedback = nil
}

func (s *Session) setState(to State) {
	s.log.Debug("transition",
		zap.Stringer("from", s.state),
		zap.Stringer("to", to),
		zap.Int("index", s.index),
		zap.Int("attempt", s.attempt))
	s.state = to
}

// Toggle flips the selection of option idx on the current question.
func (s *Session) Toggle(idx int) error {
	if !s.state.CanSubmit() {
		return &StateError{Op: "toggle", State: s.state}
	}
	if idx < 0 || idx >= len(s.questions[s.index].Options) {
		return ErrOptionOutOfRange
	}
	s.selected[idx] = !s.selected[idx]
	return nil
}

// SubmitSelection submits the options chosen with Toggle.
func (s *Session) SubmitSelection() (Feedback, error) {
	return s.Submit(sortedIndices(s.selected))
}

// Submit scores selected against the current question, adds the delta to
// the cumulative score and moves to Answered. Validation errors leave the
// session unchanged.
func (s *Session) Submit(selected []int) (Feedback, error) {
	if !s.state.CanSubmit() {
		return Feedback{}, &StateError{Op: "submit", State: s.state}
	}

	q := s.questions[s.index]
	fb, err := Score(q, selected)
	if err != nil {
		s.log.Debug("submission rejected", zap.Error(err))
		return Feedback{}, err
	}

	s.selected = make(map[int]bool, len(selected))
	for _, idx := range selected {
		s.selected[idx] = true
	}
	s.score += fb.Delta
	s.feedback = &fb
	s.results = append(s.results, Result{
		Question: q,
		Selected: sortedIndices(s.selected),
		Feedback: fb,
	})

	s.log.Info("answer committed",
		zap.Int("index", s.index),
		zap.Float64("delta", fb.Delta),
		zap.Float64("score", s.score),
		zap.Int("correct_selected", fb.CorrectSelected),
		zap.Int("total_correct", fb.TotalCorrect))
	s.setState(StateAnswered)
	return fb, nil
}

// Advance moves past the answered question. On the last question it moves
// to Completed and returns the completion; otherwise it presents the next
// question with an empty selection and returns nil.
func (s *Session) Advance() (*Completion, error) {
	if !s.state.CanAdvance() {
		return nil, &StateError{Op: "advance", State: s.state}
	}

	s.index++
	s.clearQuestion()
	if s.index == len(s.questions) {
		s.setState(StateCompleted)
		c := s.completion()
		s.log.Info("quiz completed",
			zap.Float64("score", c.Score),
			zap.Float64("max_score", c.MaxScore))
		return &c, nil
	}
	s.setState(StateAwaitingAnswer)
	return nil, nil
}

// Retake discards all progress, reshuffles the loaded questions and starts
// over. It is allowed in every state.
func (s *Session) Retake() {
	s.log.Info("retake", zap.Int("answered", len(s.results)))
	s.start()
}

func (s *Session) completion() Completion {
	return Completion{
		Score:     s.score,
		MaxScore:  DisplayMax(len(s.questions)),
		Questions: len(s.questions),
	}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Completed reports whether every question has been answered.
func (s *Session) Completed() bool { return s.state == StateCompleted }

// Score returns the cumulative score.
func (s *Session) Score() float64 { return s.score }

// Index returns the 0-based index of the current question. It equals
// Total once the session is completed.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// ID returns the session ID. Every retake gets a new one.
func (s *Session) ID() string { return s.id }

// Attempt returns 1 for the first run and increments on every retake.
func (s *Session) Attempt() int { return s.attempt }

// Current returns the current question, or false when completed.
func (s *Session) Current() (question.Question, bool) {
	if s.index >= len(s.questions) {
		return question.Question{}, false
	}
	return s.questions[s.index], true
}

// Options returns the current question's options, or nil when completed.
func (s *Session) Options() []question.Option {
	q, ok := s.Current()
	if !ok {
		return nil
	}
	return append([]question.Option(nil), q.Options...)
}

// IsSelected reports whether option idx is in the selection set.
func (s *Session) IsSelected(idx int) bool { return s.selected[idx] }

// Selected returns the selection set in ascending order.
func (s *Session) Selected() []int { return sortedIndices(s.selected) }

// Feedback returns the feedback of the current question once answered.
func (s *Session) Feedback() (Feedback, bool) {
	if s.feedback == nil {
		return Feedback{}, false
	}
	fb := *s.feedback
	fb.Marks = append([]Mark(nil), fb.Marks...)
	return fb, true
}

// Marks returns one marker per current option. Every marker is neutral
// until the question is answered.
func (s *Session) Marks() []Mark {
	q, ok := s.Current()
	if !ok {
		return nil
	}
	if s.feedback != nil {
		return append([]Mark(nil), s.feedback.Marks...)
	}
	return make([]Mark, len(q.Options))
}

// Completion returns the final score once completed.
func (s *Session) Completion() (Completion, bool) {
	if s.state != StateCompleted {
		return Completion{}, false
	}
	return s.completion(), true
}

// Results returns the committed questions in answer order.
func (s *Session) Results() []Result {
	return append([]Result(nil), s.results...)
}

// Order returns the session's question prompts in presentation order.
func (s *Session) Order() []string {
	out := make([]string, len(s.questions))
	for i, q := range s.questions {
		out[i] = q.Prompt
	}
	return out
}
