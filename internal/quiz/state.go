package quiz

// State is the phase of a quiz session.
type State int

const (
	StateAwaitingAnswer State = iota // Submit enabled, next disabled
	StateAnswered                    // Submit disabled, next enabled
	StateCompleted                   // Both disabled, retake offered
)

func (s State) String() string {
	switch s {
	case StateAwaitingAnswer:
		return "awaiting-answer"
	case StateAnswered:
		return "answered"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// CanSubmit reports whether Submit is accepted in this state.
func (s State) CanSubmit() bool { return s == StateAwaitingAnswer }

// CanAdvance reports whether Advance is accepted in this state.
func (s State) CanAdvance() bool { return s == StateAnswered }

// Mark is the display marker of a single option after submission.
type Mark int

const (
	MarkNeutral   Mark = iota // Not selected, or not yet submitted
	MarkCorrect               // Selected and correct
	MarkIncorrect             // Selected and incorrect
)

func (m Mark) String() string {
	switch m {
	case MarkCorrect:
		return "correct"
	case MarkIncorrect:
		return "incorrect"
	default:
		return "neutral"
	}
}
