package question

// Option is a single selectable answer of a question.
type Option struct {
	// Text is the label shown next to the checkbox.
	Text string `json:"text"`

	// Correct marks the option as one of the right answers.
	Correct bool `json:"correct"`
}

// Question is a multiple-select question. A question may have any number
// of correct options, including none.
type Question struct {
	// Prompt is the question text shown above the options.
	Prompt string `json:"question"`

	// Options are shown in file order.
	Options []Option `json:"options"`
}

// CorrectCount returns the number of correct options.
func (q Question) CorrectCount() int {
	n := 0
	for _, o := range q.Options {
		if o.Correct {
			n++
		}
	}
	return n
}

// IsCorrect reports whether the option at idx exists and is correct.
func (q Question) IsCorrect(idx int) bool {
	if idx < 0 || idx >= len(q.Options) {
		return false
	}
	return q.Options[idx].Correct
}

// Set is an ordered, load-once sequence of questions.
type Set struct {
	// Source is the path the set was loaded from.
	Source string

	Questions []Question
}

// Len returns the number of questions in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Questions)
}
