package quiz

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/abhisek/multiquiz/internal/question"
)

const (
	// PointsPerOption is added for every selected correct option and
	// subtracted for every selected incorrect one.
	PointsPerOption = 0.25

	// DisplayMaxPerQuestion is the per-question maximum used by the
	// completion text. It assumes three correct options per question and
	// is kept as-is even when a question has a different count.
	DisplayMaxPerQuestion = 0.75
)

// SelectionPrompt is shown when the user submits without selecting.
const SelectionPrompt = "Please select at least one option to proceed."

// Feedback is the outcome of scoring one submission.
type Feedback struct {
	// Delta is the points earned on this question. It may be negative.
	Delta float64

	// CorrectSelected counts selected options that are correct.
	CorrectSelected int

	// TotalCorrect counts the question's correct options, selected or not.
	TotalCorrect int

	// Marks has one entry per option of the question.
	Marks []Mark
}

// Positive reports whether the submission earned points.
func (f Feedback) Positive() bool { return f.Delta > 0 }

// Headline is "Correct!" when the delta is positive and "Wrong!" otherwise.
func (f Feedback) Headline() string {
	if f.Positive() {
		return "Correct!"
	}
	return "Wrong!"
}

// Text is the full feedback line shown under the options.
func (f Feedback) Text() string {
	return fmt.Sprintf("%s You selected %d out of %d correct answers. You scored %.2f points for this question.",
		f.Headline(), f.CorrectSelected, f.TotalCorrect, f.Delta)
}

// Score applies the partial-credit rule to a selection. Duplicate indices
// count once. An empty selection returns ErrNoSelection and an index
// outside the option list returns ErrOptionOutOfRange.
func Score(q question.Question, selected []int) (Feedback, error) {
	if len(selected) == 0 {
		return Feedback{}, ErrNoSelection
	}

	chosen := make(map[int]bool, len(selected))
	for _, idx := range selected {
		if idx < 0 || idx >= len(q.Options) {
			return Feedback{}, fmt.Errorf("%w: %d (question has %d options)", ErrOptionOutOfRange, idx, len(q.Options))
		}
		chosen[idx] = true
	}

	fb := Feedback{
		TotalCorrect: q.CorrectCount(),
		Marks:        make([]Mark, len(q.Options)),
	}
	for i, opt := range q.Options {
		if !chosen[i] {
			continue
		}
		if opt.Correct {
			fb.Delta += PointsPerOption
			fb.CorrectSelected++
			fb.Marks[i] = MarkCorrect
		} else {
			fb.Delta -= PointsPerOption
			fb.Marks[i] = MarkIncorrect
		}
	}
	return fb, nil
}

// DisplayMax is the maximum score printed on completion for n questions.
func DisplayMax(n int) float64 {
	return float64(n) * DisplayMaxPerQuestion
}

// Completion describes a finished session.
type Completion struct {
	Score     float64
	MaxScore  float64
	Questions int
}

// Text is the final-score line, e.g. "Quiz Completed! Your total score: 0.25/1.5".
func (c Completion) Text() string {
	return fmt.Sprintf("Quiz Completed! Your total score: %.2f/%s", c.Score, formatMax(c.MaxScore))
}

// TotalText is the running total shown after each submission.
func TotalText(score float64) string {
	return fmt.Sprintf("Total Points: %.2f", score)
}

// formatMax prints v in shortest form while always keeping a fractional
// part, so 3 prints as "3.0" and 1.5 as "1.5".
func formatMax(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// sortedIndices returns the keys of set in ascending order.
func sortedIndices(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for idx, on := range set {
		if on {
			out = append(out, idx)
		}
	}
	sort.Ints(out)
	return out
}
