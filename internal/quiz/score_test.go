package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/multiquiz/internal/question"
)

func q(prompt string, correct ...bool) question.Question {
	opts := make([]question.Option, len(correct))
	for i, c := range correct {
		opts[i] = question.Option{Text: prompt + "-" + string(rune('a'+i)), Correct: c}
	}
	return question.Question{Prompt: prompt, Options: opts}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name           string
		question       question.Question
		selected       []int
		wantDelta      float64
		wantCorrectSel int
		wantTotal      int
		wantMarks      []Mark
	}{
		{
			name:           "one right one wrong",
			question:       q("q1", true, false, true),
			selected:       []int{0, 1},
			wantDelta:      0,
			wantCorrectSel: 1,
			wantTotal:      2,
			wantMarks:      []Mark{MarkCorrect, MarkIncorrect, MarkNeutral},
		},
		{
			name:           "all correct",
			question:       q("q2", true, false, true),
			selected:       []int{0, 2},
			wantDelta:      0.5,
			wantCorrectSel: 2,
			wantTotal:      2,
			wantMarks:      []Mark{MarkCorrect, MarkNeutral, MarkCorrect},
		},
		{
			name:           "only wrong goes negative",
			question:       q("q3", true, false, false),
			selected:       []int{1, 2},
			wantDelta:      -0.5,
			wantCorrectSel: 0,
			wantTotal:      1,
			wantMarks:      []Mark{MarkNeutral, MarkIncorrect, MarkIncorrect},
		},
		{
			name:           "duplicates count once",
			question:       q("q4", true, false),
			selected:       []int{0, 0, 0},
			wantDelta:      0.25,
			wantCorrectSel: 1,
			wantTotal:      1,
			wantMarks:      []Mark{MarkCorrect, MarkNeutral},
		},
		{
			name:           "no correct options",
			question:       q("q5", false, false),
			selected:       []int{0},
			wantDelta:      -0.25,
			wantCorrectSel: 0,
			wantTotal:      0,
			wantMarks:      []Mark{MarkIncorrect, MarkNeutral},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, err := Score(tt.question, tt.selected)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDelta, fb.Delta)
			assert.Equal(t, tt.wantCorrectSel, fb.CorrectSelected)
			assert.Equal(t, tt.wantTotal, fb.TotalCorrect)
			assert.Equal(t, tt.wantMarks, fb.Marks)
		})
	}
}

func TestScore_Validation(t *testing.T) {
	question := q("q", true, false)

	_, err := Score(question, nil)
	assert.True(t, errors.Is(err, ErrNoSelection))
	assert.True(t, IsValidation(err))

	_, err = Score(question, []int{})
	assert.True(t, errors.Is(err, ErrNoSelection))

	_, err = Score(question, []int{0, 2})
	assert.True(t, errors.Is(err, ErrOptionOutOfRange))
	assert.True(t, IsValidation(err))

	_, err = Score(question, []int{-1})
	assert.True(t, errors.Is(err, ErrOptionOutOfRange))
}

func TestFeedbackText(t *testing.T) {
	tests := []struct {
		name string
		fb   Feedback
		want string
	}{
		{
			name: "zero delta is wrong",
			fb:   Feedback{Delta: 0, CorrectSelected: 1, TotalCorrect: 2},
			want: "Wrong! You selected 1 out of 2 correct answers. You scored 0.00 points for this question.",
		},
		{
			name: "positive",
			fb:   Feedback{Delta: 0.25, CorrectSelected: 1, TotalCorrect: 1},
			want: "Correct! You selected 1 out of 1 correct answers. You scored 0.25 points for this question.",
		},
		{
			name: "negative",
			fb:   Feedback{Delta: -0.5, CorrectSelected: 0, TotalCorrect: 3},
			want: "Wrong! You selected 0 out of 3 correct answers. You scored -0.50 points for this question.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fb.Text())
		})
	}
}

func TestCompletionText(t *testing.T) {
	tests := []struct {
		score float64
		n     int
		want  string
	}{
		{0.25, 2, "Quiz Completed! Your total score: 0.25/1.5"},
		{0, 0, "Quiz Completed! Your total score: 0.00/0.0"},
		{0.75, 1, "Quiz Completed! Your total score: 0.75/0.75"},
		{2, 4, "Quiz Completed! Your total score: 2.00/3.0"},
		{-0.5, 3, "Quiz Completed! Your total score: -0.50/2.25"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			c := Completion{Score: tt.score, MaxScore: DisplayMax(tt.n), Questions: tt.n}
			assert.Equal(t, tt.want, c.Text())
		})
	}
}

func TestTotalText(t *testing.T) {
	assert.Equal(t, "Total Points: 0.25", TotalText(0.25))
	assert.Equal(t, "Total Points: -1.00", TotalText(-1))
}
