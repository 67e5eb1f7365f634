package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/multiquiz/internal/question"
	core "github.com/abhisek/multiquiz/internal/quiz"
	"github.com/abhisek/multiquiz/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []question.Question {
	return []question.Question{
		{Prompt: "Primary colours?", Options: []question.Option{
			{Text: "Red", Correct: true},
			{Text: "Green"},
			{Text: "Blue", Correct: true},
		}},
		{Prompt: "Even numbers?", Options: []question.Option{
			{Text: "2", Correct: true},
			{Text: "3"},
		}},
	}
}

func testScreen(qs []question.Question) *QuizScreen {
	return New(core.NewSession(qs, core.WithoutShuffle()), nil)
}

func press(t *testing.T, s *QuizScreen, msgs ...tea.Msg) *QuizScreen {
	t.Helper()
	var scr screen.Screen = s
	for _, m := range msgs {
		scr, _ = scr.Update(m)
	}
	return scr.(*QuizScreen)
}

func TestQuizScreen_Title(t *testing.T) {
	s := testScreen(testQuestions())
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
}

func TestQuizScreen_ChecklistSizedToOptions(t *testing.T) {
	s := testScreen(testQuestions())
	if len(s.list.Items) != 3 {
		t.Fatalf("checklist items = %d, want 3", len(s.list.Items))
	}
}

func TestQuizScreen_WorkedExample(t *testing.T) {
	s := testScreen(testQuestions())

	// Q1: pick Red and Green, submit.
	s = press(t, s, keyPress('1'), keyPress('2'), specialKey(tea.KeyEnter))
	if s.session.State() != core.StateAnswered {
		t.Fatalf("state = %v, want answered", s.session.State())
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Wrong! You selected 1 out of 2 correct answers.") {
		t.Errorf("feedback missing from view:\n%s", view)
	}
	if !s.list.Locked {
		t.Error("expected checklist to lock after submit")
	}

	// Advance, then Q2: pick "2" with cursor + space.
	s = press(t, s, specialKey(tea.KeyEnter), keyPress(' '), specialKey(tea.KeyEnter))
	if got := s.session.Score(); got != 0.25 {
		t.Errorf("score = %v, want 0.25", got)
	}

	s = press(t, s, specialKey(tea.KeyEnter))
	if !s.session.Completed() {
		t.Fatal("expected completed after last advance")
	}
	view = s.View(100, 30)
	if !strings.Contains(view, "Quiz Completed! Your total score: 0.25/1.5") {
		t.Errorf("completion text missing:\n%s", view)
	}
}

func TestQuizScreen_EmptySubmitWarns(t *testing.T) {
	s := testScreen(testQuestions())

	s = press(t, s, specialKey(tea.KeyEnter))
	if s.session.State() != core.StateAwaitingAnswer {
		t.Errorf("state = %v, want awaiting-answer", s.session.State())
	}
	if s.warning != core.SelectionPrompt {
		t.Errorf("warning = %q, want %q", s.warning, core.SelectionPrompt)
	}

	// Selecting clears the warning.
	s = press(t, s, keyPress('1'))
	if s.warning != "" {
		t.Errorf("warning = %q after toggle, want empty", s.warning)
	}
}

func TestQuizScreen_DigitOutOfRangeIgnored(t *testing.T) {
	s := testScreen(testQuestions())

	s = press(t, s, keyPress('9'))
	if len(s.session.Selected()) != 0 {
		t.Errorf("selected = %v, want none", s.session.Selected())
	}
	if s.list.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", s.list.Cursor)
	}
}

func TestQuizScreen_ToggleTwiceDeselects(t *testing.T) {
	s := testScreen(testQuestions())

	s = press(t, s, specialKey(tea.KeyDown), keyPress(' '))
	if !s.list.Items[1].Checked {
		t.Fatal("expected option 2 checked")
	}
	s = press(t, s, keyPress(' '))
	if s.list.Items[1].Checked {
		t.Error("expected option 2 unchecked after second toggle")
	}
}

func TestQuizScreen_KeysLockedAfterSubmit(t *testing.T) {
	s := testScreen(testQuestions())
	s = press(t, s, keyPress('1'), specialKey(tea.KeyEnter))

	// Toggling an answered question does nothing.
	s = press(t, s, keyPress('2'))
	if s.session.IsSelected(1) {
		t.Error("answered question accepted a toggle")
	}
	if s.session.Index() != 0 {
		t.Errorf("index = %d, want 0", s.session.Index())
	}
}

func TestQuizScreen_Retake(t *testing.T) {
	s := testScreen(testQuestions())
	s = press(t, s, keyPress('1'), specialKey(tea.KeyEnter), specialKey(tea.KeyEnter))

	s = press(t, s, keyPress('r'))
	if s.session.Index() != 0 || s.session.Score() != 0 {
		t.Errorf("after retake index = %d score = %v, want 0 and 0", s.session.Index(), s.session.Score())
	}
	if s.session.Attempt() != 2 {
		t.Errorf("attempt = %d, want 2", s.session.Attempt())
	}
	if len(s.list.Items) != 3 || s.list.Locked {
		t.Error("expected a fresh checklist for question 1")
	}
}

func TestQuizScreen_EmptySet(t *testing.T) {
	s := testScreen(nil)
	if !s.session.Completed() {
		t.Fatal("expected empty set to start completed")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Quiz Completed! Your total score: 0.00/0.0") {
		t.Errorf("completion text missing:\n%s", view)
	}
	if !strings.Contains(s.Status(), "Done") {
		t.Errorf("Status = %q, want Done", s.Status())
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s := testScreen(testQuestions())

	descs := func() string {
		var out []string
		for _, h := range s.KeyHints() {
			out = append(out, h.Description)
		}
		return strings.Join(out, ",")
	}

	if got := descs(); !strings.Contains(got, "submit") || strings.Contains(got, "next") {
		t.Errorf("awaiting hints = %q", got)
	}
	s = press(t, s, keyPress('1'), specialKey(tea.KeyEnter))
	if got := descs(); strings.Contains(got, "submit") || !strings.Contains(got, "next") {
		t.Errorf("answered hints = %q", got)
	}
}

func TestQuizScreen_Status(t *testing.T) {
	s := testScreen(testQuestions())
	if got := s.Status(); !strings.Contains(got, "Q 1/2") {
		t.Errorf("Status = %q, want Q 1/2", got)
	}
}
