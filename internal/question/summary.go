package question

// ReferenceOptionSlots is the option count of the classic five-slot quiz
// layout. Longer questions still work; they are only flagged.
const ReferenceOptionSlots = 5

// QuestionSummary describes one question for the check command.
type QuestionSummary struct {
	Index        int
	Prompt       string
	OptionCount  int
	CorrectCount int
	NoCorrect    bool
	OverSlots    bool
}

// SetSummary aggregates per-question summaries.
type SetSummary struct {
	Questions []QuestionSummary
	Warnings  int
}

// Summarize inspects every question of the set.
func Summarize(s *Set) SetSummary {
	var sum SetSummary
	if s == nil {
		return sum
	}
	for i, q := range s.Questions {
		qs := QuestionSummary{
			Index:        i,
			Prompt:       q.Prompt,
			OptionCount:  len(q.Options),
			CorrectCount: q.CorrectCount(),
		}
		qs.NoCorrect = qs.CorrectCount == 0
		qs.OverSlots = qs.OptionCount > ReferenceOptionSlots
		if qs.NoCorrect {
			sum.Warnings++
		}
		if qs.OverSlots {
			sum.Warnings++
		}
		sum.Questions = append(sum.Questions, qs)
	}
	return sum
}
