package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/multiquiz/internal/question"
)

var checkCmd = &cobra.Command{
	Use:   "check [PATH]",
	Short: "Validate a question set and print a summary",
	Long: `Load a question set the same way the quiz does and list every question
with its option and correct-answer counts. PATH defaults to the configured
question set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			path = cfg.Questions
		}

		set, err := question.Load(cmd.Context(), path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		summary := question.Summarize(set)

		fmt.Fprintf(out, "%-4s  %-50s  %7s  %7s  %s\n", "#", "Question", "Options", "Correct", "Notes")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, q := range summary.Questions {
			prompt := q.Prompt
			if len([]rune(prompt)) > 50 {
				prompt = string([]rune(prompt)[:47]) + "..."
			}
			fmt.Fprintf(out, "%-4d  %-50s  %7d  %7d  %s\n",
				q.Index+1, prompt, q.OptionCount, q.CorrectCount, notes(q))
		}

		fmt.Fprintf(out, "\n%d questions from %s, %d warnings\n", set.Len(), set.Source, summary.Warnings)
		return nil
	},
}

func notes(q question.QuestionSummary) string {
	var n []string
	if q.NoCorrect {
		n = append(n, "no correct option")
	}
	if q.OverSlots {
		n = append(n, fmt.Sprintf("more than %d options", question.ReferenceOptionSlots))
	}
	return strings.Join(n, "; ")
}
