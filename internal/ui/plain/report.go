package plain

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizgen/internal/quiz"
)

var (
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorMuted   = lipgloss.Color("242")
)

// PrintQuestion writes a numbered question with lettered options.
func PrintQuestion(w io.Writer, index int, question quiz.Question) {
	fmt.Fprintf(w, "\n%d. %s\n", index+1, strings.Join(strings.Fields(question.Prompt), " "))
	for j, option := range question.Options {
		fmt.Fprintf(w, "   %s. %s\n", optionLabel(j), option)
	}
}

// PrintReport writes every question with correct and chosen options marked,
// followed by the score line.
func PrintReport(w io.Writer, questions []quiz.Question, report quiz.Report, noColor bool) {
	for i, question := range questions {
		result := report.Results[i]
		fmt.Fprintf(w, "\n%d. %s\n", i+1, strings.Join(strings.Fields(question.Prompt), " "))
		for j, option := range question.Options {
			chosen := result.Answered && quiz.NormalizeAnswerText(result.Choice) == quiz.NormalizeAnswerText(option)
			correct := result.Resolved && result.CorrectIndex == j
			line := fmt.Sprintf("%s. %s", optionLabel(j), option)
			if chosen {
				line += " (your answer)"
			}
			switch {
			case correct:
				fmt.Fprintln(w, " "+stylize("✓ "+line, noColor, colorCorrect))
			case chosen:
				fmt.Fprintln(w, " "+stylize("✗ "+line, noColor, colorWrong))
			default:
				fmt.Fprintln(w, "   "+line)
			}
		}
		switch result.Outcome {
		case quiz.OutcomeUnanswered:
			fmt.Fprintln(w, "   "+stylize("(no answer)", noColor, colorMuted))
		case quiz.OutcomeUngradable:
			fmt.Fprintln(w, "   "+stylize("(no answer key for this question)", noColor, colorMuted))
		}
	}
	fmt.Fprintf(w, "\nYour score: %d / %d\n", report.Score, report.Total)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
