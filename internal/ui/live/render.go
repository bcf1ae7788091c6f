package live

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizgen/internal/quiz"
	"quizgen/internal/session"
)

var (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("242")
	colorCursor  = lipgloss.Color("212")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
)

// render joins the screen sections top to bottom.
func render(m Model) string {
	sections := []string{
		renderTitle(m.noColor),
		renderTopic(m),
	}
	if status := renderStatus(m); status != "" {
		sections = append(sections, status)
	}
	if quizView := renderQuiz(m); quizView != "" {
		sections = append(sections, quizView)
	}
	if score := renderScore(m.session, m.noColor); score != "" {
		sections = append(sections, score)
	}
	sections = append(sections, m.help.View(m.keys.forState(m.focus, m.session)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// renderTitle renders the app header.
func renderTitle(noColor bool) string {
	if noColor {
		return "Quiz Generator"
	}
	return lipgloss.NewStyle().Bold(true).Foreground(colorTitle).Render("Quiz Generator")
}

// renderTopic renders the topic input and the generate button.
func renderTopic(m Model) string {
	button := "[ Generate ]"
	if m.session.Loading() {
		button = stylize(button, m.noColor, colorMuted)
	} else if m.focus == focusTopic {
		button = stylize(button, m.noColor, colorCursor)
	}
	return m.input.View() + "  " + button
}

// renderStatus renders the spinner while loading, or the inline error.
func renderStatus(m Model) string {
	switch {
	case m.session.Loading():
		return m.spinner.View() + " Generating quiz..."
	case m.session.Error() != "":
		return stylize(m.session.Error(), m.noColor, colorWrong)
	case m.session.Phase() == session.PhaseReady && m.session.QuestionCount() == 0:
		return stylize("No questions were generated for this topic.", m.noColor, colorMuted)
	}
	return ""
}

// renderQuiz renders every question with its options.
func renderQuiz(m Model) string {
	questions := m.session.Questions()
	if len(questions) == 0 {
		return ""
	}
	submitted := m.session.Submitted()
	var report quiz.Report
	if submitted {
		report = m.session.Report()
	}

	var b strings.Builder
	for i, question := range questions {
		active := m.focus == focusQuiz && i == m.question
		heading := formatHeading(i, question.Prompt)
		if active {
			heading = stylize(heading, m.noColor, colorCursor)
		}
		b.WriteString("\n" + heading + "\n")

		choice, answered := m.session.Answer(i)
		for j, option := range question.Options {
			mark := optionMark{
				cursor: active && j == m.option,
				chosen: answered && choice == option,
			}
			if submitted {
				result := report.Results[i]
				mark.correct = result.Resolved && result.CorrectIndex == j
				mark.wrong = mark.chosen && result.Outcome == quiz.OutcomeIncorrect
			}
			b.WriteString(renderOption(j, option, mark, m.noColor) + "\n")
		}
		if submitted && !report.Results[i].Resolved {
			b.WriteString(stylize("    (no answer key for this question)", m.noColor, colorMuted) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// optionMark captures how one option row is decorated.
type optionMark struct {
	cursor  bool
	chosen  bool
	correct bool
	wrong   bool
}

// renderOption renders a radio-style option row.
func renderOption(index int, option string, mark optionMark, noColor bool) string {
	line := formatOption(index, option, mark.cursor, mark.chosen)
	switch {
	case mark.correct:
		return stylize(line+" ✓", noColor, colorCorrect)
	case mark.wrong:
		return stylize(line+" ✗", noColor, colorWrong)
	case mark.cursor:
		return stylize(line, noColor, colorCursor)
	}
	return line
}

// renderScore renders the final score after submission.
func renderScore(state session.Session, noColor bool) string {
	score, ok := state.Score()
	if !ok {
		return ""
	}
	line := "\n" + formatScore(score, state.QuestionCount())
	if noColor {
		return line
	}
	return lipgloss.NewStyle().Bold(true).Render(line)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
