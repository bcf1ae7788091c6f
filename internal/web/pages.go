package web

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"quizgen/internal/quiz"
	"quizgen/internal/session"
)

// QuizPage renders the whole quiz screen for one session.
func QuizPage(state session.Session) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Quiz Generator</title>
    <link rel="stylesheet" href="`+stylesheetURL+`" />
  </head>
  <body>
    <main>
      <h1>Quiz Generator</h1>
`); err != nil {
			return err
		}
		sections := []templ.Component{
			topicForm(state),
			statusLine(state),
			quizForm(state),
			scoreLine(state),
		}
		for _, section := range sections {
			if err := section.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "    </main>\n  </body>\n</html>\n")
		return err
	})
}

// topicForm renders the topic input and the generate button.
func topicForm(state session.Session) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		disabled := ""
		if state.Loading() {
			disabled = " disabled"
		}
		_, err := fmt.Fprintf(w, `      <form class="topic" method="post" action="/generate">
        <input type="text" name="topic" value="%s" placeholder="Enter a topic" aria-label="Topic" />
        <button type="submit"%s>Generate</button>
      </form>
`, templ.EscapeString(state.Topic()), disabled)
		return err
	})
}

// statusLine renders the loading indicator, the inline error, or an empty-quiz note.
func statusLine(state session.Session) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var err error
		switch {
		case state.Loading():
			_, err = io.WriteString(w, `      <p class="loading">Generating quiz...</p>`+"\n")
		case state.Error() != "":
			_, err = fmt.Fprintf(w, `      <p class="error" role="alert">%s</p>`+"\n", templ.EscapeString(state.Error()))
		case state.Phase() == session.PhaseReady && state.QuestionCount() == 0:
			_, err = io.WriteString(w, `      <p class="empty">No questions were generated for this topic.</p>`+"\n")
		}
		return err
	})
}

// quizForm renders radio groups for every question plus submit and retry.
func quizForm(state session.Session) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		questions := state.Questions()
		if len(questions) == 0 {
			return nil
		}
		submitted := state.Submitted()
		var report quiz.Report
		if submitted {
			report = state.Report()
		}

		if _, err := io.WriteString(w, `      <form class="quiz" method="post" action="/submit">`+"\n"); err != nil {
			return err
		}
		for i, question := range questions {
			var result *quiz.Result
			if submitted {
				result = &report.Results[i]
			}
			choice, answered := state.Answer(i)
			if err := questionFieldset(i, question, choice, answered, result).Render(ctx, w); err != nil {
				return err
			}
		}
		buttons := `        <button type="submit" formaction="/answers">Save answers</button>
        <button type="submit">Submit</button>
`
		if submitted {
			buttons = ""
		}
		if _, err := io.WriteString(w, buttons+"      </form>\n"); err != nil {
			return err
		}
		_, err := io.WriteString(w, `      <form method="post" action="/retry"><button type="submit">Retry</button></form>`+"\n")
		return err
	})
}

// questionFieldset renders one question. A non-nil result marks the
// correct option and a wrong choice.
func questionFieldset(index int, question quiz.Question, choice string, answered bool, result *quiz.Result) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `        <fieldset class="question">
          <legend>%d. %s</legend>
`, index+1, templ.EscapeString(question.Prompt)); err != nil {
			return err
		}
		name := fieldName(index)
		for j, option := range question.Options {
			chosen := answered && choice == option
			correct := result != nil && result.Resolved && result.CorrectIndex == j
			wrong := result != nil && chosen && result.Outcome == quiz.OutcomeIncorrect
			class := templ.Classes("option", templ.KV("correct", correct), templ.KV("wrong", wrong)).String()

			attrs := ""
			if chosen {
				attrs += " checked"
			}
			if result != nil {
				attrs += " disabled"
			}
			if _, err := fmt.Fprintf(w, `          <label class="%s"><input type="radio" name="%s" value="%d"%s /> %s. %s</label>
`, class, name, j, attrs, optionLabel(j), templ.EscapeString(option)); err != nil {
				return err
			}
		}
		if result != nil && result.Outcome == quiz.OutcomeUngradable {
			if _, err := io.WriteString(w, `          <p class="note">No answer key for this question.</p>`+"\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "        </fieldset>\n")
		return err
	})
}

// scoreLine renders the final score after submission.
func scoreLine(state session.Session) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		score, ok := state.Score()
		if !ok {
			return nil
		}
		_, err := fmt.Fprintf(w, `      <p class="score">Your score: %d / %d</p>`+"\n", score, state.QuestionCount())
		return err
	})
}

// fieldName is the radio group name for a question index.
func fieldName(index int) string {
	return "q" + strconv.Itoa(index)
}

// optionLabel returns A, B, C... and falls back to numbers past Z.
func optionLabel(index int) string {
	if index >= 0 && index < 26 {
		return string(rune('A' + index))
	}
	return strconv.Itoa(index + 1)
}
