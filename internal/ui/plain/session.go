package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"quizgen/internal/session"
)

// Options configures the line-mode front end.
type Options struct {
	NoColor bool
	// Topic is used for the first round instead of prompting.
	Topic string
}

// Run drives one controller from line input until the user declines another
// round or input ends. It returns the last session state.
func Run(ctx context.Context, ctl *session.Controller, in io.Reader, out io.Writer, opts Options) (session.Session, error) {
	reader := bufio.NewReader(in)
	preset := opts.Topic
	for {
		if err := ctx.Err(); err != nil {
			return ctl.Snapshot(), err
		}

		state, err := generateRound(ctx, ctl, reader, out, preset)
		preset = ""
		if err != nil {
			if errors.Is(err, io.EOF) {
				return state, nil
			}
			return state, err
		}

		state, err = answerRound(ctl, reader, out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return state, nil
			}
			return state, err
		}

		state = ctl.Submit()
		PrintReport(out, state.Questions(), state.Report(), opts.NoColor)

		again, err := PromptYesNo(reader, out, "\nTry another topic?", true)
		if err != nil {
			return state, err
		}
		if !again {
			return state, nil
		}
		ctl.Retry()
	}
}

// generateRound prompts for a topic until a quiz with questions is loaded.
// A failed fetch keeps the topic as the default for the next attempt.
func generateRound(ctx context.Context, ctl *session.Controller, reader *bufio.Reader, out io.Writer, preset string) (session.Session, error) {
	for {
		topic := preset
		preset = ""
		if topic == "" {
			line, err := PromptLine(reader, out, "Topic", ctl.Snapshot().Topic())
			if err != nil {
				return ctl.Snapshot(), err
			}
			topic = line
		}
		ctl.SetTopic(topic)

		fmt.Fprintln(out, "Generating quiz...")
		state, err := ctl.Generate(ctx)
		if errors.Is(err, session.ErrEmptyTopic) {
			fmt.Fprintln(out, state.Error())
			continue
		}
		if err != nil {
			return state, err
		}
		switch {
		case state.Phase() == session.PhaseError:
			fmt.Fprintln(out, state.Error())
		case state.QuestionCount() == 0:
			fmt.Fprintln(out, "No questions were generated for this topic.")
		case state.Phase() == session.PhaseReady:
			return state, nil
		}
		if err := ctx.Err(); err != nil {
			return state, err
		}
	}
}

// answerRound asks every question once. A blank answer skips the question.
func answerRound(ctl *session.Controller, reader *bufio.Reader, out io.Writer) (session.Session, error) {
	state := ctl.Snapshot()
	for i, question := range state.Questions() {
		PrintQuestion(out, i, question)
		for {
			line, err := PromptLine(reader, out, "Answer ("+choiceHint(question.Options)+", blank to skip)", "")
			if err != nil {
				return ctl.Snapshot(), err
			}
			if line == "" {
				break
			}
			option, ok := parseChoice(line, question.Options)
			if !ok {
				fmt.Fprintf(out, "Please choose %s.\n", choiceHint(question.Options))
				continue
			}
			ctl.Choose(i, question.Options[option])
			break
		}
	}
	return ctl.Snapshot(), nil
}
