package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"quizgen/internal/quiz"
	"quizgen/internal/ui/plain"
)

// runGrade builds the handler for the grade command.
func runGrade(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		strict := fs.Bool("strict", false, "Fail when a question has no usable answer key")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		if !parseFlags(cmd, fs, args, stderr) {
			return ExitUsage
		}
		sheetPath := fs.Arg(0)
		if sheetPath == "" {
			fmt.Fprintln(stderr, "Missing <sheet>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if fs.NArg() > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args()[1:], " "))
			return ExitUsage
		}

		sheet, err := quiz.LoadSheet(sheetPath)
		if err != nil {
			fmt.Fprintf(stderr, "Load sheet: %v\n", err)
			return ExitError
		}
		if len(sheet.Questions) == 0 {
			fmt.Fprintln(stderr, "Sheet has no questions")
			return ExitError
		}
		if *strict {
			if err := quiz.Validate(sheet.Questions); err != nil {
				var validation *quiz.ValidationError
				if errors.As(err, &validation) {
					for _, issue := range validation.Issues {
						fmt.Fprintf(stderr, "%s: %s\n", issue.Field, issue.Message)
					}
				} else {
					fmt.Fprintln(stderr, err)
				}
				return ExitError
			}
		}

		if sheet.Topic != "" {
			fmt.Fprintf(stdout, "Topic: %s\n", sheet.Topic)
		}
		report := quiz.Grade(sheet.Questions, sheet.Answers)
		plain.PrintReport(stdout, sheet.Questions, report, *noColor || !isTerminal(stdout))
		return ExitOK
	}
}
