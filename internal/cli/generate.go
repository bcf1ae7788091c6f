package cli

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"quizgen/internal/quiz"
	"quizgen/internal/session"
)

// runGenerate builds the handler for the generate command.
func runGenerate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		settings := addSettingsFlags(fs)
		topic := fs.String("topic", "", "Quiz topic")
		formatFlag := fs.String("format", "", "Output format: json|yaml (default from --out extension, else json)")
		outPath := fs.String("out", "", "Write the sheet to this file instead of stdout")
		if !parseFlags(cmd, fs, args, stderr) {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if strings.TrimSpace(*topic) == "" {
			fmt.Fprintln(stderr, session.MessageEmptyTopic)
			return ExitUsage
		}

		format := quiz.FormatJSON
		if *outPath != "" {
			format = quiz.FormatForPath(*outPath)
		}
		if *formatFlag != "" {
			parsed, err := quiz.ParseFormat(*formatFlag)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return ExitUsage
			}
			format = parsed
		}

		cfg, err := loadSettings(settings)
		if err != nil {
			return reportConfigError(stderr, err)
		}
		log := newLogger(cfg, stderr)
		ctx, stop := signalContext()
		defer stop()

		ctl := session.NewController(newGenerator(cfg), log)
		ctl.SetTopic(*topic)
		state, err := ctl.Generate(ctx)
		if err != nil {
			fmt.Fprintln(stderr, state.Error())
			return ExitError
		}
		if state.Phase() == session.PhaseError {
			fmt.Fprintln(stderr, state.Error())
			return ExitError
		}

		sheet := quiz.Sheet{Topic: state.Topic(), Questions: state.Questions()}
		var buf bytes.Buffer
		if err := quiz.WriteSheet(&buf, sheet, format); err != nil {
			fmt.Fprintf(stderr, "Write sheet: %v\n", err)
			return ExitError
		}
		if *outPath == "" {
			_, _ = stdout.Write(buf.Bytes())
			return ExitOK
		}
		if err := os.WriteFile(*outPath, buf.Bytes(), 0o644); err != nil {
			fmt.Fprintf(stderr, "Write sheet: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %d questions to %s\n", len(sheet.Questions), *outPath)
		return ExitOK
	}
}
