package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"quizgen/internal/logger"
	"quizgen/internal/session"
	"quizgen/internal/ui/live"
	"quizgen/internal/ui/plain"
)

// playInput allows tests to override stdin for plain prompts.
var playInput io.Reader = os.Stdin

// runLiveProgram runs the Bubble Tea program and returns the final model.
var runLiveProgram = func(ctx context.Context, model live.Model, stdout io.Writer) (live.Model, error) {
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(stdout), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return model, nil
		}
		return model, err
	}
	finalModel, ok := final.(live.Model)
	if !ok {
		return model, fmt.Errorf("unexpected model type %T", final)
	}
	return finalModel, nil
}

// signalContext returns a context cancelled on interrupt or terminate.
var signalContext = func() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		settings := addSettingsFlags(fs)
		uiMode := fs.String("ui", "", "UI mode: auto|live|plain (default from config)")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		logPath := fs.String("log", "", "Write logs to this file")
		topic := fs.String("topic", "", "Generate a quiz for this topic right away")
		if !parseFlags(cmd, fs, args, stderr) {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadSettings(settings)
		if err != nil {
			return reportConfigError(stderr, err)
		}
		mode := cfg.UI.Mode
		if strings.TrimSpace(*uiMode) != "" {
			mode = *uiMode
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		colorless := *noColor || cfg.UI.NoColor

		var logWriter io.Writer = stderr
		var deferred *logger.Deferred
		if path := strings.TrimSpace(*logPath); path != "" {
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				fmt.Fprintf(stderr, "Open log file: %v\n", err)
				return ExitError
			}
			defer file.Close()
			logWriter = file
		} else if decision.useLive {
			deferred = &logger.Deferred{}
			logWriter = deferred
		}
		log := newLogger(cfg, logWriter)
		gen := newGenerator(cfg)

		ctx, stop := signalContext()
		defer stop()

		if decision.useLive {
			model := live.NewModel(live.Options{
				Generator: gen,
				Logger:    log,
				Context:   ctx,
				NoColor:   colorless,
				Topic:     strings.TrimSpace(*topic),
			})
			final, err := runLiveProgram(ctx, model, stdout)
			if deferred != nil {
				_ = deferred.Flush(stderr)
			}
			if err != nil {
				fmt.Fprintf(stderr, "Live UI failed: %v\n", err)
				return ExitError
			}
			if state := final.Session(); state.Submitted() {
				plain.PrintReport(stdout, state.Questions(), state.Report(), colorless)
			}
			return ExitOK
		}

		ctl := session.NewController(gen, log)
		_, err = plain.Run(ctx, ctl, playInput, stdout, plain.Options{
			NoColor: colorless,
			Topic:   strings.TrimSpace(*topic),
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
