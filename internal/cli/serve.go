package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"quizgen/internal/web"
)

// serveQuiz is a test seam for running the web server.
var serveQuiz = web.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		settings := addSettingsFlags(fs)
		addr := fs.String("addr", "", "Address to listen on (default from config, 127.0.0.1:5173)")
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
		if value := strings.TrimSpace(*addr); value != "" {
			cfg.Serve.Addr = value
		}

		log := newLogger(cfg, stderr)
		ctx, stop := signalContext()
		defer stop()

		serveCfg := web.Config{
			Addr:      cfg.Serve.Addr,
			Generator: newGenerator(cfg),
			Logger:    log,
		}
		fmt.Fprintf(stdout, "Serving quiz at http://%s\n", serveCfg.Addr)
		log.Info().Str("addr", serveCfg.Addr).Str("api_url", cfg.APIURL).Msg("Starting quiz server")
		if err := serveQuiz(ctx, serveCfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
