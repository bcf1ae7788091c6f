package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"quizgen/internal/config"
	"quizgen/internal/generator"
	"quizgen/internal/logger"
	"quizgen/internal/session"
)

// settingsFlags are the config overrides shared by network commands.
type settingsFlags struct {
	configPath *string
	apiURL     *string
}

func addSettingsFlags(fs *flag.FlagSet) settingsFlags {
	return settingsFlags{
		configPath: fs.String("config", "", "Path to config file (default: auto-detect .quizgen/config.yml)"),
		apiURL:     fs.String("api-url", "", "Generator API base URL (overrides API_URL)"),
	}
}

// loadSettings resolves and loads the config, then applies flag overrides.
func loadSettings(flags settingsFlags) (config.Config, error) {
	path, err := config.ResolvePath(*flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if override := strings.TrimSpace(*flags.apiURL); override != "" {
		if err := config.ValidateAPIURL(override); err != nil {
			return config.Config{}, err
		}
		cfg.APIURL = strings.TrimRight(override, "/")
	}
	return cfg, nil
}

// newGenerator builds the generator client for a loaded config. It is a
// seam so command tests can avoid the network.
var newGenerator = func(cfg config.Config) session.Generator {
	return generator.NewClient(cfg.APIURL, nil, cfg.Timeout)
}

// newLogger builds the command logger for a loaded config.
func newLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	return logger.Setup(cfg.Log.Level, cfg.Log.Format, w)
}

// reportConfigError prints a config load failure.
func reportConfigError(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Config error: %v\n", err)
	return ExitError
}
