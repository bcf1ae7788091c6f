package config

import "strings"

// Environment variables that override file values.
const (
	EnvAPIURL    = "API_URL"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
	EnvServeAddr = "QUIZGEN_ADDR"
	EnvUIMode    = "QUIZGEN_UI"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides config fields with non-empty environment values.
func ApplyEnv(cfg *Config, lookup LookupFunc) {
	if lookup == nil {
		return
	}
	override(&cfg.APIURL, lookup, EnvAPIURL)
	override(&cfg.Log.Level, lookup, EnvLogLevel)
	override(&cfg.Log.Format, lookup, EnvLogFormat)
	override(&cfg.Serve.Addr, lookup, EnvServeAddr)
	override(&cfg.UI.Mode, lookup, EnvUIMode)
}

func override(field *string, lookup LookupFunc, key string) {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		*field = strings.TrimSpace(value)
	}
}
