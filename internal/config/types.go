package config

import "time"

// Defaults applied by Normalize.
const (
	DefaultAPIURL    = "http://localhost:4000"
	DefaultUIMode    = "auto"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
	DefaultServeAddr = "127.0.0.1:5173"
)

// Config is the quizgen configuration file schema.
type Config struct {
	APIURL         string      `yaml:"api_url"`
	RequestTimeout string      `yaml:"request_timeout"`
	UI             UIConfig    `yaml:"ui"`
	Log            LogConfig   `yaml:"log"`
	Serve          ServeConfig `yaml:"serve"`

	// Timeout is parsed from RequestTimeout during validation. Zero means none.
	Timeout time.Duration `yaml:"-"`
}

// UIConfig selects the interactive front end.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// LogConfig configures diagnostics logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServeConfig configures the browser front end.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}
