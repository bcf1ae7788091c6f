package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Validate checks a normalized config and parses the request timeout.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	validateAPIURL(cfg.APIURL, collector.add)

	cfg.Timeout = 0
	if cfg.RequestTimeout != "" {
		timeout, err := time.ParseDuration(cfg.RequestTimeout)
		switch {
		case err != nil:
			collector.add("request_timeout", fmt.Sprintf("invalid duration %q", cfg.RequestTimeout))
		case timeout < 0:
			collector.add("request_timeout", "must not be negative")
		default:
			cfg.Timeout = timeout
		}
	}

	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		collector.add("ui.mode", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		collector.add("log.level", fmt.Sprintf("unknown level %q", cfg.Log.Level))
	}
	switch cfg.Log.Format {
	case "pretty", "json":
	default:
		collector.add("log.format", fmt.Sprintf("invalid format %q (expected pretty|json)", cfg.Log.Format))
	}

	if cfg.Serve.Addr == "" {
		collector.add("serve.addr", "is required")
	}

	return collector.result()
}

// ValidateAPIURL checks a generator base URL outside of a full config.
func ValidateAPIURL(raw string) error {
	collector := &issueCollector{}
	validateAPIURL(raw, collector.add)
	return collector.result()
}

func validateAPIURL(raw string, add issueAdder) {
	parsed, err := url.Parse(raw)
	if err != nil {
		add("api_url", fmt.Sprintf("invalid url %q", raw))
		return
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		add("api_url", fmt.Sprintf("unsupported scheme %q (expected http|https)", parsed.Scheme))
	}
	if parsed.Host == "" {
		add("api_url", "must include a host")
	}
}
