package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ScaffoldOptions holds the values written into a new config file.
type ScaffoldOptions struct {
	APIURL    string
	UIMode    string
	ServeAddr string
}

// Scaffold writes a starter config file, refusing to overwrite one.
func Scaffold(configPath string, opts ScaffoldOptions) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if opts.APIURL == "" {
		opts.APIURL = DefaultAPIURL
	}
	if opts.UIMode == "" {
		opts.UIMode = DefaultUIMode
	}
	if opts.ServeAddr == "" {
		opts.ServeAddr = DefaultServeAddr
	}

	contents, err := renderScaffoldConfig(opts)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if _, err := Parse([]byte(contents)); err != nil {
		return fmt.Errorf("rendered config is invalid: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
