package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"quizgen/internal/config"
)

// isolateEnv clears environment overrides so tests only see their config file.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvAPIURL, config.EnvLogLevel, config.EnvLogFormat, config.EnvServeAddr, config.EnvUIMode} {
		t.Setenv(key, "")
	}
}

// writeTestConfig writes a config pointing at apiURL and returns its path.
func writeTestConfig(t *testing.T, apiURL string) string {
	t.Helper()
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yml")
	contents := fmt.Sprintf("api_url: %q\nlog:\n  level: error\n  format: json\nserve:\n  addr: \"127.0.0.1:6060\"\n", apiURL)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// stubTerminal forces TTY detection for the test.
func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}

// runCommand runs the CLI with args and returns exit code and output.
func runCommand(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}
