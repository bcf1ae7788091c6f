//go:build cucumber

package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"quizgen/internal/testutil"
	"quizgen/internal/ui/live"
)

// TestPlayUIModeScenarios runs the play UI mode feature scenarios.
func TestPlayUIModeScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "play-ui-mode.feature")
	suite := godog.TestSuite{
		Name:                "play-ui-mode",
		ScenarioInitializer: func(ctx *godog.ScenarioContext) { InitializePlayUIScenario(t, ctx) },
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializePlayUIScenario wires steps for play UI mode scenarios.
func InitializePlayUIScenario(t *testing.T, ctx *godog.ScenarioContext) {
	state := &playUIScenarioState{t: t}
	origTerminal := isTerminal
	origLive := runLiveProgram
	origInput := playInput
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		isTerminal = func(io.Writer) bool { return state.isTTY }
		runLiveProgram = func(_ context.Context, model live.Model, _ io.Writer) (live.Model, error) {
			state.liveShown = true
			state.liveTopic = model.Session().Topic()
			return model, nil
		}
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		isTerminal = origTerminal
		runLiveProgram = origLive
		playInput = origInput
		return ctx, nil
	})

	ctx.Step(`^the generator API answers with the oceans quiz$`, state.givenOceansAPI)
	ctx.Step(`^a TTY stdout$`, state.givenTTY)
	ctx.Step(`^stdout is not a TTY$`, state.givenNonTTY)
	ctx.Step(`^the player types "([^"]*)", "([^"]*)", "([^"]*)", "([^"]*)"$`, state.givenPlayerInput)
	ctx.Step(`^I run "([^"]+)"$`, state.whenIRun)
	ctx.Step(`^a live UI is shown$`, state.thenLiveUIShown)
	ctx.Step(`^no live UI is shown$`, state.thenNoLiveUI)
	ctx.Step(`^the live UI starts with topic "([^"]*)"$`, state.thenLiveTopic)
	ctx.Step(`^the output contains "([^"]*)"$`, state.thenStdoutContains)
	ctx.Step(`^the error output contains "([^"]*)"$`, state.thenStderrContains)
}

type playUIScenarioState struct {
	t         *testing.T
	isTTY     bool
	cfgPath   string
	input     string
	liveShown bool
	liveTopic string
	exitCode  int
	stdout    bytes.Buffer
	stderr    bytes.Buffer
}

// reset clears scenario state.
func (s *playUIScenarioState) reset() {
	s.isTTY = false
	s.cfgPath = ""
	s.input = ""
	s.liveShown = false
	s.liveTopic = ""
	s.exitCode = 0
	s.stdout.Reset()
	s.stderr.Reset()
}

func (s *playUIScenarioState) givenOceansAPI() error {
	isolateEnv(s.t)
	api := testutil.StartGeneratorServer(s.t, testutil.RespondJSON(http.StatusOK, testutil.OceansPayload))
	path := filepath.Join(s.t.TempDir(), "config.yml")
	contents := fmt.Sprintf("api_url: %q\nlog:\n  level: error\n", api.BaseURL)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return err
	}
	s.cfgPath = path
	return nil
}

func (s *playUIScenarioState) givenTTY() error {
	s.isTTY = true
	return nil
}

func (s *playUIScenarioState) givenNonTTY() error {
	s.isTTY = false
	return nil
}

func (s *playUIScenarioState) givenPlayerInput(topic, first, second, again string) error {
	s.input = strings.Join([]string{topic, first, second, again}, "\n") + "\n"
	return nil
}

func (s *playUIScenarioState) whenIRun(command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 || fields[0] != "quizgen" {
		return fmt.Errorf("unsupported command %q", command)
	}
	args := fields[1:]
	if s.cfgPath != "" {
		args = append(args, "--config", s.cfgPath)
	}
	playInput = strings.NewReader(s.input)
	s.exitCode = Run(args, &s.stdout, &s.stderr)
	if s.exitCode != ExitOK {
		return fmt.Errorf("exit %d: %s", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *playUIScenarioState) thenLiveUIShown() error {
	if !s.liveShown {
		return fmt.Errorf("expected live UI")
	}
	return nil
}

func (s *playUIScenarioState) thenNoLiveUI() error {
	if s.liveShown {
		return fmt.Errorf("expected plain prompts, got live UI")
	}
	return nil
}

func (s *playUIScenarioState) thenLiveTopic(topic string) error {
	if s.liveTopic != topic {
		return fmt.Errorf("expected live topic %q, got %q", topic, s.liveTopic)
	}
	return nil
}

func (s *playUIScenarioState) thenStdoutContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output:\n%s", text, s.stdout.String())
	}
	return nil
}

func (s *playUIScenarioState) thenStderrContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output:\n%s", text, s.stderr.String())
	}
	return nil
}
