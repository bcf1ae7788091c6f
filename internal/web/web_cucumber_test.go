//go:build cucumber

package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/rs/zerolog"

	"quizgen/internal/generator"
	"quizgen/internal/testutil"
)

// TestWebQuizScenarios runs the browser quiz feature scenarios.
func TestWebQuizScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "web-quiz.feature")
	suite := godog.TestSuite{
		Name:                "web-quiz",
		ScenarioInitializer: InitializeWebScenario,
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

// InitializeWebScenario wires steps for browser quiz scenarios.
func InitializeWebScenario(ctx *godog.ScenarioContext) {
	state := &webScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		state.close()
		return ctx, nil
	})

	ctx.Step(`^the generator API answers with the oceans quiz$`, state.givenOceansAPI)
	ctx.Step(`^the generator API fails with status (\d+)$`, state.givenFailingAPI)
	ctx.Step(`^a browser on the quiz site$`, state.givenBrowser)
	ctx.Step(`^the browser posts "([^"]+)" with topic "([^"]*)"$`, state.whenPostTopic)
	ctx.Step(`^the browser posts "([^"]+)" choosing option (\d+) for question (\d+) and option (\d+) for question (\d+)$`, state.whenPostChoices)
	ctx.Step(`^the browser posts "([^"]+)"$`, state.whenPost)
	ctx.Step(`^the browser requests "([^"]+)"$`, state.whenGet)
	ctx.Step(`^the page contains "([^"]+)"$`, state.thenPageContains)
	ctx.Step(`^the page does not contain "([^"]+)"$`, state.thenPageLacks)
	ctx.Step(`^the response status is (\d+)$`, state.thenStatus)
}

// webScenarioState holds scenario state for browser quiz tests.
type webScenarioState struct {
	api    *httptest.Server
	site   *httptest.Server
	client *http.Client
	status int
	body   string
}

func (s *webScenarioState) reset() {
	s.close()
	*s = webScenarioState{}
}

func (s *webScenarioState) close() {
	if s.site != nil {
		s.site.Close()
	}
	if s.api != nil {
		s.api.Close()
	}
}

func (s *webScenarioState) givenOceansAPI() error {
	s.api = httptest.NewServer(testutil.RespondJSON(http.StatusOK, testutil.OceansPayload))
	return nil
}

func (s *webScenarioState) givenFailingAPI(status int) error {
	s.api = httptest.NewServer(testutil.RespondJSON(status, fmt.Sprintf(`{"error":"upstream %d"}`, status)))
	return nil
}

func (s *webScenarioState) givenBrowser() error {
	if s.api == nil {
		return fmt.Errorf("generator API not configured")
	}
	handler, err := NewHandler(Config{
		Generator: generator.NewClient(s.api.URL, nil, 0),
		Logger:    zerolog.Nop(),
	})
	if err != nil {
		return err
	}
	s.site = httptest.NewServer(handler)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	s.client = &http.Client{Jar: jar, Timeout: 2 * time.Second}
	return nil
}

func (s *webScenarioState) whenPostTopic(path, topic string) error {
	return s.post(path, url.Values{"topic": {topic}})
}

func (s *webScenarioState) whenPostChoices(path string, firstOption, firstQuestion, secondOption, secondQuestion int) error {
	form := url.Values{}
	form.Set(fieldName(firstQuestion-1), strconv.Itoa(firstOption-1))
	form.Set(fieldName(secondQuestion-1), strconv.Itoa(secondOption-1))
	return s.post(path, form)
}

func (s *webScenarioState) whenPost(path string) error {
	return s.post(path, url.Values{})
}

func (s *webScenarioState) whenGet(path string) error {
	resp, err := s.client.Get(s.site.URL + path)
	if err != nil {
		return err
	}
	return s.capture(resp)
}

func (s *webScenarioState) post(path string, form url.Values) error {
	resp, err := s.client.PostForm(s.site.URL+path, form)
	if err != nil {
		return err
	}
	return s.capture(resp)
}

func (s *webScenarioState) capture(resp *http.Response) error {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	s.status = resp.StatusCode
	s.body = string(body)
	return nil
}

func (s *webScenarioState) thenPageContains(text string) error {
	if !strings.Contains(s.body, text) {
		return fmt.Errorf("expected page to contain %q", text)
	}
	return nil
}

func (s *webScenarioState) thenPageLacks(text string) error {
	if strings.Contains(s.body, text) {
		return fmt.Errorf("expected page not to contain %q", text)
	}
	return nil
}

func (s *webScenarioState) thenStatus(status int) error {
	if s.status != status {
		return fmt.Errorf("expected status %d, got %d", status, s.status)
	}
	return nil
}
