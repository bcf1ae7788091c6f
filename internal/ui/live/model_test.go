package live

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"quizgen/internal/quiz"
	"quizgen/internal/session"
	"quizgen/internal/testutil"
)

func oceans() []quiz.Question {
	return []quiz.Question{
		{Prompt: "Which is the largest ocean?", Options: []string{"Pacific", "Atlantic", "Indian", "Arctic"}, Answer: quiz.IndexAnswer(0)},
		{Prompt: "Which ocean is the saltiest?", Options: []string{"Pacific", "Atlantic", "Indian", "Arctic"}, Answer: quiz.TextAnswer("B")},
		{Prompt: "Where is the Mariana Trench?", Options: []string{"Pacific", "Atlantic", "Indian", "Arctic"}, Answer: quiz.TextAnswer("pacific")},
	}
}

// stubGenerator counts calls and returns a fixed result.
type stubGenerator struct {
	calls     atomic.Int32
	questions []quiz.Question
	err       error
}

func (g *stubGenerator) Generate(ctx context.Context, topic string) ([]quiz.Question, error) {
	g.calls.Add(1)
	return g.questions, g.err
}

func newTestModel(gen session.Generator, log zerolog.Logger) Model {
	return NewModel(Options{Generator: gen, Logger: log, NoColor: true})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, keyMsg(string(r)))
	}
	return m
}

// fetched runs the generate command and returns its result message.
func fetched(t *testing.T, cmd tea.Cmd) fetchedMsg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg := cmd()
	if result, ok := msg.(fetchedMsg); ok {
		return result
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub == nil {
				continue
			}
			if result, ok := sub().(fetchedMsg); ok {
				return result
			}
		}
	}
	t.Fatalf("no fetch result in %T", msg)
	return fetchedMsg{}
}

// generateQuiz types a topic, presses enter and applies the response.
func generateQuiz(t *testing.T, m Model, topic string) Model {
	t.Helper()
	m = typeText(t, m, topic)
	m, cmd := update(t, m, keyMsg("enter"))
	if !m.Session().Loading() {
		t.Fatalf("expected loading after enter, got %s", m.Session().Phase())
	}
	m, _ = update(t, m, fetched(t, cmd))
	return m
}

// TestEmptyTopicShowsValidation verifies no request is made without a topic.
func TestEmptyTopicShowsValidation(t *testing.T) {
	testutil.RunWithTimeout(t, time.Second, func() {
		gen := &stubGenerator{questions: oceans()}
		m := newTestModel(gen, zerolog.Nop())
		m = typeText(t, m, "   ")
		m, cmd := update(t, m, keyMsg("enter"))
		if cmd != nil {
			t.Fatalf("expected no command for empty topic")
		}
		if m.Session().Error() != session.MessageEmptyTopic {
			t.Fatalf("expected validation message, got %q", m.Session().Error())
		}
		if !strings.Contains(m.View(), session.MessageEmptyTopic) {
			t.Fatalf("expected message in view:\n%s", m.View())
		}
		if gen.calls.Load() != 0 {
			t.Fatalf("expected no generator calls")
		}
	})
}

// TestOceansScenario verifies choosing, submitting and scoring through keys.
func TestOceansScenario(t *testing.T) {
	testutil.RunWithTimeout(t, time.Second, func() {
		gen := &stubGenerator{questions: oceans()}
		m := newTestModel(gen, zerolog.Nop())
		m = typeText(t, m, "Oceans")
		m, cmd := update(t, m, keyMsg("enter"))
		if !strings.Contains(m.View(), "Generating quiz...") {
			t.Fatalf("expected loading indicator:\n%s", m.View())
		}
		m, _ = update(t, m, fetched(t, cmd))
		if m.Session().Phase() != session.PhaseReady || m.focus != focusQuiz {
			t.Fatalf("expected ready quiz focus, got %s", m.Session().Phase())
		}

		m = press(t, m, "1", "right", "1", "right")
		m = press(t, m, "s")

		score, ok := m.Session().Score()
		if !ok || score != 1 {
			t.Fatalf("expected score 1, got %d (%v)", score, ok)
		}
		view := m.View()
		for _, want := range []string{"Your score: 1 / 3", "(•) A. Pacific ✓", "(•) A. Pacific ✗", "B. Atlantic ✓"} {
			if !strings.Contains(view, want) {
				t.Fatalf("expected %q in view:\n%s", want, view)
			}
		}
	})
}

// TestGenerateDisabledWhileLoading verifies a second enter does not fetch.
func TestGenerateDisabledWhileLoading(t *testing.T) {
	testutil.RunWithTimeout(t, time.Second, func() {
		gen := &stubGenerator{questions: oceans()}
		m := newTestModel(gen, zerolog.Nop())
		m = typeText(t, m, "Oceans")
		m, first := update(t, m, keyMsg("enter"))
		pending := m.Session().Pending()
		m, second := update(t, m, keyMsg("enter"))
		if second != nil {
			t.Fatalf("expected no command while loading")
		}
		if m.Session().Pending() != pending {
			t.Fatalf("expected pending ticket to be unchanged")
		}
		fetched(t, first)
		if gen.calls.Load() != 1 {
			t.Fatalf("expected one generator call, got %d", gen.calls.Load())
		}
	})
}

// TestStaleResultDropped verifies results for another ticket are ignored.
func TestStaleResultDropped(t *testing.T) {
	testutil.RunWithTimeout(t, time.Second, func() {
		var logs bytes.Buffer
		m := newTestModel(&stubGenerator{}, zerolog.New(&logs).Level(zerolog.DebugLevel))
		m = typeText(t, m, "Oceans")
		m, _ = update(t, m, keyMsg("enter"))
		m, _ = update(t, m, fetchedMsg{Result: session.FetchResult{Ticket: "old", Topic: "Oceans", Questions: oceans()}})
		if !m.Session().Loading() || m.Session().QuestionCount() != 0 {
			t.Fatalf("expected stale result to be dropped, got %s", m.Session().Phase())
		}
		if !strings.Contains(logs.String(), "Dropped stale quiz response") {
			t.Fatalf("expected stale log, got %q", logs.String())
		}
	})
}

// TestFetchFailureShowsGenericMessage verifies detail goes to the log only.
func TestFetchFailureShowsGenericMessage(t *testing.T) {
	testutil.RunWithTimeout(t, time.Second, func() {
		var logs bytes.Buffer
		gen := &stubGenerator{err: errors.New("connection refused")}
		m := newTestModel(gen, zerolog.New(&logs))
		m = generateQuiz(t, m, "Oceans")

		if m.Session().Phase() != session.PhaseError {
			t.Fatalf("expected error phase, got %s", m.Session().Phase())
		}
		view := m.View()
		if !strings.Contains(view, session.MessageFetchFailed) {
			t.Fatalf("expected generic message:\n%s", view)
		}
		if strings.Contains(view, "connection refused") {
			t.Fatalf("expected failure detail to stay out of the view")
		}
		if !strings.Contains(logs.String(), "connection refused") {
			t.Fatalf("expected failure detail in log, got %q", logs.String())
		}
		if m.Session().Topic() != "Oceans" || m.focus != focusTopic {
			t.Fatalf("expected topic kept with topic focus")
		}
	})
}

// TestRetryResetsEverything verifies retry clears the quiz and the input.
func TestRetryResetsEverything(t *testing.T) {
	testutil.RunWithTimeout(t, time.Second, func() {
		m := newTestModel(&stubGenerator{questions: oceans()}, zerolog.Nop())
		m = generateQuiz(t, m, "Oceans")
		m = press(t, m, "1", "s", "r")

		state := m.Session()
		if state.Phase() != session.PhaseIdle || state.Topic() != "" || state.QuestionCount() != 0 {
			t.Fatalf("expected idle empty session, got %s %q %d", state.Phase(), state.Topic(), state.QuestionCount())
		}
		if _, ok := state.Score(); ok {
			t.Fatalf("expected score to be cleared")
		}
		if m.input.Value() != "" || m.focus != focusTopic {
			t.Fatalf("expected cleared input with topic focus")
		}
	})
}

// TestChoiceAfterSubmitIgnored verifies answers freeze on submit.
func TestChoiceAfterSubmitIgnored(t *testing.T) {
	testutil.RunWithTimeout(t, time.Second, func() {
		m := newTestModel(&stubGenerator{questions: oceans()}, zerolog.Nop())
		m = generateQuiz(t, m, "Oceans")
		m = press(t, m, "1", "s", "2", " ")
		choice, ok := m.Session().Answer(0)
		if !ok || choice != "Pacific" {
			t.Fatalf("expected frozen answer Pacific, got %q", choice)
		}
	})
}

// TestReselectOverwritesOnlyThatQuestion verifies per-question answers.
func TestReselectOverwritesOnlyThatQuestion(t *testing.T) {
	testutil.RunWithTimeout(t, time.Second, func() {
		m := newTestModel(&stubGenerator{questions: oceans()}, zerolog.Nop())
		m = generateQuiz(t, m, "Oceans")
		m = press(t, m, "2", "right", "3", "left", "down", " ")

		first, _ := m.Session().Answer(0)
		second, _ := m.Session().Answer(1)
		if first != "Indian" || second != "Indian" {
			t.Fatalf("unexpected answers %q %q", first, second)
		}
		if m.option != 2 {
			t.Fatalf("expected cursor on the chosen option, got %d", m.option)
		}
	})
}

// TestPresetTopicStartsGenerating verifies Init requests a quiz for a preset topic.
func TestPresetTopicStartsGenerating(t *testing.T) {
	testutil.RunWithTimeout(t, time.Second, func() {
		m := NewModel(Options{Generator: &stubGenerator{questions: oceans()}, Topic: "Oceans", NoColor: true})
		batch, ok := m.Init()().(tea.BatchMsg)
		if !ok {
			t.Fatalf("expected batch from Init")
		}
		found := false
		for _, cmd := range batch {
			if cmd == nil {
				continue
			}
			if _, ok := cmd().(generateMsg); ok {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected generate request from Init")
		}
		m, cmd := update(t, m, generateMsg{})
		m, _ = update(t, m, fetched(t, cmd))
		if m.Session().QuestionCount() != 3 {
			t.Fatalf("expected questions, got %d", m.Session().QuestionCount())
		}
	})
}

// TestQuitKeys verifies quit bindings per focus area.
func TestQuitKeys(t *testing.T) {
	testutil.RunWithTimeout(t, time.Second, func() {
		m := newTestModel(&stubGenerator{questions: oceans()}, zerolog.Nop())
		m = press(t, m, "q")
		if m.input.Value() != "q" {
			t.Fatalf("expected typed q, got %q", m.input.Value())
		}
		_, cmd := update(t, m, keyMsg("ctrl+c"))
		if cmd == nil || !isQuit(cmd) {
			t.Fatalf("expected ctrl+c to quit")
		}
	})
}

func isQuit(cmd tea.Cmd) bool {
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
