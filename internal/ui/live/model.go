package live

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"quizgen/internal/session"
)

// focusArea selects which part of the screen receives keys.
type focusArea int

const (
	focusTopic focusArea = iota
	focusQuiz
)

// Model renders the interactive quiz UI using Bubble Tea.
type Model struct {
	session  session.Session
	gen      session.Generator
	ctx      context.Context
	log      zerolog.Logger
	input    textinput.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap
	focus    focusArea
	question int
	option   int
	noColor  bool
	autoRun  bool
}

// Options configures the live UI model.
type Options struct {
	Generator session.Generator
	Logger    zerolog.Logger
	// Context bounds generate requests. Defaults to context.Background.
	Context context.Context
	NoColor bool
	// Topic pre-fills the topic input and starts generating immediately.
	Topic string
}

// NewModel constructs a live UI model.
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	input := textinput.New()
	input.Prompt = "Topic: "
	input.Placeholder = "e.g. Oceans"
	input.CharLimit = 200
	input.Width = 40
	input.SetValue(opts.Topic)
	input.Focus()

	state := session.New().WithTopic(opts.Topic)
	return Model{
		session: state,
		gen:     opts.Generator,
		ctx:     ctx,
		log:     opts.Logger,
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
		keys:    defaultKeyMap(),
		focus:   focusTopic,
		noColor: opts.NoColor,
		autoRun: opts.Topic != "",
	}
}

// Session returns the current session state.
func (m Model) Session() session.Session {
	return m.session
}

// Init starts the cursor blink and, with a preset topic, the first request.
func (m Model) Init() tea.Cmd {
	if m.autoRun {
		return tea.Batch(textinput.Blink, requestGenerate)
	}
	return textinput.Blink
}

// Update handles keys, fetch results and spinner ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		m.input.Width = max(typed.Width-len(m.input.Prompt)-20, 10)
		return m, nil
	case generateMsg:
		return m.generate()
	case fetchedMsg:
		return m.resolve(typed.Result), nil
	case spinner.TickMsg:
		if !m.session.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the live UI.
func (m Model) View() string {
	return render(m)
}

// handleKey routes a key press by focus area.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.forState(m.focus, m.session)
	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}
	if m.focus == focusTopic {
		return m.handleTopicKey(msg, keys)
	}
	return m.handleQuizKey(msg, keys)
}

func (m Model) handleTopicKey(msg tea.KeyMsg, keys keyMap) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Generate):
		return m.generate()
	case key.Matches(msg, keys.Focus):
		m.focus = focusQuiz
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session = m.session.WithTopic(m.input.Value())
	return m, cmd
}

func (m Model) handleQuizKey(msg tea.KeyMsg, keys keyMap) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.QuitQuiz):
		return m, tea.Quit
	case key.Matches(msg, keys.Focus):
		m.focus = focusTopic
		return m, m.input.Focus()
	case key.Matches(msg, keys.Up):
		m.option = max(m.option-1, 0)
	case key.Matches(msg, keys.Down):
		m.option = min(m.option+1, max(m.optionCount()-1, 0))
	case key.Matches(msg, keys.Prev):
		m = m.moveQuestion(-1)
	case key.Matches(msg, keys.Next):
		m = m.moveQuestion(1)
	case key.Matches(msg, keys.Choose):
		m = m.choose(m.option)
	case key.Matches(msg, keys.Pick):
		m = m.choose(int(msg.Runes[0] - '1'))
	case key.Matches(msg, keys.Submit):
		m.session = m.session.Submit()
		score, _ := m.session.Score()
		m.log.Debug().Int("score", score).Int("total", m.session.QuestionCount()).Msg("Quiz submitted")
	case key.Matches(msg, keys.Retry):
		return m.retry()
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// generate starts a request unless one is already in flight.
func (m Model) generate() (tea.Model, tea.Cmd) {
	if m.session.Loading() {
		return m, nil
	}
	next, ticket, err := m.session.StartFetch()
	m.session = next
	if err != nil {
		return m, nil
	}
	m.question, m.option = 0, 0
	m.log.Debug().Str("topic", next.Topic()).Str("ticket", string(ticket)).Msg("Generating quiz")
	return m, tea.Batch(fetchQuiz(m.ctx, m.gen, ticket, next.Topic()), m.spinner.Tick)
}

// resolve applies a fetch result and moves focus to the questions.
func (m Model) resolve(result session.FetchResult) Model {
	next, applied := m.session.Resolve(result)
	session.LogResult(m.log, result, applied)
	if !applied {
		return m
	}
	m.session = next
	if next.QuestionCount() > 0 {
		m.focus = focusQuiz
		m.input.Blur()
	}
	return m
}

// retry resets the session and returns focus to the topic input.
func (m Model) retry() (tea.Model, tea.Cmd) {
	m.session = m.session.Retry()
	m.question, m.option = 0, 0
	m.help.ShowAll = false
	m.input.SetValue("")
	m.focus = focusTopic
	return m, m.input.Focus()
}

// choose records option for the question under the cursor.
func (m Model) choose(option int) Model {
	questions := m.session.Questions()
	if m.question >= len(questions) {
		return m
	}
	options := questions[m.question].Options
	if option < 0 || option >= len(options) {
		return m
	}
	m.option = option
	m.session = m.session.Choose(m.question, options[option])
	return m
}

// moveQuestion moves the cursor and lands on the recorded choice, if any.
func (m Model) moveQuestion(delta int) Model {
	count := m.session.QuestionCount()
	if count == 0 {
		return m
	}
	m.question = min(max(m.question+delta, 0), count-1)
	m.option = 0
	if choice, ok := m.session.Answer(m.question); ok {
		for i, option := range m.session.Questions()[m.question].Options {
			if option == choice {
				m.option = i
				break
			}
		}
	}
	return m
}

func (m Model) optionCount() int {
	questions := m.session.Questions()
	if m.question >= len(questions) {
		return 0
	}
	return len(questions[m.question].Options)
}
