package live

import (
	"github.com/charmbracelet/bubbles/key"

	"quizgen/internal/session"
)

// keyMap lists the bindings of the live UI.
type keyMap struct {
	Generate key.Binding
	Focus    key.Binding
	Up       key.Binding
	Down     key.Binding
	Prev     key.Binding
	Next     key.Binding
	Choose   key.Binding
	Pick     key.Binding
	Submit   key.Binding
	Retry    key.Binding
	Help     key.Binding
	QuitQuiz key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Generate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "generate")),
		Focus:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch focus")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev option")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next option")),
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev question")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next question")),
		Choose:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "choose")),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "choose option"),
		),
		Submit:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit")),
		Retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		QuitQuiz: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// forState enables only the bindings that apply to the current screen.
// Disabled bindings neither match nor show in help.
func (k keyMap) forState(focus focusArea, state session.Session) keyMap {
	topic := focus == focusTopic
	ready := state.Phase() == session.PhaseReady
	hasQuestions := state.QuestionCount() > 0

	k.Generate.SetEnabled(topic && !state.Loading())
	k.Focus.SetEnabled(hasQuestions)
	for _, binding := range []*key.Binding{&k.Up, &k.Down, &k.Prev, &k.Next, &k.Help, &k.QuitQuiz, &k.Retry} {
		binding.SetEnabled(!topic)
	}
	k.Choose.SetEnabled(!topic && ready)
	k.Pick.SetEnabled(!topic && ready)
	k.Submit.SetEnabled(!topic && state.CanSubmit())
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Choose, k.Submit, k.Retry, k.Focus, k.Help, k.QuitQuiz, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Choose, k.Pick, k.Submit, k.Retry},
		{k.Generate, k.Focus, k.Help, k.QuitQuiz, k.Quit},
	}
}
