package live

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"quizgen/internal/session"
)

// generateMsg asks the model to start a request for the current topic.
type generateMsg struct{}

// fetchedMsg carries a finished generate request back to Update.
type fetchedMsg struct {
	Result session.FetchResult
}

func requestGenerate() tea.Msg {
	return generateMsg{}
}

// fetchQuiz runs the generate request off the UI loop.
func fetchQuiz(ctx context.Context, gen session.Generator, ticket session.Ticket, topic string) tea.Cmd {
	return func() tea.Msg {
		return fetchedMsg{Result: session.Fetch(ctx, gen, ticket, topic)}
	}
}
