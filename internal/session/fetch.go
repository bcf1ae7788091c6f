package session

import (
	"context"

	"github.com/rs/zerolog"

	"quizgen/internal/quiz"
)

// Generator produces questions for a topic.
type Generator interface {
	Generate(ctx context.Context, topic string) ([]quiz.Question, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, topic string) ([]quiz.Question, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, topic string) ([]quiz.Question, error) {
	return f(ctx, topic)
}

// FetchResult carries the outcome of one generate request.
type FetchResult struct {
	Ticket    Ticket
	Topic     string
	Questions []quiz.Question
	Err       error
}

// Fetch runs one generate request for ticket.
func Fetch(ctx context.Context, gen Generator, ticket Ticket, topic string) FetchResult {
	questions, err := gen.Generate(ctx, topic)
	return FetchResult{Ticket: ticket, Topic: topic, Questions: questions, Err: err}
}

// LogResult records the outcome of a fetch and whether it was applied.
func LogResult(log zerolog.Logger, result FetchResult, applied bool) {
	switch {
	case !applied:
		log.Debug().
			Str("topic", result.Topic).
			Str("ticket", string(result.Ticket)).
			Msg("Dropped stale quiz response")
	case result.Err != nil:
		log.Error().
			Err(result.Err).
			Str("topic", result.Topic).
			Str("ticket", string(result.Ticket)).
			Msg("Failed to fetch quiz")
	default:
		log.Info().
			Str("topic", result.Topic).
			Int("questions", len(result.Questions)).
			Msg("Quiz generated")
	}
}
