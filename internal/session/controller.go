package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Controller owns one session and serializes its transitions. The generate
// request runs outside the lock; its ticket decides whether the result lands.
type Controller struct {
	mu    sync.Mutex
	state Session
	gen   Generator
	log   zerolog.Logger
}

// NewController builds a controller around an idle session.
func NewController(gen Generator, log zerolog.Logger) *Controller {
	return &Controller{state: New(), gen: gen, log: log}
}

// Snapshot returns the current session value.
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetTopic replaces the topic text.
func (c *Controller) SetTopic(topic string) Session {
	return c.apply(func(s Session) Session { return s.WithTopic(topic) })
}

// Generate requests questions for the current topic and blocks until the
// request resolves. Only the empty-topic validation error is returned; fetch
// failures are logged and reflected in the session.
func (c *Controller) Generate(ctx context.Context) (Session, error) {
	c.mu.Lock()
	next, ticket, err := c.state.StartFetch()
	c.state = next
	topic := next.Topic()
	c.mu.Unlock()
	if err != nil {
		return next, err
	}

	result := Fetch(ctx, c.gen, ticket, topic)

	c.mu.Lock()
	resolved, applied := c.state.Resolve(result)
	c.state = resolved
	c.mu.Unlock()
	LogResult(c.log, result, applied)
	return resolved, nil
}

// Choose records an answer.
func (c *Controller) Choose(index int, option string) Session {
	return c.apply(func(s Session) Session { return s.Choose(index, option) })
}

// Submit grades the quiz.
func (c *Controller) Submit() Session {
	c.mu.Lock()
	before := c.state.Phase()
	c.state = c.state.Submit()
	next := c.state
	c.mu.Unlock()
	if score, ok := next.Score(); ok && before != PhaseSubmitted {
		c.log.Debug().Int("score", score).Int("total", next.QuestionCount()).Msg("Quiz submitted")
	}
	return next
}

// Retry resets the session.
func (c *Controller) Retry() Session {
	return c.apply(Session.Retry)
}

func (c *Controller) apply(fn func(Session) Session) Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = fn(c.state)
	return c.state
}
