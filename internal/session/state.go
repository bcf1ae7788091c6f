package session

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"quizgen/internal/quiz"
)

// Phase is the lifecycle stage of a quiz session.
type Phase int

const (
	// PhaseIdle has no questions loaded.
	PhaseIdle Phase = iota
	// PhaseLoading waits for the generator.
	PhaseLoading
	// PhaseReady has questions and accepts choices.
	PhaseReady
	// PhaseError holds a failed fetch.
	PhaseError
	// PhaseSubmitted is graded and frozen.
	PhaseSubmitted
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	case PhaseSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// User-facing messages. Fetch failure detail is logged, never shown.
const (
	MessageEmptyTopic  = "Please enter a topic"
	MessageFetchFailed = "Failed to fetch quiz. Try again."
)

// ErrEmptyTopic is returned when a fetch is requested without a topic.
var ErrEmptyTopic = errors.New("topic is required")

// Ticket identifies one generate request. Only the pending ticket may resolve a session.
type Ticket string

// newTicket is a seam for deterministic tickets in tests.
var newTicket = func() Ticket {
	return Ticket(uuid.NewString())
}

// Session is the complete state of one quiz attempt. Values are immutable;
// every transition returns a new Session.
type Session struct {
	topic     string
	phase     Phase
	questions []quiz.Question
	answers   quiz.Answers
	score     int
	scored    bool
	message   string
	pending   Ticket
}

// New returns an idle session.
func New() Session {
	return Session{phase: PhaseIdle, answers: quiz.Answers{}}
}

// Topic returns the current topic text.
func (s Session) Topic() string { return s.topic }

// Phase returns the lifecycle stage.
func (s Session) Phase() Phase { return s.phase }

// Loading reports whether a generate request is outstanding.
func (s Session) Loading() bool { return s.phase == PhaseLoading }

// Submitted reports whether the quiz was graded.
func (s Session) Submitted() bool { return s.phase == PhaseSubmitted }

// Error returns the inline error message, if any.
func (s Session) Error() string { return s.message }

// Pending returns the ticket of the outstanding request.
func (s Session) Pending() Ticket { return s.pending }

// Questions returns a copy of the loaded questions.
func (s Session) Questions() []quiz.Question {
	out := make([]quiz.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// QuestionCount returns the number of loaded questions.
func (s Session) QuestionCount() int { return len(s.questions) }

// Answers returns a copy of the answer record.
func (s Session) Answers() quiz.Answers { return s.answers.Clone() }

// Answer returns the choice recorded for a question.
func (s Session) Answer(index int) (string, bool) {
	choice, ok := s.answers[index]
	return choice, ok
}

// Score returns the graded score. The boolean is false until submission.
func (s Session) Score() (int, bool) { return s.score, s.scored }

// Report grades the current answers for display.
func (s Session) Report() quiz.Report {
	return quiz.Grade(s.questions, s.answers)
}

// WithTopic replaces the topic text. The topic stays editable in every phase.
func (s Session) WithTopic(topic string) Session {
	s.topic = topic
	return s
}

// StartFetch validates the topic and moves to loading with a fresh ticket.
// An empty topic only sets the inline error.
func (s Session) StartFetch() (Session, Ticket, error) {
	if strings.TrimSpace(s.topic) == "" {
		s.message = MessageEmptyTopic
		return s, "", ErrEmptyTopic
	}
	ticket := newTicket()
	s.message = ""
	s.score, s.scored = 0, false
	s.questions = nil
	s.answers = quiz.Answers{}
	s.phase = PhaseLoading
	s.pending = ticket
	return s, ticket, nil
}

// Resolve applies a finished fetch. Results for any ticket other than the
// pending one are dropped and reported as not applied.
func (s Session) Resolve(result FetchResult) (Session, bool) {
	if s.phase != PhaseLoading || result.Ticket == "" || result.Ticket != s.pending {
		return s, false
	}
	s.pending = ""
	if result.Err != nil {
		s.phase = PhaseError
		s.message = MessageFetchFailed
		return s, true
	}
	s.questions = append([]quiz.Question(nil), result.Questions...)
	s.phase = PhaseReady
	return s, true
}

// Choose records option as the answer to question index. It has no effect
// after submission or for an index outside the loaded questions.
func (s Session) Choose(index int, option string) Session {
	if s.phase != PhaseReady || index < 0 || index >= len(s.questions) {
		return s
	}
	answers := s.answers.Clone()
	answers[index] = option
	s.answers = answers
	return s
}

// CanSubmit reports whether Submit would grade the quiz.
func (s Session) CanSubmit() bool {
	return s.phase == PhaseReady && len(s.questions) > 0
}

// Submit grades the answers and freezes the session.
func (s Session) Submit() Session {
	if !s.CanSubmit() {
		return s
	}
	s.score = quiz.Score(s.questions, s.answers)
	s.scored = true
	s.phase = PhaseSubmitted
	return s
}

// Retry clears everything, including any pending request, and returns to idle.
func (s Session) Retry() Session {
	return New()
}
