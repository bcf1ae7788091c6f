package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"quizgen/internal/session"
)

// cookieName carries the browser's session id.
const cookieName = "quizgen_session"

// entry is one browser session.
type entry struct {
	ctl      *session.Controller
	lastSeen time.Time
}

// store keeps one controller per browser in memory. Sessions idle longer
// than ttl are pruned on access.
type store struct {
	mu      sync.Mutex
	entries map[string]*entry
	gen     session.Generator
	log     zerolog.Logger
	ttl     time.Duration
	now     func() time.Time
}

func newStore(gen session.Generator, log zerolog.Logger, ttl time.Duration) *store {
	return &store{
		entries: make(map[string]*entry),
		gen:     gen,
		log:     log,
		ttl:     ttl,
		now:     time.Now,
	}
}

// controller returns the caller's controller, creating a session and
// setting the cookie when none exists.
func (s *store) controller(w http.ResponseWriter, r *http.Request) *session.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)

	if cookie, err := r.Cookie(cookieName); err == nil {
		if existing, ok := s.entries[cookie.Value]; ok {
			existing.lastSeen = now
			return existing.ctl
		}
	}

	id := uuid.NewString()
	created := &entry{
		ctl:      session.NewController(s.gen, s.log.With().Str("session", id).Logger()),
		lastSeen: now,
	}
	s.entries[id] = created
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.log.Debug().Str("session", id).Msg("Created web session")
	return created.ctl
}

func (s *store) pruneLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, existing := range s.entries {
		if now.Sub(existing.lastSeen) > s.ttl {
			delete(s.entries, id)
		}
	}
}

// len reports the number of live sessions.
func (s *store) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
