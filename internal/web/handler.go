package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"quizgen/internal/session"
)

// Defaults for Config fields left zero.
const (
	DefaultSessionTTL    = time.Hour
	DefaultGenerateLimit = 8
)

// Config captures the settings for serving the browser quiz.
type Config struct {
	Addr      string
	Generator session.Generator
	Logger    zerolog.Logger
	// SessionTTL bounds how long an idle browser session is kept.
	SessionTTL time.Duration
	// GenerateLimit caps concurrent generate requests across sessions.
	GenerateLimit int
}

// handlers binds routes to the session store.
type handlers struct {
	store *store
	log   zerolog.Logger
}

// NewHandler builds the router for the quiz pages.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Generator == nil {
		return nil, errors.New("web: generator is required")
	}
	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}
	limit := cfg.GenerateLimit
	if limit <= 0 {
		limit = DefaultGenerateLimit
	}
	assets, err := assetsHandler()
	if err != nil {
		return nil, err
	}

	h := &handlers{store: newStore(cfg.Generator, cfg.Logger, ttl), log: cfg.Logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/healthz"))

	r.Handle("/assets/*", assets)
	r.Get("/", h.index)
	r.Post("/topic", h.topic)
	r.With(middleware.Throttle(limit)).Post("/generate", h.generate)
	r.Post("/answers", h.answers)
	r.Post("/submit", h.submit)
	r.Post("/retry", h.retry)
	return r, nil
}

// index renders the current session.
func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	state := h.store.controller(w, r).Snapshot()
	templ.Handler(QuizPage(state)).ServeHTTP(w, r)
}

// topic records the topic text without generating.
func (h *handlers) topic(w http.ResponseWriter, r *http.Request) {
	ctl := h.store.controller(w, r)
	if !parseForm(w, r) {
		return
	}
	ctl.SetTopic(r.PostForm.Get("topic"))
	redirectHome(w, r)
}

// generate stores the submitted topic and blocks until the quiz loads.
// Validation and fetch failures are shown on the page after the redirect.
func (h *handlers) generate(w http.ResponseWriter, r *http.Request) {
	ctl := h.store.controller(w, r)
	if !parseForm(w, r) {
		return
	}
	if _, ok := r.PostForm["topic"]; ok {
		ctl.SetTopic(r.PostForm.Get("topic"))
	}
	if ctl.Snapshot().Loading() {
		redirectHome(w, r)
		return
	}
	if _, err := ctl.Generate(r.Context()); err != nil && !errors.Is(err, session.ErrEmptyTopic) {
		h.log.Error().Err(err).Msg("Generate failed")
	}
	redirectHome(w, r)
}

// answers records the selected options.
func (h *handlers) answers(w http.ResponseWriter, r *http.Request) {
	ctl := h.store.controller(w, r)
	if !parseForm(w, r) {
		return
	}
	recordChoices(ctl, r)
	redirectHome(w, r)
}

// submit records the selected options and grades the quiz.
func (h *handlers) submit(w http.ResponseWriter, r *http.Request) {
	ctl := h.store.controller(w, r)
	if !parseForm(w, r) {
		return
	}
	recordChoices(ctl, r)
	ctl.Submit()
	redirectHome(w, r)
}

// retry resets the session.
func (h *handlers) retry(w http.ResponseWriter, r *http.Request) {
	h.store.controller(w, r).Retry()
	redirectHome(w, r)
}

// recordChoices applies q<index>=<option index> form values. Unknown or
// out-of-range values are ignored.
func recordChoices(ctl *session.Controller, r *http.Request) {
	state := ctl.Snapshot()
	for i, question := range state.Questions() {
		raw := r.PostForm.Get(fieldName(i))
		if raw == "" {
			continue
		}
		option, err := strconv.Atoi(raw)
		if err != nil || option < 0 || option >= len(question.Options) {
			continue
		}
		ctl.Choose(i, question.Options[option])
	}
}

func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return false
	}
	return true
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// requestLogger logs one line per request with zerolog.
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Debug().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("HTTP request")
		})
	}
}
