package engine

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"sprout/internal/plant"
	"sprout/internal/storage"
)

// Service is the state store: it loads, reconciles and saves the plant, and
// routes task completions and decay ticks through the plant rules. It holds
// no plant state itself; callers own the *plant.State it hands out.
type Service struct {
	db          *sql.DB
	records     *storage.RecordRepo
	completions *storage.CompletionRepo

	clock        plant.Clock
	logger       *slog.Logger
	tickInterval time.Duration
	persistTicks bool
	sessionID    string
}

type Option func(*Service)

func WithClock(c plant.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithTickInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.tickInterval = d
		}
	}
}

// WithPersistTicks makes every decay tick durable instead of relying on the
// timestamp recomputation at the next load.
func WithPersistTicks(on bool) Option {
	return func(s *Service) { s.persistTicks = on }
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:           db,
		records:      storage.NewRecordRepo(db),
		completions:  storage.NewCompletionRepo(db),
		clock:        plant.RealClock{},
		logger:       slog.Default(),
		tickInterval: plant.DefaultTickInterval,
		sessionID:    uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With(slog.String("session", s.sessionID))
	return s
}

func (s *Service) CompletionRepo() *storage.CompletionRepo { return s.completions }
func (s *Service) TickInterval() time.Duration             { return s.tickInterval }
func (s *Service) SessionID() string                       { return s.sessionID }
