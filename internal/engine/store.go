package engine

import (
	"context"
	"log/slog"
	"time"

	"sprout/internal/plant"
	"sprout/internal/storage"
)

// Load reads the persisted plant and reconciles it against the current time.
// Unreadable records are treated as a fresh plant; only database failures
// are returned.
func (s *Service) Load(ctx context.Context) (*plant.State, error) {
	now := s.clock.Now()
	rec, err := s.readRecord(ctx, s.records)
	if err != nil {
		return nil, err
	}

	st := plant.Reconcile(rec, now)
	s.logger.Debug("plant loaded",
		slog.Float64("hydration", st.Hydration),
		slog.Int("tasks", st.TasksCompletedToday),
		slog.Bool("goal_met", st.DailyGoalMet),
		slog.Int("streak", st.Streak),
		slog.String("last_save", rec.LastSaveDate),
		slog.String("last_completion", rec.LastCompletionDate),
	)
	return &st, nil
}

// Save persists st. When goalJustCompleted is set the completion date is
// stamped with today; otherwise the stored completion date is kept.
func (s *Service) Save(ctx context.Context, st *plant.State, goalJustCompleted bool) error {
	now := s.clock.Now()
	return storage.WithTx(ctx, s.db, func(r storage.Repos) error {
		return s.saveWith(ctx, r, st, now, goalJustCompleted)
	})
}

// Flush is the teardown save. It is skipped once the goal is met, since the
// completing save already recorded everything for today.
func (s *Service) Flush(ctx context.Context, st *plant.State) (bool, error) {
	if st.DailyGoalMet {
		s.logger.Debug("flush skipped; goal already saved")
		return false, nil
	}
	if err := s.Save(ctx, st, false); err != nil {
		return false, err
	}
	return true, nil
}

// LastSaved reports when the plant was last written. The zero time means it
// has never been saved.
func (s *Service) LastSaved(ctx context.Context) (time.Time, error) {
	raw, err := s.records.Get(ctx, plant.RecordKey)
	if err != nil || raw == nil {
		return time.Time{}, err
	}
	return raw.UpdatedAt, nil
}

// Reset forgets the plant. With clearHistory the completion log goes too.
func (s *Service) Reset(ctx context.Context, clearHistory bool) (bool, error) {
	var existed bool
	err := storage.WithTx(ctx, s.db, func(r storage.Repos) error {
		var err error
		existed, err = r.Records.Delete(ctx, plant.RecordKey)
		if err != nil {
			return err
		}
		if clearHistory {
			n, err := r.Completions.DeleteAll(ctx)
			if err != nil {
				return err
			}
			s.logger.Info("completion history cleared", slog.Int64("rows", n))
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	s.logger.Info("plant reset", slog.Bool("existed", existed))
	return existed, nil
}

func (s *Service) saveWith(ctx context.Context, r storage.Repos, st *plant.State, now time.Time, goalJustCompleted bool) error {
	prev, err := s.readRecord(ctx, r.Records)
	if err != nil {
		return err
	}
	rec := plant.Snapshot(*st, now, prev, goalJustCompleted)
	data, err := rec.Encode()
	if err != nil {
		return err
	}
	if err := r.Records.Put(ctx, plant.RecordKey, data, now); err != nil {
		return err
	}
	s.logger.Debug("plant saved",
		slog.Float64("hydration", rec.Hydration),
		slog.Int("tasks", rec.TasksCompletedToday),
		slog.Bool("goal_met", rec.DailyGoalMet),
		slog.Int("streak", rec.Streak),
		slog.Bool("stamped_completion", goalJustCompleted),
	)
	return nil
}

func (s *Service) readRecord(ctx context.Context, repo *storage.RecordRepo) (plant.Record, error) {
	raw, err := repo.Get(ctx, plant.RecordKey)
	if err != nil {
		return plant.Record{}, err
	}
	if raw == nil {
		return plant.Record{}, nil
	}
	rec, err := plant.DecodeRecord(raw.Value)
	if err != nil {
		s.logger.Warn("discarding unreadable plant record", slog.String("error", err.Error()))
		return plant.Record{}, nil
	}
	return rec, nil
}
