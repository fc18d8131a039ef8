package engine

import (
	"context"
	"log/slog"
	"time"

	"sprout/internal/plant"
)

// Tick applies one decay step of the configured interval. It only saves when
// persist-ticks is on; otherwise the next load recomputes decay from the
// last saved timestamp.
func (s *Service) Tick(ctx context.Context, st *plant.State) (bool, error) {
	return s.decay(ctx, st, s.tickInterval, s.persistTicks)
}

// Simulate drains hydration as if d had passed and always saves. Debug aid.
func (s *Service) Simulate(ctx context.Context, st *plant.State, d time.Duration) (bool, error) {
	return s.decay(ctx, st, d, true)
}

func (s *Service) decay(ctx context.Context, st *plant.State, d time.Duration, persist bool) (bool, error) {
	changed := plant.ApplyDecayTick(st, d)
	if !changed {
		return false, nil
	}
	s.logger.Debug("decay tick", slog.Duration("interval", d), slog.Float64("hydration", st.Hydration))
	if persist {
		if err := s.Save(ctx, st, false); err != nil {
			return true, err
		}
	}
	return true, nil
}
