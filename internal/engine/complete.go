package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"sprout/internal/plant"
	"sprout/internal/storage"
)

type CompleteResult struct {
	Label   string
	Outcome plant.Outcome
	State   plant.State
	Message string
}

func normalizeLabel(label string) (string, error) {
	l := strings.TrimSpace(label)
	if l == "" {
		return "", ErrEmptyTask
	}
	return l, nil
}

// CompleteTask counts a finished task against today's goal and persists the
// result together with a completion log entry. Once the goal is met further
// calls change nothing and save nothing. st is only updated after the save
// commits; on error it is left as it was.
func (s *Service) CompleteTask(ctx context.Context, st *plant.State, label string) (*CompleteResult, error) {
	l, err := normalizeLabel(label)
	if err != nil {
		return nil, err
	}

	next := *st
	outcome := plant.RecordTaskCompletion(&next)
	res := &CompleteResult{
		Label:   l,
		Outcome: outcome,
		State:   next,
		Message: completionMessage(outcome, l, next.Streak),
	}
	if !outcome.Changed() {
		return res, nil
	}

	now := s.clock.Now()
	goalMet := outcome == plant.OutcomeGoalMet
	err = storage.WithTx(ctx, s.db, func(r storage.Repos) error {
		if err := s.saveWith(ctx, r, &next, now, goalMet); err != nil {
			return err
		}
		_, err := r.Completions.Insert(ctx, s.sessionID, l, now, goalMet)
		return err
	})
	if err != nil {
		return nil, err
	}
	*st = next

	s.logger.Info("task completed",
		slog.String("label", l),
		slog.String("outcome", outcome.String()),
		slog.Int("tasks", st.TasksCompletedToday),
		slog.Float64("hydration", st.Hydration),
		slog.Int("streak", st.Streak),
	)
	return res, nil
}

func completionMessage(o plant.Outcome, label string, streak int) string {
	switch o {
	case plant.OutcomeGoalMet:
		return fmt.Sprintf("Goal complete! Streak: %d", streak)
	case plant.OutcomeWatered:
		return fmt.Sprintf("Great job on: %s!", label)
	default:
		return MsgComeBackTomorrow
	}
}
