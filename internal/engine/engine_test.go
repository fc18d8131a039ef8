package engine

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/internal/plant"
	"sprout/internal/storage"
)

var morning = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, opts ...Option) (*Service, *plant.FakeClock) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	require.NoError(t, err, "open db")
	t.Cleanup(func() { _ = db.Close() })

	clock := plant.NewFakeClock(morning)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]Option{WithClock(clock), WithLogger(logger)}, opts...)
	return NewService(db, opts...), clock
}

func putRecord(t *testing.T, svc *Service, rec plant.Record) {
	t.Helper()
	data, err := rec.Encode()
	require.NoError(t, err)
	require.NoError(t, svc.records.Put(context.Background(), plant.RecordKey, data, morning))
}

func getRecord(t *testing.T, svc *Service) plant.Record {
	t.Helper()
	raw, err := svc.records.Get(context.Background(), plant.RecordKey)
	require.NoError(t, err)
	require.NotNil(t, raw)
	rec, err := plant.DecodeRecord(raw.Value)
	require.NoError(t, err)
	return rec
}

func TestLoad_FreshDatabaseIsDefaultPlant(t *testing.T) {
	svc, _ := newTestService(t)

	st, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, plant.State{}, *st)
}

func TestLoad_MalformedRecordFallsBackToDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.records.Put(ctx, plant.RecordKey, []byte("{{{"), morning))

	st, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, plant.State{}, *st)
}

func TestCompleteTask_TenCompletionsMeetGoalAndEleventhIsNoop(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	st, err := svc.Load(ctx)
	require.NoError(t, err)
	st.Streak = 2
	st.Hydration = 30

	for i := 1; i < plant.DailyTaskGoal; i++ {
		res, err := svc.CompleteTask(ctx, st, "task")
		require.NoError(t, err)
		require.Equal(t, plant.OutcomeWatered, res.Outcome)
		assert.Equal(t, "Great job on: task!", res.Message)
		clock.Advance(time.Minute)
	}

	res, err := svc.CompleteTask(ctx, st, "last one")
	require.NoError(t, err)
	assert.Equal(t, plant.OutcomeGoalMet, res.Outcome)
	assert.Equal(t, "Goal complete! Streak: 3", res.Message)
	assert.True(t, st.DailyGoalMet)
	assert.Equal(t, plant.MaxHydration, st.Hydration)
	assert.Equal(t, 3, st.Streak)

	rec := getRecord(t, svc)
	assert.Equal(t, plant.DateKey(clock.Now()), rec.LastCompletionDate)
	assert.True(t, rec.DailyGoalMet)

	before := *st
	res, err = svc.CompleteTask(ctx, st, "extra")
	require.NoError(t, err)
	assert.Equal(t, plant.OutcomeIgnored, res.Outcome)
	assert.Equal(t, MsgComeBackTomorrow, res.Message)
	assert.Equal(t, before, *st)

	n, err := svc.CompletionRepo().CountSince(ctx, morning.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, plant.DailyTaskGoal, n)
}

func TestCompleteTask_RejectsEmptyLabel(t *testing.T) {
	svc, _ := newTestService(t)
	st := &plant.State{Hydration: 50}

	_, err := svc.CompleteTask(context.Background(), st, "   ")
	require.ErrorIs(t, err, ErrEmptyTask)
	assert.Equal(t, plant.State{Hydration: 50}, *st)
}

func TestSaveThenLoad_DecaysAcrossReload(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, &plant.State{Hydration: 80, TasksCompletedToday: 2}, false))

	clock.Advance(6 * time.Hour)
	st, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 55.0, st.Hydration, 1e-9)
	assert.Equal(t, 2, st.TasksCompletedToday)
}

func TestSaveThenLoad_SameInstantRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	putRecord(t, svc, plant.Record{Streak: 4, LastCompletionDate: plant.DateKey(morning.AddDate(0, 0, -1))})

	want := plant.State{Hydration: 63.25, TasksCompletedToday: 4, Streak: 4}
	require.NoError(t, svc.Save(ctx, &want, false))

	got, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestLoad_StreakRules(t *testing.T) {
	tests := []struct {
		name           string
		lastCompletion string
		wantStreak     int
	}{
		{"completed yesterday", plant.DateKey(morning.AddDate(0, 0, -1)), 6},
		{"completed today", plant.DateKey(morning), 6},
		{"completed two days ago", plant.DateKey(morning.AddDate(0, 0, -2)), 0},
		{"never completed", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			putRecord(t, svc, plant.Record{
				Hydration:          40,
				HydrationTimestamp: morning.UnixMilli(),
				Streak:             6,
				LastSaveDate:       plant.DateKey(morning),
				LastCompletionDate: tt.lastCompletion,
			})
			st, err := svc.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantStreak, st.Streak)
		})
	}
}

func TestLoad_NewDayAfterGoalMet(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	st := &plant.State{Hydration: 20, Streak: 1}
	for i := 0; i < plant.DailyTaskGoal; i++ {
		_, err := svc.CompleteTask(ctx, st, "chore")
		require.NoError(t, err)
	}
	require.True(t, st.DailyGoalMet)

	clock.Advance(20 * time.Hour)
	next, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, plant.MaxHydration, next.Hydration)
	assert.Equal(t, 0, next.TasksCompletedToday)
	assert.False(t, next.DailyGoalMet)
	assert.Equal(t, 2, next.Streak)
}

func TestSave_KeepsCompletionDateWhenNotCompleting(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	yesterday := plant.DateKey(morning.AddDate(0, 0, -1))
	putRecord(t, svc, plant.Record{Streak: 3, LastCompletionDate: yesterday})

	require.NoError(t, svc.Save(ctx, &plant.State{Hydration: 10, Streak: 3}, false))
	assert.Equal(t, yesterday, getRecord(t, svc).LastCompletionDate)
}

func TestFlush_SkipsWhenGoalMet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	saved, err := svc.Flush(ctx, &plant.State{Hydration: 100, TasksCompletedToday: plant.DailyTaskGoal, DailyGoalMet: true})
	require.NoError(t, err)
	assert.False(t, saved)
	raw, err := svc.records.Get(ctx, plant.RecordKey)
	require.NoError(t, err)
	assert.Nil(t, raw)

	saved, err = svc.Flush(ctx, &plant.State{Hydration: 33})
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, 33.0, getRecord(t, svc).Hydration)
}

func TestTick_PersistsOnlyWhenConfigured(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService(t)
	st := &plant.State{Hydration: 50}
	changed, err := svc.Tick(ctx, st)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Less(t, st.Hydration, 50.0)
	raw, err := svc.records.Get(ctx, plant.RecordKey)
	require.NoError(t, err)
	assert.Nil(t, raw)

	durable, _ := newTestService(t, WithPersistTicks(true), WithTickInterval(time.Hour))
	st = &plant.State{Hydration: 50}
	changed, err = durable.Tick(ctx, st)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.InDelta(t, 50-plant.DecayPerHour, getRecord(t, durable).Hydration, 1e-9)
}

func TestSimulate_SavesDecay(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st := &plant.State{Hydration: 90}

	changed, err := svc.Simulate(ctx, st, 12*time.Hour)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.InDelta(t, 40.0, getRecord(t, svc).Hydration, 1e-9)
}

func TestReset_ForgetsPlantAndOptionallyHistory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st := &plant.State{Hydration: 10}
	_, err := svc.CompleteTask(ctx, st, "water")
	require.NoError(t, err)

	existed, err := svc.Reset(ctx, false)
	require.NoError(t, err)
	assert.True(t, existed)

	list, err := svc.CompletionRepo().ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, svc.SessionID(), list[0].SessionID)

	_, err = svc.Reset(ctx, true)
	require.NoError(t, err)
	list, err = svc.CompletionRepo().ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, list)

	fresh, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, plant.State{}, *fresh)
}

func TestCompleteTask_FailedSaveLeavesStateUntouched(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	st := &plant.State{Hydration: 70, TasksCompletedToday: plant.DailyTaskGoal - 1, Streak: 4}
	before := *st
	require.NoError(t, svc.db.Close())

	_, err := svc.CompleteTask(ctx, st, "last chore")
	require.Error(t, err)
	assert.Equal(t, before, *st)
	assert.False(t, st.DailyGoalMet)

	_, err = svc.Flush(ctx, st)
	assert.Error(t, err, "exit save must be attempted, not skipped")
}

func TestLastSaved(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	at, err := svc.LastSaved(ctx)
	require.NoError(t, err)
	assert.True(t, at.IsZero())

	clock.Advance(90 * time.Minute)
	require.NoError(t, svc.Save(ctx, &plant.State{Hydration: 12}, false))

	at, err = svc.LastSaved(ctx)
	require.NoError(t, err)
	assert.True(t, at.Equal(morning.Add(90*time.Minute)), "got %v", at)
}
