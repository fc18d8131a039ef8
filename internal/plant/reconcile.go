package plant

import (
	"math"
	"time"
)

// Reconcile turns a persisted record into live state as of now.
//
// Streak survives only if the goal was last completed today or yesterday.
// Daily progress survives only if the last save happened today. Hydration is
// full when the goal is met today, or when yesterday's save had the goal met
// (the fresh-day carry-over); otherwise saved hydration decays linearly for
// the time elapsed since it was written.
func Reconcile(rec Record, now time.Time) State {
	today := DateKey(now)
	yesterday := DateKey(now.AddDate(0, 0, -1))

	var st State

	switch rec.LastCompletionDate {
	case yesterday, today:
		st.Streak = max(0, rec.Streak)
	default:
		st.Streak = 0
	}

	if rec.LastSaveDate == today {
		st.TasksCompletedToday = clampTasks(rec.TasksCompletedToday)
		st.DailyGoalMet = rec.DailyGoalMet
	}
	if st.DailyGoalMet {
		st.TasksCompletedToday = DailyTaskGoal
	}

	carryOver := rec.DailyGoalMet && rec.LastSaveDate == yesterday
	if st.DailyGoalMet || carryOver {
		st.Hydration = MaxHydration
		return st
	}

	st.Hydration = DecayedHydration(rec.Hydration, rec.HydrationTimestamp, now)
	return st
}

// DecayedHydration applies offline decay to a hydration value saved at
// savedAtMillis. A zero timestamp counts as "saved just now".
func DecayedHydration(saved float64, savedAtMillis int64, now time.Time) float64 {
	saved = clampHydration(saved)
	if savedAtMillis == 0 {
		return saved
	}
	elapsedMs := now.UnixMilli() - savedAtMillis
	if elapsedMs <= 0 {
		return saved
	}
	elapsedHours := float64(elapsedMs) / float64(time.Hour/time.Millisecond)
	return clampHydration(saved - elapsedHours*DecayPerHour)
}

func clampHydration(h float64) float64 {
	if math.IsNaN(h) || h < MinHydration {
		return MinHydration
	}
	if h > MaxHydration {
		return MaxHydration
	}
	return h
}

func clampTasks(n int) int {
	if n < 0 {
		return 0
	}
	if n > DailyTaskGoal {
		return DailyTaskGoal
	}
	return n
}
