package plant

import (
	"math"
	"time"
)

// RecordTaskCompletion counts one completed task against today's goal.
//
// Once the goal is met the plant is done for the day: further completions
// are ignored until a load on a later day resets progress.
func RecordTaskCompletion(st *State) Outcome {
	if st.DailyGoalMet {
		return OutcomeIgnored
	}

	st.TasksCompletedToday++
	if st.TasksCompletedToday >= DailyTaskGoal {
		st.TasksCompletedToday = DailyTaskGoal
		st.Hydration = MaxHydration
		st.DailyGoalMet = true
		st.Streak++
		return OutcomeGoalMet
	}

	st.Hydration = math.Min(MaxHydration, clampHydration(st.Hydration)+HydrationPerTask)
	return OutcomeWatered
}

// ApplyDecayTick drains hydration for one tick of the given length.
// It reports whether hydration changed.
func ApplyDecayTick(st *State, interval time.Duration) bool {
	if st.DailyGoalMet || st.Hydration <= MinHydration || interval <= 0 {
		return false
	}
	st.Hydration = math.Max(MinHydration, st.Hydration-DecayForInterval(interval))
	return true
}

// DecayForInterval is the hydration lost over d. For the default 5s tick
// this is about 0.0579.
func DecayForInterval(d time.Duration) float64 {
	return DecayPerHour / 3600 * d.Seconds()
}
