package plant

import "time"

const (
	// DailyTaskGoal is the number of completions that fully waters the plant for the day.
	DailyTaskGoal = 10

	MinHydration = 0.0
	MaxHydration = 100.0

	// DecayPerHour drains a full plant in 24 hours.
	DecayPerHour = MaxHydration / 24

	// HydrationPerTask is added by each completion short of the goal.
	HydrationPerTask = MaxHydration / DailyTaskGoal

	// DefaultTickInterval is how often a running session applies decay.
	DefaultTickInterval = 5 * time.Second
)

// State is the live plant. It is owned by whoever loaded it and passed by
// reference to the operations that mutate it.
type State struct {
	Hydration           float64
	TasksCompletedToday int
	DailyGoalMet        bool
	Streak              int
}

// Outcome describes what a task completion did to the plant.
type Outcome int

const (
	// OutcomeIgnored means the goal was already met; nothing changed.
	OutcomeIgnored Outcome = iota
	// OutcomeWatered means the task counted and hydration went up.
	OutcomeWatered
	// OutcomeGoalMet means this completion reached the daily goal.
	OutcomeGoalMet
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWatered:
		return "watered"
	case OutcomeGoalMet:
		return "goal_met"
	default:
		return "ignored"
	}
}

// Changed reports whether the outcome mutated state and needs a save.
func (o Outcome) Changed() bool {
	return o != OutcomeIgnored
}
