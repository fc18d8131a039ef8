package plant

import "math"

// Tier is a coarse health bucket derived from hydration. Presentation only.
type Tier int

const (
	TierParched Tier = iota
	TierThirsty
	TierHealthy
	TierLush
)

// tierThresholds are upper bounds (exclusive), ordered.
var tierThresholds = []struct {
	below float64
	tier  Tier
}{
	{19, TierParched},
	{50, TierThirsty},
	{80, TierHealthy},
	{math.Inf(1), TierLush},
}

// TierFor returns the first tier whose threshold is above hydration.
func TierFor(hydration float64) Tier {
	for _, t := range tierThresholds {
		if hydration < t.below {
			return t.tier
		}
	}
	return TierLush
}

func (t Tier) String() string {
	switch t {
	case TierParched:
		return "parched"
	case TierThirsty:
		return "thirsty"
	case TierHealthy:
		return "healthy"
	default:
		return "lush"
	}
}
