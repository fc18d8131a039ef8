package ui

import (
	"strings"

	"sprout/internal/plant"
)

// Poses lean further the thirstier the plant gets.
var poses = map[plant.Tier][]string{
	plant.TierParched: {
		`      .    `,
		`    _\/_   `,
		`     \     `,
		`      \    `,
		`   ~~~~~~  `,
		`   \____/  `,
	},
	plant.TierThirsty: {
		`     ,     `,
		`    (o)    `,
		`   \_|/    `,
		`      \    `,
		`   ~~~~~~  `,
		`   \____/  `,
	},
	plant.TierHealthy: {
		`    \|/    `,
		`   -(*)-   `,
		`   \_|_/   `,
		`     |     `,
		`   ~~~~~~  `,
		`   \____/  `,
	},
	plant.TierLush: {
		`  * \|/ *  `,
		`  --(@)--  `,
		`  \__|__/  `,
		`     |     `,
		`  ~~~~~~~~ `,
		`   \____/  `,
	},
}

// PlantArt renders the pose for the plant's current tier in its color.
func PlantArt(hydration float64) string {
	tier := plant.TierFor(hydration)
	lines := poses[tier]
	style := TierStyle(tier)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = style.Render(l)
	}
	return strings.Join(out, "\n")
}
