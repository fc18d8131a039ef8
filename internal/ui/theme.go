package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sprout/internal/plant"
)

// Sprout theme (CLI + TUI).

const (
	IconSprout  = "🌱"
	IconFlower  = "🌸"
	IconDroplet = "💧"
	IconStreak  = "🔥"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconInfo    = "ℹ️"
	IconError   = "🧨"
	IconScroll  = "📜"
	IconUndo    = "↩️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cWater   = lipgloss.Color("39")  // sky
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Water = lipgloss.NewStyle().Bold(true).Foreground(cWater)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)

	BadgeGoalMet = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render(IconFlower + " GOAL MET")
)

// tierStyles follow the widget's palette: dry brown, warm tan, green, lush teal.
var tierStyles = map[plant.Tier]lipgloss.Style{
	plant.TierParched: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A0522D")),
	plant.TierThirsty: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ECC648")),
	plant.TierHealthy: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7CB342")),
	plant.TierLush:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6EE7B7")),
}

func TierStyle(t plant.Tier) lipgloss.Style {
	if s, ok := tierStyles[t]; ok {
		return s
	}
	return Muted
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// HydrationLine renders "[####----] 42%" in the tier color.
func HydrationLine(h float64, width int) string {
	tier := plant.TierFor(h)
	bar := ProgressBar(h, plant.MaxHydration, width)
	return TierStyle(tier).Render(fmt.Sprintf("%s %d%%", bar, RoundPercent(h)))
}

// TasksLine renders "[###-------] 3 / 10 Tasks".
func TasksLine(done int, width int) string {
	bar := ProgressBar(float64(done), plant.DailyTaskGoal, width)
	return Water.Render(fmt.Sprintf("%s %d / %d Tasks", bar, done, plant.DailyTaskGoal))
}

func RoundPercent(h float64) int {
	return int(h + 0.5)
}

func ProgressBar(value float64, total float64, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(value / total * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
