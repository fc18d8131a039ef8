package root

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"sprout/internal/plant"
	"sprout/internal/ui"
)

func newStatusCmd() *cobra.Command {
	var showArt bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show hydration, today's tasks and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.Load(ctx)
			if err != nil {
				return err
			}
			saved, err := svc.LastSaved(ctx)
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), st, saved, showArt)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showArt, "art", true, "Draw the plant")

	return cmd
}

func printStatus(out io.Writer, st *plant.State, lastSaved time.Time, showArt bool) {
	tier := plant.TierFor(st.Hydration)

	fmt.Fprintln(out, ui.Heading(ui.IconSprout, "Plant Status"))
	if showArt {
		fmt.Fprintln(out, ui.PlantArt(st.Hydration))
	}
	fmt.Fprintln(out, ui.LabelValue("Hydration", ui.HydrationLine(st.Hydration, 20)))
	fmt.Fprintln(out, ui.LabelValue("Today", ui.TasksLine(st.TasksCompletedToday, 20)))
	fmt.Fprintln(out, ui.LabelValue("Streak", ui.Gold.Render(fmt.Sprintf("%s %d", ui.IconStreak, st.Streak))))
	fmt.Fprintln(out, ui.LabelValue("Mood", ui.TierStyle(tier).Render(tier.String())))
	fmt.Fprintln(out, ui.LabelValue("Last saved", ui.Muted.Render(formatSaved(lastSaved))))
	if st.DailyGoalMet {
		fmt.Fprintf(out, "%s %s\n", ui.BadgeGoalMet, ui.Muted.Render("Come back tomorrow!"))
	}
}

func formatSaved(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format("2006-01-02 15:04")
}
