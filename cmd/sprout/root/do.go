package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sprout/internal/engine"
	"sprout/internal/plant"
	"sprout/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <task>",
		Short: "Complete a task and water the plant",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || strings.TrimSpace(strings.Join(args, " ")) == "" {
				return errors.New(engine.MsgEmptyTask)
			}
			return nil
		},
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
			res, err := svc.CompleteTask(ctx, st, strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch res.Outcome {
			case plant.OutcomeGoalMet:
				fmt.Fprintf(out, "%s %s\n", ui.Gold.Render(ui.IconTrophy+" "+res.Message), ui.BadgeGoalMet)
			case plant.OutcomeWatered:
				fmt.Fprintln(out, ui.Good.Render(ui.IconDroplet+" "+res.Message))
			default:
				fmt.Fprintln(out, ui.Warn.Render(ui.IconInfo+" "+res.Message))
			}
			fmt.Fprintln(out, ui.LabelValue("Hydration", ui.HydrationLine(res.State.Hydration, 20)))
			fmt.Fprintln(out, ui.LabelValue("Today", ui.TasksLine(res.State.TasksCompletedToday, 20)))
			return nil
		},
	}

	return cmd
}
