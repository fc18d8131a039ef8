package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sprout/internal/ui"
)

func newTickCmd() *cobra.Command {
	var hours float64

	cmd := &cobra.Command{
		Use:    "tick",
		Short:  "Drain hydration as if time had passed (debug)",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if hours <= 0 {
				return errors.New("--hours must be positive")
			}
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
			before := st.Hydration
			changed, err := svc.Simulate(ctx, st, time.Duration(hours*float64(time.Hour)))
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No decay applied."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Hydration", fmt.Sprintf("%d%% → %d%%", ui.RoundPercent(before), ui.RoundPercent(st.Hydration))))
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 1, "Hours of decay to apply")

	return cmd
}
