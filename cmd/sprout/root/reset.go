package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sprout/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool
	var history bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the plant and start over",
		Long: `Delete the saved plant so the next run starts from scratch.

This will:
- Drop hydration, today's progress and the streak
- Keep the completion history unless --history is given

The plant cannot be recovered afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			existed, err := svc.Reset(ctx, history)
			if err != nil {
				return err
			}
			if !existed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing saved yet."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconUndo+" Plant reset"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	cmd.Flags().BoolVar(&history, "history", false, "Also clear the completion history")

	return cmd
}
