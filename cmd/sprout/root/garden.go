package root

import (
	"context"

	"github.com/spf13/cobra"

	"sprout/internal/tui"
)

func newGardenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "garden",
		Short: "Open the live plant view",
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
			return tui.RunGarden(ctx, svc, st, cmd.OutOrStdout())
		},
	}

	return cmd
}
