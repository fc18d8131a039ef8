package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sprout/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently completed tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := svc.CompletionRepo().ListRecent(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Completed Tasks"))
			if len(list) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing yet)"))
				return nil
			}
			for _, c := range list {
				when := c.CompletedAt.In(time.Local).Format("2006-01-02 15:04")
				line := fmt.Sprintf("- %s %s", ui.Muted.Render(when), c.Label)
				if c.GoalMet {
					line += " " + ui.Gold.Render(ui.IconTrophy)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")

	return cmd
}
