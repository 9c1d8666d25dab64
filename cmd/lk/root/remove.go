package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"levelingking/internal/ui"
)

func newRemoveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a goal (rewards already earned are kept)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := svc.RemoveGoal(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Warn.Render(ui.IconTrash+" Removed"), ui.Muted.Render(shortID(g.ID)), g.Title)
			return nil
		},
	}

	return cmd
}
