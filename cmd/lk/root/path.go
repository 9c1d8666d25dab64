package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"levelingking/internal/engine"
	"levelingking/internal/ui"
)

func newPathCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <discipline|focus|serenity>",
		Short: "Change your path",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("path is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := engine.ParsePath(args[0])
			if err != nil {
				return err
			}
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ChangePath(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Path", ui.PathStyle(p).Render(string(p))))
			return nil
		},
	}

	return cmd
}
