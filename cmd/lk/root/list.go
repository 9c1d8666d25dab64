package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelingking/internal/engine"
	"levelingking/internal/ui"
)

func newListCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List today's goals (or every goal with --all)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, today, err := svc.Today(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			goals := today.Goals
			heading := fmt.Sprintf("Today's goals (%d/%d)", today.Completed, len(today.Goals))
			if all {
				goals = st.Goals
				heading = fmt.Sprintf("All goals (%d)", len(st.Goals))
			}
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, heading))
			if len(goals) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			now := svc.Now()
			for _, g := range goals {
				line := fmt.Sprintf("%s %s %s %s %s",
					ui.CheckIcon(g.Completed),
					ui.Muted.Render(shortID(g.ID)),
					ui.CategoryIcon(g.Category),
					g.Title,
					ui.Muted.Render("("+ui.FrequencyText(g)+")"))
				if all && !engine.IsActiveOn(g, now.Weekday()) {
					line += " " + ui.Muted.Render("not today")
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Aura", ui.AuraText(today.AuraLevel)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include goals not due today")

	return cmd
}
