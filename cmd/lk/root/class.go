package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelingking/internal/engine"
	"levelingking/internal/ui"
)

func newClassCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "class [class]",
		Short: "List classes or change class (costs 20% of your level)",
		Long: `Without arguments, list the classes and their starting attributes.

Changing class keeps 80% of your level (rounded down), resets experience,
resets attributes to the new class base and lowers power by 5 per lost
level. Achievements are kept. Pass --yes to apply.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				printClasses(cmd)
				return nil
			}

			to, err := engine.ParseClass(args[0])
			if err != nil {
				return err
			}
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !yes {
				st, err := svc.Load(ctx)
				if err != nil {
					return err
				}
				_, preview, err := engine.ChangeClass(st.Character, to)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s → %s: level %d → %d, power %d → %d\n",
					ui.Warn.Render(ui.IconWarn),
					ui.ClassName(preview.From), ui.ClassName(preview.To),
					preview.LevelBefore, preview.LevelAfter,
					preview.PowerBefore, preview.PowerAfter)
				fmt.Fprintln(out, ui.Muted.Render("Run again with --yes to confirm."))
				return nil
			}

			res, err := svc.ChangeClass(ctx, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s You are now a %s (level %d, power %d)\n",
				ui.Good.Render(ui.IconSwap), ui.ClassName(res.To), res.LevelAfter, res.PowerAfter)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Apply the class change")

	return cmd
}

func printClasses(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Classes"))
	for _, c := range engine.Classes() {
		info, _ := engine.ClassInfoFor(c)
		fmt.Fprintf(out, "%s %s\n", ui.ClassName(c), ui.Muted.Render("("+string(c)+")"))
		fmt.Fprintf(out, "  %s\n", info.Description)
		line := "  "
		for _, attr := range engine.AllAttributes() {
			line += fmt.Sprintf("%s %d  ", ui.AttributeLabel(attr), info.BaseAttributes.Get(attr))
		}
		fmt.Fprintln(out, ui.Muted.Render(line))
	}
}
