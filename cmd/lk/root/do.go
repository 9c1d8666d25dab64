package root

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"levelingking/internal/engine"
	"levelingking/internal/ui"
)

func newDoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "do <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle a goal's completion for today",
		Long: `Mark a goal as completed, or undo a completion.

Completing awards experience and attribute points. Undoing a completion
does not take them back.`,
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

			st, res, err := svc.ToggleGoal(ctx, args[0])
			if err != nil {
				return err
			}
			if !res.Found {
				return fmt.Errorf("%w: %s", engine.ErrGoalNotFound, args[0])
			}
			printToggle(cmd.OutOrStdout(), st, res)
			return nil
		},
	}

	return cmd
}

func printToggle(out io.Writer, st *engine.State, res *engine.ToggleResult) {
	title := res.GoalID
	if i := st.FindGoal(res.GoalID); i >= 0 {
		title = st.Goals[i].Title
	}

	if !res.Completed {
		fmt.Fprintf(out, "%s %s\n", ui.Warn.Render(ui.IconUndo+" Undone"), title)
		fmt.Fprintln(out, ui.LabelValue("Aura", ui.AuraText(res.AuraLevel)))
		return
	}

	fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Done"), title, ui.Gold.Render(fmt.Sprintf("+%d XP", res.XPGained)))
	for _, g := range res.AttributeGains {
		fmt.Fprintf(out, "  %s %s +%d\n", ui.AttributeIcon(g.Attribute), ui.AttributeLabel(g.Attribute), g.Delta)
	}
	if res.LevelUp {
		fmt.Fprintf(out, "%s %s level %d → %d\n", ui.IconBolt, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
	}
	for _, a := range res.NewAchievements {
		fmt.Fprintf(out, "%s %s %s\n", ui.IconTrophy, ui.RarityStyle(a.Rarity).Render(a.Title), ui.Muted.Render("("+string(a.Rarity)+")"))
	}
	fmt.Fprintln(out, ui.LabelValue("Aura", fmt.Sprintf("%s (%d/%d today)", ui.AuraText(res.AuraLevel), res.ActiveCompleted, res.ActiveTotal)))
	if res.DayCompleted && res.StreakAfter != res.StreakBefore {
		fmt.Fprintf(out, "%s Day complete! Streak: %d\n", ui.IconFire, res.StreakAfter)
	}
}
