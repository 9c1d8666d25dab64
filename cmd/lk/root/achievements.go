package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelingking/internal/engine"
	"levelingking/internal/ui"
)

func newAchievementsCmd(a *app) *cobra.Command {
	var unlockedOnly bool

	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "List achievements",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.Load(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			board := engine.AchievementBoard(st.Character)
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements (%d/%d)", len(st.Character.Achievements), len(board))))
			for _, s := range board {
				if s.Unlocked == nil {
					if unlockedOnly {
						continue
					}
					fmt.Fprintf(out, "%s %s %s\n", ui.IconLock, ui.Muted.Render(s.Def.Title), ui.Muted.Render(s.Def.Description))
					continue
				}
				fmt.Fprintf(out, "%s %s %s %s\n",
					s.Def.Icon,
					ui.RarityStyle(s.Def.Rarity).Render(s.Def.Title),
					s.Def.Description,
					ui.Muted.Render(s.Unlocked.UnlockedAt.In(svc.Now().Location()).Format("2006-01-02")))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&unlockedOnly, "unlocked", "u", false, "Only show unlocked achievements")

	return cmd
}
