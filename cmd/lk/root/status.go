package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelingking/internal/engine"
	"levelingking/internal/ui"
)

func newStatusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show character stats, abilities and streak",
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
			ch := st.Character
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconCrown, st.Name))
			fmt.Fprintln(out, ui.Muted.Render(engine.DailyMessage(svc.Now())))
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Class", ui.ClassName(ch.Class)))
			fmt.Fprintln(out, ui.LabelValue("Path", ui.PathStyle(st.Path).Render(string(st.Path))))
			fmt.Fprintln(out, ui.LabelValue("Level", ch.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d/%d %s", ch.Experience, ch.ExperienceToNextLevel, ui.Bar(ch.Experience, ch.ExperienceToNextLevel, 20))))
			fmt.Fprintln(out, ui.LabelValue("Power", ch.Power))
			fmt.Fprintln(out, ui.LabelValue("Aura", fmt.Sprintf("%s (%d/%d today)", ui.AuraText(today.AuraLevel), today.Completed, len(today.Goals))))
			fmt.Fprintln(out, ui.LabelValue("Goals completed", st.TotalGoalsCompleted))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Attributes")+" "+ui.Muted.Render(fmt.Sprintf("(power %d)", engine.AttributePower(ch.Attributes))))
			for _, attr := range engine.AllAttributes() {
				v := ch.Attributes.Get(attr)
				fmt.Fprintf(out, "- %s %s %3d %s\n", ui.AttributeIcon(attr), ui.AttributeLabel(attr), v, ui.Bar(v, engine.AttributeMax, 20))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconBolt+" Abilities"))
			for _, ab := range engine.UnlockedAbilities(ch.Class, ch.Level) {
				fmt.Fprintf(out, "- %s %s %s\n", ab.Icon, ab.Name, ui.Muted.Render(ab.Description))
			}
			if next, ok := engine.NextAbility(ch.Class, ch.Level); ok {
				fmt.Fprintf(out, "- %s %s %s\n", ui.IconLock, ui.Muted.Render(next.Name), ui.Muted.Render(fmt.Sprintf("(level %d)", next.Level)))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconFire+" Streak"))
			if m, ok := engine.StreakMilestone(st.Streak); ok {
				fmt.Fprintf(out, "%d day(s) %s %s\n", st.Streak, ui.Gold.Render(m.Title), ui.Muted.Render(m.Description))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("No streak yet. Complete every goal due today to start one."))
			}
			fmt.Fprintf(out, "%s %d/%d\n", ui.IconTrophy, len(ch.Achievements), len(engine.AchievementCatalog()))
			return nil
		},
	}

	return cmd
}
