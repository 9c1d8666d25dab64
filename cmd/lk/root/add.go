package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"levelingking/internal/engine"
	"levelingking/internal/ui"
)

func newAddCmd(a *app) *cobra.Command {
	var category string
	var frequency string
	var days string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			in := engine.NewGoalInput{Title: args[0]}
			var err error
			if in.Category, err = engine.ParseCategory(category); err != nil {
				return err
			}
			if in.Frequency, err = engine.ParseFrequency(frequency); err != nil {
				return err
			}
			if days != "" {
				if in.SpecificDays, err = engine.ParseWeekdays(days); err != nil {
					return err
				}
				if frequency == "" {
					in.Frequency = engine.FrequencySpecificDays
				}
			}

			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := svc.AddGoal(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				ui.Muted.Render(shortID(g.ID)),
				ui.CategoryIcon(g.Category),
				g.Title,
				ui.Muted.Render("("+ui.FrequencyText(*g)+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (exercise|health|productivity|study|wellbeing)")
	cmd.Flags().StringVarP(&frequency, "freq", "f", "", "Frequency (daily|weekly|specific-days); defaults to daily")
	cmd.Flags().StringVarP(&days, "days", "d", "", "Weekdays for specific-days goals, e.g. mon,wed,fri")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
