package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"levelingking/internal/engine"
	"levelingking/internal/ui"
)

func newStartCmd(a *app) *cobra.Command {
	var name string
	var class string
	var path string
	var goals []string
	var force bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Create your character and first goals",
		Long: `Start a new journey: pick a name, a class and a path, and register goals.

Goals use the form "title|category[|frequency[|days]]", for example:
  lk start --name Ana --class archer --path focus \
    --goal "Morning run|exercise" \
    --goal "Read 20 pages|study|days|mon,wed,fri"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if strings.TrimSpace(name) == "" {
				return errors.New("--name is required")
			}
			c, err := engine.ParseClass(class)
			if err != nil {
				return err
			}
			p, err := engine.ParsePath(path)
			if err != nil {
				return err
			}
			in := engine.OnboardInput{Name: name, Class: c, Path: p}
			for _, spec := range goals {
				g, err := engine.ParseGoalSpec(spec)
				if err != nil {
					return err
				}
				in.Goals = append(in.Goals, g)
			}

			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			exists, err := svc.HasSession(ctx)
			if err != nil {
				return err
			}
			if exists && !force {
				return errors.New("a journey already exists; use --force to replace it or lk reset --yes")
			}

			st, err := svc.Initialize(ctx, in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCrown, "Welcome, "+st.Name))
			fmt.Fprintln(out, ui.LabelValue("Class", ui.ClassName(st.Character.Class)))
			fmt.Fprintln(out, ui.LabelValue("Path", ui.PathStyle(st.Path).Render(string(st.Path))))
			if info, ok := engine.ClassInfoFor(st.Character.Class); ok {
				fmt.Fprintln(out, ui.Muted.Render(info.Description))
			}
			fmt.Fprintf(out, "%s %d goal(s) registered\n", ui.Good.Render(ui.IconPlus), len(st.Goals))
			if len(st.Goals) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Add one with: lk add \"Drink water\" -c health"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Your name")
	cmd.Flags().StringVar(&class, "class", string(engine.DefaultClass), "Class (mage|archer|berserker|rogue|paladin)")
	cmd.Flags().StringVar(&path, "path", string(engine.PathDiscipline), "Path (discipline|focus|serenity)")
	cmd.Flags().StringArrayVarP(&goals, "goal", "g", nil, "Goal as title|category[|frequency[|days]] (repeatable)")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing journey")

	return cmd
}
