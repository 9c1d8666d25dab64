package root

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"levelingking/internal/config"
	"levelingking/internal/engine"
	"levelingking/internal/logging"
	"levelingking/internal/ui"
)

const Version = "0.1.0"

// app is the per-invocation state shared by every subcommand.
type app struct {
	cfg    config.Config
	logger *zap.Logger
}

// configure loads the environment and builds the logger. A non-empty dbPath
// overrides LK_DB_PATH.
func (a *app) configure(dbPath string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.DBPath = dbPath
	}
	l, err := logging.New(c.LogLevel, c.LogFormat)
	if err != nil {
		return err
	}
	a.cfg = c
	a.logger = l
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	var dbPath string

	cmd := &cobra.Command{
		Use:           "lk",
		Short:         "Leveling King: level up a character by keeping your daily habits",
		Long:          "Leveling King turns daily goals into RPG progression: experience, attributes, achievements and streaks.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(dbPath)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides LK_DB_PATH)")

	cmd.AddCommand(
		newStartCmd(a),
		newAddCmd(a),
		newRemoveCmd(a),
		newDoCmd(a),
		newListCmd(a),
		newStatusCmd(a),
		newAchievementsCmd(a),
		newClassCmd(a),
		newPathCmd(a),
		newResetCmd(a),
		newBoardCmd(a),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		if errors.Is(err, engine.ErrNoSession) {
			fmt.Fprintln(os.Stderr, ui.Muted.Render("Start a journey with: lk start --name <name> --class <class>"))
		}
		os.Exit(1)
	}
}
