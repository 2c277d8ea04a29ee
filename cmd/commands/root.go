package commands

import (
	"github.com/spf13/cobra"

	"github.com/zettelsite/zettelsite-settings/internal/cli"
	"github.com/zettelsite/zettelsite-settings/pkg/logger"
	"github.com/zettelsite/zettelsite-settings/pkg/models"
	"github.com/zettelsite/zettelsite-settings/pkg/session"
)

var (
	flagQuiet    bool
	flagNoColor  bool
	flagYes      bool
	flagLogLevel int8
)

// NewRootCommand creates the root command. Running it with no
// subcommand opens the settings editor.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zettelsite-settings",
		Short: "Settings editor for the zettelsite static site generator",
		Long: `zettelsite-settings manages the settings.json file the zettelsite
static site generator reads: zettelkasten and site locations, titles,
and the site's colors.

Run it with no arguments to edit the settings in a terminal form, or
use the subcommands to read and change individual settings from the
command line.`,
		SilenceUsage:     true,
		PersistentPreRun: setupGlobals,
		RunE:             runEdit,
	}

	cmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	cmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")
	cmd.PersistentFlags().Int8Var(&flagLogLevel, "log-level", 2, "Minimum log level (-1 debug, 0 info, 1 warn, 2 error)")

	cmd.AddCommand(
		NewEditCommand(),
		NewShowCommand(),
		NewGetCommand(),
		NewSetCommand(),
		NewResetCommand(),
		NewCheckCommand(),
		NewExportCommand(),
		NewPathCommand(),
		NewVersionCommand(version),
	)

	return cmd
}

func setupGlobals(cmd *cobra.Command, args []string) {
	cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
	logger.Get(flagLogLevel)
}

// loadSettings returns the persisted settings, or the defaults when
// none are persisted yet. For command-line reads and edits the
// interactive fallback is never wanted.
func loadSettings() (models.Values, error) {
	s := session.New(nil, logger.Get(flagLogLevel))
	return s.Load(session.UseDefaults)
}
