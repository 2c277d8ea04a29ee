package commands

import (
	"github.com/spf13/cobra"

	"github.com/zettelsite/zettelsite-settings/pkg/logger"
	"github.com/zettelsite/zettelsite-settings/pkg/session"
	"github.com/zettelsite/zettelsite-settings/pkg/tui"
)

// NewEditCommand creates the edit command, an explicit alias for the
// root behavior.
func NewEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit settings in a terminal form",
		Long: `Opens the settings form in the terminal. The form loops until every
text field has a value; saving writes settings.json in the current
directory, cancelling leaves the file untouched.`,
		Args: cobra.NoArgs,
		RunE: runEdit,
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	log := logger.Get(flagLogLevel)
	s := session.New(tui.NewPresenter(), log)

	initial, err := s.Load(session.UseDefaults)
	if err != nil {
		return err
	}

	if _, err := s.Run(initial); err != nil {
		return err
	}
	return nil
}
