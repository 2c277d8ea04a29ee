package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/zettelsite/zettelsite-settings/internal/cli"
	"github.com/zettelsite/zettelsite-settings/pkg/files"
	"github.com/zettelsite/zettelsite-settings/pkg/models"
)

// NewResetCommand creates the reset command
func NewResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset all settings to their defaults",
		Long: `Overwrites settings.json with the default settings. The previous
contents are not kept. Use --yes to skip the confirmation prompt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed, err := cli.Confirm("Reset all settings to their defaults?", false)
			if err != nil {
				return err
			}
			if !confirmed {
				cli.PrintInfo("Reset cancelled")
				return nil
			}

			if err := files.WriteSettings(models.DefaultSettings(time.Now())); err != nil {
				return err
			}

			cli.PrintSuccess("Settings reset to defaults")
			return nil
		},
	}
}
