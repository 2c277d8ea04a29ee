package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zettelsite/zettelsite-settings/pkg/files"
)

// NewPathCommand creates the path command
func NewPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), files.SettingsPath())
			return nil
		},
	}
}
