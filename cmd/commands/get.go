package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zettelsite/zettelsite-settings/internal/cli"
)

// NewGetCommand creates the get command
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <setting>",
		Short: "Print the value of one setting",
		Long: `Prints the current value of a single setting. Setting names contain
spaces, so quote them:

  zettelsite-settings get "site title"
  zettelsite-settings get "hide tags"`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateSettingKey(args[0])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", settings[args[0]])
			return nil
		},
	}
}
