package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zettelsite/zettelsite-settings/internal/cli"
	"github.com/zettelsite/zettelsite-settings/pkg/models"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show all settings",
		Long: `Prints every setting and its current value. Settings that have never
been saved show their defaults.

Examples:
  zettelsite-settings show
  zettelsite-settings show -o json
  zettelsite-settings show -o yaml`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			if output != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), output, settings)
			}

			table := cli.NewTableFormatter(cmd.OutOrStdout())
			table.Header("SETTING", "VALUE")
			for _, f := range models.Schema() {
				table.Row(f.Key, fmt.Sprintf("%v", settings[f.Key]))
			}
			table.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}
