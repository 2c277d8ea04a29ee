package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zettelsite/zettelsite-settings/internal/cli"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	var (
		output     string
		exportFile string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export settings as JSON or YAML",
		Long: `Writes the current settings to stdout or a file, for backups or for
feeding other tools.

Examples:
  zettelsite-settings export
  zettelsite-settings export -o yaml
  zettelsite-settings export --file backup.json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if output == string(cli.FormatText) {
				return fmt.Errorf("invalid output format: %s (must be: json or yaml)", output)
			}
			return cli.ValidateOutputFormat(output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := cli.OutputResults(&buf, output, settings); err != nil {
				return err
			}

			if exportFile == "" {
				fmt.Fprint(cmd.OutOrStdout(), buf.String())
				return nil
			}

			if err := os.WriteFile(exportFile, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", exportFile, err)
			}
			cli.PrintSuccess("Settings exported to %s", exportFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format (json, yaml)")
	cmd.Flags().StringVar(&exportFile, "file", "", "Write to a file instead of stdout")

	return cmd
}
