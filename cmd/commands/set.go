package commands

import (
	"github.com/spf13/cobra"

	"github.com/zettelsite/zettelsite-settings/internal/cli"
	"github.com/zettelsite/zettelsite-settings/pkg/files"
	"github.com/zettelsite/zettelsite-settings/pkg/models"
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <setting> <value>",
		Short: "Change one setting",
		Long: `Changes a single setting and saves the whole settings file. Values are
checked against the setting's kind: booleans accept true/false, colors
must be #rrggbb hex strings, and text settings must not be blank.

Examples:
  zettelsite-settings set "site title" "My Zettelkasten"
  zettelsite-settings set "hide tags" false
  zettelsite-settings set "body link color" "#59981a"`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateSettingKey(args[0])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			key, raw := args[0], args[1]

			field, _ := models.FieldFor(key)
			value, err := cli.ParseSettingValue(field, raw)
			if err != nil {
				return err
			}

			settings, err := loadSettings()
			if err != nil {
				return err
			}

			updated := settings.Clone()
			updated[key] = value
			if err := files.WriteSettings(updated); err != nil {
				return err
			}

			cli.PrintSuccess("Set %q to %v", key, value)
			return nil
		},
	}
}
