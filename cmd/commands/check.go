package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zettelsite/zettelsite-settings/internal/cli"
	"github.com/zettelsite/zettelsite-settings/pkg/files"
	"github.com/zettelsite/zettelsite-settings/pkg/models"
)

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the persisted settings file",
		Long: `Checks that settings.json exists and that no text setting is blank.
Exits non-zero when the file is missing or invalid, so it can gate a
site build in a script.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := files.ReadSettings()
			if errors.Is(err, files.ErrNoSettings) {
				return fmt.Errorf("no settings found at %s (run 'zettelsite-settings edit' first)", files.SettingsPath())
			}
			if err != nil {
				return err
			}

			for key := range settings {
				if !models.IsSchemaKey(key) {
					cli.PrintWarning("Unrecognized setting %q", key)
				}
			}
			for _, f := range models.Schema() {
				if _, ok := settings[f.Key]; !ok {
					cli.PrintWarning("Setting %q is missing", f.Key)
				}
			}

			if blank := models.BlankKeys(settings); len(blank) > 0 {
				for _, key := range blank {
					cli.PrintError("Setting %q is blank", key)
				}
				return fmt.Errorf("%d setting(s) have no value", len(blank))
			}

			cli.PrintSuccess("Settings are valid")
			return nil
		},
	}
}
