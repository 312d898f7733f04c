package cli

import (
	"fmt"
	"os"

	"solarapi/internal/config"
	"solarapi/internal/logging"
	"solarapi/internal/shared"

	"github.com/spf13/cobra"
)

func NewInitConfigCommand(globalOptions *GlobalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the effective configuration to the config file",
		Long:  "Writes the configuration (file values, environment and flags merged with defaults) to --config_path.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeConfig(globalOptions, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file.")

	return cmd
}

func writeConfig(globalOptions *GlobalOptions, force bool) error {
	path := globalOptions.CfgFilePath
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w (use --force to overwrite)", path, shared.ErrorFileExists)
		}
	}

	if err := config.SaveConfig(path, globalOptions.Conf); err != nil {
		return err
	}
	logging.Log.Infof("Configuration written to %s", path)
	return nil
}
