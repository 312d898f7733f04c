package cli

import (
	"fmt"

	"solarapi/internal/logging"
	"solarapi/internal/repository"

	"github.com/spf13/cobra"
)

func NewMigrateCommand(globalOptions *GlobalOptions) *cobra.Command {

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database schema versions. Use subcommands 'up', 'down', or 'status'.`,
	}

	for _, sub := range []struct {
		use, short string
	}{
		{"up", "Migrate the database to the most recent version"},
		{"down", "Roll back the database by one version"},
		{"status", "Dump the migration status for the current DB"},
	} {
		command := sub.use
		migrateCmd.AddCommand(&cobra.Command{
			Use:   sub.use,
			Short: sub.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigration(command, globalOptions)
			},
		})
	}

	return migrateCmd
}

func runMigration(command string, globalOptions *GlobalOptions) error {
	repo, err := repository.NewRepository(globalOptions.Conf)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer repo.Close()

	logging.Log.Infof("Running migration command: %s", command)
	if err := repo.Migrate(command); err != nil {
		return err
	}

	logging.Log.Info("Migration operation completed successfully.")
	return nil
}
