package cli

import (
	"fmt"
	"os"
	"time"

	"solarapi/internal/config"

	"github.com/spf13/cobra"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time
)

type GlobalOptions struct {
	CfgFilePath string
	LogLevel    string
	LogFormat   string
	DBPath      string

	Conf *config.Config
}

func NewRootCMD() *cobra.Command {

	globalOptions := &GlobalOptions{}
	serveOptions := &ServeOptions{}

	rootCMD := &cobra.Command{
		Use:           "solarapi",
		Short:         "Solar API",
		Long:          "Serves the edge summary produced by edge_run.py over HTTP.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		// PersistentPreRunE loads the configuration before any command runs.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return globalOptions.initializeConfig(cmd)
		},
		// Without a subcommand the server is started.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, globalOptions)
		},
	}

	// register global flags
	globalOptions.registerFlags(rootCMD)
	serveOptions.registerFlags(rootCMD.Flags())

	// add subcommands
	rootCMD.AddCommand(NewServeCommand(globalOptions))
	rootCMD.AddCommand(NewMigrateCommand(globalOptions))
	rootCMD.AddCommand(NewInitConfigCommand(globalOptions))

	return rootCMD
}

func (options *GlobalOptions) registerFlags(cmd *cobra.Command) {
	// flags that can be used for each command
	cmd.PersistentFlags().StringVar(&options.CfgFilePath, "config_path", "config.toml", "Path to the base configuration file. (Env: SOLAR_CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&options.LogLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: SOLAR_LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&options.LogFormat, "log-format", "", "Logging format (json, text). (Env: SOLAR_LOG_FORMAT)")
	cmd.PersistentFlags().StringVar(&options.DBPath, "database-path", "", "Path to the sqlite database file. (Env: SOLAR_DATABASE_PATH)")
}

func Execute() {
	StartTime = time.Now()

	rootCmd := NewRootCMD()

	// Run the command based on os.Args
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
