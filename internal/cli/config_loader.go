// filepath: internal/cli/config_loader.go
package cli

import (
	"fmt"
	"os"
	"strings"

	"solarapi/internal/config"
	"solarapi/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces every environment override, e.g. SOLAR_PORT.
const envPrefix = "SOLAR"

// initializeConfig loads the config file and applies overrides.
// Precedence: CLI flag > environment variable > config file > default.
func (options *GlobalOptions) initializeConfig(cmd *cobra.Command) error {
	v := newOverrides()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	cfgFile := v.GetString("config_path")
	if cfgFile == "" {
		cfgFile = "config.toml"
	}
	options.CfgFilePath = cfgFile

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing config file: rely on defaults/env/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	applyOverrides(cfg, v)
	cfg.ApplyDefaults()

	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logging.Init(cfg.Logging.Level, cfg.Logging.Format)
	options.Conf = cfg
	return nil
}

func newOverrides() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// applyOverrides copies every explicitly set flag or environment value into c.
func applyOverrides(c *config.Config, v *viper.Viper) {
	if v.IsSet("host") {
		c.Server.Host = v.GetString("host")
	}
	if v.IsSet("port") {
		c.Server.Port = v.GetInt("port")
	}
	if v.IsSet("summary-path") {
		c.Summary.Path = v.GetString("summary-path")
	}
	if v.IsSet("summary-max-size") {
		c.Summary.MaxSize = v.GetString("summary-max-size")
	}
	if v.IsSet("database-path") {
		c.Database.Path = v.GetString("database-path")
	}
	if v.IsSet("retention") {
		c.Database.Retention = v.GetString("retention")
	}
	if v.IsSet("log-level") {
		c.Logging.Level = v.GetString("log-level")
	}
	if v.IsSet("log-format") {
		c.Logging.Format = v.GetString("log-format")
	}
	if v.IsSet("audit-enabled") {
		c.Logging.AuditEnabled = v.GetBool("audit-enabled")
	}
}
