package cli

import (
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/mlopsdemo/internal/config"
)

// loadConfig reads the layered configuration and applies the flags the
// user set explicitly on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(config.Options{File: configFile, EnvFile: envFile})
	if err != nil {
		return cfg, err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		cfg.Port = servePort
	}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		cfg.Seed = serveSeed
	}
	return cfg, cfg.Validate()
}
