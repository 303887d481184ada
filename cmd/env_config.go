package cmd

import (
	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// envDefaults carries environment overrides for flag defaults. Explicit
// flags always win; a variable applies only when its flag was left unset.
type envDefaults struct {
	LogLevel    string   `env:"DECISION_KIT_LOG"`
	Coefficient *float64 `env:"DECISION_KIT_COEFFICIENT"`
}

// applyEnvDefaults folds environment values into flags the user did not
// set. Called from the root command before any subcommand runs.
func applyEnvDefaults(cmd *cobra.Command) {
	var cfg envDefaults
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatalf("Failed to parse environment: %v", err)
	}
	if cfg.LogLevel != "" && !cmd.Flags().Changed("log") {
		logLevel = cfg.LogLevel
	}
	if cfg.Coefficient != nil && !cmd.Flags().Changed("coefficient") {
		coefficient = *cfg.Coefficient
	}
}
