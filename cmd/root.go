package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/batterycf/config"
	"github.com/kilianp07/batterycf/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "batterycf",
	Short:         "Battery replacement cash-flow model",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configuration and applies its log level. LOG_LEVEL
// takes precedence over logging.level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	level := cfg.Logging.Level
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	if err := logger.SetLevel(level); err != nil {
		return nil, err
	}
	return cfg, nil
}
