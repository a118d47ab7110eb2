package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/applog/config"
	_ "github.com/kilianp07/applog/infra/logger"
	_ "github.com/kilianp07/applog/infra/metrics"
	_ "github.com/kilianp07/applog/infra/monitoring"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "applog",
	Short:         "Structured logging pipeline tools",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (defaults apply when empty)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
