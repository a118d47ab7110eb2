package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	corelogger "github.com/kilianp07/applog/core/logger"
	"github.com/kilianp07/applog/logger"
)

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Print the mode the configuration resolves to",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		mode := corelogger.NewResolver(cfg.Logging.BuildInfo()).Resolve()
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "configured: %s\n", cfg.Logging.Mode)
		_, _ = fmt.Fprintf(out, "resolved:   %s\n", mode)
		_, _ = fmt.Fprintf(out, "planted:    %s\n", logger.State())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modeCmd)
}
