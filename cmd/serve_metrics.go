package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/applog/infra/metrics"
)

var metricsAddr string

var serveMetricsCmd = &cobra.Command{
	Use:   "serve-metrics",
	Short: "Expose the Prometheus endpoint until interrupted",
	RunE: func(cmd *cobra.Command, _ []string) error {
		addr := metricsAddr
		if addr == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			addr = cfg.Metrics.PrometheusAddr
		}
		if addr == "" {
			return fmt.Errorf("no address: pass --addr or set metrics.prometheus_addr")
		}
		if _, err := metrics.NewPromRecorder(); err != nil {
			return fmt.Errorf("prometheus recorder: %w", err)
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return metrics.StartPromServer(ctx, addr)
	},
}

func init() {
	serveMetricsCmd.Flags().StringVar(&metricsAddr, "addr", "", "listen address, e.g. :9102")
	rootCmd.AddCommand(serveMetricsCmd)
}
