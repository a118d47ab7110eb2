package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	corelogger "github.com/kilianp07/applog/core/logger"
	"github.com/kilianp07/applog/core/reportlog"
	"github.com/kilianp07/applog/infra/monitoring"
)

var reportsOpts struct {
	store    string
	path     string
	level    string
	category string
	tag      string
	since    time.Duration
	limit    int
	asJSON   bool
}

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Query a jsonl or sqlite report store",
	RunE:  runReports,
}

func init() {
	f := reportsCmd.Flags()
	f.StringVar(&reportsOpts.store, "store", "", "store kind: jsonl or sqlite (taken from the config when empty)")
	f.StringVar(&reportsOpts.path, "path", "", "store path (taken from the config when empty)")
	f.StringVar(&reportsOpts.level, "level", "", "only this level")
	f.StringVar(&reportsOpts.category, "category", "", "only this category")
	f.StringVar(&reportsOpts.tag, "tag", "", "only this tag")
	f.DurationVar(&reportsOpts.since, "since", 0, "only reports newer than this")
	f.IntVar(&reportsOpts.limit, "limit", 0, "maximum number of reports")
	f.BoolVar(&reportsOpts.asJSON, "json", false, "print JSON lines")
	rootCmd.AddCommand(reportsCmd)
}

func runReports(cmd *cobra.Command, _ []string) error {
	kind, conf, err := storeSettings()
	if err != nil {
		return err
	}
	store, err := monitoring.OpenStore(kind, conf)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	q := reportlog.Query{Tag: reportsOpts.tag, Limit: reportsOpts.limit}
	if reportsOpts.level != "" {
		lvl, err := corelogger.ParseLevel(reportsOpts.level)
		if err != nil {
			return err
		}
		q.Level = lvl.String()
	}
	if reportsOpts.category != "" {
		cat, err := corelogger.ParseCategory(reportsOpts.category)
		if err != nil {
			return err
		}
		q.Category = cat.String()
	}
	if reportsOpts.since > 0 {
		q.Start = time.Now().Add(-reportsOpts.since)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()
	entries, err := store.Query(ctx, q)
	if err != nil {
		return fmt.Errorf("query %s store: %w", kind, err)
	}
	out := cmd.OutOrStdout()
	if reportsOpts.asJSON {
		enc := json.NewEncoder(out)
		for _, e := range entries {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s %-6s %s %s", e.Timestamp.Format(time.RFC3339), e.Level, e.Tag, e.Message)
		if e.Cause != "" {
			line += " (" + e.Cause + ")"
		}
		_, _ = fmt.Fprintln(out, line)
	}
	return nil
}

// storeSettings resolves the store from flags, falling back to the first
// jsonl or sqlite reporter in the configuration.
func storeSettings() (string, map[string]any, error) {
	if reportsOpts.store != "" && reportsOpts.path != "" {
		return strings.ToLower(reportsOpts.store), map[string]any{"path": reportsOpts.path}, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", nil, err
	}
	for _, r := range cfg.Reporting.Reporters {
		if r.Type != "jsonl" && r.Type != "sqlite" {
			continue
		}
		if reportsOpts.store != "" && r.Type != reportsOpts.store {
			continue
		}
		conf := map[string]any{}
		for k, v := range r.Conf {
			conf[k] = v
		}
		if reportsOpts.path != "" {
			conf["path"] = reportsOpts.path
		}
		return r.Type, conf, nil
	}
	return "", nil, fmt.Errorf("no report store: pass --store and --path or configure a jsonl/sqlite reporter")
}
