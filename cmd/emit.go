package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/applog/app"
	corelogger "github.com/kilianp07/applog/core/logger"
	"github.com/kilianp07/applog/infra/logger"
)

var emitOpts struct {
	level    string
	category string
	tag      string
	cause    string
	json     bool
}

var emitCmd = &cobra.Command{
	Use:   "emit [message...]",
	Short: "Emit one record through the configured pipeline",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEmit,
}

func init() {
	f := emitCmd.Flags()
	f.StringVarP(&emitOpts.level, "level", "l", "info", "level: verbose, debug, info, warn, error, assert")
	f.StringVar(&emitOpts.category, "category", "", "category: network, database, ui, business, security, performance, default")
	f.StringVarP(&emitOpts.tag, "tag", "t", "", "explicit tag (derived from the call site when empty)")
	f.StringVar(&emitOpts.cause, "cause", "", "attach an error with this message")
	f.BoolVar(&emitOpts.json, "json", false, "log the message as a JSON payload at debug level")
	rootCmd.AddCommand(emitCmd)
}

func runEmit(cmd *cobra.Command, args []string) error {
	level, err := corelogger.ParseLevel(emitOpts.level)
	if err != nil {
		return err
	}
	cat, err := corelogger.ParseCategory(emitOpts.category)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("cli").Errorf("service close: %v", err)
		}
	}()
	l := svc.Install()

	msg := strings.Join(args, " ")
	cause := causeOf(emitOpts.cause)
	if emitOpts.json {
		l.Category(cat).Tag(emitOpts.tag).Err(cause).JSON(msg)
		level = corelogger.DebugLevel
	} else {
		l.Emit(level, cat, emitOpts.tag, cause, msg)
	}
	if !l.Flush(5 * time.Second) {
		return fmt.Errorf("reports not delivered within timeout")
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "emitted %s record in %s mode\n", level, l.Mode())
	return nil
}

func causeOf(msg string) error {
	if msg == "" {
		return nil
	}
	return errors.New(msg)
}
