// Command algorace prints algorithm step traces and races algorithms of one
// category against each other.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/cmd/algorace/ui"
	"github.com/katalvlaran/algotrace/internal/config"
	"github.com/katalvlaran/algotrace/internal/logging"
	"github.com/katalvlaran/algotrace/internal/telemetry"
)

const version = "0.1.0"

// rootOptions is shared by every subcommand after PersistentPreRunE ran.
type rootOptions struct {
	debug      bool
	configPath string
	cfg        config.Config

	// shutdown flushes spans; non-nil only under --debug.
	shutdown func(context.Context) error
}

func main() {
	if err := logging.Configure(logging.LevelWarn); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorMsg("%v", err))
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "algorace",
		Short:         "Step traces and races for classic algorithms",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.debug {
				cfg.LogLevel = logging.LevelDebug
			}
			if _, err := logging.ConfigureWriter(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
				return err
			}
			opts.cfg = cfg

			if opts.debug {
				shutdown, err := telemetry.Init(cmd.ErrOrStderr(), version)
				if err != nil {
					return err
				}
				opts.shutdown = shutdown
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.flushTelemetry(cmd)
		},
	}
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging, span export and a metrics dump on stderr")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default "+config.DefaultPath()+")")

	root.AddCommand(listCmd())
	root.AddCommand(traceCmd(opts))
	root.AddCommand(raceCmd(opts))
	return root
}

// flushTelemetry exports pending spans and dumps the algotrace metrics. It
// is a no-op without --debug.
func (o *rootOptions) flushTelemetry(cmd *cobra.Command) error {
	if o.shutdown == nil {
		return nil
	}
	shutdown := o.shutdown
	o.shutdown = nil

	err := shutdown(context.WithoutCancel(cmd.Context()))
	return errors.Join(err, telemetry.WriteMetrics(cmd.ErrOrStderr(), prometheus.DefaultGatherer))
}
