package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/catalog"
	"github.com/katalvlaran/algotrace/cmd/algorace/ui"
	"github.com/katalvlaran/algotrace/race"
)

func raceCmd(opts *rootOptions) *cobra.Command {
	var (
		in       inputFlags
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "race <algorithm> <algorithm> [algorithm...]",
		Short: "Race algorithms of one category over the same input",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			algs := make([]catalog.Algorithm, len(args))
			keys := make([]string, len(args))
			for i, name := range args {
				alg, err := catalog.Lookup(name)
				if err != nil {
					return err
				}
				if i > 0 && alg.Category != algs[0].Category {
					return fmt.Errorf("cannot race %s (%s) against %s (%s)", alg.Key, alg.Category, algs[0].Key, algs[0].Category)
				}
				algs[i], keys[i] = alg, alg.Key
			}

			cfg := opts.cfg
			if cmd.Flags().Changed("interval") {
				cfg.Race.TickInterval = interval
			}

			input, err := in.build(cmd, algs[0].Category, cfg)
			if err != nil {
				return err
			}
			traces, err := catalog.GenerateAll(cmd.Context(), keys, input)
			if err != nil {
				return err
			}

			entries := make([]race.Entry, len(keys))
			for i, k := range keys {
				entries[i] = race.Entry{Name: k, Trace: traces[k]}
			}
			m := race.NewManager(race.WithLogger(slog.Default()))
			r := race.NewRunner(m, entries,
				race.WithTickInterval(cfg.Race.TickInterval),
				race.WithMaxTicks(cfg.Race.MaxTicks),
			)
			if err := r.Start(); err != nil {
				return err
			}
			if err := r.Run(cmd.Context()); err != nil {
				if !errors.Is(err, race.ErrTickLimit) {
					return err
				}
				printRace(cmd, m.Snapshot(), r.Ticks())
				fmt.Fprintln(cmd.OutOrStdout(), ui.WarnMsg("stopped after %d ticks, raise race.max_ticks to finish", r.Ticks()))
				return err
			}

			printRace(cmd, m.Snapshot(), r.Ticks())
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().DurationVar(&interval, "interval", 0, "Minimum time between ticks, e.g. 20ms (default from config)")
	return cmd
}

func printRace(cmd *cobra.Command, snap race.Snapshot, ticks int) {
	byName := make(map[string]race.Standing, len(snap.Participants))
	for _, s := range snap.Participants {
		byName[s.Name] = s
	}

	rows := make([][]string, 0, len(snap.Ranking))
	for _, name := range snap.Ranking {
		s := byName[name]
		rows = append(rows, []string{strconv.Itoa(s.Rank), name, strconv.Itoa(s.Steps), s.Elapsed.String(), ui.ProgressBar(s.Progress, 20)})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Table([]string{"Rank", "Algorithm", "Steps", "Elapsed", "Progress"}, rows))
	fmt.Fprint(out, ui.KeyValues("  ",
		ui.KV("Session", ui.Muted(snap.SessionID)),
		ui.KV("Ticks", strconv.Itoa(ticks)),
	))
	if snap.Winner == "" {
		return
	}
	if runnerUp, pct, ok := snap.Margin(); ok {
		fmt.Fprintln(out, ui.SuccessMsg("%s wins, %.1f%% faster than %s", ui.Accent(snap.Winner), pct, runnerUp))
		return
	}
	fmt.Fprintln(out, ui.SuccessMsg("%s wins", ui.Accent(snap.Winner)))
}
