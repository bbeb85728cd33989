package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/catalog"
	"github.com/katalvlaran/algotrace/cmd/algorace/ui"
	"github.com/katalvlaran/algotrace/step"
)

func traceCmd(opts *rootOptions) *cobra.Command {
	var (
		in         inputFlags
		jsonOut    bool
		legacyJSON bool
	)

	cmd := &cobra.Command{
		Use:   "trace <algorithm>",
		Short: "Print the step trace of one algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			input, err := in.build(cmd, alg.Category, opts.cfg)
			if err != nil {
				return err
			}
			tr, err := catalog.Generate(cmd.Context(), alg.Key, input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case jsonOut:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(tr)
			case legacyJSON:
				return json.NewEncoder(out).Encode(step.ToLegacyTrace(tr))
			}

			rows := make([][]string, 0, tr.Len())
			for i, s := range tr {
				rows = append(rows, []string{strconv.Itoa(i), string(s.Action), fmt.Sprint(s.Elements), s.Message})
			}
			fmt.Fprintln(out, ui.Table([]string{"#", "Action", "Elements", "Message"}, rows))
			fmt.Fprint(out, ui.KeyValues("  ",
				ui.KV("Algorithm", ui.Bold(alg.Name)),
				ui.KV("Complexity", alg.TimeComplexity),
				ui.KV("Steps", strconv.Itoa(tr.Len())),
			))
			for _, s := range tr {
				if s.Action == step.ActionWarning {
					fmt.Fprintln(out, ui.WarnMsg("%s", s.Message))
				}
			}
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the trace as JSON")
	cmd.Flags().BoolVar(&legacyJSON, "legacy", false, "Print the trace as JSON [elements, message, action, params] tuples")
	cmd.MarkFlagsMutuallyExclusive("json", "legacy")
	return cmd
}
