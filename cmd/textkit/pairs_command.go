package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type pairEntry struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

func newPairsCommand(ctx *commandContext) *cobra.Command {
	var window int

	cmd := &cobra.Command{
		Use:   "pairs <text-or-file>",
		Short: "Emit co-occurring word pairs within a token window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("window") {
				window = cfg.Analysis.Window
			}

			source := ctx.resolveSource(args[0])
			pairs, err := source.CoOccurrencePairs(window)
			if err != nil {
				return err
			}

			ctx.ensureLogger().Debug("co-occurrence computed", "window", window, "pairs", len(pairs))

			if ctx.outputFormat() == "json" {
				entries := make([]pairEntry, 0, len(pairs))
				for _, p := range pairs {
					entries = append(entries, pairEntry{Left: p.Left, Right: p.Right})
				}
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(pairs))
			for _, p := range pairs {
				rows = append(rows, []string{p.Left, p.Right})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRows(ctx,
				[]string{"LEFT", "RIGHT"}, rows,
				[]columnAlignment{alignLeft, alignLeft}))
			return nil
		},
	}

	cmd.Flags().IntVar(&window, "window", 0, "Token window for pairing (defaults to the configured value)")
	return cmd
}
