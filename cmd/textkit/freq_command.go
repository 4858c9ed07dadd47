package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"textkit"
)

type freqEntry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func newFreqCommand(ctx *commandContext) *cobra.Command {
	var minLength int
	var top int

	cmd := &cobra.Command{
		Use:   "freq <text-or-file>",
		Short: "Count word frequencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("min-length") {
				minLength = cfg.Analysis.MinTokenLength
			}

			var filter textkit.Filter
			if minLength > 0 {
				filter = func(token string) bool { return len(token) >= minLength }
			}

			source := ctx.resolveSource(args[0])
			freq, err := source.WordFrequency(filter)
			if err != nil {
				return err
			}

			entries := sortedFreqEntries(freq)
			if top > 0 && top < len(entries) {
				entries = entries[:top]
			}

			ctx.ensureLogger().Debug("frequency computed",
				"tokens", totalCount(freq),
				"vocabulary", len(freq),
				"rendered", len(entries))

			if ctx.outputFormat() == "json" {
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Word, strconv.Itoa(e.Count)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRows(ctx,
				[]string{"WORD", "COUNT"}, rows,
				[]columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().IntVar(&minLength, "min-length", 0, "Count only tokens of at least this length")
	cmd.Flags().IntVar(&top, "top", 0, "Show only the N most frequent words")
	return cmd
}

// sortedFreqEntries orders by count descending, then word ascending so equal
// counts render deterministically.
func sortedFreqEntries(freq map[string]int) []freqEntry {
	entries := make([]freqEntry, 0, len(freq))
	for word, count := range freq {
		entries = append(entries, freqEntry{Word: word, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}

func totalCount(freq map[string]int) int {
	total := 0
	for _, n := range freq {
		total += n
	}
	return total
}
