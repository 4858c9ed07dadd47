package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newUniqueCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unique <text-or-file>",
		Short: "List the distinct words of a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ctx.resolveSource(args[0])
			unique, err := source.UniqueWords()
			if err != nil {
				return err
			}

			words := make([]string, 0, len(unique))
			for word := range unique {
				words = append(words, word)
			}
			sort.Strings(words)

			ctx.ensureLogger().Debug("vocabulary extracted", "size", len(words))

			if ctx.outputFormat() == "json" {
				return writeJSON(cmd, words)
			}

			out := cmd.OutOrStdout()
			for _, word := range words {
				fmt.Fprintln(out, word)
			}
			return nil
		},
	}
}
