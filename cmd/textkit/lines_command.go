package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLinesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lines <text-or-file>",
		Short: "Stream normalized lines, one per input line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ctx.resolveSource(args[0])
			stream, err := source.Lines()
			if err != nil {
				return err
			}
			defer stream.Close()

			out := cmd.OutOrStdout()
			count := 0
			for stream.Next() {
				fmt.Fprintln(out, stream.Line())
				count++
			}
			if err := stream.Err(); err != nil {
				return err
			}

			ctx.ensureLogger().Debug("stream exhausted", "lines", count)
			return nil
		},
	}
}
