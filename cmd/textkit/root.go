package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var jsonFlag bool
	var fileFlag bool
	var textFlag bool

	ctx := newCommandContext(&configFlag, &logLevelFlag, &jsonFlag, &fileFlag, &textFlag)

	rootCmd := &cobra.Command{
		Use:           "textkit",
		Short:         "Corpus text analysis: word frequency, vocabulary, co-occurrence, line streaming",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Emit results as JSON")
	rootCmd.PersistentFlags().BoolVar(&fileFlag, "file", false, "Treat the input argument as a file path")
	rootCmd.PersistentFlags().BoolVar(&textFlag, "text", false, "Treat the input argument as literal text")
	rootCmd.MarkFlagsMutuallyExclusive("file", "text")

	rootCmd.AddCommand(newFreqCommand(ctx))
	rootCmd.AddCommand(newUniqueCommand(ctx))
	rootCmd.AddCommand(newPairsCommand(ctx))
	rootCmd.AddCommand(newLinesCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
