package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecmmap"
)

type cli struct {
	verbose     bool
	minCapacity uint64
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "vecmmap [command] (flags)",
		Short:         "vecmmap flag store and chunk introspection tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging to stderr")

	root.AddCommand(c.flagsCmd(), c.chunksCmd())
	return root
}

func (c *cli) options() []vecmmap.Option {
	opts := []vecmmap.Option{vecmmap.WithMinFlagCapacity(c.minCapacity)}
	if c.verbose {
		opts = append(opts, vecmmap.WithLogger(vecmmap.NewTextLogger(slog.LevelDebug)))
	}
	return opts
}
