package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"simcheck/internal/scorecache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Score cache utilities",
	}

	cacheCmd.AddCommand(newCacheStatsCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func (c *commandContext) withStore(fn func(*scorecache.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := scorecache.Open(cfg)
	if err != nil {
		return fmt.Errorf("open score cache: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func newCacheStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show score cache statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *scorecache.Store) error {
				stats, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}
				rows := [][]string{
					{"Entries", fmt.Sprintf("%d", stats.Entries)},
					{"Size", humanize.Bytes(uint64(stats.SizeBytes))},
					{"Path", stats.Path},
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Stat", "Value"},
					rows,
					[]columnAlignment{alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *scorecache.Store) error {
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Score cache cleared.")
				return nil
			})
		},
	}
}
