package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"simcheck/internal/batch"
	"simcheck/internal/progress"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <file1> <file2>",
		Short: "Score a single file pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			store := ctx.openStore(logger)
			if store != nil {
				defer store.Close()
			}

			runner := batch.NewRunner(cfg, logger, store)
			score, err := runner.Compare(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if progress.IsTerminal(os.Stdout) {
				fmt.Fprintln(out, renderTable(
					[]string{"File 1", "File 2", "Score"},
					[][]string{{args[0], args[1], batch.FormatScore(score)}},
					[]columnAlignment{alignLeft, alignLeft, alignRight},
				))
				return nil
			}
			fmt.Fprintln(out, batch.FormatScore(score))
			return nil
		},
	}
}
