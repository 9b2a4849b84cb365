package main

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"simcheck/internal/batch"
)

func runBatch(ctx *commandContext, cmd *cobra.Command, inputPath, outputPath string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.newLogger()
	if err != nil {
		return err
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	store := ctx.openStore(logger)
	if store != nil {
		defer store.Close()
	}

	runner := batch.NewRunner(cfg, logger, store)
	_, err = runner.Run(cmd.Context(), inputPath, outputPath)
	return err
}
