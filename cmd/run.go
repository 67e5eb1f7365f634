package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/multiquiz/internal/app"
	"github.com/abhisek/multiquiz/internal/logging"
	"github.com/abhisek/multiquiz/internal/question"
)

// runApp resolves config, opens the log, loads the question set and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.New(logging.Options{
		File:       cfg.Log.File,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	set, err := question.Load(ctx, cfg.Questions)
	if err != nil {
		logger.Error("question set failed to load", zap.String("path", cfg.Questions), zap.Error(err))
		return err
	}
	logger.Info("question set loaded",
		zap.String("path", set.Source),
		zap.Int("questions", set.Len()),
		zap.Bool("shuffle", cfg.Shuffle))

	return app.Run(ctx, app.Options{
		Set:     set,
		Shuffle: cfg.Shuffle,
		Logger:  logger,
	})
}
