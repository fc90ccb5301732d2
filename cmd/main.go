package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smilesnaps/smile-rater/internal/ai"
	"github.com/smilesnaps/smile-rater/internal/config"
	"github.com/smilesnaps/smile-rater/internal/logging"
	"github.com/smilesnaps/smile-rater/internal/smile"
)

func main() {
	root := &cobra.Command{
		Use:           "smile-rater",
		Short:         "Rates selfies with a hosted vision model",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newRateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// bootstrap loads config and builds the logger plus the rating service
// shared by every command.
func bootstrap(ctx context.Context) (*config.Config, *zap.Logger, smile.Service, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, nil, err
	}

	vision, err := ai.New(ctx, cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, fmt.Errorf("ai client: %w", err)
	}

	smileLog := log.Named("smile")
	svc := smile.NewService(smile.NewInvoker(vision, smileLog), smileLog)

	return cfg, log, svc, nil
}
