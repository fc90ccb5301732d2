package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/smilesnaps/smile-rater/internal/config"
)

// New returns the Vision backend named by cfg.AIProvider.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (Vision, error) {
	log = log.Named("ai").With(zap.String("provider", cfg.AIProvider))

	switch cfg.AIProvider {
	case config.ProviderOpenAI:
		c, err := NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, log)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.ProviderGemini:
		c, err := NewGeminiClient(ctx, cfg.GeminiKey, cfg.GeminiModel, cfg.GeminiBaseURL, log)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.AIProvider)
	}
}
