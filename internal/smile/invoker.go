package smile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/smilesnaps/smile-rater/internal/ai"
)

type invoker struct {
	vision ai.Vision
	log    *zap.Logger
}

func NewInvoker(vision ai.Vision, log *zap.Logger) Invoker {
	return &invoker{vision: vision, log: log}
}

type modelReply struct {
	HappinessScore *float64 `json:"happinessScore"`
	FunnySmileName *string  `json:"funnySmileName"`
}

func (i *invoker) Analyze(ctx context.Context, req Request) (Analysis, error) {
	img, err := ai.ParseDataURI(req.PhotoDataURI)
	if err != nil {
		return Analysis{}, &InvocationError{Stage: "attach image", Cause: err}
	}

	raw, err := i.vision.Generate(ctx, AnalyzePrompt, img, OutputSchema)
	if err != nil {
		return Analysis{}, &InvocationError{Stage: "model call", Cause: err}
	}

	a, err := parseReply(raw)
	if err != nil {
		i.log.Debug("reply rejected", zap.String("raw", short(raw)), zap.Error(err))
		return Analysis{}, &InvocationError{Stage: "schema", Cause: err}
	}
	return a, nil
}

func parseReply(raw string) (Analysis, error) {
	var r modelReply
	if err := json.Unmarshal([]byte(stripFence(raw)), &r); err != nil {
		return Analysis{}, fmt.Errorf("decode reply: %w", err)
	}
	if r.HappinessScore == nil {
		return Analysis{}, errors.New("happinessScore missing")
	}
	if r.FunnySmileName == nil || strings.TrimSpace(*r.FunnySmileName) == "" {
		return Analysis{}, errors.New("funnySmileName missing or empty")
	}
	return Analysis{
		HappinessScore: *r.HappinessScore,
		FunnySmileName: *r.FunnySmileName,
	}, nil
}

// Some models wrap JSON in ```json fences even when told not to.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func short(s string) string {
	if len(s) > 180 {
		return s[:180] + "..."
	}
	return s
}
