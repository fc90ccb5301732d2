package smile

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"
)

const imagePrefix = "data:image/"

type service struct {
	invoker Invoker
	log     *zap.Logger
	intN    func(n int) int
}

type Option func(*service)

// WithRandom replaces the fallback score source. intN must return a value
// in [0,n).
func WithRandom(intN func(n int) int) Option {
	return func(s *service) { s.intN = intN }
}

func NewService(invoker Invoker, log *zap.Logger, opts ...Option) Service {
	s := &service{
		invoker: invoker,
		log:     log,
		intN:    rand.IntN,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *service) RateSmile(ctx context.Context, photoDataURI string) Result {
	res, err := s.rate(ctx, photoDataURI)
	if err == nil {
		return res
	}

	fb := s.fallback()
	s.log.Warn("smile analysis failed, using fallback",
		zap.Error(err),
		zap.Bool("validation", isValidation(err)),
		zap.Int("fallback_score", fb.HappinessScore),
	)
	return fb
}

func (s *service) rate(ctx context.Context, photoDataURI string) (Result, error) {
	if !strings.HasPrefix(photoDataURI, imagePrefix) {
		return Result{}, &ValidationError{Reason: "media type", Cause: ErrNotImagePayload}
	}

	a, err := s.invoker.Analyze(ctx, Request{PhotoDataURI: photoDataURI})
	if err != nil {
		return Result{}, err
	}
	if math.IsNaN(a.HappinessScore) {
		return Result{}, &InvocationError{Stage: "schema", Cause: errors.New("happinessScore is NaN")}
	}

	return Result{
		HappinessScore: ClampScore(a.HappinessScore),
		FunnySmileName: a.FunnySmileName,
	}, nil
}

func (s *service) fallback() Result {
	score := s.intN(MaxScore-MinScore+1) + MinScore
	return Result{HappinessScore: score, FunnySmileName: FunnyName(score)}
}

// ClampScore rounds half away from zero, then clamps into [MinScore,MaxScore].
func ClampScore(v float64) int {
	r := math.Round(v)
	if r < MinScore {
		return MinScore
	}
	if r > MaxScore {
		return MaxScore
	}
	return int(r)
}

func isValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
