package smile

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func fixedRandom(v int) Option {
	return WithRandom(func(int) int { return v })
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{2.4, 2},
		{2.5, 3},
		{4.5, 5},
		{5, 5},
		{5.6, 5},
		{12, 5},
		{-0.4, 0},
		{-1, 0},
		{math.Inf(1), 5},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampScore(tt.in), "ClampScore(%v)", tt.in)
	}
}

func TestRateSmileSuccessClamps(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{5.6, 5},
		{-1, 0},
		{3.2, 3},
		{0.5, 1},
	}
	for _, tt := range tests {
		inv := &fakeInvoker{analysis: Analysis{HappinessScore: tt.score, FunnySmileName: "Model Name"}}
		svc := NewService(inv, zap.NewNop(), fixedRandom(0))

		res := svc.RateSmile(context.Background(), validPhoto)

		assert.Equal(t, Result{HappinessScore: tt.want, FunnySmileName: "Model Name"}, res, "score %v", tt.score)
		assert.Equal(t, 1, inv.calls)
	}
}

func TestRateSmileSuccessIsDeterministic(t *testing.T) {
	inv := &fakeInvoker{analysis: Analysis{HappinessScore: 3.7, FunnySmileName: "Grin"}}
	svc := NewService(inv, zap.NewNop())

	first := svc.RateSmile(context.Background(), validPhoto)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, svc.RateSmile(context.Background(), validPhoto))
	}
}

func TestRateSmileValidationFallback(t *testing.T) {
	for _, payload := range []string{"not-an-image", "", "data:text/plain;base64,aGk=", "DATA:IMAGE/png;base64,aGk="} {
		for score := MinScore; score <= MaxScore; score++ {
			inv := &fakeInvoker{}
			svc := NewService(inv, zap.NewNop(), fixedRandom(score))

			res := svc.RateSmile(context.Background(), payload)

			assert.Equal(t, Result{HappinessScore: score, FunnySmileName: FunnyName(score)}, res)
			assert.Zero(t, inv.calls, "invoker must not run for %q", payload)
		}
	}
}

func TestRateSmileInvocationFallback(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	inv := &fakeInvoker{err: &InvocationError{Stage: "model call", Cause: context.DeadlineExceeded}}
	svc := NewService(inv, zap.New(core), fixedRandom(2))

	res := svc.RateSmile(context.Background(), validPhoto)

	assert.Equal(t, Result{HappinessScore: 2, FunnySmileName: "Polite Grimace"}, res)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "smile analysis failed, using fallback", entry.Message)
	assert.Equal(t, false, entry.ContextMap()["validation"])
	assert.EqualValues(t, 2, entry.ContextMap()["fallback_score"])
}

func TestRateSmileNaNFallsBack(t *testing.T) {
	inv := &fakeInvoker{analysis: Analysis{HappinessScore: math.NaN(), FunnySmileName: "??"}}
	svc := NewService(inv, zap.NewNop(), fixedRandom(4))

	res := svc.RateSmile(context.Background(), validPhoto)
	assert.Equal(t, Result{HappinessScore: 4, FunnySmileName: "Beaming with Joy"}, res)
}

func TestRateSmileDefaultRandomStaysInRange(t *testing.T) {
	svc := NewService(&fakeInvoker{err: errors.New("boom")}, zap.NewNop())

	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		res := svc.RateSmile(context.Background(), validPhoto)
		require.GreaterOrEqual(t, res.HappinessScore, MinScore)
		require.LessOrEqual(t, res.HappinessScore, MaxScore)
		require.Equal(t, FunnyName(res.HappinessScore), res.FunnySmileName)
		seen[res.HappinessScore] = true
	}
	assert.Greater(t, len(seen), 1, "fallback should not be constant")
}

func TestRateSmileConcurrent(t *testing.T) {
	svc := NewService(&fakeInvoker{analysis: Analysis{HappinessScore: 4, FunnySmileName: "Joy"}}, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := svc.RateSmile(context.Background(), "not-an-image")
			assert.Equal(t, FunnyName(res.HappinessScore), res.FunnySmileName)
		}()
	}
	wg.Wait()
}

func TestRateValidationErrorUnwraps(t *testing.T) {
	svc := NewService(&fakeInvoker{}, zap.NewNop()).(*service)

	_, err := svc.rate(context.Background(), "not-an-image")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ErrorIs(t, err, ErrNotImagePayload)
	assert.Contains(t, err.Error(), "media type")
}

func TestRateInvocationErrorUnwraps(t *testing.T) {
	inv := &fakeInvoker{err: &InvocationError{Stage: "model call", Cause: context.DeadlineExceeded}}
	svc := NewService(inv, zap.NewNop()).(*service)

	_, err := svc.rate(context.Background(), validPhoto)

	var ie *InvocationError
	require.ErrorAs(t, err, &ie)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, isValidation(err))
}
