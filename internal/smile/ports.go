package smile

import "context"

// Request carries one selfie as a data URI.
type Request struct {
	PhotoDataURI string `json:"photoDataUri"`
}

// Result is what callers always get back. HappinessScore is in [0,5].
type Result struct {
	HappinessScore int    `json:"happinessScore"`
	FunnySmileName string `json:"funnySmileName"`
}

// Analysis is the model's answer before any range repair.
type Analysis struct {
	HappinessScore float64
	FunnySmileName string
}

// Invoker talks to the hosted model. One attempt, no retries.
type Invoker interface {
	Analyze(ctx context.Context, req Request) (Analysis, error)
}

// Service is the rating entry point. It never fails.
type Service interface {
	RateSmile(ctx context.Context, photoDataURI string) Result
}
