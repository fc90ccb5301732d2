package smile

import (
	"context"

	"github.com/smilesnaps/smile-rater/internal/ai"
)

type fakeVision struct {
	reply  string
	err    error
	calls  int
	prompt string
	img    ai.Image
	schema ai.Schema
}

func (f *fakeVision) Generate(_ context.Context, prompt string, img ai.Image, schema ai.Schema) (string, error) {
	f.calls++
	f.prompt, f.img, f.schema = prompt, img, schema
	return f.reply, f.err
}

type fakeInvoker struct {
	analysis Analysis
	err      error
	calls    int
}

func (f *fakeInvoker) Analyze(context.Context, Request) (Analysis, error) {
	f.calls++
	return f.analysis, f.err
}

const validPhoto = "data:image/png;base64,aGVsbG8="
