package smile

import (
	"errors"
	"fmt"
)

var ErrNotImagePayload = errors.New("payload is not a data:image/ uri")

// ValidationError means the payload was rejected before any model call.
type ValidationError struct {
	Reason string
	Cause  error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid smile request: %s: %v", e.Reason, e.Cause)
	}
	return "invalid smile request: " + e.Reason
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// InvocationError means the model call failed or its reply did not match
// the output schema.
type InvocationError struct {
	Stage string
	Cause error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("smile analysis %s: %v", e.Stage, e.Cause)
}

func (e *InvocationError) Unwrap() error { return e.Cause }
