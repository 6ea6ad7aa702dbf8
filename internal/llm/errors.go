package llm

import "fmt"

// UpstreamError represents a transport or non-success failure from the
// generation service. It is fatal for a detection request: no assessment is
// produced without a model reply.
type UpstreamError struct {
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation service: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation service: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
