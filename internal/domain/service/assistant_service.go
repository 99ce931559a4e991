package service

import "context"

// AssistantService is a single request/response text endpoint backed by a
// hosted text-generation model. Callers build the domain-specific prompt and
// substitute a fallback string on any error.
type AssistantService interface {
	Ask(ctx context.Context, prompt string) (string, error)
}
