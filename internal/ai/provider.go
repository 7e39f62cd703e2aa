package ai

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by provider factories whose credentials are
// missing. Callers may degrade to a canned reply instead of failing.
var ErrNotConfigured = errors.New("ai: provider not configured")

// Message roles follow the OpenAI-style vocabulary ("system", "user",
// "assistant"); providers translate to their own vocabulary as needed.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}
