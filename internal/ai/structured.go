package ai

import "context"

// StructuredProvider is an optional interface. Providers that support
// schema-constrained output implement it; the returned string is the raw
// JSON text, left to the caller to decode and validate.
type StructuredProvider interface {
	GenerateStructured(ctx context.Context, prompt string, schema map[string]any) (string, error)
}
