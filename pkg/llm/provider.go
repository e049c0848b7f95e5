package llm

import "context"

// Model is the contract every LLM backend must satisfy. Downstream code
// (categorizer, agent, HTTP layer) depends only on this interface, never
// on a concrete backend.
type Model interface {
	// Generate sends an ordered message sequence and returns the model's
	// reply. It returns a *ProviderError on transport/auth/quota failure
	// and a *EmptyResponseError when the backend returned no usable content.
	Generate(ctx context.Context, messages []Message, opts *Options) (*Response, error)

	// HealthCheck issues a minimal round-trip request (a 1-token
	// completion) and reports false on any failure instead of propagating.
	HealthCheck(ctx context.Context) bool

	// ModelName returns the model identifier (e.g. "gpt-4").
	ModelName() string

	// Provider returns the provider name (e.g. "openai").
	Provider() string
}
