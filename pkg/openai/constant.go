package openai

import "time"

const (
	// DefaultModel is the default OpenAI chat model.
	DefaultModel = "gpt-4"

	// DefaultBaseURL is the OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 60 * time.Second
)
