package ollama

import "context"

// IOllama defines the interface for the Ollama runtime client.
// Implementations are safe for concurrent use.
type IOllama interface {
	// GenerateContent sends a chat request to the Ollama runtime.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model path/name being used.
	Model() string
}

// New creates a new Ollama client with the given configuration.
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ollamaImpl{
		baseURL:    cfg.BaseURL,
		modelPath:  cfg.ModelPath,
		httpClient: cfg.HTTPClient,
	}, nil
}
