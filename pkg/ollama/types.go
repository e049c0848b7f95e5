package ollama

import (
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the local Ollama runtime endpoint.
	DefaultBaseURL = "http://localhost:11434"

	// DefaultTimeout is generous because local generation is CPU-bound
	// on most deployments.
	DefaultTimeout = 120 * time.Second
)

// Config holds Ollama client configuration. ModelPath is the model
// name/path known to the runtime (e.g. "llama3:8b").
type Config struct {
	ModelPath  string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.ModelPath == "" {
		return fmt.Errorf("ollama: ModelPath is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type ollamaImpl struct {
	baseURL    string
	modelPath  string
	httpClient *http.Client
}

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a chat request.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
	TopP        float64
	TopK        int
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

// Response represents a chat response.
type Response struct {
	Content string
	Usage   *Usage
}

// Wire types for the /api/chat endpoint.
type wireOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
	TopP        float64 `json:"top_p,omitempty"`
	TopK        int     `json:"top_k,omitempty"`
}

type wireRequest struct {
	Model    string      `json:"model"`
	Messages []Message   `json:"messages"`
	Stream   bool        `json:"stream"`
	Options  wireOptions `json:"options,omitempty"`
}

type wireResponse struct {
	Message         Message `json:"message"`
	Done            bool    `json:"done"`
	PromptEvalCount int     `json:"prompt_eval_count"`
	EvalCount       int     `json:"eval_count"`
}
