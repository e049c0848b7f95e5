package llm

import (
	"context"
	"strings"

	"support-triage-bot/pkg/anthropic"
	"support-triage-bot/pkg/gemini"
	"support-triage-bot/pkg/ollama"
	"support-triage-bot/pkg/openai"
)

// healthProbe is the minimal round-trip request body used by HealthCheck.
const healthProbe = "ping"

// OpenAIModel adapts pkg/openai to the Model interface.
type OpenAIModel struct {
	client openai.IOpenAI
}

// NewOpenAIModel is the registry factory for the OpenAI backend.
func NewOpenAIModel(cfg Config) (Model, error) {
	client, err := openai.New(openai.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return &OpenAIModel{client: client}, nil
}

// Generate implements Model.
func (m *OpenAIModel) Generate(ctx context.Context, messages []Message, opts *Options) (*Response, error) {
	opts = opts.WithDefaults()

	req := &openai.Request{
		Messages:         make([]openai.Message, len(messages)),
		Temperature:      opts.Temperature,
		MaxTokens:        opts.MaxTokens,
		TopP:             opts.TopP,
		FrequencyPenalty: opts.FrequencyPenalty,
		PresencePenalty:  opts.PresencePenalty,
	}
	for i, msg := range messages {
		req.Messages[i] = openai.Message{Role: msg.Role, Content: msg.Content}
	}

	resp, err := m.client.GenerateContent(ctx, req)
	if err != nil {
		return nil, &ProviderError{Provider: "openai", Err: err}
	}
	if strings.TrimSpace(resp.Content) == "" {
		return nil, &EmptyResponseError{Provider: "openai"}
	}

	return &Response{
		Content: resp.Content,
		Model:   modelOrDefault(resp.Model, m.client.Model()),
		Usage: &Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
		Metadata: map[string]any{"finish_reason": resp.FinishReason},
	}, nil
}

// HealthCheck implements Model.
func (m *OpenAIModel) HealthCheck(ctx context.Context) bool {
	return healthCheck(ctx, m)
}

// ModelName implements Model.
func (m *OpenAIModel) ModelName() string { return m.client.Model() }

// Provider implements Model.
func (m *OpenAIModel) Provider() string { return "openai" }

// AnthropicModel adapts pkg/anthropic to the Model interface.
type AnthropicModel struct {
	client anthropic.IAnthropic
}

// NewAnthropicModel is the registry factory for the Anthropic backend.
func NewAnthropicModel(cfg Config) (Model, error) {
	client, err := anthropic.New(anthropic.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return &AnthropicModel{client: client}, nil
}

// Generate implements Model. System messages are lifted into the messages
// API's dedicated system slot.
func (m *AnthropicModel) Generate(ctx context.Context, messages []Message, opts *Options) (*Response, error) {
	opts = opts.WithDefaults()

	req := &anthropic.Request{
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		TopP:        opts.TopP,
		TopK:        opts.TopK,
	}

	var system []string
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			system = append(system, msg.Content)
			continue
		}
		req.Messages = append(req.Messages, anthropic.Message{Role: msg.Role, Content: msg.Content})
	}
	req.System = strings.Join(system, "\n\n")

	resp, err := m.client.GenerateContent(ctx, req)
	if err != nil {
		return nil, &ProviderError{Provider: "anthropic", Err: err}
	}
	if strings.TrimSpace(resp.Content) == "" {
		return nil, &EmptyResponseError{Provider: "anthropic"}
	}

	return &Response{
		Content: resp.Content,
		Model:   modelOrDefault(resp.Model, m.client.Model()),
		Usage: &Usage{
			PromptTokens:     resp.Usage.InputTokens,
			CompletionTokens: resp.Usage.OutputTokens,
			TotalTokens:      resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
		Metadata: map[string]any{"stop_reason": resp.StopReason},
	}, nil
}

// HealthCheck implements Model.
func (m *AnthropicModel) HealthCheck(ctx context.Context) bool {
	return healthCheck(ctx, m)
}

// ModelName implements Model.
func (m *AnthropicModel) ModelName() string { return m.client.Model() }

// Provider implements Model.
func (m *AnthropicModel) Provider() string { return "anthropic" }

// GeminiModel adapts pkg/gemini to the Model interface.
type GeminiModel struct {
	client gemini.IGemini
}

// NewGeminiModel is the registry factory for the Gemini backend.
func NewGeminiModel(cfg Config) (Model, error) {
	client, err := gemini.New(gemini.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiModel{client: client}, nil
}

// Generate implements Model. The conversation is flattened into a single
// prompt, with role labels, ending on an "Assistant:" turn marker.
func (m *GeminiModel) Generate(ctx context.Context, messages []Message, opts *Options) (*Response, error) {
	opts = opts.WithDefaults()

	var prompt strings.Builder
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			prompt.WriteString("System: " + msg.Content + "\n")
		case RoleAssistant:
			prompt.WriteString("Assistant: " + msg.Content + "\n")
		default:
			prompt.WriteString("User: " + msg.Content + "\n")
		}
	}
	prompt.WriteString("Assistant:")

	resp, err := m.client.GenerateContent(ctx, &gemini.Request{
		Prompt:      prompt.String(),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		TopP:        opts.TopP,
		TopK:        opts.TopK,
	})
	if err != nil {
		return nil, &ProviderError{Provider: "gemini", Err: err}
	}
	if strings.TrimSpace(resp.Content) == "" {
		return nil, &EmptyResponseError{Provider: "gemini"}
	}

	return &Response{
		Content: strings.TrimSpace(resp.Content),
		Model:   m.client.Model(),
		Usage: &Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// HealthCheck implements Model.
func (m *GeminiModel) HealthCheck(ctx context.Context) bool {
	return healthCheck(ctx, m)
}

// ModelName implements Model.
func (m *GeminiModel) ModelName() string { return m.client.Model() }

// Provider implements Model.
func (m *GeminiModel) Provider() string { return "gemini" }

// OllamaModel adapts pkg/ollama (self-hosted runtime) to the Model interface.
type OllamaModel struct {
	client ollama.IOllama
}

// NewOllamaModel is the registry factory for the local backend.
func NewOllamaModel(cfg Config) (Model, error) {
	client, err := ollama.New(ollama.Config{
		ModelPath: cfg.ModelPath,
		BaseURL:   cfg.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return &OllamaModel{client: client}, nil
}

// Generate implements Model.
func (m *OllamaModel) Generate(ctx context.Context, messages []Message, opts *Options) (*Response, error) {
	opts = opts.WithDefaults()

	req := &ollama.Request{
		Messages:    make([]ollama.Message, len(messages)),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		TopP:        opts.TopP,
		TopK:        opts.TopK,
	}
	for i, msg := range messages {
		req.Messages[i] = ollama.Message{Role: msg.Role, Content: msg.Content}
	}

	resp, err := m.client.GenerateContent(ctx, req)
	if err != nil {
		return nil, &ProviderError{Provider: "ollama", Err: err}
	}
	if strings.TrimSpace(resp.Content) == "" {
		return nil, &EmptyResponseError{Provider: "ollama"}
	}

	return &Response{
		Content: strings.TrimSpace(resp.Content),
		Model:   m.client.Model(),
		Usage: &Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.PromptTokens + resp.Usage.CompletionTokens,
		},
	}, nil
}

// HealthCheck implements Model.
func (m *OllamaModel) HealthCheck(ctx context.Context) bool {
	return healthCheck(ctx, m)
}

// ModelName implements Model.
func (m *OllamaModel) ModelName() string { return m.client.Model() }

// Provider implements Model.
func (m *OllamaModel) Provider() string { return "ollama" }

// healthCheck issues a 1-token probe through the adapter's own Generate
// path. Any failure, including an empty reply, reports unhealthy.
func healthCheck(ctx context.Context, m Model) bool {
	_, err := m.Generate(ctx, []Message{{Role: RoleUser, Content: healthProbe}}, &Options{
		Temperature: DefaultTemperature,
		MaxTokens:   1,
	})
	return err == nil
}

func modelOrDefault(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}
