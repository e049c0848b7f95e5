package llm

// DefaultRegistry returns a registry with the built-in backends already
// registered. Callers can register additional factories on top.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register("openai", NewOpenAIModel)
	_ = r.Register("anthropic", NewAnthropicModel)
	_ = r.Register("gemini", NewGeminiModel)
	_ = r.Register("ollama", NewOllamaModel)
	return r
}
