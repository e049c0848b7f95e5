package llm

// Message roles. Every backend understands these three; backends with a
// dedicated system slot extract RoleSystem messages themselves.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation turn. Immutable once created.
type Message struct {
	Role     string
	Content  string
	Metadata map[string]string
}

// Usage tracks token consumption for one generation.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Response is a normalized generation result.
type Response struct {
	Content  string
	Model    string
	Usage    *Usage
	Metadata map[string]any
}

// Default generation parameters, shared by all backends.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1000
)

// Options holds generation parameters. Fields a given backend does not
// support are silently ignored rather than erroring.
type Options struct {
	Temperature      float64
	MaxTokens        int
	TopP             float64
	TopK             int
	FrequencyPenalty float64
	PresencePenalty  float64
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() *Options {
	return &Options{
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// WithDefaults fills in zero-valued Temperature/MaxTokens. A nil receiver
// yields the full defaults, so callers may pass nil options.
func (o *Options) WithDefaults() *Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.Temperature == 0 {
		out.Temperature = DefaultTemperature
	}
	if out.MaxTokens == 0 {
		out.MaxTokens = DefaultMaxTokens
	}
	return &out
}

// Config holds the construction parameters for a backend. Hosted backends
// use APIKey+Model; the local backend uses ModelPath (and BaseURL when the
// runtime is not on localhost).
type Config struct {
	APIKey    string
	Model     string
	BaseURL   string
	ModelPath string
}
