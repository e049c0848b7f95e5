package agent

import "time"

// Log prefixes
const (
	LogPrefixProcess       = "internal.agent.Process"
	LogPrefixProcessThread = "internal.agent.ProcessThread"
	LogPrefixSwitchModel   = "internal.agent.SwitchModel"
	LogPrefixClear         = "internal.agent.Clear"
	LogPrefixHealthCheck   = "internal.agent.HealthCheck"
)

// HistoryLimit caps the per-user conversation history, counting both user
// and assistant messages.
const HistoryLimit = 10

// DefaultTimeout bounds a single model call.
const DefaultTimeout = 60 * time.Second

// ApologyMessage is returned when a model call fails in a direct
// conversation. Thread processing has its own string so a user can tell
// which path failed.
const ApologyMessage = "Sorry, I encountered an error while processing your message. Please try again."

// ThreadApologyMessage is returned when a model call fails while
// processing a thread.
const ThreadApologyMessage = "Sorry, I encountered an error while processing this thread. Please try again."

// Asset names resolved through the prompt loader
const (
	TriagePromptName      = "software_engineer_triage"
	EngineeringPromptName = "engineering_support"
)

// Fallback system prompts used when the prompt assets are missing.
const (
	FallbackTriagePrompt = `You are a Senior Software Engineer acting as a technical triage specialist in a support thread.
Analyze technical issues, verify debugging information completeness, and provide technical insights.`

	FallbackEngineeringPrompt = `You are a Senior Software Engineer providing technical support to internal engineering teams.
Provide detailed technical insights, reference documentation, and offer collaborative solutions.`
)

// Health statuses
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusError     = "error"
)
