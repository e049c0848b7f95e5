package agent

import (
	"support-triage-bot/internal/categorizer"
	"support-triage-bot/pkg/llm"
)

// ProcessInput carries one direct-conversation turn.
type ProcessInput struct {
	UserID   string
	Message  string
	Provider string // optional, switches the active model when set
	Options  *llm.Options
}

// ThreadInput carries one thread turn with its surrounding context.
type ThreadInput struct {
	ProcessInput
	ThreadContext []categorizer.ThreadMessage
}

// ModelInfo identifies the active model.
type ModelInfo struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// HealthStatus is the result of a health check against the active model.
type HealthStatus struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}
