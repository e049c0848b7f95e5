// Package agent orchestrates conversations: it holds per-user history,
// drives the active model, and dispatches categorized thread requests.
package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"support-triage-bot/internal/categorizer"
	"support-triage-bot/pkg/llm"
	"support-triage-bot/pkg/log"
	"support-triage-bot/pkg/prompt"
)

// Agent owns the active model and all per-user conversation state.
type Agent struct {
	registry *llm.Registry
	configs  map[string]llm.Config
	cat      categorizer.Categorizer
	prompts  *prompt.Loader
	l        log.Logger
	timeout  time.Duration

	mu        sync.Mutex
	current   llm.Model
	histories map[string][]llm.Message
}

// Config wires an Agent.
type Config struct {
	Registry        *llm.Registry
	Providers       map[string]llm.Config
	DefaultProvider string
	Categorizer     categorizer.Categorizer
	Prompts         *prompt.Loader
	Logger          log.Logger
	Timeout         time.Duration
}

// New creates an Agent and activates the default provider. Fails when the
// default provider cannot be constructed.
func New(cfg Config) (*Agent, error) {
	if cfg.Registry == nil {
		return nil, fmt.Errorf("agent: Registry is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	a := &Agent{
		registry:  cfg.Registry,
		configs:   cfg.Providers,
		cat:       cfg.Categorizer,
		prompts:   cfg.Prompts,
		l:         cfg.Logger,
		timeout:   cfg.Timeout,
		histories: make(map[string][]llm.Message),
	}

	if err := a.SwitchModel(context.Background(), cfg.DefaultProvider); err != nil {
		return nil, err
	}
	return a, nil
}
