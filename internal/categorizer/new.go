// Package categorizer classifies incoming support requests and produces
// routing decisions and templated acknowledgement responses.
package categorizer

import (
	"context"

	"support-triage-bot/pkg/llm"
	"support-triage-bot/pkg/log"
	"support-triage-bot/pkg/prompt"
)

// Categorizer is the interface for request classification and dispatch.
type Categorizer interface {
	Categorize(ctx context.Context, text string, threadCtx []ThreadMessage, model llm.Model) Category
	RenderResponse(ctx context.Context, category Category, text string) string
}

// RequestCategorizer combines a keyword pattern stage with an optional
// model-backed classification stage.
type RequestCategorizer struct {
	prompts   *prompt.Loader
	templates *prompt.Loader
	l         log.Logger
}

var _ Categorizer = (*RequestCategorizer)(nil)

// New creates a new RequestCategorizer. prompts resolves classification
// prompts, templates resolves per-category response templates.
func New(prompts, templates *prompt.Loader, l log.Logger) *RequestCategorizer {
	return &RequestCategorizer{
		prompts:   prompts,
		templates: templates,
		l:         l,
	}
}
