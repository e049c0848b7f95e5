package agent

import (
	"context"
	"strings"

	"support-triage-bot/internal/categorizer"
	"support-triage-bot/pkg/llm"
)

// Process handles one direct-conversation turn. The (user, assistant) pair
// is committed to history only after a successful model call; a failed call
// returns the apology message and leaves history untouched.
func (a *Agent) Process(ctx context.Context, in ProcessInput) (string, error) {
	if err := a.ensureProvider(ctx, in.Provider); err != nil {
		return "", err
	}

	model, history := a.snapshot(in.UserID)
	messages := trimHistory(append(history, llm.Message{Role: llm.RoleUser, Content: in.Message}))

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := model.Generate(callCtx, messages, in.Options)
	if err != nil {
		a.l.Errorf(ctx, "%s: generation failed for user %s: %v", LogPrefixProcess, in.UserID, err)
		return ApologyMessage, nil
	}

	a.commitTurn(in.UserID, in.Message, resp.Content)
	return resp.Content, nil
}

// ProcessThread handles one thread turn. The request is categorized first;
// technical issues and engineering queries get a model-backed analysis, all
// other categories get the templated routing response without a model call.
func (a *Agent) ProcessThread(ctx context.Context, in ThreadInput) (string, error) {
	if err := a.ensureProvider(ctx, in.Provider); err != nil {
		return "", err
	}

	model, _ := a.snapshot(in.UserID)

	catCtx, cancel := context.WithTimeout(ctx, a.timeout)
	category := a.cat.Categorize(catCtx, in.Message, in.ThreadContext, model)
	cancel()
	a.l.Infof(ctx, "%s: request categorized as %s", LogPrefixProcessThread, category)

	switch category {
	case categorizer.CategoryTechnicalIssue, categorizer.CategoryEngineeringQuery:
		return a.processTechnicalThread(ctx, in, model, category)
	default:
		return a.cat.RenderResponse(ctx, category, in.Message), nil
	}
}

func (a *Agent) processTechnicalThread(ctx context.Context, in ThreadInput, model llm.Model, category categorizer.Category) (string, error) {
	systemPrompt := a.prompts.LoadOr(TriagePromptName, FallbackTriagePrompt)
	if category == categorizer.CategoryEngineeringQuery {
		systemPrompt = a.prompts.LoadOr(EngineeringPromptName, FallbackEngineeringPrompt)
	}

	messages := []llm.Message{{Role: llm.RoleSystem, Content: systemPrompt}}
	for _, msg := range in.ThreadContext {
		messages = append(messages, llm.Message{
			Role:    llm.RoleUser,
			Content: msg.Text,
			Metadata: map[string]string{
				"author_id": msg.AuthorID,
				"timestamp": msg.Timestamp,
			},
		})
	}

	// Skip the current message when the thread context already ends with it.
	current := strings.TrimSpace(in.Message)
	n := len(in.ThreadContext)
	if n == 0 || strings.TrimSpace(in.ThreadContext[n-1].Text) != current {
		messages = append(messages, llm.Message{Role: llm.RoleUser, Content: current})
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := model.Generate(callCtx, messages, in.Options)
	if err != nil {
		a.l.Errorf(ctx, "%s: generation failed for user %s: %v", LogPrefixProcessThread, in.UserID, err)
		return ThreadApologyMessage, nil
	}

	a.commitTurn(in.UserID, in.Message, resp.Content)

	footer := "\n\n---\n📂 **Category:** " + categorizer.Humanize(string(category)) +
		"\n🎯 **Action:** " + categorizer.Humanize(categorizer.RoutingFor(category).Action)
	return resp.Content + footer, nil
}

// Clear drops the conversation history for a user.
func (a *Agent) Clear(ctx context.Context, userID string) {
	a.mu.Lock()
	delete(a.histories, userID)
	a.mu.Unlock()
	a.l.Infof(ctx, "%s: cleared conversation history for user %s", LogPrefixClear, userID)
}

// SwitchModel activates a different provider. The previous model stays
// active when construction fails.
func (a *Agent) SwitchModel(ctx context.Context, provider string) error {
	model, err := a.registry.Create(provider, a.configs[provider])
	if err != nil {
		a.l.Errorf(ctx, "%s: failed to switch to %s: %v", LogPrefixSwitchModel, provider, err)
		return err
	}

	a.mu.Lock()
	a.current = model
	a.mu.Unlock()

	a.l.Infof(ctx, "%s: switched to %s model: %s", LogPrefixSwitchModel, provider, model.ModelName())
	return nil
}

// CurrentModel returns the active model, for callers that drive the
// categorizer directly.
func (a *Agent) CurrentModel() llm.Model {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// CurrentModelInfo identifies the active model.
func (a *Agent) CurrentModelInfo() ModelInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return ModelInfo{Provider: "none", Model: "none"}
	}
	return ModelInfo{Provider: a.current.Provider(), Model: a.current.ModelName()}
}

// AvailableProviders lists the providers the registry can construct.
func (a *Agent) AvailableProviders() []string {
	return a.registry.AvailableProviders()
}

// HealthCheck probes the active model. Never returns an error.
func (a *Agent) HealthCheck(ctx context.Context) HealthStatus {
	a.mu.Lock()
	model := a.current
	a.mu.Unlock()

	if model == nil {
		return HealthStatus{Status: StatusError, Message: "No model loaded"}
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	status := StatusUnhealthy
	if model.HealthCheck(callCtx) {
		status = StatusHealthy
	}
	return HealthStatus{
		Status:   status,
		Provider: model.Provider(),
		Model:    model.ModelName(),
	}
}

// ensureProvider switches the active model when a different provider is
// requested for this turn.
func (a *Agent) ensureProvider(ctx context.Context, provider string) error {
	if provider == "" {
		return nil
	}

	a.mu.Lock()
	same := a.current != nil && a.current.Provider() == provider
	a.mu.Unlock()
	if same {
		return nil
	}
	return a.SwitchModel(ctx, provider)
}

// snapshot returns the active model and a copy of the user's history.
func (a *Agent) snapshot(userID string) (llm.Model, []llm.Message) {
	a.mu.Lock()
	defer a.mu.Unlock()

	history := make([]llm.Message, len(a.histories[userID]))
	copy(history, a.histories[userID])
	return a.current, history
}

// commitTurn appends a completed (user, assistant) pair and trims the
// history to the cap.
func (a *Agent) commitTurn(userID, userText, assistantText string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	history := append(a.histories[userID],
		llm.Message{Role: llm.RoleUser, Content: userText},
		llm.Message{Role: llm.RoleAssistant, Content: assistantText},
	)
	a.histories[userID] = trimHistory(history)
}

func trimHistory(history []llm.Message) []llm.Message {
	if len(history) > HistoryLimit {
		return history[len(history)-HistoryLimit:]
	}
	return history
}
