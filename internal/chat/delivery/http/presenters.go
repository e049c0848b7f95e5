package http

import (
	"support-triage-bot/internal/agent"
	"support-triage-bot/internal/categorizer"
	"support-triage-bot/pkg/llm"
)

// --- Request DTOs ---

type chatReq struct {
	UserID      string   `json:"user_id"     binding:"required,min=1,max=255"`
	Message     string   `json:"message"     binding:"required,min=1"`
	Provider    string   `json:"provider"    binding:"omitempty,max=64"`
	Temperature *float64 `json:"temperature" binding:"omitempty,gte=0,lte=2"`
	MaxTokens   *int     `json:"max_tokens"  binding:"omitempty,gt=0"`
}

func (r chatReq) toInput() agent.ProcessInput {
	return agent.ProcessInput{
		UserID:   r.UserID,
		Message:  r.Message,
		Provider: r.Provider,
		Options:  r.options(),
	}
}

func (r chatReq) options() *llm.Options {
	if r.Temperature == nil && r.MaxTokens == nil {
		return nil
	}
	opts := &llm.Options{}
	if r.Temperature != nil {
		opts.Temperature = *r.Temperature
	}
	if r.MaxTokens != nil {
		opts.MaxTokens = *r.MaxTokens
	}
	return opts
}

// ---

type threadMsgReq struct {
	AuthorID  string `json:"author_id" binding:"required"`
	Text      string `json:"text"      binding:"required"`
	Timestamp string `json:"timestamp"`
}

type chatThreadReq struct {
	chatReq
	ThreadContext []threadMsgReq `json:"thread_context"`
}

func (r chatThreadReq) toInput() agent.ThreadInput {
	thread := make([]categorizer.ThreadMessage, len(r.ThreadContext))
	for i, msg := range r.ThreadContext {
		thread[i] = categorizer.ThreadMessage{
			AuthorID:  msg.AuthorID,
			Text:      msg.Text,
			Timestamp: msg.Timestamp,
		}
	}
	return agent.ThreadInput{
		ProcessInput:  r.chatReq.toInput(),
		ThreadContext: thread,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response string `json:"response"`
}

type modelsResp struct {
	Current   agent.ModelInfo `json:"current"`
	Available []string        `json:"available"`
}

type switchResp struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

type clearResp struct {
	UserID  string `json:"user_id"`
	Cleared bool   `json:"cleared"`
}
