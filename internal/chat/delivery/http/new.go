package http

import (
	"github.com/gin-gonic/gin"

	"support-triage-bot/internal/agent"
	"support-triage-bot/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	ChatThread(c *gin.Context)
	Models(c *gin.Context)
	SwitchModel(c *gin.Context)
	ClearConversation(c *gin.Context)
	Health(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc agent.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc agent.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
