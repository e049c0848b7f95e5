package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/chat", h.Chat)
	rg.POST("/chat/thread", h.ChatThread)
	rg.GET("/models", h.Models)
	rg.POST("/models/switch/:provider", h.SwitchModel)
	rg.DELETE("/conversations/:user_id", h.ClearConversation)
}
