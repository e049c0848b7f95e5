package http

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"support-triage-bot/pkg/llm"
	"support-triage-bot/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Processes a direct conversation turn and returns the model response.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	reply, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, chatResp{Response: reply})
}

// ChatThread godoc
// @Summary     Send a thread message
// @Description Categorizes a thread message and returns either a model analysis or a routing response.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatThreadReq true "Thread message with context"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/thread [POST]
func (h *handler) ChatThread(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatThreadReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	reply, err := h.uc.ProcessThread(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessThread: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, chatResp{Response: reply})
}

// Models godoc
// @Summary     List models
// @Description Returns the active model and all registered providers.
// @Tags        Models
// @Produce     json
// @Success     200 {object} modelsResp
// @Router      /api/v1/models [GET]
func (h *handler) Models(c *gin.Context) {
	response.OK(c, modelsResp{
		Current:   h.uc.CurrentModelInfo(),
		Available: h.uc.AvailableProviders(),
	})
}

// SwitchModel godoc
// @Summary     Switch the active model
// @Description Activates a different provider for subsequent requests.
// @Tags        Models
// @Produce     json
// @Param       provider path string true "Provider name"
// @Success     200 {object} switchResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/models/switch/{provider} [POST]
func (h *handler) SwitchModel(c *gin.Context) {
	ctx := c.Request.Context()

	provider := c.Param("provider")
	if provider == "" {
		response.Error(c, fmt.Errorf("provider is required"))
		return
	}

	if err := h.uc.SwitchModel(ctx, provider); err != nil {
		h.l.Errorf(ctx, "uc.SwitchModel: %v", err)
		var unknown *llm.UnknownProviderError
		if errors.As(err, &unknown) {
			response.NotFound(c, unknown)
			return
		}
		response.InternalError(c)
		return
	}

	info := h.uc.CurrentModelInfo()
	response.OK(c, switchResp{Provider: info.Provider, Model: info.Model})
}

// ClearConversation godoc
// @Summary     Clear a conversation
// @Description Drops the stored conversation history for a user.
// @Tags        Chat
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} clearResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/conversations/{user_id} [DELETE]
func (h *handler) ClearConversation(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("user_id")
	if userID == "" {
		response.Error(c, fmt.Errorf("user_id is required"))
		return
	}

	h.uc.Clear(ctx, userID)
	response.OK(c, clearResp{UserID: userID, Cleared: true})
}

// Health godoc
// @Summary     Health check
// @Description Probes the active model and reports its health.
// @Tags        Health
// @Produce     json
// @Success     200 {object} agent.HealthStatus
// @Router      /health [GET]
func (h *handler) Health(c *gin.Context) {
	response.OK(c, h.uc.HealthCheck(c.Request.Context()))
}

// respondError keeps provider lookup failures as client errors; anything
// else is an upstream failure and gets the opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	var unknown *llm.UnknownProviderError
	if errors.As(err, &unknown) {
		response.Error(c, unknown)
		return
	}
	response.InternalError(c)
}
