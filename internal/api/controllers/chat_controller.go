package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"concierge/internal/models/request_models"
	"concierge/internal/services"
	"concierge/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// ChatHandler runs one conversational turn and streams the reply as
// server-sent events: a "snapshot" event per delta carrying the cumulative
// text so far, then one "done" event with the finalized assistant message.
// Errors raised before the stream opens come back as a plain JSON envelope.
func (cc *ChatController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	streaming := false
	onSnapshot := func(snapshot string) {
		if !streaming {
			streaming = true
			c.Writer.Header().Set("Content-Type", "text/event-stream")
			c.Writer.Header().Set("Cache-Control", "no-cache")
			c.Writer.Header().Set("Connection", "keep-alive")
		}
		c.SSEvent("snapshot", snapshot)
		c.Writer.Flush()
	}

	message, err := cc.chatService.StreamReply(c.Request.Context(), c.GetString("session_id"), req.Prompt, req.Language, onSnapshot)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if !streaming {
		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
	}
	c.SSEvent("done", message)
	c.Writer.Flush()
}
