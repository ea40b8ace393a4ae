// README: Chat handler; one POST per conversation turn.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookbot/internal/modules/conversation"
)

type ChatHandler struct {
	dispatcher *conversation.Dispatcher
}

func NewChatHandler(d *conversation.Dispatcher) *ChatHandler {
	return &ChatHandler{dispatcher: d}
}

type chatReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResp struct {
	Reply string `json:"reply"`
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.SessionID = strings.TrimSpace(req.SessionID)
	req.Message = strings.TrimSpace(req.Message)
	if req.SessionID == "" {
		req.SessionID = "default"
	}
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	reply, err := h.dispatcher.Handle(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, chatResp{Reply: reply})
}
