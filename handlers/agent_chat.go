package handlers

import (
	"context"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"chat-agent/models"
	"chat-agent/services"
)

// ChatAgent produces a reply for a chat request
type ChatAgent interface {
	Run(ctx context.Context, req models.ChatRequest) (*models.ChatReply, error)
}

// ChatHandler serves the agent chat endpoint
type ChatHandler struct {
	agent   ChatAgent
	timeout time.Duration
}

// NewChatHandler creates a handler; a zero timeout leaves requests unbounded
func NewChatHandler(agent ChatAgent, timeout time.Duration) *ChatHandler {
	return &ChatHandler{agent: agent, timeout: timeout}
}

// Chat processes a chat message and returns the agent's reply
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: err.Error()})
		return
	}
	if req.NewestMessage == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "newest_message is required"})
		return
	}

	log := requestLog(c)
	log.WithFields(logrus.Fields{
		"message_chars": utf8.RuneCountInString(req.Message()),
		"history_turns": len(req.ConversationHistory),
	}).Info("Agent chat request")

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	reply, err := h.agent.Run(ctx, req)
	if err != nil {
		kind := services.ErrorKind(err)
		log.WithError(err).WithField("kind", kind).Error("Error processing chat message")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Detail: err.Error(),
			Kind:   kind,
		})
		return
	}

	c.JSON(http.StatusOK, reply)
}

// Health reports that the server is up
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
