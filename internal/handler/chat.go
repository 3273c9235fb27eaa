package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"catalogbot/internal/model"
	"catalogbot/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles chat-related HTTP requests
type ChatHandler struct {
	router *service.Router
}

// NewChatHandler creates a new chat handler
func NewChatHandler(router *service.Router) *ChatHandler {
	return &ChatHandler{router: router}
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không có tin nhắn được cung cấp"})
		return
	}

	response := h.router.Process(c.Request.Context(), req.Message)

	c.JSON(http.StatusOK, model.ChatResponse{
		Status:   "success",
		Response: response,
	})
}

// ChatStream handles POST /api/chat/stream - SSE streaming chat
func (h *ChatHandler) ChatStream(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không có tin nhắn được cung cấp"})
		return
	}

	c.Header("Content-Type", "text/event-stream; charset=utf-8")
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming not supported"})
		return
	}

	sendSSE(c, "start", map[string]any{"message": req.Message})
	flusher.Flush()

	response := h.router.ProcessStream(c.Request.Context(), req.Message, func(chunk *service.StreamChunk) error {
		if chunk.ThinkingContent != "" {
			sendSSE(c, "thinking", map[string]any{"content": chunk.ThinkingContent})
		}
		if chunk.Content != "" {
			sendSSE(c, "content", map[string]any{"content": chunk.Content})
		}
		flusher.Flush()
		return nil
	})

	sendSSE(c, "result", model.ChatResponse{Status: "success", Response: response})
	flusher.Flush()

	sendSSE(c, "done", nil)
	flusher.Flush()
}

// Health handles GET /api/health
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"message": "Chatbot API đang hoạt động",
	})
}

// sendSSE sends a Server-Sent Event
func sendSSE(c *gin.Context, event string, data any) {
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			fmt.Fprintf(c.Writer, "event: error\ndata: {\"error\": \"JSON marshal failed\"}\n\n")
			return
		}
		fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, string(jsonData))
	} else {
		fmt.Fprintf(c.Writer, "event: %s\ndata: {}\n\n", event)
	}
}
