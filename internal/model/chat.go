package model

// ChatRequest represents an inbound chat message
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse represents the chatbot reply
type ChatResponse struct {
	Status   string `json:"status"`
	Response string `json:"response"`
}
