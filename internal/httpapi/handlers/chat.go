package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savorspice/assistant/internal/chat"
)

// apologyReply is the fixed failure text for the chat path. The tone stays
// conversational; no machine detail leaks to the guest.
const apologyReply = "I apologize, but I'm having trouble processing your request. Please try again."

type chatReq struct {
	Message string      `json:"message"`
	History []chat.Turn `json:"history"`
}

func (h *Handler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"response": apologyReply})
		return
	}

	result, err := h.ChatSvc.Respond(c.Request.Context(), req.Message, req.History)
	if err != nil {
		log.Printf("chat turn failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"response": apologyReply})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response":            result.Response,
		"reservation_created": result.ReservationCreated,
		"reservation_id":      result.ReservationID,
	})
}
