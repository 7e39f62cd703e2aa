package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savorspice/assistant/internal/reservation"
)

func (h *Handler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		// Neutral default: no date means nothing to report, not an error.
		c.JSON(http.StatusOK, gin.H{"available": true, "slots": []reservation.Slot{}})
		return
	}

	booked, err := h.Reservations.BookedByTime(c.Request.Context(), date)
	if err != nil {
		log.Printf("availability query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"available": true, "slots": []reservation.Slot{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": true, "slots": reservation.Slots(booked)})
}
