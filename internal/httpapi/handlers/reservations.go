package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savorspice/assistant/internal/reservation"
)

type createReservationReq struct {
	GuestName       string `json:"guest_name" binding:"required,min=2"`
	GuestEmail      string `json:"guest_email" binding:"omitempty,email"`
	GuestPhone      string `json:"guest_phone"`
	ReservationDate string `json:"reservation_date" binding:"required"`
	ReservationTime string `json:"reservation_time" binding:"required"`
	PartySize       int    `json:"party_size" binding:"required,min=1,max=8"`
	SpecialRequests string `json:"special_requests"`
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req createReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	res := &reservation.Reservation{
		GuestName:       req.GuestName,
		GuestEmail:      optional(req.GuestEmail),
		GuestPhone:      optional(req.GuestPhone),
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		PartySize:       req.PartySize,
		SpecialRequests: optional(req.SpecialRequests),
		Status:          reservation.StatusConfirmed,
	}
	if err := h.Reservations.Create(c.Request.Context(), res); err != nil {
		log.Printf("create reservation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create reservation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      res.ID,
		"message": "Reservation confirmed!",
	})
}

func (h *Handler) ListReservations(c *gin.Context) {
	list, err := h.Reservations.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		log.Printf("list reservations failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"reservations": []reservation.Reservation{}})
		return
	}
	if list == nil {
		list = []reservation.Reservation{}
	}
	c.JSON(http.StatusOK, gin.H{"reservations": list})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
