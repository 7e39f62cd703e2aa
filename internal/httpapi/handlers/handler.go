package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savorspice/assistant/internal/chat"
	"github.com/savorspice/assistant/internal/config"
	"github.com/savorspice/assistant/internal/reservation"
)

type Handler struct {
	Cfg          config.Config
	ChatSvc      *chat.Service
	Reservations *reservation.Repo
}

func NewHandler(cfg config.Config, chatSvc *chat.Service, reservations *reservation.Repo) *Handler {
	return &Handler{Cfg: cfg, ChatSvc: chatSvc, Reservations: reservations}
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
