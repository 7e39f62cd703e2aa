package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/savorspice/assistant/internal/httpapi/handlers"
	"github.com/savorspice/assistant/internal/httpapi/middleware"
)

func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	// The assistant widget is embedded on arbitrary sites.
	r.Use(cors.Default())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "method not allowed"})
	})

	r.GET("/ping", h.Ping)

	api := r.Group("/api")
	api.POST("/chat", h.Chat)
	api.POST("/reservations", h.CreateReservation)
	api.GET("/reservations", h.ListReservations)
	api.GET("/availability", h.GetAvailability)

	return r
}
