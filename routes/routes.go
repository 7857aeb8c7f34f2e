package routes

import (
	"slotify/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all endpoints of the scheduling API.
func RegisterRoutes(r *gin.Engine, h *handlers.HandlerBundle) {
	r.GET("/health", handlers.HealthHandler)

	api := r.Group("/api/v1")
	{
		api.GET("/slots", h.Slots.ListSlotsHandler)
		api.POST("/slots/reserve", h.Reservations.ReserveSlotHandler)
		api.DELETE("/reservations/:token", h.Reservations.ReleaseReservationHandler)
		api.POST("/reservations/:token/confirm", h.Reservations.ConfirmReservationHandler)
	}
}
