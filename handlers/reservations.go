package handlers

import (
	"errors"
	"net/http"

	"slotify/models"
	"slotify/services/reservation"
	"slotify/services/scheduling"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler serves the hold lifecycle endpoints.
type ReservationHandler struct {
	Engine scheduling.SchedulingEngine
	Logger *zap.Logger
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(engine scheduling.SchedulingEngine, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Engine: engine, Logger: logger}
}

// ReserveSlotHandler places a temporary hold on an exact slot window.
func (h *ReservationHandler) ReserveSlotHandler(c *gin.Context) {
	var req models.ReserveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	window, err := parseWindow(req.Start, req.End)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid slot window", err.Error())
		return
	}

	res, err := h.Engine.ReserveSlot(c.Request.Context(), req.EventTypeID, window, req.HolderID)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrConflict):
			utils.JSONError(c, http.StatusConflict, "slot already reserved", "Re-fetch slots and pick another time.")
		case errors.Is(err, scheduling.ErrSlotUnavailable):
			utils.JSONError(c, http.StatusConflict, "slot no longer available", "Re-fetch slots and pick another time.")
		case errors.Is(err, scheduling.ErrEventTypeNotFound):
			utils.JSONError(c, http.StatusNotFound, "event type not found", err.Error())
		case errors.Is(err, scheduling.ErrInvalidConfiguration):
			utils.JSONError(c, http.StatusUnprocessableEntity, "event type misconfigured", err.Error())
		default:
			h.Logger.Error("reservation failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to reserve slot", "")
		}
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ReleaseReservationHandler drops a hold. Unknown or expired tokens succeed:
// release is idempotent by contract.
func (h *ReservationHandler) ReleaseReservationHandler(c *gin.Context) {
	token := c.Param("token")
	if err := h.Engine.ReleaseReservation(c.Request.Context(), token); err != nil {
		h.Logger.Error("release failed", zap.String("token", token), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to release reservation", "")
		return
	}
	c.Status(http.StatusNoContent)
}

// ConfirmReservationHandler promotes a hold into a durable booking. A token
// that already expired or was confirmed before reports success without a
// booking body, so retries are harmless.
func (h *ReservationHandler) ConfirmReservationHandler(c *gin.Context) {
	token := c.Param("token")
	booking, err := h.Engine.ConfirmReservation(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrEventTypeNotFound), errors.Is(err, scheduling.ErrInvalidConfiguration):
			utils.JSONError(c, http.StatusUnprocessableEntity, "reservation cannot be confirmed", err.Error())
		default:
			h.Logger.Error("confirm failed", zap.String("token", token), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to confirm reservation", "")
		}
		return
	}
	if booking == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "confirmed", "booking": booking})
}
