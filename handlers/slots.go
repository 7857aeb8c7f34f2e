package handlers

import (
	"errors"
	"net/http"
	"time"

	"slotify/models"
	"slotify/services/scheduling"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotHandler serves the slot listing endpoint.
type SlotHandler struct {
	Engine scheduling.SchedulingEngine
	Logger *zap.Logger
}

// NewSlotHandler constructs a SlotHandler.
func NewSlotHandler(engine scheduling.SchedulingEngine, logger *zap.Logger) *SlotHandler {
	return &SlotHandler{Engine: engine, Logger: logger}
}

// ListSlotsHandler computes the bookable slots for an event type over a date
// range. Input is validated once here at the boundary; the engine below
// assumes well-formed values.
func (h *SlotHandler) ListSlotsHandler(c *gin.Context) {
	var req models.ListSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	rng, err := parseWindow(req.Start, req.End)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date range", err.Error())
		return
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid timezone", err.Error())
			return
		}
	}

	slots, err := h.Engine.ListSlots(c.Request.Context(), req.EventTypeID, rng)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SlotListResponse{
		EventTypeID: req.EventTypeID,
		Timezone:    req.Timezone,
		Slots:       slots,
	})
}

func (h *SlotHandler) respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrEventTypeNotFound):
		utils.JSONError(c, http.StatusNotFound, "event type not found", err.Error())
	case errors.Is(err, scheduling.ErrInvalidConfiguration):
		utils.JSONError(c, http.StatusUnprocessableEntity, "event type misconfigured", err.Error())
	case errors.Is(err, models.ErrInvalidWindow):
		utils.JSONError(c, http.StatusBadRequest, "invalid time window", err.Error())
	default:
		h.Logger.Error("slot listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute slots", "")
	}
}

// parseWindow parses two RFC 3339 timestamps into a validated UTC window.
func parseWindow(start, end string) (models.TimeWindow, error) {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return models.TimeWindow{}, err
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return models.TimeWindow{}, err
	}
	return models.NewTimeWindow(s, e)
}
