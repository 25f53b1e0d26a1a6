package api

import (
	"errors"
	"net/http"

	reqdto "workshop-booking/internal/handler/dto/request"
	resdto "workshop-booking/internal/handler/dto/response"
	"workshop-booking/internal/handler/middleware"
	"workshop-booking/internal/usecase/commands"
	"workshop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	slotCommands        commands.SlotCommands
	slotQueries         queries.SlotQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewSlotHandler(slotCommands commands.SlotCommands, slotQueries queries.SlotQueries, availabilityQueries queries.AvailabilityQueries) *SlotHandler {
	return &SlotHandler{
		slotCommands:        slotCommands,
		slotQueries:         slotQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Create slot
// @Description Publish a new available slot (workshop owner only)
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workshopId path string true "Workshop ID"
// @Param request body reqdto.CreateSlotRequest true "Slot request"
// @Success 201 {object} resdto.CreateSlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /workshops/{workshopId}/slots [post]
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	workshopID, err := uuid.Parse(c.Param("workshopId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workshop ID format",
		})
		return
	}

	var req reqdto.CreateSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CreateSlotParams{
		WorkshopID: workshopID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}

	slotID, err := h.slotCommands.CreateSlot(c.Request.Context(), params, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWorkshopNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Workshop not found",
			})
		case errors.Is(err, commands.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, commands.ErrInvalidWindow):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Slot end time must be after start time",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateSlotResponse{ID: slotID})
}

// @Summary Delete slot
// @Description Remove an available slot (workshop owner only)
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots/{id} [delete]
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	if err := h.slotCommands.DeleteSlot(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, commands.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, commands.ErrSlotBooked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot has an active booking",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List workshop slots
// @Description List slots for a workshop, optionally bounded by a time window
// @Tags slots
// @Produce json
// @Param workshopId path string true "Workshop ID"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /workshops/{workshopId}/slots [get]
func (h *SlotHandler) ListSlots(c *gin.Context) {
	workshopID, err := uuid.Parse(c.Param("workshopId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workshop ID format",
		})
		return
	}

	var q reqdto.ListSlotsQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	views, err := h.slotQueries.ListByWorkshop(c.Request.Context(), workshopID, q.From, q.To)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.SlotResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromSlotView(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Suggest alternatives
// @Description Rank available slots near a requested time when the preferred slot is taken
// @Tags slots
// @Produce json
// @Param workshopId path string true "Workshop ID"
// @Param requested_time query string true "Requested time (RFC3339)"
// @Param duration_minutes query int true "Service duration in minutes"
// @Success 200 {array} resdto.AlternativeResponse
// @Failure 400 {object} map[string]string
// @Router /workshops/{workshopId}/alternatives [get]
func (h *SlotHandler) SuggestAlternatives(c *gin.Context) {
	workshopID, err := uuid.Parse(c.Param("workshopId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workshop ID format",
		})
		return
	}

	var q reqdto.SuggestAlternativesQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	views, err := h.availabilityQueries.SuggestAlternatives(c.Request.Context(), workshopID, q.RequestedTime, q.DurationMinutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.AlternativeResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromAlternativeView(rm)
	}

	c.JSON(http.StatusOK, response)
}
