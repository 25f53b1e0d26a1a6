package api

import (
	"context"
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

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book an available slot for a service
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param serviceId path string true "Service ID"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /services/{serviceId}/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	serviceID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CreateBookingParams{
		ServiceID: serviceID,
		SlotID:    req.SlotID,
		UserID:    userID,
		Note:      req.GetNote(),
	}

	bookingID, err := h.bookingCommands.CreateBooking(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, commands.ErrWorkshopMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Service and slot belong to different workshops",
			})
		case errors.Is(err, commands.ErrSlotTooShort):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Slot is too short for the requested service",
			})
		case errors.Is(err, commands.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is no longer available",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{ID: bookingID})
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get user bookings
// @Description Get all bookings for the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromBookingView(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get workshop bookings
// @Description Get all bookings for a workshop (owner only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param workshopId path string true "Workshop ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workshops/{workshopId}/bookings [get]
func (h *BookingHandler) GetWorkshopBookings(c *gin.Context) {
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

	views, err := h.bookingQueries.ListForWorkshop(c.Request.Context(), workshopID, userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrWorkshopNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Workshop not found",
			})
		case errors.Is(err, queries.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromBookingView(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Confirm booking
// @Description Confirm a requested booking (workshop owner only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.runTransition(c, h.bookingCommands.ConfirmBooking)
}

// @Summary Cancel booking
// @Description Cancel a booking and release its slot
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.runTransition(c, h.bookingCommands.CancelBooking)
}

// @Summary Complete booking
// @Description Mark a confirmed booking as completed (workshop owner only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	h.runTransition(c, h.bookingCommands.CompleteBooking)
}

func (h *BookingHandler) runTransition(c *gin.Context, cmd func(ctx context.Context, bookingID, actorID uuid.UUID) error) {
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
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := cmd(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, commands.ErrIllegalTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking state does not allow this transition",
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
