package handlers

import (
	"net/http"
	"strconv"

	"cleaning-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles HTTP requests for availability and booking operations
type BookingHandler struct {
	bookingService service.BookingServiceInterface
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService service.BookingServiceInterface) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// CheckAvailability handles POST /bookings/availability
// @Summary Check crew availability
// @Description List free crew members for a date. With start_time and duration the exact window is checked, otherwise every free slot of the day is listed.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body service.AvailabilityRequest true "Availability query"
// @Success 200 {array} service.CrewAvailability "Crew members with free slots"
// @Failure 400 {object} ErrorResponse "Malformed request or policy violation"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /bookings/availability [post]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req service.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.bookingService.CheckAvailability(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateBooking handles POST /bookings
// @Summary Create a booking
// @Description Allocate crew members of a single team to a new booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body service.CreateBookingRequest true "Booking data"
// @Success 201 {object} service.BookingResponse "Successfully created booking"
// @Failure 400 {object} ErrorResponse "Malformed request or policy violation"
// @Failure 409 {object} ErrorResponse "No team has enough free crew members"
// @Failure 503 {object} ErrorResponse "Timed out waiting for the allocation lock"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// RescheduleBooking handles PUT /bookings/:id
// @Summary Reschedule a booking
// @Description Move a booking to a new date and start time keeping its crew and duration
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body service.RescheduleBookingRequest true "New date and start time"
// @Success 200 {object} service.BookingResponse "Successfully rescheduled booking"
// @Failure 400 {object} ErrorResponse "Malformed request or policy violation"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Failure 409 {object} ErrorResponse "Crew members not available at the new time"
// @Failure 503 {object} ErrorResponse "Timed out waiting for the allocation lock"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /bookings/{id} [put]
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.RescheduleBooking(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// GetBooking handles GET /bookings/:id
// @Summary Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} service.BookingResponse "Successfully retrieved booking"
// @Failure 400 {object} ErrorResponse "Invalid booking ID"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid booking ID"})
		return 0, false
	}
	return uint(id), true
}
