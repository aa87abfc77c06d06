package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotelier/internal/pkg/daterange"
	"hotelier/internal/pkg/response"
)

const wireDateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the guest-facing endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateReservation)
	rg.GET("/rooms/:id/availability", h.CheckAvailability)
}

// RegisterProtectedRoutes mounts endpoints that need an authenticated guest.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/my-bookings", h.MyBookings)
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	checkIn, err := time.Parse(wireDateLayout, req.CheckIn)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse(wireDateLayout, req.CheckOut)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be YYYY-MM-DD")
		return
	}

	in := CreateReservationInput{
		RoomID:          req.RoomID,
		GuestName:       req.GuestName,
		Email:           req.Email,
		Phone:           req.Phone,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          req.Adults,
		Children:        req.Children,
		SpecialRequests: req.SpecialRequests,
	}

	// bookings made while logged in are attached to the account
	if userID := c.GetInt64("user_id"); userID != 0 {
		in.UserID = &userID
		in.CreatedBy = c.GetString("email")
	}

	r, err := h.service.CreateReservation(c.Request.Context(), in)
	if err != nil {
		WriteError(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": r})
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	checkIn, err := time.Parse(wireDateLayout, c.Query("check_in"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse(wireDateLayout, c.Query("check_out"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be YYYY-MM-DD")
		return
	}
	if _, err := daterange.Nights(checkIn, checkOut); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be after check_in")
		return
	}

	available, err := h.service.Availability().IsAvailable(c.Request.Context(), roomID, checkIn, checkOut, 0)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		return
	}

	response.Success(c, http.StatusOK, AvailabilityResponse{
		RoomID:    roomID,
		CheckIn:   c.Query("check_in"),
		CheckOut:  c.Query("check_out"),
		Available: available,
	})
}

func (h *Handler) MyBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	rs, err := h.service.GetUserReservations(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rs})
}

// WriteError maps the booking error taxonomy onto HTTP codes. The admin
// handlers reuse it.
func WriteError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, daterange.ErrInvalidRange):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case errors.Is(err, ErrRoomUnavailable), errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Room is not available for the selected dates")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking status does not allow this action")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrCorruptState):
		response.Error(c, http.StatusInternalServerError, "CORRUPT_STATE", "Booking data is inconsistent")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
