package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotelier/internal/domain"
	"hotelier/internal/modules/booking"
	"hotelier/internal/pkg/response"
)

const wireDateLayout = "2006-01-02"

type Handler struct {
	service  *Service
	bookings *booking.Service
}

func NewHandler(service *Service, bookings *booking.Service) *Handler {
	return &Handler{service: service, bookings: bookings}
}

// RegisterRoutes mounts the dashboard endpoints. The caller wraps the group
// in Authorize + AdminOnly middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/stats", h.BookingStats)
	rg.GET("/bookings/active", h.ActiveBookings)
	rg.POST("/bookings", h.CreateBooking)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
	rg.POST("/bookings/:id/checkout", h.CheckoutGuest)
	rg.POST("/bookings/:id/extend", h.ExtendBooking)
}

func (h *Handler) ListBookings(c *gin.Context) {
	direction := Ascending
	if c.Query("direction") == string(Descending) {
		direction = Descending
	}

	q := ListQuery{
		SearchTerm: c.Query("search"),
		Status:     c.DefaultQuery("status", StatusAll),
		SortKey:    c.DefaultQuery("sort_by", "check_in"),
		Direction:  direction,
	}

	rs, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rs})
}

func (h *Handler) BookingStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute stats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) ActiveBookings(c *gin.Context) {
	var roomID int64
	if raw := c.Query("room_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
			return
		}
		roomID = id
	}

	rs, err := h.service.ActiveBookings(c.Request.Context(), roomID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list active bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rs})
}

// CreateBooking creates a reservation on a guest's behalf. Admin-entered
// bookings start confirmed: the desk already spoke to the guest.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
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

	r, err := h.bookings.CreateReservation(c.Request.Context(), booking.CreateReservationInput{
		RoomID:          req.RoomID,
		GuestName:       req.GuestName,
		Email:           req.Email,
		Phone:           req.Phone,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          req.Adults,
		Children:        req.Children,
		SpecialRequests: req.SpecialRequests,
		AsAdmin:         true,
		CreatedBy:       c.GetString("email"),
	})
	if err != nil {
		booking.WriteError(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": r})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status must be confirmed or cancelled")
		return
	}

	r, err := h.bookings.UpdateStatus(c.Request.Context(), id, domain.ReservationStatus(req.Status), c.GetString("email"))
	if err != nil {
		booking.WriteError(c, err, "Failed to update booking status")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": r})
}

func (h *Handler) CheckoutGuest(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	r, err := h.bookings.CheckoutGuest(c.Request.Context(), id, c.GetString("email"))
	if err != nil {
		booking.WriteError(c, err, "Failed to check out guest")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": r})
}

func (h *Handler) ExtendBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req ExtendBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "additional_nights must be a positive integer")
		return
	}

	r, err := h.bookings.ExtendBooking(c.Request.Context(), id, req.AdditionalNights, c.GetString("email"))
	if err != nil {
		booking.WriteError(c, err, "Failed to extend booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": r})
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}
