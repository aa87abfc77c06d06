package admin

import "hotelier/internal/domain"

type CreateBookingRequest struct {
	RoomID          int64  `json:"room_id" binding:"required"`
	GuestName       string `json:"guest_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	Adults          int    `json:"adults" binding:"required,gte=1"`
	Children        int    `json:"children" binding:"gte=0"`
	SpecialRequests string `json:"special_requests"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled"`
}

type ExtendBookingRequest struct {
	AdditionalNights int `json:"additional_nights" binding:"required,gt=0"`
}

// Stats backs the dashboard summary cards. Revenue excludes cancelled
// bookings.
type Stats struct {
	Total     int     `json:"total"`
	Pending   int     `json:"pending"`
	Confirmed int     `json:"confirmed"`
	Cancelled int     `json:"cancelled"`
	Revenue   float64 `json:"revenue"`
}

// ActiveBooking is a confirmed, still-running stay decorated with the
// occupancy metrics the active-bookings table shows.
type ActiveBooking struct {
	domain.Reservation
	NightsStayed    int `json:"nights_stayed"`
	RemainingNights int `json:"remaining_nights"`
}
