package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation is a guest's claim on a room for a half-open [CheckIn, CheckOut)
// date range. Cancellation is a status value, never a row deletion.
type Reservation struct {
	ID              int64             `json:"id"`
	RoomID          int64             `json:"room_id" validate:"required"`
	GuestName       string            `json:"guest_name" validate:"required"`
	Email           string            `json:"email" validate:"required,email"`
	Phone           string            `json:"phone" validate:"required"`
	CheckIn         time.Time         `json:"check_in" validate:"required"`
	CheckOut        time.Time         `json:"check_out" validate:"required"`
	Adults          int               `json:"adults" validate:"required,gte=1"`
	Children        int               `json:"children" validate:"gte=0"`
	SpecialRequests string            `json:"special_requests,omitempty"`
	Status          ReservationStatus `json:"status"`
	TotalPrice      float64           `json:"total_price" validate:"gte=0"`
	UserID          *int64            `json:"user_id,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	UpdatedBy       string            `json:"updated_by,omitempty"`
}

// Occupancy is the total headcount the room has to sleep.
func (r *Reservation) Occupancy() int {
	return r.Adults + r.Children
}
