package feed

import (
	"context"
	"time"

	"hotelier/internal/domain"
)

// Event is the wire shape pushed to dashboard sessions.
type Event struct {
	Type        string                   `json:"type"`
	BookingID   int64                    `json:"booking_id"`
	RoomID      int64                    `json:"room_id"`
	GuestName   string                   `json:"guest_name"`
	Status      domain.ReservationStatus `json:"status"`
	CheckIn     time.Time                `json:"check_in"`
	CheckOut    time.Time                `json:"check_out"`
	TotalPrice  float64                  `json:"total_price"`
	AddedNights int                      `json:"added_nights,omitempty"`
	OccurredAt  time.Time                `json:"occurred_at"`
}

// Notifier implements the booking module's Notifier contract by pushing
// events into the hub. All methods are non-blocking and never fail the
// booking path.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyReservationCreated(ctx context.Context, r *domain.Reservation) error {
	n.hub.Broadcast(event("booking_created", r, 0))
	return nil
}

func (n *Notifier) NotifyStatusChanged(ctx context.Context, r *domain.Reservation, previous domain.ReservationStatus) error {
	n.hub.Broadcast(event("booking_status_changed", r, 0))
	return nil
}

func (n *Notifier) NotifyReservationExtended(ctx context.Context, r *domain.Reservation, addedNights int) error {
	n.hub.Broadcast(event("booking_extended", r, addedNights))
	return nil
}

func (n *Notifier) NotifyGuestCheckedOut(ctx context.Context, r *domain.Reservation) error {
	n.hub.Broadcast(event("guest_checked_out", r, 0))
	return nil
}

func event(kind string, r *domain.Reservation, addedNights int) Event {
	return Event{
		Type:        kind,
		BookingID:   r.ID,
		RoomID:      r.RoomID,
		GuestName:   r.GuestName,
		Status:      r.Status,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		TotalPrice:  r.TotalPrice,
		AddedNights: addedNights,
		OccurredAt:  time.Now(),
	}
}
