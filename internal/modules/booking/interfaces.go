package booking

import (
	"context"

	"hotelier/internal/domain"
)

// ReservationStore is the persistence contract the lifecycle manager and the
// availability checker depend on. The gorm-backed implementation lives in
// internal/repository; tests supply mocks. Insert must be atomic with
// respect to the no-double-booking rule (the PostgreSQL implementation uses
// an exclusion constraint), so a concurrent overlapping insert surfaces as a
// storage error rather than a silent double-booking.
type ReservationStore interface {
	Insert(ctx context.Context, r *domain.Reservation) error
	FindByID(ctx context.Context, id int64) (*domain.Reservation, error)
	FindByRoom(ctx context.Context, roomID int64, excludeStatus domain.ReservationStatus) ([]domain.Reservation, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*domain.Reservation, error)
	FindByUser(ctx context.Context, userID int64) ([]domain.Reservation, error)
}

// RoomLookup gives the booking core read access to room pricing and capacity.
type RoomLookup interface {
	GetNightlyRate(ctx context.Context, roomID int64) (float64, error)
	GetCapacity(ctx context.Context, roomID int64) (int, error)
}

// Notifier receives lifecycle events after the store has confirmed them.
// Implementations must not block the booking path; errors are logged and
// dropped by the caller.
type Notifier interface {
	NotifyReservationCreated(ctx context.Context, r *domain.Reservation) error
	NotifyStatusChanged(ctx context.Context, r *domain.Reservation, previous domain.ReservationStatus) error
	NotifyReservationExtended(ctx context.Context, r *domain.Reservation, addedNights int) error
	NotifyGuestCheckedOut(ctx context.Context, r *domain.Reservation) error
}
