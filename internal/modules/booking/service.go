package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hotelier/internal/domain"
	"hotelier/internal/pkg/daterange"
)

// Service owns the reservation lifecycle: creation, status transitions,
// checkout and extension. Every invariant is checked before the single
// store write, so a failed operation never leaves partial state behind.
type Service struct {
	reservations ReservationStore
	rooms        RoomLookup
	availability *Checker
	notifs       Notifier
}

func NewService(reservations ReservationStore, rooms RoomLookup, notifs Notifier) *Service {
	return &Service{
		reservations: reservations,
		rooms:        rooms,
		availability: NewChecker(reservations),
		notifs:       notifs,
	}
}

// Availability exposes the checker for read-only availability queries.
func (s *Service) Availability() *Checker {
	return s.availability
}

// CreateReservationInput is the validated form input. AsAdmin marks a
// trusted origin (the admin dashboard creating a booking on a guest's
// behalf): those start confirmed, everything else starts pending.
type CreateReservationInput struct {
	RoomID          int64
	GuestName       string
	Email           string
	Phone           string
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	SpecialRequests string
	UserID          *int64
	AsAdmin         bool
	CreatedBy       string
}

func (s *Service) CreateReservation(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error) {
	if in.Adults < 1 || in.Children < 0 {
		return nil, ErrValidation
	}
	if in.GuestName == "" || in.Email == "" || in.Phone == "" {
		return nil, ErrValidation
	}

	checkIn, checkOut := daterange.Day(in.CheckIn), daterange.Day(in.CheckOut)
	if _, err := daterange.Nights(checkIn, checkOut); err != nil {
		return nil, err
	}

	capacity, err := s.rooms.GetCapacity(ctx, in.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, fmt.Errorf("look up room capacity: %w", err)
	}
	if in.Adults+in.Children > capacity {
		return nil, ErrValidation
	}

	ok, err := s.availability.IsAvailable(ctx, in.RoomID, checkIn, checkOut, 0)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRoomUnavailable
	}

	rate, err := s.rooms.GetNightlyRate(ctx, in.RoomID)
	if err != nil {
		return nil, fmt.Errorf("look up nightly rate: %w", err)
	}
	total, err := Total(rate, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	status := domain.ReservationPending
	if in.AsAdmin {
		status = domain.ReservationConfirmed
	}

	now := time.Now()
	r := &domain.Reservation{
		RoomID:          in.RoomID,
		GuestName:       in.GuestName,
		Email:           in.Email,
		Phone:           in.Phone,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          in.Adults,
		Children:        in.Children,
		SpecialRequests: in.SpecialRequests,
		Status:          status,
		TotalPrice:      total,
		UserID:          in.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
		UpdatedBy:       in.CreatedBy,
	}

	if err := s.reservations.Insert(ctx, r); err != nil {
		if isOverbooking(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("persist reservation: %w", err)
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyReservationCreated(ctx, r)
	}

	return r, nil
}

// UpdateStatus moves a reservation along one of the allowed edges:
// pending → confirmed, pending → cancelled, confirmed → cancelled.
// Cancelled is terminal.
func (s *Service) UpdateStatus(ctx context.Context, id int64, newStatus domain.ReservationStatus, actor string) (*domain.Reservation, error) {
	r, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(r.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	previous := r.Status
	updated, err := s.reservations.Update(ctx, id, map[string]any{
		"status":     string(newStatus),
		"updated_at": time.Now(),
		"updated_by": actor,
	})
	if err != nil {
		return nil, fmt.Errorf("persist status change: %w", err)
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyStatusChanged(ctx, updated, previous)
	}

	return updated, nil
}

// CheckoutGuest records an early departure: check-out becomes today and the
// reservation stays confirmed. The price is not recomputed; the stay was
// already paid for.
func (s *Service) CheckoutGuest(ctx context.Context, id int64, actor string) (*domain.Reservation, error) {
	r, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.Status != domain.ReservationConfirmed {
		return nil, ErrInvalidTransition
	}

	today := daterange.Day(time.Now())
	if !today.After(daterange.Day(r.CheckIn)) {
		// checking out on or before the check-in day would leave a
		// zero-night reservation behind
		return nil, ErrValidation
	}

	updated, err := s.reservations.Update(ctx, id, map[string]any{
		"check_out":  today,
		"updated_at": time.Now(),
		"updated_by": actor,
	})
	if err != nil {
		return nil, fmt.Errorf("persist checkout: %w", err)
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyGuestCheckedOut(ctx, updated)
	}

	return updated, nil
}

// ExtendBooking pushes the check-out date additionalNights further and
// reprices the stay at the rate that was actually charged. The extension
// window [old check-out, new check-out) must not collide with any other
// reservation on the room.
func (s *Service) ExtendBooking(ctx context.Context, id int64, additionalNights int, actor string) (*domain.Reservation, error) {
	if additionalNights <= 0 {
		return nil, ErrValidation
	}

	r, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status == domain.ReservationCancelled {
		return nil, ErrInvalidTransition
	}

	oldCheckOut := daterange.Day(r.CheckOut)
	newCheckOut := oldCheckOut.AddDate(0, 0, additionalNights)

	ok, err := s.availability.IsAvailable(ctx, r.RoomID, oldCheckOut, newCheckOut, r.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRoomUnavailable
	}

	newTotal, err := ExtensionTotal(r.TotalPrice, r.CheckIn, r.CheckOut, additionalNights)
	if err != nil {
		return nil, err
	}

	updated, err := s.reservations.Update(ctx, id, map[string]any{
		"check_out":   newCheckOut,
		"total_price": newTotal,
		"updated_at":  time.Now(),
		"updated_by":  actor,
	})
	if err != nil {
		if isOverbooking(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("persist extension: %w", err)
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyReservationExtended(ctx, updated, additionalNights)
	}

	return updated, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.getExisting(ctx, id)
}

func (s *Service) GetUserReservations(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	return s.reservations.FindByUser(ctx, userID)
}

func (s *Service) getExisting(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load reservation: %w", err)
	}
	return r, nil
}

func transitionAllowed(from, to domain.ReservationStatus) bool {
	switch {
	case from == domain.ReservationPending && to == domain.ReservationConfirmed:
		return true
	case from == domain.ReservationPending && to == domain.ReservationCancelled:
		return true
	case from == domain.ReservationConfirmed && to == domain.ReservationCancelled:
		return true
	}
	return false
}

// isOverbooking recognizes the idx_no_double_booking exclusion constraint
// rejecting a write that slipped past the optimistic availability check.
func isOverbooking(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.ConstraintName != "idx_no_double_booking" {
		return false
	}
	return pgErr.Code == "23505" || pgErr.Code == "23P01"
}
