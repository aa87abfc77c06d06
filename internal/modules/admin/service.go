package admin

import (
	"context"
	"time"

	"hotelier/internal/domain"
	"hotelier/internal/modules/booking"
	"hotelier/internal/pkg/daterange"
)

// ReservationLister is the read side the dashboard needs beyond the
// lifecycle manager.
type ReservationLister interface {
	FindAll(ctx context.Context) ([]domain.Reservation, error)
}

// Service composes the lifecycle manager with the pure filter/sort layer
// for the admin dashboard. It holds no state of its own; every listing
// works on a fresh store snapshot.
type Service struct {
	bookings *booking.Service
	store    ReservationLister
}

func NewService(bookings *booking.Service, store ReservationLister) *Service {
	return &Service{bookings: bookings, store: store}
}

type ListQuery struct {
	SearchTerm string
	Status     string
	SortKey    string
	Direction  SortDirection
}

// List returns the filtered, sorted dashboard view: search, then status
// filter, then stable sort.
func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Reservation, error) {
	rs, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rs = FilterBySearchTerm(rs, q.SearchTerm)
	rs = FilterByStatus(rs, q.Status)
	return SortReservations(rs, q.SortKey, q.Direction), nil
}

// ComputeStats aggregates the status counts and revenue for a snapshot.
func ComputeStats(rs []domain.Reservation) Stats {
	var st Stats
	st.Total = len(rs)
	for _, r := range rs {
		switch r.Status {
		case domain.ReservationPending:
			st.Pending++
		case domain.ReservationConfirmed:
			st.Confirmed++
		case domain.ReservationCancelled:
			st.Cancelled++
		}
		if r.Status != domain.ReservationCancelled {
			st.Revenue += r.TotalPrice
		}
	}
	return st
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	rs, err := s.store.FindAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(rs), nil
}

// BuildActiveBookings keeps confirmed stays that have not ended as of ref
// and decorates them with elapsed/remaining night counts. Optional roomID
// narrows to one room (0 = all).
func BuildActiveBookings(rs []domain.Reservation, ref time.Time, roomID int64) []ActiveBooking {
	out := make([]ActiveBooking, 0, len(rs))
	for _, r := range rs {
		if r.Status != domain.ReservationConfirmed {
			continue
		}
		if daterange.NightsRemaining(r.CheckOut, ref) == 0 {
			continue
		}
		if roomID != 0 && r.RoomID != roomID {
			continue
		}
		out = append(out, ActiveBooking{
			Reservation:     r,
			NightsStayed:    daterange.NightsElapsed(r.CheckIn, ref),
			RemainingNights: daterange.NightsRemaining(r.CheckOut, ref),
		})
	}
	return out
}

func (s *Service) ActiveBookings(ctx context.Context, roomID int64) ([]ActiveBooking, error) {
	rs, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildActiveBookings(rs, time.Now(), roomID), nil
}
