package admin

import (
	"sort"
	"strings"

	"hotelier/internal/domain"
)

// Pure search/filter/sort over reservation snapshots for the dashboard
// views. None of these mutate their input; they compose in any order.

type SortDirection string

const (
	Ascending  SortDirection = "ascending"
	Descending SortDirection = "descending"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// FilterBySearchTerm keeps reservations whose guest name or email contains
// term case-insensitively, or whose phone contains it verbatim (phone
// numbers carry symbols, so no case folding there). An empty term returns
// the input unchanged.
func FilterBySearchTerm(rs []domain.Reservation, term string) []domain.Reservation {
	if term == "" {
		return rs
	}

	lowered := strings.ToLower(term)
	out := make([]domain.Reservation, 0, len(rs))
	for _, r := range rs {
		if strings.Contains(strings.ToLower(r.GuestName), lowered) ||
			strings.Contains(strings.ToLower(r.Email), lowered) ||
			strings.Contains(r.Phone, term) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByStatus keeps reservations with exactly the given status. The
// "all" sentinel (or an empty string) returns the input unchanged.
func FilterByStatus(rs []domain.Reservation, status string) []domain.Reservation {
	if status == "" || status == StatusAll {
		return rs
	}

	out := make([]domain.Reservation, 0, len(rs))
	for _, r := range rs {
		if string(r.Status) == status {
			out = append(out, r)
		}
	}
	return out
}

// SortReservations returns a sorted copy. The sort is stable: ties keep
// their original relative order. Date keys compare the underlying time
// values, not string forms. An unknown or empty key returns a plain copy.
func SortReservations(rs []domain.Reservation, key string, direction SortDirection) []domain.Reservation {
	out := append([]domain.Reservation(nil), rs...)

	less := lessFunc(key)
	if less == nil {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if direction == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(key string) func(a, b domain.Reservation) bool {
	switch key {
	case "id":
		return func(a, b domain.Reservation) bool { return a.ID < b.ID }
	case "room_id":
		return func(a, b domain.Reservation) bool { return a.RoomID < b.RoomID }
	case "guest_name":
		return func(a, b domain.Reservation) bool { return a.GuestName < b.GuestName }
	case "email":
		return func(a, b domain.Reservation) bool { return a.Email < b.Email }
	case "phone":
		return func(a, b domain.Reservation) bool { return a.Phone < b.Phone }
	case "check_in":
		return func(a, b domain.Reservation) bool { return a.CheckIn.Before(b.CheckIn) }
	case "check_out":
		return func(a, b domain.Reservation) bool { return a.CheckOut.Before(b.CheckOut) }
	case "adults":
		return func(a, b domain.Reservation) bool { return a.Adults < b.Adults }
	case "children":
		return func(a, b domain.Reservation) bool { return a.Children < b.Children }
	case "total_price":
		return func(a, b domain.Reservation) bool { return a.TotalPrice < b.TotalPrice }
	case "status":
		return func(a, b domain.Reservation) bool { return a.Status < b.Status }
	case "created_at":
		return func(a, b domain.Reservation) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
	return nil
}
