package daterange

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when a check-out date is not strictly after
// the check-in date (minimum stay is one night).
var ErrInvalidRange = errors.New("invalid date range")

const nightHours = 24 * time.Hour

// Day truncates t to midnight UTC. All range math in this package works on
// calendar days, not clock times.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights returns the number of whole nights between checkIn and checkOut.
func Nights(checkIn, checkOut time.Time) (int, error) {
	in, out := Day(checkIn), Day(checkOut)
	if !out.After(in) {
		return 0, ErrInvalidRange
	}
	return int(out.Sub(in) / nightHours), nil
}

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching ranges (one's check-out equals the
// other's check-in) do not overlap, so back-to-back bookings are allowed.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	as, ae := Day(aStart), Day(aEnd)
	bs, be := Day(bStart), Day(bEnd)
	return as.Before(be) && bs.Before(ae)
}

// NightsElapsed returns how many nights of the stay have passed as of ref,
// clamped at zero.
func NightsElapsed(checkIn, ref time.Time) int {
	n := int(Day(ref).Sub(Day(checkIn)) / nightHours)
	if n < 0 {
		return 0
	}
	return n
}

// NightsRemaining returns how many nights remain until checkOut as of ref,
// clamped at zero.
func NightsRemaining(checkOut, ref time.Time) int {
	n := int(Day(checkOut).Sub(Day(ref)) / nightHours)
	if n < 0 {
		return 0
	}
	return n
}
