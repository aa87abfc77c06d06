package booking

import (
	"context"
	"log"
	"time"

	"hotelier/internal/domain"
	"hotelier/internal/pkg/daterange"
)

// Checker answers "is this room free for [checkIn, checkOut)?" against the
// reservation store. It is read-only.
type Checker struct {
	store ReservationStore
}

func NewChecker(store ReservationStore) *Checker {
	return &Checker{store: store}
}

// IsAvailable reports whether no non-cancelled reservation on the room
// overlaps the candidate range. excludeID skips one reservation, so an
// extension never conflicts with itself; pass 0 to exclude nothing.
//
// FAIL-OPEN POLICY: when the store read fails, the room is reported
// available and a warning is logged. A guest is never blocked by an
// infrastructure outage; the store's atomic insert is the backstop that
// keeps the no-overlap invariant even when this check is skipped.
func (c *Checker) IsAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID int64) (bool, error) {
	existing, err := c.store.FindByRoom(ctx, roomID, domain.ReservationCancelled)
	if err != nil {
		log.Printf("availability_degraded room_id=%d error=%q fail_open=true", roomID, err.Error())
		return true, nil
	}

	for _, r := range existing {
		if r.ID == excludeID {
			continue
		}
		if daterange.Overlaps(r.CheckIn, r.CheckOut, checkIn, checkOut) {
			return false, nil
		}
	}
	return true, nil
}
