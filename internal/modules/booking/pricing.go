package booking

import (
	"math"
	"time"

	"hotelier/internal/pkg/daterange"
)

// Total prices a stay at the room's nightly rate: rate × nights, rounded to
// cents.
func Total(nightlyRate float64, checkIn, checkOut time.Time) (float64, error) {
	nights, err := daterange.Nights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return roundCents(nightlyRate * float64(nights)), nil
}

// ExtensionTotal prices an extension from the total that was actually
// charged: effective rate = currentTotal / current nights, so a later room
// rate change never reprices the nights already booked. An existing
// reservation with a zero-night range would divide by zero, which is a
// corrupt row, not a pricing question.
func ExtensionTotal(currentTotal float64, checkIn, checkOut time.Time, additionalNights int) (float64, error) {
	nights, err := daterange.Nights(checkIn, checkOut)
	if err != nil || nights == 0 {
		return 0, ErrCorruptState
	}

	effectiveRate := currentTotal / float64(nights)
	return roundCents(currentTotal + effectiveRate*float64(additionalNights)), nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
