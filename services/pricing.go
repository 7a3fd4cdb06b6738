package services

import "time"

// StayNights returns the number of whole nights in the half-open interval
// [checkIn, checkOut). Non-positive spans return 0.
func StayNights(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// TotalPrice computes nightlyRate x nights. A check-out on or before the
// check-in yields 0; callers must treat that as invalid input. The booking
// creation path separately floors the night count to 1.
func TotalPrice(nightlyRate float64, checkIn, checkOut time.Time) float64 {
	if !checkOut.After(checkIn) {
		return 0
	}
	return nightlyRate * float64(StayNights(checkIn, checkOut))
}

// dateOnly truncates t to midnight in its location. Booking intervals are
// night-granular, so every comparison happens on truncated dates.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
