package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStayNights(t *testing.T) {
	testCases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{"single night", date(2026, 3, 10), date(2026, 3, 11), 1},
		{"two nights", date(2026, 3, 10), date(2026, 3, 12), 2},
		{"week", date(2026, 3, 1), date(2026, 3, 8), 7},
		{"across month boundary", date(2026, 3, 30), date(2026, 4, 2), 3},
		{"zero-length stay", date(2026, 3, 10), date(2026, 3, 10), 0},
		{"inverted dates clamp to zero", date(2026, 3, 12), date(2026, 3, 10), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StayNights(tc.checkIn, tc.checkOut))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	testCases := []struct {
		name     string
		rate     float64
		checkIn  time.Time
		checkOut time.Time
		expected float64
	}{
		{"hundred a night for two nights", 100, date(2026, 3, 10), date(2026, 3, 12), 200},
		{"fractional rate", 99.50, date(2026, 3, 10), date(2026, 3, 12), 199},
		{"one night", 150, date(2026, 3, 10), date(2026, 3, 11), 150},
		{"checkout equals checkin", 100, date(2026, 3, 10), date(2026, 3, 10), 0},
		{"checkout before checkin", 100, date(2026, 3, 12), date(2026, 3, 10), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, TotalPrice(tc.rate, tc.checkIn, tc.checkOut), 0.001)
		})
	}
}
