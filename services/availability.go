package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-management-backend/models"
)

// HasConflict reports whether an active booking (Booked or Checked-In) on the
// room overlaps the half-open interval [checkIn, checkOut). excludeBookingID,
// when positive, removes that booking from the conflict set so an existing
// reservation can be re-validated against its own dates.
//
// Half-open semantics: existing.checkIn < requested.checkOut AND
// existing.checkOut > requested.checkIn. Back-to-back stays where one ends the
// day the other starts do not conflict.
func (s *BookingService) HasConflict(roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	return hasConflict(s.DB, roomID, checkIn, checkOut, excludeBookingID)
}

func hasConflict(db *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	query := db.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []models.BookingStatus{models.BookingBooked, models.BookingCheckedIn}).
		Where("check_in_date < ? AND check_out_date > ?", dateOnly(checkOut), dateOnly(checkIn))

	if excludeBookingID > 0 {
		query = query.Where("id != ?", excludeBookingID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check booking conflicts for room %d: %w", roomID, err)
	}
	return count > 0, nil
}
