package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-management-backend/models"
)

const dateLayout = "2006-01-02"

// BookingService orchestrates the booking lifecycle: reservation, check-in,
// check-out and cancellation, coordinating room status and payment records.
type BookingService struct {
	DB *gorm.DB

	// now is injectable for tests of the date validation rules.
	now func() time.Time
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db, now: time.Now}
}

// CreateBookingInput carries the reservation request as entered by an
// operator: the guest and room are addressed by their user-visible keys.
type CreateBookingInput struct {
	GuestUsername string
	RoomNumber    string
	CheckIn       string // YYYY-MM-DD
	CheckOut      string // YYYY-MM-DD
	PaymentMethod models.PaymentMethod
}

// CreateBooking reserves a room for a guest. The booking row, its payment
// record and the room status change are written in a single transaction so a
// failure cannot leave a paid-for reservation half applied.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	checkIn, checkOut, err := s.validateBookingDates(in)
	if err != nil {
		return nil, err
	}
	if !in.PaymentMethod.Valid() {
		return nil, validationf("invalid payment method %q", in.PaymentMethod)
	}

	var guest models.User
	if err := s.DB.Where("username = ?", strings.TrimSpace(in.GuestUsername)).First(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: guest %q", ErrNotFound, in.GuestUsername)
		}
		return nil, fmt.Errorf("failed to look up guest: %w", err)
	}

	var bookingID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Where("room_number = ?", strings.TrimSpace(in.RoomNumber)).
			First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: room %q", ErrNotFound, in.RoomNumber)
			}
			return fmt.Errorf("failed to look up room: %w", err)
		}

		if !room.IsAvailable() {
			return fmt.Errorf("%w: room %s is %s", ErrRoomUnavailable, room.RoomNumber, room.Status)
		}

		conflict, err := hasConflict(tx, room.ID, checkIn, checkOut, 0)
		if err != nil {
			return err
		}
		if conflict {
			return fmt.Errorf("%w: room %s is already booked for the selected dates", ErrConflict, room.RoomNumber)
		}

		nights := StayNights(checkIn, checkOut)
		if nights < 1 {
			nights = 1 // minimum stay of one night on the creation path
		}
		totalPrice := room.Price * float64(nights)

		booking := models.Booking{
			GuestID:      guest.ID,
			RoomID:       room.ID,
			CheckInDate:  datatypes.Date(checkIn),
			CheckOutDate: datatypes.Date(checkOut),
			TotalPrice:   totalPrice,
			Status:       models.BookingBooked,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		bookingID = booking.ID

		payment := models.Payment{
			BookingID:   booking.ID,
			Amount:      totalPrice,
			PaymentDate: s.now(),
			Method:      in.PaymentMethod,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).
			Update("status", models.RoomBooked).Error; err != nil {
			return fmt.Errorf("failed to update room status: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetBookingByID(bookingID)
}

func (s *BookingService) validateBookingDates(in CreateBookingInput) (checkIn, checkOut time.Time, err error) {
	if strings.TrimSpace(in.GuestUsername) == "" {
		return checkIn, checkOut, validationf("guest username is required")
	}
	if strings.TrimSpace(in.RoomNumber) == "" {
		return checkIn, checkOut, validationf("room number is required")
	}
	if in.CheckIn == "" {
		return checkIn, checkOut, validationf("check-in date is required")
	}
	if in.CheckOut == "" {
		return checkIn, checkOut, validationf("check-out date is required")
	}

	checkIn, err = time.Parse(dateLayout, in.CheckIn)
	if err != nil {
		return checkIn, checkOut, validationf("invalid check-in date %q", in.CheckIn)
	}
	checkOut, err = time.Parse(dateLayout, in.CheckOut)
	if err != nil {
		return checkIn, checkOut, validationf("invalid check-out date %q", in.CheckOut)
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, validationf("check-out date must be after check-in date")
	}
	// Parsed dates are UTC midnights, so today must be the UTC date too or a
	// same-day booking fails on servers west of Greenwich.
	if checkIn.Before(dateOnly(s.now().UTC())) {
		return checkIn, checkOut, validationf("check-in date cannot be in the past")
	}
	return checkIn, checkOut, nil
}

// CheckInGuest moves a booking from Booked to Checked-In. Any other current
// status is rejected, so repeated calls fail cleanly instead of looping the
// state machine.
func (s *BookingService) CheckInGuest(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		booking, err := fetchBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if booking.Status != models.BookingBooked {
			return validationf("cannot check in a booking with status %s", booking.Status)
		}
		if err := tx.Model(booking).Update("status", models.BookingCheckedIn).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		return nil
	})
}

// CheckOutGuest moves a booking from Checked-In to Checked-Out and releases
// the room back to Available.
func (s *BookingService) CheckOutGuest(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		booking, err := fetchBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if booking.Status != models.BookingCheckedIn {
			return validationf("cannot check out a booking with status %s", booking.Status)
		}
		if err := tx.Model(booking).Update("status", models.BookingCheckedOut).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		if err := tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
			Update("status", models.RoomAvailable).Error; err != nil {
			return fmt.Errorf("failed to release room: %w", err)
		}
		return nil
	})
}

// CancelBooking cancels a Booked or Checked-In reservation. Only cancelling a
// Booked reservation releases the room: a cancelled Checked-In stay leaves the
// room status for housekeeping to resolve.
func (s *BookingService) CancelBooking(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		booking, err := fetchBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if booking.Status.Terminal() {
			return validationf("cannot cancel a booking with status %s", booking.Status)
		}
		wasBooked := booking.Status == models.BookingBooked

		if err := tx.Model(booking).Update("status", models.BookingCancelled).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		if wasBooked {
			if err := tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
				Update("status", models.RoomAvailable).Error; err != nil {
				return fmt.Errorf("failed to release room: %w", err)
			}
		}
		return nil
	})
}

// DeleteBooking removes a booking administratively, bypassing the lifecycle
// rules. The room status is left untouched.
func (s *BookingService) DeleteBooking(bookingID uint) error {
	result := s.DB.Delete(&models.Booking{}, bookingID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
	}
	log.Printf("booking %d deleted administratively", bookingID)
	return nil
}

// GetBookingByID returns the booking with guest and room display fields
// joined in.
func (s *BookingService) GetBookingByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Guest").Preload("Room").Preload("Payment").
		First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}

// GetAllBookings lists every booking, newest first.
func (s *BookingService) GetAllBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Preload("Guest").Preload("Room").
		Order("id DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return bookings, nil
}

// GetGuestBookings lists the bookings belonging to a guest username, most
// recent stay first.
func (s *BookingService) GetGuestBookings(username string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Preload("Guest").Preload("Room").
		Joins("JOIN users ON users.id = bookings.guest_id").
		Where("users.username = ?", username).
		Order("check_in_date DESC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve guest bookings: %w", err)
	}
	return bookings, nil
}

func fetchBooking(tx *gorm.DB, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
		}
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}
	return &booking, nil
}
