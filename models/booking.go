package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingBooked     BookingStatus = "Booked"
	BookingCheckedIn  BookingStatus = "Checked-In"
	BookingCheckedOut BookingStatus = "Checked-Out"
	BookingCancelled  BookingStatus = "Cancelled"
)

// Active bookings are the ones that count toward availability conflicts.
func (s BookingStatus) Active() bool {
	return s == BookingBooked || s == BookingCheckedIn
}

// Terminal statuses permit no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingCheckedOut || s == BookingCancelled
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GuestID uint `gorm:"index;column:guest_id" json:"guest_id"`
	RoomID  uint `gorm:"index;column:room_id" json:"room_id"`

	// Dates are stored date-only; the stay is the half-open interval
	// [check_in_date, check_out_date).
	CheckInDate  datatypes.Date `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate datatypes.Date `gorm:"column:check_out_date" json:"check_out_date"`

	TotalPrice float64       `gorm:"column:total_price" json:"total_price"`
	Status     BookingStatus `gorm:"size:50" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Guest   User     `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
	Room    Room     `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Payment *Payment `gorm:"foreignKey:BookingID" json:"payment,omitempty"`
}

// Nights returns the length of the stay in whole nights.
func (b *Booking) Nights() int {
	in := time.Time(b.CheckInDate)
	out := time.Time(b.CheckOutDate)
	return int(out.Sub(in).Hours() / 24)
}
