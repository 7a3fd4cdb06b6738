package models

import "time"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomBooked      RoomStatus = "Booked"
	RoomOccupied    RoomStatus = "Occupied"
	RoomMaintenance RoomStatus = "Maintenance"
	RoomCleaning    RoomStatus = "Cleaning"
	RoomOutOfOrder  RoomStatus = "Out of Order"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomBooked, RoomOccupied, RoomMaintenance, RoomCleaning, RoomOutOfOrder:
		return true
	}
	return false
}

type RoomType string

const (
	RoomTypeStandard RoomType = "Standard"
	RoomTypeDeluxe   RoomType = "Deluxe"
	RoomTypeSuite    RoomType = "Suite"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite:
		return true
	}
	return false
}

type Room struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	RoomNumber string     `gorm:"column:room_number;uniqueIndex;size:50" json:"roomNumber"`
	Type       RoomType   `gorm:"size:50" json:"type"`
	Price      float64    `json:"price"` // nightly rate
	Status     RoomStatus `gorm:"size:50" json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (r *Room) IsAvailable() bool {
	return r.Status == RoomAvailable
}
