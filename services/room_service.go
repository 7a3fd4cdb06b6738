package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hotel-management-backend/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) CreateRoom(roomNumber string, roomType models.RoomType, price float64) (*models.Room, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return nil, validationf("room number is required")
	}
	if !roomType.Valid() {
		return nil, validationf("invalid room type %q", roomType)
	}
	if price <= 0 {
		return nil, validationf("nightly price must be positive")
	}

	var count int64
	if err := s.DB.Model(&models.Room{}).Where("room_number = ?", roomNumber).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check room number availability: %w", err)
	}
	if count > 0 {
		return nil, validationf("room number %q already exists", roomNumber)
	}

	room := models.Room{
		RoomNumber: roomNumber,
		Type:       roomType,
		Price:      price,
		Status:     models.RoomAvailable,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) GetAllRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to retrieve room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) GetRoomByNumber(roomNumber string) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Where("room_number = ?", strings.TrimSpace(roomNumber)).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room %q", ErrNotFound, roomNumber)
		}
		return nil, fmt.Errorf("failed to retrieve room: %w", err)
	}
	return &room, nil
}

// UpdateRoom changes type and price. Status changes go through
// UpdateRoomStatus so the lifecycle manager stays the only writer of
// booking-driven statuses.
func (s *RoomService) UpdateRoom(id uint, roomType models.RoomType, price float64) (*models.Room, error) {
	if !roomType.Valid() {
		return nil, validationf("invalid room type %q", roomType)
	}
	if price <= 0 {
		return nil, validationf("nightly price must be positive")
	}

	room, err := s.GetRoomByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"type": roomType, "price": price}
	if err := s.DB.Model(room).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return room, nil
}

// UpdateRoomStatus sets an operational status (Maintenance, Cleaning, Out of
// Order, back to Available) on a room.
func (s *RoomService) UpdateRoomStatus(id uint, status models.RoomStatus) (*models.Room, error) {
	if !status.Valid() {
		return nil, validationf("invalid room status %q", status)
	}

	room, err := s.GetRoomByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(room).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update room status: %w", err)
	}
	return room, nil
}

// DeleteRoom removes a room that no booking references. Rooms with booking
// history are never hard-deleted.
func (s *RoomService) DeleteRoom(id uint) error {
	room, err := s.GetRoomByID(id)
	if err != nil {
		return err
	}

	var count int64
	if err := s.DB.Model(&models.Booking{}).Unscoped().
		Where("room_id = ?", room.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check room references: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: room %s has %d booking(s)", ErrRoomReferenced, room.RoomNumber, count)
	}

	if err := s.DB.Delete(room).Error; err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
