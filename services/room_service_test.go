package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"hotel-management-backend/models"
)

func TestCreateRoom(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	room, err := svc.CreateRoom(" 101 ", models.RoomTypeDeluxe, 150)
	require.NoError(t, err)

	assert.Equal(t, "101", room.RoomNumber)
	assert.Equal(t, models.RoomTypeDeluxe, room.Type)
	assert.Equal(t, models.RoomAvailable, room.Status)
	assert.InDelta(t, 150.0, room.Price, 0.001)
}

func TestCreateRoomValidation(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	testCases := []struct {
		name       string
		roomNumber string
		roomType   models.RoomType
		price      float64
	}{
		{"blank number", "  ", models.RoomTypeStandard, 100},
		{"unknown type", "101", "Penthouse", 100},
		{"zero price", "101", models.RoomTypeStandard, 0},
		{"negative price", "101", models.RoomTypeStandard, -10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateRoom(tc.roomNumber, tc.roomType, tc.price)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreateRoomRejectsDuplicateNumber(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	_, err := svc.CreateRoom("101", models.RoomTypeStandard, 100)
	require.NoError(t, err)

	_, err = svc.CreateRoom("101", models.RoomTypeSuite, 300)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestUpdateRoomLeavesStatusAndNumber(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	created, err := svc.CreateRoom("101", models.RoomTypeStandard, 100)
	require.NoError(t, err)

	_, err = svc.UpdateRoomStatus(created.ID, models.RoomCleaning)
	require.NoError(t, err)

	updated, err := svc.UpdateRoom(created.ID, models.RoomTypeSuite, 280)
	require.NoError(t, err)
	assert.Equal(t, models.RoomTypeSuite, updated.Type)
	assert.InDelta(t, 280.0, updated.Price, 0.001)

	reloaded, err := svc.GetRoomByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "101", reloaded.RoomNumber)
	assert.Equal(t, models.RoomCleaning, reloaded.Status)
}

func TestUpdateRoomStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	created, err := svc.CreateRoom("101", models.RoomTypeStandard, 100)
	require.NoError(t, err)

	_, err = svc.UpdateRoomStatus(created.ID, "Haunted")
	assert.True(t, IsValidation(err))
}

func TestDeleteRoomBlockedByBookingHistory(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	guest := seedUser(t, db, "alice", "irrelevant", models.RoleGuest)
	room := seedRoom(t, db, "101", 100)

	booking := models.Booking{
		GuestID:      guest.ID,
		RoomID:       room.ID,
		CheckInDate:  datatypes.Date(mustDate(t, "2026-03-10")),
		CheckOutDate: datatypes.Date(mustDate(t, "2026-03-12")),
		TotalPrice:   200,
		Status:       models.BookingCancelled,
	}
	require.NoError(t, db.Create(&booking).Error)

	// Even a cancelled or soft-deleted booking pins the room.
	assert.ErrorIs(t, svc.DeleteRoom(room.ID), ErrRoomReferenced)

	require.NoError(t, db.Delete(&booking).Error)
	assert.ErrorIs(t, svc.DeleteRoom(room.ID), ErrRoomReferenced)
}

func TestDeleteRoomWithoutHistory(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	room := seedRoom(t, db, "101", 100)
	require.NoError(t, svc.DeleteRoom(room.ID))

	_, err := svc.GetRoomByID(room.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.DeleteRoom(room.ID), ErrNotFound)
}

func TestGetRoomByNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	seedRoom(t, db, "101", 100)

	room, err := svc.GetRoomByNumber(" 101 ")
	require.NoError(t, err)
	assert.Equal(t, "101", room.RoomNumber)

	_, err = svc.GetRoomByNumber("999")
	assert.ErrorIs(t, err, ErrNotFound)
}
