package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"hotel-management-backend/models"
)

func TestCreateUser(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.CreateUser("reception", "Str0ng@Key", models.RoleStaff, "Front Desk")
	require.NoError(t, err)

	assert.Equal(t, "reception", user.Username)
	assert.Equal(t, models.RoleStaff, user.Role)
	assert.Equal(t, "Front Desk", user.FullName)

	// The password is stored hashed, never verbatim.
	assert.NotEqual(t, "Str0ng@Key", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Str0ng@Key")))
}

func TestCreateUserValidation(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	testCases := []struct {
		name     string
		username string
		password string
		role     models.Role
		fullName string
	}{
		{"bad username", "a b", "Str0ng@Key", models.RoleStaff, "Front Desk"},
		{"weak password", "reception", "weakpass", models.RoleStaff, "Front Desk"},
		{"missing full name", "reception", "Str0ng@Key", models.RoleStaff, "  "},
		{"unknown role", "reception", "Str0ng@Key", "superuser", "Front Desk"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateUser(tc.username, tc.password, tc.role, tc.fullName)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.CreateUser("reception", "Str0ng@Key", models.RoleStaff, "Front Desk")
	require.NoError(t, err)

	_, err = svc.CreateUser("reception", "Str0ng@Key", models.RoleGuest, "Someone Else")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestUpdateUserKeepsUsernameAndPassword(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	created, err := svc.CreateUser("reception", "Str0ng@Key", models.RoleStaff, "Front Desk")
	require.NoError(t, err)

	updated, err := svc.UpdateUser(created.ID, "Night Shift", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "Night Shift", updated.FullName)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.Equal(t, "reception", updated.Username)

	reloaded, err := svc.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Password, reloaded.Password)
	assert.Equal(t, "Night Shift", reloaded.FullName)
}

func TestUpdateUserNotFound(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.UpdateUser(42, "Nobody", models.RoleGuest)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	created, err := svc.CreateUser("reception", "Str0ng@Key", models.RoleStaff, "Front Desk")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(created.ID))

	_, err = svc.GetUserByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.DeleteUser(created.ID), ErrNotFound)
}

func TestDeleteUserBlockedByBookingHistory(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	guest := seedUser(t, db, "alice", "irrelevant", models.RoleGuest)
	room := seedRoom(t, db, "101", 100)

	booking := models.Booking{
		GuestID:      guest.ID,
		RoomID:       room.ID,
		CheckInDate:  datatypes.Date(mustDate(t, "2026-03-10")),
		CheckOutDate: datatypes.Date(mustDate(t, "2026-03-12")),
		TotalPrice:   200,
		Status:       models.BookingCheckedOut,
	}
	require.NoError(t, db.Create(&booking).Error)

	// Even finished or soft-deleted bookings pin the account.
	assert.ErrorIs(t, svc.DeleteUser(guest.ID), ErrUserReferenced)

	require.NoError(t, db.Delete(&booking).Error)
	assert.ErrorIs(t, svc.DeleteUser(guest.ID), ErrUserReferenced)
}

func TestGetUserByUsername(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.CreateUser("reception", "Str0ng@Key", models.RoleStaff, "Front Desk")
	require.NoError(t, err)

	user, err := svc.GetUserByUsername("reception")
	require.NoError(t, err)
	assert.Equal(t, "reception", user.Username)

	_, err = svc.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
