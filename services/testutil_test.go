package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-management-backend/models"
)

// newTestDB opens a throwaway SQLite database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.Payment{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, password string, role models.Role) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username: username,
		Password: string(hash),
		Role:     role,
		FullName: "Test " + username,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedRoom(t *testing.T, db *gorm.DB, number string, price float64) *models.Room {
	t.Helper()

	room := models.Room{
		RoomNumber: number,
		Type:       models.RoomTypeStandard,
		Price:      price,
		Status:     models.RoomAvailable,
	}
	require.NoError(t, db.Create(&room).Error)
	return &room
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	d, err := time.Parse(dateLayout, value)
	require.NoError(t, err)
	return d
}

func fixedClock(value string) func() time.Time {
	base, _ := time.Parse(time.RFC3339, value)
	return func() time.Time { return base }
}
