package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-management-backend/models"
)

// EnvOrDefault returns the trimmed ENV value or the fallback default.
func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func resolveMySQLDSN() string {
	if raw := strings.TrimSpace(os.Getenv("MYSQL_URL")); raw != "" {
		return raw
	}

	cfg := mysqldriver.NewConfig()
	cfg.User = EnvOrDefault("DB_USER", "root")
	cfg.Passwd = EnvOrDefault("DB_PASS", "")
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%s", EnvOrDefault("DB_HOST", "127.0.0.1"), EnvOrDefault("DB_PORT", "3306"))
	cfg.DBName = EnvOrDefault("DB_NAME", "hotel_db")
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

// ConnectDatabase opens the configured database and applies migrations.
// DB_DRIVER selects mysql (default) or sqlite; sqlite is meant for local
// development and keeps the same schema.
func ConnectDatabase() (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	var dialector gorm.Dialector
	switch driver := EnvOrDefault("DB_DRIVER", "mysql"); driver {
	case "sqlite":
		dialector = sqlite.Open(EnvOrDefault("SQLITE_PATH", "hotel.db"))
	case "mysql":
		dialector = mysql.Open(resolveMySQLDSN())
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	// Parent tables first so FK constraints resolve.
	if err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.Payment{},
	); err != nil {
		return nil, err
	}

	if err := SeedDatabase(db); err != nil {
		return nil, err
	}
	return db, nil
}

// SeedDatabase creates the default admin account and a starter set of rooms
// when the corresponding tables are empty.
func SeedDatabase(db *gorm.DB) error {
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		password := EnvOrDefault("ADMIN_PASSWORD", "ChangeMe@123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash default admin password: %w", err)
		}
		admin := models.User{
			Username: EnvOrDefault("ADMIN_USERNAME", "admin"),
			Password: string(hash),
			Role:     models.RoleAdmin,
			FullName: "System Administrator",
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed default admin: %w", err)
		}
		log.Println("Default admin seeded")
	}

	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", Type: models.RoomTypeStandard, Price: 100, Status: models.RoomAvailable},
			{RoomNumber: "102", Type: models.RoomTypeStandard, Price: 100, Status: models.RoomAvailable},
			{RoomNumber: "201", Type: models.RoomTypeDeluxe, Price: 180, Status: models.RoomAvailable},
			{RoomNumber: "202", Type: models.RoomTypeDeluxe, Price: 180, Status: models.RoomAvailable},
			{RoomNumber: "301", Type: models.RoomTypeSuite, Price: 320, Status: models.RoomAvailable},
		}
		if err := db.Create(&rooms).Error; err != nil {
			return fmt.Errorf("failed to seed rooms: %w", err)
		}
		log.Println("Starter rooms seeded")
	}

	return nil
}
