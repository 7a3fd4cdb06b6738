package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-management-backend/models"
)

// ReportService reads aggregate figures straight from the database. No
// business rules live here.
type ReportService struct {
	DB *gorm.DB

	now func() time.Time
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db, now: time.Now}
}

type MonthlyRevenue struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
}

type MethodRevenue struct {
	Method models.PaymentMethod `json:"method"`
	Total  float64              `json:"total"`
	Count  int64                `json:"count"`
}

type RoomStatusCount struct {
	Status models.RoomStatus `json:"status"`
	Count  int64             `json:"count"`
}

func (s *ReportService) TotalRevenue() (float64, error) {
	var total float64
	if err := s.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to compute total revenue: %w", err)
	}
	return total, nil
}

// RevenueByMonth groups payment totals by calendar month. The month
// extraction expression is dialect-specific.
func (s *ReportService) RevenueByMonth() ([]MonthlyRevenue, error) {
	monthExpr := "DATE_FORMAT(payment_date, '%Y-%m')"
	if s.DB.Dialector.Name() == "sqlite" {
		monthExpr = "strftime('%Y-%m', payment_date)"
	}

	var rows []MonthlyRevenue
	if err := s.DB.Model(&models.Payment{}).
		Select(monthExpr + " AS month, SUM(amount) AS total").
		Group("month").
		Order("month").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to compute monthly revenue: %w", err)
	}
	return rows, nil
}

func (s *ReportService) RevenueByMethod() ([]MethodRevenue, error) {
	var rows []MethodRevenue
	if err := s.DB.Model(&models.Payment{}).
		Select("method, SUM(amount) AS total, COUNT(*) AS count").
		Group("method").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to compute revenue by method: %w", err)
	}
	return rows, nil
}

func (s *ReportService) TodayRevenue() (float64, error) {
	start := dateOnly(s.now())
	end := start.AddDate(0, 0, 1)

	var total float64
	if err := s.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_date >= ? AND payment_date < ?", start, end).
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to compute today's revenue: %w", err)
	}
	return total, nil
}

func (s *ReportService) RoomStatistics() ([]RoomStatusCount, error) {
	var rows []RoomStatusCount
	if err := s.DB.Model(&models.Room{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to compute room statistics: %w", err)
	}
	return rows, nil
}

// TodayCheckIns lists the bookings due to arrive today and still Booked.
func (s *ReportService) TodayCheckIns() ([]models.Booking, error) {
	start := dateOnly(s.now())
	end := start.AddDate(0, 0, 1)

	var bookings []models.Booking
	if err := s.DB.Preload("Guest").Preload("Room").
		Where("check_in_date >= ? AND check_in_date < ?", start, end).
		Where("status = ?", models.BookingBooked).
		Order("check_in_date").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve today's check-ins: %w", err)
	}
	return bookings, nil
}

// TodayCheckOuts lists the bookings due to depart today and still Checked-In.
func (s *ReportService) TodayCheckOuts() ([]models.Booking, error) {
	start := dateOnly(s.now())
	end := start.AddDate(0, 0, 1)

	var bookings []models.Booking
	if err := s.DB.Preload("Guest").Preload("Room").
		Where("check_out_date >= ? AND check_out_date < ?", start, end).
		Where("status = ?", models.BookingCheckedIn).
		Order("check_out_date").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve today's check-outs: %w", err)
	}
	return bookings, nil
}

func (s *ReportService) BookingCount() (int64, error) {
	var count int64
	if err := s.DB.Model(&models.Booking{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}
