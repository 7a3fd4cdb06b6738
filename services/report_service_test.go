package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-management-backend/models"
)

func seedPayment(t *testing.T, db *gorm.DB, bookingID uint, amount float64, paidAt time.Time, method models.PaymentMethod) {
	t.Helper()

	payment := models.Payment{
		BookingID:   bookingID,
		Amount:      amount,
		PaymentDate: paidAt,
		Method:      method,
	}
	require.NoError(t, db.Create(&payment).Error)
}

func seedBooking(t *testing.T, db *gorm.DB, guestID, roomID uint, checkIn, checkOut string, status models.BookingStatus) *models.Booking {
	t.Helper()

	booking := models.Booking{
		GuestID:      guestID,
		RoomID:       roomID,
		CheckInDate:  datatypes.Date(mustDate(t, checkIn)),
		CheckOutDate: datatypes.Date(mustDate(t, checkOut)),
		TotalPrice:   100,
		Status:       status,
	}
	require.NoError(t, db.Create(&booking).Error)
	return &booking
}

func newReportFixture(t *testing.T) (*ReportService, *models.User, *models.Room) {
	t.Helper()

	db := newTestDB(t)
	svc := NewReportService(db)
	svc.now = fixedClock("2026-03-10T12:00:00Z")

	guest := seedUser(t, db, "alice", "irrelevant", models.RoleGuest)
	room := seedRoom(t, db, "101", 100)
	return svc, guest, room
}

func TestRevenueTotals(t *testing.T) {
	svc, guest, room := newReportFixture(t)

	b1 := seedBooking(t, svc.DB, guest.ID, room.ID, "2026-01-05", "2026-01-07", models.BookingCheckedOut)
	b2 := seedBooking(t, svc.DB, guest.ID, room.ID, "2026-02-10", "2026-02-12", models.BookingCheckedOut)
	b3 := seedBooking(t, svc.DB, guest.ID, room.ID, "2026-03-10", "2026-03-12", models.BookingBooked)

	seedPayment(t, svc.DB, b1.ID, 200, mustDate(t, "2026-01-05"), models.PaymentCash)
	seedPayment(t, svc.DB, b2.ID, 150, mustDate(t, "2026-02-10"), models.PaymentCreditCard)
	seedPayment(t, svc.DB, b3.ID, 300, svc.now(), models.PaymentCreditCard)

	total, err := svc.TotalRevenue()
	require.NoError(t, err)
	assert.InDelta(t, 650.0, total, 0.001)

	today, err := svc.TodayRevenue()
	require.NoError(t, err)
	assert.InDelta(t, 300.0, today, 0.001)
}

func TestTotalRevenueEmpty(t *testing.T) {
	svc, _, _ := newReportFixture(t)

	total, err := svc.TotalRevenue()
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestRevenueByMonth(t *testing.T) {
	svc, guest, room := newReportFixture(t)

	b := seedBooking(t, svc.DB, guest.ID, room.ID, "2026-01-05", "2026-01-07", models.BookingCheckedOut)
	seedPayment(t, svc.DB, b.ID, 200, mustDate(t, "2026-01-05"), models.PaymentCash)
	seedPayment(t, svc.DB, b.ID, 100, mustDate(t, "2026-01-20"), models.PaymentCash)
	seedPayment(t, svc.DB, b.ID, 150, mustDate(t, "2026-02-10"), models.PaymentCash)

	rows, err := svc.RevenueByMonth()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2026-01", rows[0].Month)
	assert.InDelta(t, 300.0, rows[0].Total, 0.001)
	assert.Equal(t, "2026-02", rows[1].Month)
	assert.InDelta(t, 150.0, rows[1].Total, 0.001)
}

func TestRevenueByMethod(t *testing.T) {
	svc, guest, room := newReportFixture(t)

	b := seedBooking(t, svc.DB, guest.ID, room.ID, "2026-01-05", "2026-01-07", models.BookingCheckedOut)
	seedPayment(t, svc.DB, b.ID, 200, mustDate(t, "2026-01-05"), models.PaymentCash)
	seedPayment(t, svc.DB, b.ID, 100, mustDate(t, "2026-01-06"), models.PaymentCash)
	seedPayment(t, svc.DB, b.ID, 500, mustDate(t, "2026-01-07"), models.PaymentCreditCard)

	rows, err := svc.RevenueByMethod()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byMethod := make(map[models.PaymentMethod]MethodRevenue, len(rows))
	for _, row := range rows {
		byMethod[row.Method] = row
	}

	assert.InDelta(t, 300.0, byMethod[models.PaymentCash].Total, 0.001)
	assert.EqualValues(t, 2, byMethod[models.PaymentCash].Count)
	assert.InDelta(t, 500.0, byMethod[models.PaymentCreditCard].Total, 0.001)
	assert.EqualValues(t, 1, byMethod[models.PaymentCreditCard].Count)
}

func TestRoomStatistics(t *testing.T) {
	svc, _, _ := newReportFixture(t)

	second := seedRoom(t, svc.DB, "102", 120)
	seedRoom(t, svc.DB, "103", 90)
	require.NoError(t, svc.DB.Model(second).Update("status", models.RoomMaintenance).Error)

	rows, err := svc.RoomStatistics()
	require.NoError(t, err)

	counts := make(map[models.RoomStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	assert.EqualValues(t, 2, counts[models.RoomAvailable])
	assert.EqualValues(t, 1, counts[models.RoomMaintenance])
}

func TestTodayActivity(t *testing.T) {
	svc, guest, room := newReportFixture(t)
	other := seedRoom(t, svc.DB, "102", 120)

	// Arriving today and still Booked: listed.
	arriving := seedBooking(t, svc.DB, guest.ID, room.ID, "2026-03-10", "2026-03-12", models.BookingBooked)
	// Arriving today but already cancelled: not listed.
	seedBooking(t, svc.DB, guest.ID, other.ID, "2026-03-10", "2026-03-11", models.BookingCancelled)
	// Arriving tomorrow: not listed.
	seedBooking(t, svc.DB, guest.ID, other.ID, "2026-03-11", "2026-03-13", models.BookingBooked)
	// Departing today and Checked-In: listed.
	departing := seedBooking(t, svc.DB, guest.ID, other.ID, "2026-03-08", "2026-03-10", models.BookingCheckedIn)

	checkIns, err := svc.TodayCheckIns()
	require.NoError(t, err)
	require.Len(t, checkIns, 1)
	assert.Equal(t, arriving.ID, checkIns[0].ID)

	checkOuts, err := svc.TodayCheckOuts()
	require.NoError(t, err)
	require.Len(t, checkOuts, 1)
	assert.Equal(t, departing.ID, checkOuts[0].ID)
}

func TestBookingCount(t *testing.T) {
	svc, guest, room := newReportFixture(t)

	seedBooking(t, svc.DB, guest.ID, room.ID, "2026-03-10", "2026-03-12", models.BookingBooked)
	seedBooking(t, svc.DB, guest.ID, room.ID, "2026-04-01", "2026-04-03", models.BookingBooked)

	count, err := svc.BookingCount()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
