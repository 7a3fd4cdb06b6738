package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/middleware"
	"hotel-management-backend/models"
	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type createBookingPayload struct {
	GuestUsername string `json:"guest_username"`
	RoomNumber    string `json:"room_number"`
	CheckIn       string `json:"check_in"`  // YYYY-MM-DD
	CheckOut      string `json:"check_out"` // YYYY-MM-DD
	PaymentMethod string `json:"payment_method"`
}

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return 0, false
	}
	return uint(id), true
}

// CreateBooking reserves a room. Guests may only book for themselves; staff
// may book on behalf of any guest.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	session := middleware.SessionFromContext(c)
	if session != nil && !session.IsStaff() {
		payload.GuestUsername = session.Username
	}

	booking, err := bc.Bookings.CreateBooking(services.CreateBookingInput{
		GuestUsername: payload.GuestUsername,
		RoomNumber:    payload.RoomNumber,
		CheckIn:       payload.CheckIn,
		CheckOut:      payload.CheckOut,
		PaymentMethod: models.PaymentMethod(payload.PaymentMethod),
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Bookings.GetAllBookings()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetMyBookings lists the caller's own bookings.
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	bookings, err := bc.Bookings.GetGuestBookings(session.Username)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.Bookings.GetBookingByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Guests may only read their own bookings.
	session := middleware.SessionFromContext(c)
	if session != nil && !session.IsStaff() && booking.Guest.Username != session.Username {
		utils.JSONError(c, http.StatusForbidden, "not your booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) CheckIn(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	if err := bc.Bookings.CheckInGuest(id); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "guest checked in")
}

func (bc *BookingController) CheckOut(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	if err := bc.Bookings.CheckOutGuest(id); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "guest checked out")
}

func (bc *BookingController) Cancel(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	if err := bc.Bookings.CancelBooking(id); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "booking cancelled")
}

// DeleteBooking is the administrative delete that bypasses lifecycle rules.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	if err := bc.Bookings.DeleteBooking(id); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "booking deleted")
}
