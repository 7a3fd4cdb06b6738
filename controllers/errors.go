package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

// handleServiceError translates the service failure taxonomy into an HTTP
// response. Persistence failures are logged and reported with a generic
// message; everything else carries its own user-facing text.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrRoomReferenced),
		errors.Is(err, services.ErrUserReferenced):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, services.ErrAccountLocked):
		utils.JSONError(c, http.StatusLocked, err.Error())
	case errors.Is(err, services.ErrSessionExpired):
		utils.JSONError(c, http.StatusUnauthorized, "session expired or invalid")
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	default:
		log.Printf("database error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
	}
}
