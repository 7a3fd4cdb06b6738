package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/middleware"
	"hotel-management-backend/models"
	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

type AuthController struct {
	Auth  *services.AuthService
	Users *services.UserService
}

func NewAuthController(auth *services.AuthService, users *services.UserService) *AuthController {
	return &AuthController{Auth: auth, Users: users}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type changePasswordPayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Login authenticates and returns the session token plus the session state.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	session, err := ac.Auth.Authenticate(payload.Username, payload.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token":    session.Token,
		"username": session.Username,
		"role":     session.Role,
		"fullName": session.FullName,
	})
}

// Logout drops the caller's session.
func (ac *AuthController) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	ac.Auth.Logout(token)
	utils.JSONMessage(c, http.StatusOK, "logged out")
}

// GetSession reports remaining idle time and the expiry warning flag.
func (ac *AuthController) GetSession(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	info, err := ac.Auth.GetSessionInfo(token)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, info)
}

// Register is the self-service guest sign-up; the role is always guest.
func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, err := ac.Users.CreateUser(payload.Username, payload.Password, models.RoleGuest, payload.FullName)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

// ChangePassword verifies the current password before applying the policy to
// the new one.
func (ac *AuthController) ChangePassword(c *gin.Context) {
	var payload changePasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	session := middleware.SessionFromContext(c)
	if err := ac.Auth.ChangePassword(session, payload.CurrentPassword, payload.NewPassword); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "password changed")
}
