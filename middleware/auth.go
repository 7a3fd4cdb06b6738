package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

// ContextSession is the gin context key under which the resolved session is
// stored.
const ContextSession = "session"

// RequireSession resolves the bearer token into a session and refreshes its
// activity clock. Requests without a live session are rejected.
func RequireSession(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.JSONError(c, http.StatusUnauthorized, "authorization header missing")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			utils.JSONError(c, http.StatusUnauthorized, "invalid authorization header")
			c.Abort()
			return
		}

		session, err := auth.ValidateSession(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "session expired or invalid")
			c.Abort()
			return
		}

		c.Set(ContextSession, session)
		c.Next()
	}
}

// SessionFromContext returns the session set by RequireSession, or nil.
func SessionFromContext(c *gin.Context) *services.Session {
	value, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	session, _ := value.(*services.Session)
	return session
}

// RequireStaff gates booking-management endpoints: staff and admin pass.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session := SessionFromContext(c); session == nil || !session.IsStaff() {
			utils.JSONError(c, http.StatusForbidden, "staff access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gates management endpoints to admins only.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session := SessionFromContext(c); session == nil || !session.IsAdmin() {
			utils.JSONError(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
