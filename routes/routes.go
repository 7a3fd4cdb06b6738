package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-management-backend/controllers"
	"hotel-management-backend/middleware"
	"hotel-management-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into the API surface. Route groups map
// onto the role model: public (login/register), any session, staff, admin.
func SetupRouter(
	auth *services.AuthService,
	ac *controllers.AuthController,
	bc *controllers.BookingController,
	rc *controllers.RoomController,
	uc *controllers.UserController,
	rpc *controllers.ReportController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", ac.Login)
			authRoutes.POST("/register", ac.Register)
			authRoutes.POST("/logout", middleware.RequireSession(auth), ac.Logout)
			// Session status resolves its own token: RequireSession would
			// count the poll as activity and the expiry warning could never
			// fire.
			authRoutes.GET("/session", ac.GetSession)
			authRoutes.POST("/password", middleware.RequireSession(auth), ac.ChangePassword)
		}

		bookings := api.Group("/bookings", middleware.RequireSession(auth))
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/my", bc.GetMyBookings)
			bookings.GET("/:id", bc.GetBookingByID)

			staff := bookings.Group("", middleware.RequireStaff())
			{
				staff.GET("", bc.GetBookings)
				staff.POST("/:id/checkin", bc.CheckIn)
				staff.POST("/:id/checkout", bc.CheckOut)
				staff.POST("/:id/cancel", bc.Cancel)
			}

			bookings.DELETE("/:id", middleware.RequireAdmin(), bc.DeleteBooking)
		}

		rooms := api.Group("/rooms", middleware.RequireSession(auth))
		{
			rooms.GET("", rc.GetRooms)

			staff := rooms.Group("", middleware.RequireStaff())
			{
				staff.POST("", rc.CreateRoom)
				staff.PUT("/:id", rc.UpdateRoom)
				staff.PATCH("/:id/status", rc.UpdateRoomStatus)
			}

			rooms.DELETE("/:id", middleware.RequireAdmin(), rc.DeleteRoom)
		}

		users := api.Group("/users", middleware.RequireSession(auth), middleware.RequireAdmin())
		{
			users.GET("", uc.GetUsers)
			users.POST("", uc.CreateUser)
			users.PUT("/:id", uc.UpdateUser)
			users.DELETE("/:id", uc.DeleteUser)
		}

		reports := api.Group("/reports", middleware.RequireSession(auth), middleware.RequireStaff())
		{
			reports.GET("/revenue", rpc.GetRevenue)
			reports.GET("/revenue/monthly", rpc.GetMonthlyRevenue)
			reports.GET("/revenue/methods", rpc.GetRevenueByMethod)
			reports.GET("/rooms", rpc.GetRoomStatistics)
			reports.GET("/today", rpc.GetTodayActivity)
		}
	}

	return r
}
