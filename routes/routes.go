package routes

import (
	"os"
	"strings"
	"time"

	"eventora-backend/config"
	"eventora-backend/controllers"
	"eventora-backend/middleware"
	"eventora-backend/models"
	"eventora-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func allowedOrigins() []string {
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000"}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterCustomValidations(v)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger())

	auth := r.Group("/api/auth")
	{
		auth.POST("/register",
			middleware.RateLimit("auth_register", 3, time.Hour),
			controllers.Register)
		auth.POST("/login",
			middleware.RateLimit("auth_login", 10, 15*time.Minute),
			controllers.Login)
		auth.POST("/logout", controllers.Logout)
		auth.GET("/status", controllers.Status)
	}

	// Public planner directory
	r.GET("/api/planners", controllers.ListPlanners)
	r.GET("/api/planners/:id", controllers.GetPlanner)
	r.GET("/api/planners/:id/reviews", controllers.GetPlannerReviews)
	r.GET("/api/users/:id/profile-image", controllers.GetProfileImage)

	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	{
		bookings := api.Group("/bookings")
		{
			bookings.POST("", middleware.RequireRole(models.UserTypeCustomer), controllers.CreateBooking)
			bookings.GET("/my-bookings", controllers.GetMyBookings)
			bookings.GET("/date-range", middleware.RequireRole(models.UserTypePlanner), controllers.GetBookingsByDateRange)
			bookings.GET("/stats", middleware.RequireRole(models.UserTypePlanner), controllers.GetBookingStats)
			bookings.GET("/:id", middleware.RequireOwnership(), controllers.GetBooking)
			bookings.PATCH("/:id/status", middleware.RequireRole(models.UserTypePlanner), controllers.UpdateBookingStatus)
			bookings.PUT("/:id", middleware.RequireOwnership(), controllers.UpdateBooking)
			bookings.DELETE("/:id", middleware.RequireOwnership(), controllers.DeleteBooking)
		}

		api.POST("/reviews", middleware.RequireRole(models.UserTypeCustomer), controllers.CreateReview)

		notifications := api.Group("/notifications")
		{
			notifications.GET("", controllers.GetNotifications)
			notifications.PATCH("/read-all", controllers.MarkAllNotificationsRead)
			notifications.PATCH("/:id/read", controllers.MarkNotificationRead)
			notifications.DELETE("", controllers.ClearNotifications)
		}

		customer := api.Group("/customer", middleware.RequireRole(models.UserTypeCustomer))
		{
			customer.GET("/profile", controllers.GetCustomerProfile)
			customer.PUT("/profile", controllers.UpdateCustomerProfile)
			customer.POST("/profile/upload-image", controllers.UploadProfileImage)
			customer.GET("/dashboard", controllers.GetCustomerDashboard)
		}

		planner := api.Group("/planner", middleware.RequireRole(models.UserTypePlanner))
		{
			// Profile management stays reachable with an incomplete profile,
			// everything else is gated.
			planner.GET("/profile", controllers.GetPlannerProfile)
			planner.PUT("/profile", controllers.UpdatePlannerProfile)
			planner.POST("/profile/upload-image", controllers.UploadProfileImage)
			planner.POST("/profile/upload-id-card", controllers.UploadIDCard)
			planner.POST("/profile/upload-birth-certificate", controllers.UploadBirthCertificate)

			gated := planner.Group("", middleware.RequireCompleteProfile())
			{
				gated.POST("/bookings/:id/accept", controllers.AcceptBooking)
				gated.POST("/bookings/:id/reject", controllers.RejectBooking)
				gated.GET("/earnings", controllers.GetEarnings)
				gated.GET("/dashboard", controllers.GetPlannerDashboard)
			}
		}
	}

	return r
}
