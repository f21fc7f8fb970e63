package routes

import (
	"net/http"

	"cleaning-scheduler-backend/internal/api/handlers"
	"cleaning-scheduler-backend/internal/api/middleware"
	"cleaning-scheduler-backend/internal/config"
	"cleaning-scheduler-backend/internal/lock"
	"cleaning-scheduler-backend/internal/repository"
	"cleaning-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. redisClient is
// only used for health reporting and may be nil.
func SetupRoutes(db *gorm.DB, cfg *config.Config, locker lock.Locker, redisClient *redis.Client) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := service.NewValidator()
	store := repository.NewStore(db)

	bookingService := service.NewBookingService(store, locker, validator)
	rosterService := service.NewRosterService(store, validator)

	healthHandler := handlers.NewHealthHandler(db, redisClient)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	teamHandler := handlers.NewTeamHandler(rosterService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		bookings := v1.Group("/bookings")
		{
			bookings.POST("/availability", bookingHandler.CheckAvailability)
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.GET("/:id", bookingHandler.GetBooking)
			bookings.PUT("/:id", bookingHandler.RescheduleBooking)
		}

		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("/roster", teamHandler.SetupRoster)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}
