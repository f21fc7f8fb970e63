package main

import (
	"context"
	"log"
	"os"
	"time"

	"cleaning-scheduler-backend/internal/api/routes"
	"cleaning-scheduler-backend/internal/config"
	"cleaning-scheduler-backend/internal/database"
	"cleaning-scheduler-backend/internal/lock"
	"cleaning-scheduler-backend/internal/logger"
	"cleaning-scheduler-backend/internal/repository"
	"cleaning-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "cleaning-scheduler-backend/docs" // This is needed for swag
)

//	@title			Cleaning Scheduler API
//	@version		1.0
//	@description	Crew availability and booking allocation for a home-cleaning service. Teams of cleaners are allocated to 2 or 4 hour bookings between 08:00 and 22:00, never on Fridays.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Configure(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	// Booking times are stored as business wall-clock values; the zone only
	// tells operators which calendar day the server considers "today".
	loc := cfg.Location()
	logrus.WithFields(logrus.Fields{
		"timezone":      loc.String(),
		"business_date": time.Now().In(loc).Format("2006-01-02"),
	}).Info("Business clock")

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{AutoMigrate: true})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	locker, redisClient := setupLocker(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	if err := bootstrapRoster(context.Background(), db, cfg); err != nil {
		logrus.Fatal("Failed to set up roster:", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, cfg, locker, redisClient)

	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

// setupLocker picks the Redis locker when REDIS_ADDR is set. The in-process
// locker is only safe with a single server instance.
func setupLocker(cfg *config.Config) (lock.Locker, *redis.Client) {
	if !cfg.UseRedisLock() {
		logrus.Warn("REDIS_ADDR not set, allocation locks are held in process")
		return lock.NewMemoryLocker(cfg.LockWait()), nil
	}

	client, err := lock.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logrus.Fatal("Failed to connect to redis:", err)
	}
	logrus.WithField("addr", cfg.RedisAddr).Info("Using redis allocation locks")
	return lock.NewRedisLocker(client, cfg.LockTTL(), cfg.LockWait()), client
}

// bootstrapRoster loads ROSTER_FILE when set and otherwise seeds the default
// roster into an empty database
func bootstrapRoster(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	roster := service.NewRosterService(repository.NewStore(db), service.NewValidator())

	if cfg.RosterFile != "" {
		req, err := service.LoadRosterFile(cfg.RosterFile)
		if err != nil {
			return err
		}
		resp, err := roster.Setup(ctx, req)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"file": cfg.RosterFile, "created": resp.Created}).Info("Roster file applied")
		return nil
	}

	if !cfg.SeedRoster {
		return nil
	}
	seeded, err := roster.SeedDefault(ctx)
	if err != nil {
		return err
	}
	if seeded {
		logrus.Info("Seeded default roster")
	}
	return nil
}
