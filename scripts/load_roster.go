package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"cleaning-scheduler-backend/internal/config"
	"cleaning-scheduler-backend/internal/database"
	"cleaning-scheduler-backend/internal/repository"
	"cleaning-scheduler-backend/internal/service"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	file := flag.String("file", "scripts/data/roster.yaml", "roster YAML file to apply")
	flag.Parse()

	log.Printf("Loading roster from %s", *file)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	req, err := service.LoadRosterFile(*file)
	if err != nil {
		log.Fatalf("Failed to read roster: %v", err)
	}

	roster := service.NewRosterService(repository.NewStore(db), service.NewValidator())
	resp, err := roster.Setup(context.Background(), req)
	if err != nil {
		log.Fatalf("Failed to apply roster: %v", err)
	}

	log.Printf("Teams: %d created, %d total", resp.Created, len(resp.Teams))
	for _, team := range resp.Teams {
		log.Printf("  %s (id %d): %d crew members", team.Label, team.ID, len(team.CrewMembers))
	}
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
