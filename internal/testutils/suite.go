package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"cleaning-scheduler-backend/internal/config"
	"cleaning-scheduler-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "scheduler"
	pgPassword = "scheduler"
	pgDatabase = "cleaning_scheduler_test"
)

// schedulingTables lists every table AutoMigrate creates, children first
var schedulingTables = []string{
	"booking_crew_members",
	"bookings",
	"crew_members",
	"teams",
}

// postgresContainer is the one Postgres instance shared by every suite in a
// test binary. It is started lazily and purged by CleanupSharedContainer.
type postgresContainer struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
}

var shared postgresContainer

// BaseTestSuite hands a suite the shared database, a matching config and
// factories bound to that database
type BaseTestSuite struct {
	suite.Suite
	DB        *gorm.DB
	Config    *config.Config
	Factories *FactorySet
}

// SetupTestSuite starts the shared Postgres container on first use and
// returns a suite wrapper around it. Tables are empty on return.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("failed to start test postgres: %v", shared.err)
	}

	s := &BaseTestSuite{
		DB:        shared.db,
		Config:    shared.cfg,
		Factories: NewFactorySet(shared.db),
	}
	s.CleanTestDB()
	return s
}

// CleanupSharedContainer closes the pool and purges the container. TestMain
// of each integration package calls it after m.Run.
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}
	log.Printf("Purging test postgres %s", shared.resource.Container.Name)
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.Printf("WARN: could not purge test postgres: %v", err)
	}
	shared.pool, shared.resource = nil, nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates all scheduling tables in one statement and resets
// their ID sequences, so every test starts from team ID 1.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	quoted := make([]string, len(schedulingTables))
	for i, table := range schedulingTables {
		quoted[i] = `"` + table + `"`
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		log.Printf("WARN: could not truncate scheduling tables: %v", err)
	}
}

func (c *postgresContainer) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	c.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	c.resource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	if err := pool.Retry(func() error { return ping(dsn) }); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, &database.Options{AutoMigrate: true})
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	for _, table := range schedulingTables {
		if !db.Migrator().HasTable(table) {
			return fmt.Errorf("migration did not create table %s", table)
		}
	}
	c.db = db

	c.cfg = &config.Config{
		DatabaseURL:      dsn,
		Port:             "8080",
		LogLevel:         "debug",
		Environment:      "test",
		LockTTLSec:       30,
		LockWaitSec:      10,
		BusinessTimezone: "Asia/Dubai",
	}

	log.Printf("Test postgres ready on port %s", port)
	return nil
}

// ping opens a throwaway database/sql handle so readiness polling does not
// leave half-initialised gorm pools behind
func ping(dsn string) error {
	std, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer std.Close()
	return std.Ping()
}
