package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"nutriplan/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

const memoryDSN = "file::memory:?cache=shared"

// Driver names returned by DriverFor.
const (
	DriverSQLiteMemory = "sqlite-memory"
	DriverSQLiteFile   = "sqlite-file"
	DriverPostgres     = "postgres"
)

// DriverFor picks the driver for a DSN.
// "memory" or empty selects a shared in-memory SQLite database, URLs or
// key/value strings that look like PostgreSQL select PostgreSQL, and anything
// else is treated as a SQLite file path.
func DriverFor(dsn string) string {
	switch {
	case dsn == "" || dsn == "memory":
		return DriverSQLiteMemory
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"), strings.HasPrefix(dsn, "host="):
		return DriverPostgres
	default:
		return DriverSQLiteFile
	}
}

// Init initializes the database connection for the given DSN and stores it
// in DB.
func Init(dsn string) (*gorm.DB, error) {
	var err error

	// GORM logger configuration
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             logger.DefaultSlowThreshold, // Slow SQL threshold
			LogLevel:                  logger.Warn,                 // Log level (Warn, Error, Info)
			IgnoreRecordNotFoundError: true,                        // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,
		},
	)

	gormConfig := &gorm.Config{
		Logger: gormLogger,
	}

	switch DriverFor(dsn) {
	case DriverSQLiteMemory:
		log.Println("INFO: [Database] Initializing in-memory SQLite database (DSN: 'memory' or empty).")
		DB, err = gorm.Open(sqlite.Open(memoryDSN), gormConfig)
	case DriverPostgres:
		log.Println("INFO: [Database] Initializing PostgreSQL database.")
		DB, err = gorm.Open(postgres.Open(dsn), gormConfig)
	default:
		log.Printf("INFO: [Database] Initializing file-based SQLite database at DSN: '%s'.", dsn)
		if mkErr := ensureDir(dsn); mkErr != nil {
			return nil, mkErr
		}
		DB, err = gorm.Open(sqlite.Open(dsn), gormConfig)
	}

	if err != nil {
		log.Printf("ERROR: [Database] Failed to connect to database (driver: %s): %v", DriverFor(dsn), err)
		return nil, fmt.Errorf("failed to connect to database (driver: %s): %w", DriverFor(dsn), err)
	}

	if DriverFor(dsn) == DriverSQLiteMemory {
		sqlDB, dbErr := DB.DB()
		if dbErr != nil {
			return nil, fmt.Errorf("failed to access sql.DB for in-memory database: %w", dbErr)
		}
		// Shared-cache connections lock tables instead of waiting on each other.
		sqlDB.SetMaxOpenConns(1)
	}

	log.Println("INFO: [Database] Database connection established successfully.")
	return DB, nil
}

// ensureDir creates the parent directory of a SQLite file if it is missing.
func ensureDir(dsn string) error {
	dbDir := filepath.Dir(dsn)
	if dbDir == "." || dbDir == "/" {
		return nil
	}
	if _, statErr := os.Stat(dbDir); os.IsNotExist(statErr) {
		log.Printf("INFO: [Database] Database directory '%s' does not exist, attempting to create.", dbDir)
		if mkdirErr := os.MkdirAll(dbDir, 0755); mkdirErr != nil {
			log.Printf("ERROR: [Database] Failed to create database directory '%s': %v", dbDir, mkdirErr)
			return fmt.Errorf("failed to create database directory '%s': %w", dbDir, mkdirErr)
		}
	}
	return nil
}

// Migrate creates or updates the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	log.Println("INFO: [Database] Running database migrations...")
	err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.MealPlan{},
		&models.Meal{},
		&models.Task{},
		&models.UserProgress{},
		&models.HealthNews{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	log.Println("INFO: [Database] Database migrations completed.")
	return nil
}

// GetDB returns the global database instance.
// It panics if DB has not been initialized via Init().
func GetDB() *gorm.DB {
	if DB == nil {
		log.Fatal("FATAL: [Database] Database instance has not been initialized. Call database.Init() first.")
	}
	return DB
}
