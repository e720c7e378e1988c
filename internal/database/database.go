// Package database opens the Postgres connection behind the postgres storage backend.
package database

import (
	"fmt"
	"time"

	"team-board-backend/internal/database/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes the connection pool and startup behaviour. Zero values pick the defaults.
type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	// ConnectAttempts > 1 retries the initial connection, for databases still starting up
	ConnectAttempts int
	ConnectDelay    time.Duration

	SkipMigrate bool
}

func (o Options) withDefaults() Options {
	if o.LogLevel == 0 {
		o.LogLevel = logger.Error
	}
	if o.MaxOpenConns == 0 {
		o.MaxOpenConns = 10
	}
	if o.MaxIdleConns == 0 {
		o.MaxIdleConns = 5
	}
	if o.ConnMaxLifetime == 0 {
		o.ConnMaxLifetime = 30 * time.Minute
	}
	if o.ConnMaxIdleTime == 0 {
		o.ConnMaxIdleTime = 10 * time.Minute
	}
	if o.ConnectAttempts < 1 {
		o.ConnectAttempts = 1
	}
	if o.ConnectDelay == 0 {
		o.ConnectDelay = time.Second
	}
	return o
}

// Initialize connects to dsn and migrates the collection_records table
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	o = o.withDefaults()

	db, err := connect(dsn, o)
	if err != nil {
		return nil, err
	}

	if !o.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate creates or updates the tables backing the collection store
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.CollectionRecord{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

func connect(dsn string, o Options) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= o.ConnectAttempts; attempt++ {
		db, err := open(dsn, o)
		if err == nil {
			return db, nil
		}
		lastErr = err

		if attempt < o.ConnectAttempts {
			// Only log every 10 attempts to reduce noise
			if attempt%10 == 0 {
				logrus.WithError(err).Warnf("database not ready (%d/%d)", attempt, o.ConnectAttempts)
			}
			time.Sleep(o.ConnectDelay)
		}
	}
	if o.ConnectAttempts > 1 {
		return nil, fmt.Errorf("database not ready after %d attempts: %w", o.ConnectAttempts, lastErr)
	}
	return nil, lastErr
}

func open(dsn string, o Options) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(o.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(o.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(o.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
