package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
)

// Connection holds database connection and configuration
type Connection struct {
	DB     *gorm.DB
	Config *Config
}

// NewConnection establishes a new database connection with the given
// configuration. Transient dial failures are retried with backoff so the
// service survives a database that is still coming up.
func NewConnection(config *Config, coreLogger coreport.Logger) (*Connection, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(coreLogger, config.LogLevel),
	}

	var db *gorm.DB
	retryConfig := RetryConfig{
		MaxRetries:    config.RetryAttempts,
		RetryInterval: config.RetryDelay,
		MaxInterval:   config.RetryDelay * 4,
		JitterFactor:  0.2,
	}

	err := RetryOnTransientError(context.Background(), retryConfig, func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(config.DSN()), gormConfig)
		return openErr
	}, coreLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{
		DB:     db,
		Config: config,
	}, nil
}

// Close closes the database connection
func (c *Connection) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}
