// Package db opens the gorm connection for the configured driver.
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ecourts_backend/internal/platform/config"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	retryInterval = 3 * time.Second
)

// ErrUnsupportedDriver is returned when DB_DRIVER names an unknown driver.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN returns the driver specific DSN for cfg.
// For sqlite the DSN is the database file path. For MySQL a Cloud SQL unix socket
// is used when InstanceName is set, otherwise TCP.
func BuildDSN(cfg config.Database) string {
	switch cfg.Driver {
	case DriverMySQL:
		if cfg.InstanceName != "" {
			return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	case DriverPostgres:
		port := cfg.Port
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Kolkata",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, port)
	default:
		return cfg.Path
	}
}

// OpenerFor returns the gorm opener for the configured driver.
func OpenerFor(driver string) (Opener, error) {
	gcfg := &gorm.Config{TranslateError: true}

	switch driver {
	case DriverSQLite, "":
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), gcfg)
		}, nil
	case DriverMySQL:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(gmysql.Open(dsn), gcfg)
		}, nil
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gcfg)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err)
		time.Sleep(min(retryInterval, remaining))
	}
}

// OpenDB connects to the configured database and, when enabled, migrates models.
func OpenDB(cfg config.Database, models ...any) (*gorm.DB, error) {
	opener, err := OpenerFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == DriverSQLite || cfg.Driver == "" {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
		abs, _ := filepath.Abs(cfg.Path)
		slog.Info("using sqlite database", "path", abs)
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, opener)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations && len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return db, nil
}
