// Package config reads the service settings from the environment. A .env file in the working
// directory is loaded first if it exists; variables already set in the environment win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Backend names one of the interchangeable user stores.
type Backend string

const (
	StoreMemory Backend = "memory"
	StoreSQLite Backend = "sqlite"
	StoreMySQL  Backend = "mysql"
	StoreBolt   Backend = "bolt"
)

// Config aggregates all settings of the service.
type Config struct {
	Port       string
	Store      Backend
	DBPath     string
	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string
	// RequestLogging switches gin's request logger on or off.
	RequestLogging bool
}

// Load reads the configuration from the environment.
//
// Usage example on the command line:
// > PORT=8080 STORE=sqlite DBPATH=users.db GIN_LOGGING=OFF go run main.go
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read .env file: %w", err)
	}

	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		Store:          Backend(strings.ToLower(getenv("STORE", string(StoreMemory)))),
		DBPath:         getenv("DBPATH", "users.db"),
		DBUser:         os.Getenv("DBUSER"),
		DBPassword:     os.Getenv("DBPWD"),
		DBHost:         getenv("DBHOST", "localhost:3306"),
		DBName:         getenv("DBNAME", "test"),
		RequestLogging: !strings.EqualFold(os.Getenv("GIN_LOGGING"), "off"),
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("could not parse PORT env variable: %w", err)
	}
	switch cfg.Store {
	case StoreMemory, StoreSQLite, StoreMySQL, StoreBolt:
	default:
		return nil, fmt.Errorf("unknown STORE %q", cfg.Store)
	}
	return cfg, nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// DriverName is the database/sql driver for the configured store.
func (c *Config) DriverName() string {
	return string(c.Store)
}

// DSN builds the data source name for the configured sql store.
func (c *Config) DSN() string {
	if c.Store != StoreMySQL {
		return c.DBPath
	}
	dsn := mysql.NewConfig()
	dsn.User = c.DBUser
	dsn.Passwd = c.DBPassword
	dsn.Net = "tcp"
	dsn.Addr = c.DBHost
	dsn.DBName = c.DBName
	dsn.ParseTime = true
	return dsn.FormatDSN()
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
