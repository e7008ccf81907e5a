// Package config loads the server configuration from environment variables.
package config

import (
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel  string    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string    `env:"LOG_FORMAT" envDefault:"text"`
	HTTP      HTTP      `envPrefix:"HTTP_"`
	Database  Database  `envPrefix:"DB_"`
	JWT       JWT       `envPrefix:"JWT_"`
	Redis     Redis     `envPrefix:"REDIS_"`
	ECourts   ECourts   `envPrefix:"ECOURTS_"`
	Storage   Storage   `envPrefix:"MINIO_"`
	CauseList CauseList `envPrefix:"CAUSELIST_"`
	Seed      Seed      `envPrefix:"SEED_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Addr        string   `env:"ADDR" envDefault:":5000"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Database contains database connection parameters.
// Driver is one of "sqlite", "mysql" or "postgres".
type Database struct {
	Driver         string        `env:"DRIVER" envDefault:"sqlite"`
	Path           string        `env:"PATH" envDefault:"instance/ecourt_professional.db"`
	User           string        `env:"USER"`
	Password       string        `env:"PASSWORD"`
	Name           string        `env:"NAME"`
	Host           string        `env:"HOST" envDefault:"localhost"`
	Port           string        `env:"PORT"`
	InstanceName   string        `env:"INSTANCE_CONNECTION_NAME"`
	RunMigrations  bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"60s"`
}

// JWT contains access token and session parameters.
type JWT struct {
	Secret       string        `env:"SECRET"`
	AccessTTL    time.Duration `env:"ACCESS_TTL" envDefault:"24h"`
	RefreshTTL   time.Duration `env:"REFRESH_TTL" envDefault:"168h"`
	MaxSessions  int           `env:"MAX_SESSIONS" envDefault:"5"`
	CookieName   string        `env:"COOKIE_NAME" envDefault:"ecourts_token"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
}

// Redis contains Redis connection parameters. An empty host disables Redis.
type Redis struct {
	Host     string `env:"HOST"`
	Port     string `env:"PORT" envDefault:"6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Addr returns the host:port address of the Redis server.
func (r Redis) Addr() string {
	return net.JoinHostPort(r.Host, r.Port)
}

// Enabled reports whether a Redis host is configured.
func (r Redis) Enabled() bool {
	return r.Host != ""
}

// ECourts contains parameters for the eCourts portal lookup.
type ECourts struct {
	Endpoints []string      `env:"ENDPOINTS" envSeparator:"," envDefault:"https://services.ecourts.gov.in/ecourtindia_v6/cases/cnr_details,https://ecourts.gov.in/ecourts_home/cnr_details,https://main.ecourts.gov.in/case_status/case_status.php"`
	StatusURL string        `env:"STATUS_URL" envDefault:"https://services.ecourts.gov.in/ecourtindia_v6/"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"15s"`
	UserAgent string        `env:"USER_AGENT" envDefault:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"`
	// RefreshPerMinute limits portal calls made by the batch refresh command.
	RefreshPerMinute int `env:"REFRESH_PER_MINUTE" envDefault:"8"`
}

// Storage contains object storage parameters. An empty endpoint selects the local directory store.
type Storage struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"causelists"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// CauseList contains cause list generation parameters.
type CauseList struct {
	OutputDir string `env:"OUTPUT_DIR" envDefault:"downloads"`
	Location  string `env:"LOCATION" envDefault:"Asia/Kolkata"`
}

// Seed contains the first-run accounts.
type Seed struct {
	Enabled       bool   `env:"ENABLED" envDefault:"true"`
	AdminMobile   string `env:"ADMIN_MOBILE" envDefault:"9999999999"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	DemoMobile    string `env:"DEMO_MOBILE" envDefault:"1234567890"`
	DemoPassword  string `env:"DEMO_PASSWORD" envDefault:"demo123"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
