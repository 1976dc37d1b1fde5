package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingEnv = errors.New("environment variable is not set")
	ErrInvalidEnv = errors.New("environment variable has an invalid value")
)

const (
	defaultMaxGridSize = 200
	defaultCacheTTL    = 10 * time.Minute
)

// Config holds the application's configuration values.
type Config struct {
	HostIP        string        // Host IP for the server
	RESTPort      int           // Port for the REST API
	DBHost        string        // Hostname or IP address for the database
	DBPort        int           // Port number for the database
	DBUser        string        // Username for the database
	DBPassword    string        // Password for the database
	DBName        string        // Name of the database
	RedisHost     string        // Hostname or IP address for the Redis cache
	RedisPort     int           // Port number for the Redis cache
	RedisPassword string        // Password for the Redis cache, empty if none
	GinMode       string        // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret     string        // Secret key for JWT verification
	JWTIssuer     string        // Issuer claim for JWTs
	MaxGridSize   int           // Largest maze side length accepted by the API
	CacheTTL      time.Duration // Lifetime of cached maze snapshots
}

// Load reads the configuration from environment variables, after loading a
// .env file when one is present. The first missing or malformed variable is
// returned as an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.WithField("component", "CONFIG").Debugf(".env file not found or could not be loaded: %v", err)
	}

	var l loader
	cfg := Config{
		DBHost:        l.mustGetEnv("DB_HOST"),
		DBPort:        l.mustGetEnvAsInt("DB_PORT"),
		DBUser:        l.mustGetEnv("DB_USER"),
		DBPassword:    l.mustGetEnv("DB_PASS"),
		DBName:        l.mustGetEnv("DB_NAME"),
		RedisHost:     l.mustGetEnv("REDIS_HOST"),
		RedisPort:     l.mustGetEnvAsInt("REDIS_PORT"),
		RedisPassword: getEnvWithDefault("REDIS_PASS", ""),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:     l.mustGetEnv("JWT_SECRET"),
		JWTIssuer:     l.mustGetEnv("JWT_ISSUER"),
		HostIP:        l.mustGetEnv("HOST_IP"),
		RESTPort:      l.mustGetEnvAsInt("REST_PORT"),
		MaxGridSize:   l.getEnvAsIntWithDefault("MAX_GRID_SIZE", defaultMaxGridSize),
		CacheTTL:      time.Duration(l.getEnvAsIntWithDefault("CACHE_TTL_SECONDS", int(defaultCacheTTL/time.Second))) * time.Second,
	}
	if l.err != nil {
		return Config{}, l.err
	}
	if cfg.MaxGridSize <= 0 {
		return Config{}, fmt.Errorf("%w: MAX_GRID_SIZE=%d", ErrInvalidEnv, cfg.MaxGridSize)
	}
	if cfg.CacheTTL <= 0 {
		return Config{}, fmt.Errorf("%w: CACHE_TTL_SECONDS must be positive", ErrInvalidEnv)
	}
	return cfg, nil
}

// loader keeps the first error met while reading variables.
type loader struct {
	err error
}

// mustGetEnv retrieves the value of an environment variable or records an error if not set.
func (l *loader) mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists && l.err == nil {
		l.err = fmt.Errorf("%w: %s", ErrMissingEnv, key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or records an error if not set or cannot be parsed.
func (l *loader) mustGetEnvAsInt(key string) int {
	valueStr := l.mustGetEnv(key)
	if l.err != nil {
		return 0
	}
	return l.parseInt(key, valueStr)
}

func (l *loader) getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return l.parseInt(key, valueStr)
}

func (l *loader) parseInt(key, valueStr string) int {
	value, err := strconv.Atoi(valueStr)
	if err != nil && l.err == nil {
		l.err = fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidEnv, key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
