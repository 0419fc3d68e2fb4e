package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mikiasgoitom/Remarks/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port              string
	AppBaseURL        string
	LogLevel          string
	StoreDriver       string
	DBDriver          string
	DBDSN             string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	MongoURI          string
	MongoDBName       string
	RedisURL          string
	JWTSecret         string
	AccessTokenExpiry time.Duration
	RateLimitPerSec   float64
	CORSAllowOrigins  []string
}

// Remark store backends.
const (
	StoreGorm  = "gorm"
	StoreMongo = "mongo"
)

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		AppBaseURL:        getEnv("APP_BASE_URL", "http://localhost:8080"),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "info")),
		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", StoreGorm)),
		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBDSN:             getEnv("DB_DSN", "remarks.db"),
		DBMaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		MongoURI:          getEnv("MONGODB_URI", ""),
		MongoDBName:       getEnv("MONGODB_DB_NAME", "remarks"),
		RedisURL:          getEnv("REDIS_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		AccessTokenExpiry: time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 60)),
		RateLimitPerSec:   getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		CORSAllowOrigins:  getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetAccessTokenExpiry returns the lifetime of access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// getEnvAsList splits a comma separated variable, dropping empty entries.
func getEnvAsList(name string, fallback []string) []string {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
