// Package config holds the storefront runtime configuration.
//
// All settings are read once at startup into a single Config struct which is
// then passed by reference into the services that need it. Application code
// never reads the process environment directly.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAppEnv        = "local"
	defaultPort          = "4000"
	defaultMongoURI      = "mongodb://localhost:27017"
	defaultMongoDatabase = "storefront"
	defaultRedisAddr     = "localhost:6379"
	defaultStorageDisk   = "local"
	defaultStorageRoot   = "storage"
	defaultStorageURL    = "http://localhost:4000/storage"
)

// Config is the complete runtime configuration.
type Config struct {
	AppEnv string
	Port   string

	MongoURI      string
	MongoDatabase string

	// JWTSecret signs session tokens. Rotating it invalidates all
	// outstanding sessions.
	JWTSecret string

	// AdminEmail/AdminPassword are the out-of-band admin credentials.
	// They are not a user record.
	AdminEmail    string
	AdminPassword string

	// AllowedOrigins are the frontend origins permitted by CORS.
	AllowedOrigins []string

	Redis   RedisConfig
	Storage StorageConfig
}

// RedisConfig configures the product-list cache.
type RedisConfig struct {
	Addr     string
	Password string
}

// StorageConfig selects and configures the media sink.
type StorageConfig struct {
	// Disk is "local" or "s3".
	Disk string

	LocalRoot string
	LocalURL  string

	S3Bucket   string
	S3Region   string
	S3Key      string
	S3Secret   string
	S3Endpoint string
	S3URL      string
}

// Load builds a Config from a .env file (if present) merged with the
// process environment. Environment variables win over .env entries.
func Load() (*Config, error) {
	// godotenv only sets keys that are not already in the environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := &Config{
		AppEnv:        getenv("APP_ENV", defaultAppEnv),
		Port:          getenv("PORT", defaultPort),
		MongoURI:      getenv("MONGO_URI", defaultMongoURI),
		MongoDatabase: getenv("MONGO_DATABASE", defaultMongoDatabase),
		JWTSecret:     getenv("JWT_SECRET", ""),
		AdminEmail:    getenv("ADMIN_EMAIL", ""),
		AdminPassword: getenv("ADMIN_PASSWORD", ""),
		Redis: RedisConfig{
			Addr:     getenv("REDIS_ADDR", defaultRedisAddr),
			Password: getenv("REDIS_PASSWORD", ""),
		},
		Storage: StorageConfig{
			Disk:       getenv("STORAGE_DISK", defaultStorageDisk),
			LocalRoot:  getenv("STORAGE_LOCAL_ROOT", defaultStorageRoot),
			LocalURL:   getenv("STORAGE_URL", defaultStorageURL),
			S3Bucket:   getenv("S3_BUCKET", ""),
			S3Region:   getenv("S3_REGION", "us-east-1"),
			S3Key:      getenv("S3_KEY", ""),
			S3Secret:   getenv("S3_SECRET", ""),
			S3Endpoint: getenv("S3_ENDPOINT", ""),
			S3URL:      getenv("S3_URL", ""),
		},
	}

	if origins := getenv("FRONTEND_URLS", ""); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:5173"}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
