package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const defaultPort = 3000

// Config is assembled once at startup and passed down to the components
// that need it.
type Config struct {
	Port           int    `validate:"gt=0,lt=65536"`
	APIKey         string `validate:"required"`
	GinMode        string `validate:"omitempty,oneof=debug release test"`
	Database       DatabaseConfig
	RedisURL       string
	Storage        StorageConfig
	AllowedOrigins []string
}

// DatabaseConfig holds the postgres connection settings. URL wins over the
// discrete fields when set.
type DatabaseConfig struct {
	URL      string
	Host     string `validate:"required_without=URL"`
	User     string
	Password string
	Name     string `validate:"required_without=URL"`
	Port     string
	SSLMode  string
}

// StorageConfig selects S3 when the AWS credentials are complete and falls
// back to the local upload directory otherwise.
type StorageConfig struct {
	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
	S3Bucket     string `validate:"required_with=AWSAccessKey"`
	UploadDir    string `validate:"required"`
	BaseURL      string `validate:"required"`
}

// DSN returns the connection string handed to the postgres driver.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

// UseS3 reports whether uploads go to S3.
func (s StorageConfig) UseS3() bool {
	return s.AWSRegion != "" && s.AWSAccessKey != "" && s.AWSSecretKey != ""
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds and validates a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	port := defaultPort
	if raw := get("PORT", ""); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", raw, err)
		}
		port = p
	}

	cfg := &Config{
		Port:    port,
		APIKey:  get("API_KEY", ""),
		GinMode: get("GIN_MODE", ""),
		Database: DatabaseConfig{
			URL:      get("DATABASE_URL", ""),
			Host:     get("DB_HOST", ""),
			User:     get("DB_USER", ""),
			Password: getenv("DB_PASSWORD"),
			Name:     get("DB_NAME", ""),
			Port:     get("DB_PORT", "5432"),
			SSLMode:  get("DB_SSLMODE", "disable"),
		},
		RedisURL: get("REDIS_URL", ""),
		Storage: StorageConfig{
			AWSRegion:    get("AWS_REGION", ""),
			AWSAccessKey: get("AWS_ACCESS_KEY_ID", ""),
			AWSSecretKey: get("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:     get("AWS_S3_BUCKET", ""),
			UploadDir:    get("UPLOAD_DIR", "./uploads"),
			BaseURL:      get("BASE_URL", fmt.Sprintf("http://localhost:%d", port)),
		},
	}

	if origins := get("CORS_ALLOWED_ORIGINS", ""); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
