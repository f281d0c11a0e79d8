package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	ImageStoreLocal = "local"
	ImageStoreS3    = "s3"
)

// Config holds application configuration values.
type Config struct {
	DatabaseDSN string
	HTTPPort    string
	LogLevel    string
	CORSOrigins []string
	SeedCSV     string

	ImageStore string
	UploadDir  string
	S3         S3Config
}

// S3Config describes the S3-compatible bucket used when ImageStore is "s3".
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// Load reads configuration from environment variables with reasonable defaults.
func Load() Config {
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "file:hospital_inventory.db?_pragma=foreign_keys(1)"
		if parts, ok := postgresParts(); ok {
			dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
				fallback(parts("USER"), "postgres"),
				parts("PASSWORD"),
				parts("HOST"),
				fallback(parts("PORT"), "5432"),
				fallback(parts("NAME"), "hospital_inventory"),
			)
		}
	}

	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	store := strings.ToLower(fallback(os.Getenv("IMAGE_STORE"), ImageStoreLocal))
	if store != ImageStoreLocal && store != ImageStoreS3 {
		log.Printf("invalid IMAGE_STORE value %q, defaulting to %s", store, ImageStoreLocal)
		store = ImageStoreLocal
	}

	return Config{
		DatabaseDSN: dsn,
		HTTPPort:    port,
		LogLevel:    fallback(os.Getenv("LOG_LEVEL"), "info"),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		SeedCSV:     strings.TrimSpace(os.Getenv("SEED_CSV")),
		ImageStore:  store,
		UploadDir:   fallback(os.Getenv("UPLOAD_DIR"), "uploads"),
		S3: S3Config{
			Bucket:    fallback(os.Getenv("S3_BUCKET"), "hospital-inventory"),
			Region:    fallback(os.Getenv("S3_REGION"), "us-east-1"),
			Endpoint:  strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
			AccessKey: strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
			SecretKey: strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
		},
	}
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return ":" + c.HTTPPort
}

// postgresParts returns a reader for the DB_HOST, DB_USER, DB_PORT, DB_NAME
// and DB_PASSWORD keys. When DB_HOST is unset but a bare HOST is, the bare
// names are read instead. Keys are never mixed between the two families.
func postgresParts() (func(key string) string, bool) {
	prefix := "DB_"
	if strings.TrimSpace(os.Getenv("DB_HOST")) == "" {
		if strings.TrimSpace(os.Getenv("HOST")) == "" {
			return nil, false
		}
		prefix = ""
	}
	return func(key string) string {
		return strings.TrimSpace(os.Getenv(prefix + key))
	}, true
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
