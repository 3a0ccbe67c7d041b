package config

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

const defaultPostTTLDays = 14

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	// Endpoint overrides the Cloudflare endpoint derived from AccountID.
	Endpoint string
}

// Enabled reports whether enough of R2 is configured to archive posts.
func (c R2Config) Enabled() bool {
	return c.BucketName != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" &&
		(c.AccountID != "" || c.Endpoint != "")
}

type Config struct {
	DB_URL      string
	Port        string
	JWTSecret   string
	Environment string
	PostTTL     time.Duration
	CorsConfig  cors.Options
	R2          R2Config
}

// IsProduction reports whether ENV names a production deployment.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Load reads the env file (if any) and the process environment once.
// The returned Config is handed to constructors and never mutated.
func Load() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	} else {
		log.Println("Loaded environment from", envFile)
	}

	secret := getEnv("JWT_SECRET", "")
	if secret == "" {
		log.Println("JWT_SECRET is not set, every request will be rejected")
	}

	return Config{
		DB_URL:      getEnv("DB_URL", ""),
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   secret,
		Environment: getEnv("ENV", "development"),
		PostTTL:     time.Duration(getIntEnv("POST_TTL_DAYS", defaultPostTTLDays)) * 24 * time.Hour,
		CorsConfig:  CorsConfig(getListEnv("CORS_ALLOWED_ORIGINS", []string{"*"})),
		R2: R2Config{
			AccountID:       getEnv("R2_ACCOUNT_ID", ""),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("R2_BUCKET_NAME", ""),
			Region:          getEnv("R2_REGION", "auto"),
			Endpoint:        getEnv("R2_ENDPOINT", ""),
		},
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Printf("Ignoring invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return value
}

func getListEnv(key string, fallback []string) []string {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func CorsConfig(origins []string) cors.Options {
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Location", "X-Request-ID"},
		AllowCredentials: false,
	}
}
