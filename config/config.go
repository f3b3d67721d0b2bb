package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultContactRateLimit         = 3
	defaultContactRateWindowSeconds = 60
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	SiteName    string
	FrontendURL string
	// Contact gateway
	ContactTo   string
	ContactFrom string
	// Email dispatch: smtp | sendgrid | ses | log
	EmailProvider  string
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SendGridAPIKey string
	SendGridHost   string
	AWSRegion      string
	// Redis Configuration (shared rate-limit state)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	ContactRateLimit         int
	ContactRateWindowSeconds int
	// Optional lead archive: Postgres, else an S3-compatible bucket
	DBUrl             string
	S3Provider        string
	S3Region          string
	S3Bucket          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Endpoint        string
	// Project showcase
	ContentDir   string
	ContentWatch bool
}

func LoadConfig() (*Config, error) {
	// Load .env file when present; real environment wins.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogLevel:    getEnv("LOG_LEVEL", "debug"),
		SiteName:    getEnv("SITE_NAME", "amilemia.dev"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Contact gateway
		ContactTo:   getEnv("CONTACT_TO", ""),
		ContactFrom: getEnv("CONTACT_FROM", "Portfolio <onboarding@resend.dev>"),
		// Email dispatch
		EmailProvider:  strings.ToLower(getEnv("EMAIL_PROVIDER", "log")),
		SMTPHost:       getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		SendGridHost:   getEnv("SENDGRID_HOST", ""),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (3 accepted submissions per minute)
		ContactRateLimit:         getEnvInt("RATE_LIMIT_CONTACT_LIMIT", defaultContactRateLimit),
		ContactRateWindowSeconds: getEnvInt("RATE_LIMIT_CONTACT_WINDOW_SECONDS", defaultContactRateWindowSeconds),
		// Lead archive
		DBUrl:             getEnv("DATABASE_URL", ""),
		S3Provider:        strings.ToLower(getEnv("S3_PROVIDER", "aws")),
		S3Region:          getEnv("S3_REGION", getEnv("AWS_REGION", "us-east-1")),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		// Content
		ContentDir:   getEnv("CONTENT_DIR", "content"),
		ContentWatch: getEnvBool("CONTENT_WATCH", false),
	}

	if cfg.ContactRateLimit < 1 {
		log.Printf("WARNING: RATE_LIMIT_CONTACT_LIMIT=%d is below 1, using %d", cfg.ContactRateLimit, defaultContactRateLimit)
		cfg.ContactRateLimit = defaultContactRateLimit
	}
	if cfg.ContactRateWindowSeconds < 1 {
		log.Printf("WARNING: RATE_LIMIT_CONTACT_WINDOW_SECONDS=%d is below 1, using %d", cfg.ContactRateWindowSeconds, defaultContactRateWindowSeconds)
		cfg.ContactRateWindowSeconds = defaultContactRateWindowSeconds
	}

	if cfg.ContactTo == "" {
		log.Println("WARNING: CONTACT_TO is missing. Contact submissions cannot be delivered.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory state.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
