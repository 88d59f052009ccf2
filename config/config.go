package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server    ServerConfig
	App       AppConfig
	Redis     RedisConfig
	LLM       LLMConfig
	RateLimit RateLimitConfig
	Firebase  FirebaseConfig
	Email     EmailConfig
	Content   ContentConfig
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

type RedisConfig struct {
	// URL is optional; without it theme state lives in process memory.
	URL        string
	SessionTTL time.Duration
}

type LLMConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

type FirebaseConfig struct {
	ProjectID       string
	CredentialsPath string
	AuthorID        string
}

type EmailConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Sender          string
	NotifyAddress   string
}

type ContentConfig struct {
	// Path overrides the embedded content seed when set.
	Path string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT_SECONDS", 30*time.Second),
			AllowedOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			URL:        getEnv("REDIS_URL", ""),
			SessionTTL: time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 24*180)) * time.Hour,
		},
		LLM: LLMConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			BaseURL: getEnv("GEMINI_BASE_URL", ""),
			Timeout: getEnvAsDuration("LLM_TIMEOUT_SECONDS", 90*time.Second),
		},
		RateLimit: RateLimitConfig{
			PerMinute: getEnvAsInt("AI_RATE_PER_MINUTE", 10),
			Burst:     getEnvAsInt("AI_RATE_BURST", 3),
		},
		Firebase: FirebaseConfig{
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
			AuthorID:        getEnv("CONTACT_AUTHOR_ID", "main_author"),
		},
		Email: EmailConfig{
			Region:          getEnv("SES_REGION", ""),
			AccessKeyID:     getEnv("SES_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("SES_SECRET_ACCESS_KEY", ""),
			Sender:          getEnv("SES_SENDER", ""),
			NotifyAddress:   getEnv("CONTACT_NOTIFY_EMAIL", ""),
		},
		Content: ContentConfig{
			Path: getEnv("CONTENT_PATH", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("GEMINI_MODEL is required")
	}
	if c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("AI_RATE_PER_MINUTE must be positive")
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("AI_RATE_BURST must be positive")
	}
	if c.Firebase.ProjectID != "" && c.Firebase.AuthorID == "" {
		return fmt.Errorf("CONTACT_AUTHOR_ID is required when FIREBASE_PROJECT_ID is set")
	}
	return nil
}

// EmailEnabled reports whether contact notifications can be sent.
func (c EmailConfig) EmailEnabled() bool {
	return c.Region != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" &&
		c.Sender != "" && c.NotifyAddress != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Int("default", defaultValue).Msg("Invalid integer, using default")
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	seconds := getEnvAsInt(key, -1)
	if seconds < 0 {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
