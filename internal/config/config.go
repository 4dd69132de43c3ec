package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string
	RateLimitPerSecond float64
	RateLimitBurst     int

	// OpenAI completion provider
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAITemperature float64
	OpenAIMaxTokens   int
	OpenAITimeout     time.Duration

	// HeyGen streaming avatar provider
	HeyGenAPIKey  string
	HeyGenBaseURL string
	HeyGenTimeout time.Duration

	// Clinic identity (the rest of the profile lives in internal/clinic)
	ClinicID   string
	ClinicName string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 5),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 10),

		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4"),
		OpenAITemperature: getEnvAsFloat("OPENAI_TEMPERATURE", 0.7),
		OpenAIMaxTokens:   getEnvAsInt("OPENAI_MAX_TOKENS", 500),
		OpenAITimeout:     getEnvAsDuration("OPENAI_TIMEOUT", 30*time.Second),

		HeyGenAPIKey:  getEnv("HEYGEN_API_KEY", ""),
		HeyGenBaseURL: getEnv("HEYGEN_BASE_URL", "https://api.heygen.com"),
		HeyGenTimeout: getEnvAsDuration("HEYGEN_TIMEOUT", 10*time.Second),

		ClinicID:   getEnv("CLINIC_ID", "primal-health"),
		ClinicName: getEnv("CLINIC_NAME", "Primal Health"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSlice retrieves a comma-separated environment variable as a string slice
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
