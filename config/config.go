package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBName    string
	JWTKey    string
	SaltRound int

	EmailSender string
	Password    string // SMTP Password

	// Progression defaults, used when a course/module does not override them
	DefaultRequiredScore float64
	DefaultMaxAttempts   int

	// Optional webhook endpoint for progression events (unlock/fail/complete)
	ProgressionWebhookURL string
	ProgressionWebhookKey string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBName:    getEnv("DB_NAME", "lms.db"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender: getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:    getEnv("PASSWORD", "defaultSecret"),

		DefaultRequiredScore: getEnvFloat("DEFAULT_REQUIRED_SCORE", 70),
		DefaultMaxAttempts:   getEnvInt("DEFAULT_MAX_ATTEMPTS", 3),

		ProgressionWebhookURL: getEnv("PROGRESSION_WEBHOOK_URL", ""),
		ProgressionWebhookKey: getEnv("PROGRESSION_WEBHOOK_KEY", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.DefaultRequiredScore < 0 || AppConfig.DefaultRequiredScore > 100 {
		log.Printf("Warning: DEFAULT_REQUIRED_SCORE %.1f is outside [0,100]. Falling back to 70.", AppConfig.DefaultRequiredScore)
		AppConfig.DefaultRequiredScore = 70
	}
	if AppConfig.DefaultMaxAttempts < 1 {
		log.Printf("Warning: DEFAULT_MAX_ATTEMPTS %d is invalid. Falling back to 3.", AppConfig.DefaultMaxAttempts)
		AppConfig.DefaultMaxAttempts = 3
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvFloat retrieves an environment variable as a float or returns the default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}
