package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort     = "4003"
	DefaultMongoURI = "mongodb://localhost:27017/humint"
	DefaultModel    = "gemini-1.5-flash"
	DefaultAPIURL   = "http://localhost:4003"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	MongoURI        string
	MongoURIDefault bool

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// HTTP
	CORSOrigin string

	// Logging
	LogLevel  string
	LogFormat string
}

// IsDevelopment reports whether error responses may carry stack traces.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	mongoURI := os.Getenv("MONGODB_URI")

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", DefaultPort),
		Env:             getEnvOrDefault("ENV", getEnvOrDefault("NODE_ENV", "production")),
		MongoURI:        getEnvOrDefault("MONGODB_URI", DefaultMongoURI),
		MongoURIDefault: mongoURI == "",
		GeminiAPIKey:    mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:     getEnvOrDefault("GEMINI_MODEL", DefaultModel),
		CORSOrigin:      getEnvOrDefault("CORS_ORIGIN", "*"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       getEnvOrDefault("LOG_FORMAT", "text"),
	}

	return cfg
}

// ClientConfig configures the terminal chat client.
type ClientConfig struct {
	APIURL         string
	TimeoutSeconds int
	LogLevel       string
}

func LoadClient() *ClientConfig {
	godotenv.Load()

	return &ClientConfig{
		APIURL:         getEnvOrDefault("HUMINT_API_URL", DefaultAPIURL),
		TimeoutSeconds: getEnvAsIntOrDefault("HUMINT_REQUEST_TIMEOUT", 0),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "warn"),
	}
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
