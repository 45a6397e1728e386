package cheqprint_config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the CheqPrint functions endpoint every probe talks to.
const DefaultBaseURL = "https://xwpgblfdmlrrkksmuazy.supabase.co/functions/v1"

// Number of API key characters shown on the console
const maskedKeyLength = 20

type APIConfig struct {
	BaseURL string `validate:"required,url"` // Root of the CheqPrint functions, endpoints are joined to it
	APIKey  string // Bearer token, empty is allowed at load time
}

type HTTPConfig struct {
	Timeout           time.Duration `validate:"gte=0"` // 0 keeps the transport default
	RequestsPerSecond float64       `validate:"gte=0"` // 0 disables pacing
}

type ProbeConfig struct {
	HistoryLimit int `validate:"min=1"` // limit query parameter sent to /print-history
}

// Config bundles everything a smoke run needs
type Config struct {
	APIConfig
	HTTPConfig
	ProbeConfig
	Mode string // prod or debug, controls the slog level
}

func New(envPath string) *Config {

	if err := godotenv.Load(envPath); err != nil {
		log.Println("Failed to locate .env file, program will proceed with provided env if any is provided")
	}

	return &Config{
		APIConfig: APIConfig{
			BaseURL: strings.TrimRight(getEnv("CHEQPRINT_BASE_URL", DefaultBaseURL), "/"),
			APIKey:  getEnv("API_KEY", ""),
		},
		HTTPConfig: HTTPConfig{
			Timeout:           time.Duration(getEnvAsInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
			RequestsPerSecond: getEnvAsFloat("REQUESTS_PER_SECOND", 0),
		},
		ProbeConfig: ProbeConfig{
			HistoryLimit: getEnvAsInt("HISTORY_LIMIT", 5),
		},
		Mode: getEnv("MODE", "prod"),
	}
}

// HasAPIKey reports whether authenticated probes can be attempted at all.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// MaskedAPIKey returns the first characters of the key followed by an ellipsis.
func (c *Config) MaskedAPIKey() string {
	key := c.APIKey
	if len(key) > maskedKeyLength {
		key = key[:maskedKeyLength]
	}
	return key + "..."
}

func (c *Config) IsDebug() bool {
	return strings.Contains(strings.ToLower(c.Mode), "debug")
}

// Simple helper function to read an environment or return a default value.
func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

// Simple helper function to read an environment variable into integer or return a default value.
func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}

	return defaultVal
}

// Helper to read an environment variable into a float or return default value.
func getEnvAsFloat(name string, defaultVal float64) float64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseFloat(valStr, 64); err == nil {
		return val
	}

	return defaultVal
}
