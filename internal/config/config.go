package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration
type Config struct {
	DatabasePath   string `json:"database_path"`
	APIPort        string `json:"api_port"`
	LogLevel       string `json:"log_level"`
	AIProvider     string `json:"ai_provider"`
	AIAPIKey       string `json:"ai_api_key"`
	AIModel        string `json:"ai_model"`
	AIBaseURL      string `json:"ai_base_url"`
	ProcessDelayMS int    `json:"process_delay_ms"` // inter-call delay during batch processing
	CORSOrigins    string `json:"cors_origins"`     // comma separated, * for all
}

// Default configuration values
const (
	DefaultDatabasePath   = "file::memory:?cache=shared"
	DefaultAPIPort        = "8080"
	DefaultLogLevel       = "INFO"
	DefaultAIProvider     = "openai"
	DefaultProcessDelayMS = 500
	DefaultCORSOrigins    = "*"
)

// Load loads configuration from environment variables and config file
// Priority: Environment variables > Config file > Default values
func Load() (*Config, error) {
	cfg := &Config{
		DatabasePath:   DefaultDatabasePath,
		APIPort:        DefaultAPIPort,
		LogLevel:       DefaultLogLevel,
		AIProvider:     DefaultAIProvider,
		ProcessDelayMS: DefaultProcessDelayMS,
		CORSOrigins:    DefaultCORSOrigins,
	}

	// Config file is optional
	_ = cfg.loadFromFile()

	cfg.loadFromEnv()

	return cfg, nil
}

// loadFromFile loads configuration from config.json file
func (c *Config) loadFromFile() error {
	data, err := os.ReadFile("config.json")
	if err != nil {
		return err
	}
	return json.Unmarshal(data, c)
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if val := os.Getenv("MAILMIND_DATABASE_PATH"); val != "" {
		c.DatabasePath = val
	}
	if val := os.Getenv("MAILMIND_API_PORT"); val != "" {
		c.APIPort = val
	}
	if val := os.Getenv("MAILMIND_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}
	if val := os.Getenv("MAILMIND_AI_PROVIDER"); val != "" {
		c.AIProvider = val
	}
	if val := os.Getenv("MAILMIND_AI_API_KEY"); val != "" {
		c.AIAPIKey = val
	}
	if val := os.Getenv("MAILMIND_AI_MODEL"); val != "" {
		c.AIModel = val
	}
	if val := os.Getenv("MAILMIND_AI_BASE_URL"); val != "" {
		c.AIBaseURL = val
	}
	if val := os.Getenv("MAILMIND_PROCESS_DELAY_MS"); val != "" {
		if ms, err := strconv.Atoi(val); err == nil && ms >= 0 {
			c.ProcessDelayMS = ms
		}
	}
	if val := os.Getenv("MAILMIND_CORS_ORIGINS"); val != "" {
		c.CORSOrigins = val
	}
}

// ProcessDelay returns the inter-call delay used by the inbox processor
func (c *Config) ProcessDelay() time.Duration {
	return time.Duration(c.ProcessDelayMS) * time.Millisecond
}

// AllowedOrigins returns the CORS origin list
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Save saves the current configuration to a file
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
