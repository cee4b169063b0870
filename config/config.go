package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	// AI Provider
	AIProvider       string `yaml:"ai_provider"`
	OpenAIAPIKey     string `yaml:"openai_api_key"`
	OpenAIBaseURL    string `yaml:"openai_base_url"`
	OpenAIModel      string `yaml:"openai_model"`
	AnthropicAPIKey  string `yaml:"anthropic_api_key"`
	AnthropicBaseURL string `yaml:"anthropic_base_url"`
	AnthropicModel   string `yaml:"anthropic_model"`
	OllamaURL        string `yaml:"ollama_url"`
	OllamaModel      string `yaml:"ollama_model"`
	GeminiAPIKey     string `yaml:"gemini_api_key"`
	GeminiModel      string `yaml:"gemini_model"`

	// Tool data source: mock or postgres
	ToolSource string `yaml:"tool_source"`

	// Database, used when ToolSource is postgres
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`

	// Server
	ServerPort     string        `yaml:"server_port"`
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		AIProvider:     "openai",
		OpenAIBaseURL:  "https://api.openai.com/v1",
		OpenAIModel:    "gpt-4o",
		AnthropicModel: "claude-3-5-sonnet-latest",
		OllamaURL:      "http://localhost:11434",
		OllamaModel:    "llama3.1",
		GeminiModel:    "gemini-1.5-flash",

		ToolSource: "mock",

		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "postgres",
		DBName:     "chatagent",

		ServerPort:     "8000",
		RequestTimeout: 60 * time.Second,

		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load loads configuration from defaults, an optional YAML file named by
// CONFIG_FILE, and environment variables, in increasing precedence.
func Load() (*Config, error) {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := config.loadFile(path); err != nil {
			return nil, err
		}
	}

	config.applyEnv()
	config.validate()

	return config, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	setFromEnv(&c.AIProvider, "AI_PROVIDER")
	setFromEnv(&c.OpenAIAPIKey, "OPENAI_API_KEY")
	setFromEnv(&c.OpenAIBaseURL, "OPENAI_BASE_URL")
	setFromEnv(&c.OpenAIModel, "OPENAI_MODEL")
	setFromEnv(&c.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	setFromEnv(&c.AnthropicBaseURL, "ANTHROPIC_BASE_URL")
	setFromEnv(&c.AnthropicModel, "ANTHROPIC_MODEL")
	setFromEnv(&c.OllamaURL, "OLLAMA_URL")
	setFromEnv(&c.OllamaModel, "OLLAMA_MODEL")
	setFromEnv(&c.GeminiAPIKey, "GOOGLE_API_KEY")
	setFromEnv(&c.GeminiAPIKey, "GEMINI_API_KEY")
	setFromEnv(&c.GeminiModel, "GEMINI_MODEL")

	setFromEnv(&c.ToolSource, "TOOL_SOURCE")
	setFromEnv(&c.DBHost, "DB_HOST")
	setFromEnv(&c.DBPort, "DB_PORT")
	setFromEnv(&c.DBUser, "DB_USER")
	setFromEnv(&c.DBPassword, "DB_PASSWORD")
	setFromEnv(&c.DBName, "DB_NAME")

	setFromEnv(&c.ServerPort, "SERVER_PORT")
	if value := os.Getenv("REQUEST_TIMEOUT"); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			c.RequestTimeout = d
		} else {
			logrus.Warnf("Ignoring invalid REQUEST_TIMEOUT %q: %v", value, err)
		}
	}

	setFromEnv(&c.LogLevel, "LOG_LEVEL")
	setFromEnv(&c.LogFormat, "LOG_FORMAT")
}

// validate warns about incomplete provider settings and falls back to
// known-good values for unrecognized choices.
func (c *Config) validate() {
	switch c.AIProvider {
	case "openai":
		if c.OpenAIAPIKey == "" {
			logrus.Warn("OPENAI_API_KEY not set")
		}
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			logrus.Warn("ANTHROPIC_API_KEY not set")
		}
	case "ollama":
		if c.OllamaURL == "" {
			logrus.Warn("OLLAMA_URL not set")
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			logrus.Warn("GEMINI_API_KEY not set")
		}
	default:
		logrus.Warnf("Unknown AI_PROVIDER: %s (using openai as fallback)", c.AIProvider)
		c.AIProvider = "openai"
	}

	switch c.ToolSource {
	case "mock", "postgres":
	default:
		logrus.Warnf("Unknown TOOL_SOURCE: %s (using mock as fallback)", c.ToolSource)
		c.ToolSource = "mock"
	}
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

// setFromEnv overwrites *target when the environment variable is set
func setFromEnv(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}
