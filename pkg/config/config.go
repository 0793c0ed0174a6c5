package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	AI       AIConfig
	OAuth    OAuthConfig
	JWT      JWTConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"lingonote"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration. Redis backs the OAuth state store;
// when disabled an in-memory store is used instead.
type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"true"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig holds MinIO configuration for uploaded meeting images.
type StorageConfig struct {
	Endpoint        string `envconfig:"MINIO_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"MINIO_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"MINIO_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"MINIO_BUCKET" default:"lingonote-images"`
	UseSSL          bool   `envconfig:"MINIO_USE_SSL" default:"false"`
	PublicURL       string `envconfig:"MINIO_PUBLIC_URL" default:""`
}

// AIConfig selects and configures the remote AI providers.
type AIConfig struct {
	// Provider selects the translation/detection implementation:
	// "gemini" (cloud) or "ollama" (local).
	Provider string `envconfig:"AI_PROVIDER" default:"gemini"`

	// FallbackEnabled retries a failed local call once against Gemini.
	// Meaningful only when Provider is "ollama".
	FallbackEnabled bool `envconfig:"AI_FALLBACK_ENABLED" default:"true"`

	Gemini GeminiConfig
	Ollama OllamaConfig
}

// GeminiConfig holds Google Gemini API configuration
type GeminiConfig struct {
	APIKey string `envconfig:"GEMINI_API_KEY" default:""`
	Model  string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
}

// OllamaConfig holds configuration for a locally hosted Ollama endpoint
type OllamaConfig struct {
	BaseURL string        `envconfig:"OLLAMA_BASE_URL" default:"http://localhost:11434"`
	Model   string        `envconfig:"OLLAMA_MODEL" default:"llama3.1"`
	Timeout time.Duration `envconfig:"OLLAMA_TIMEOUT" default:"90s"`
}

// OAuthConfig holds OAuth configuration
type OAuthConfig struct {
	Google   GoogleOAuthConfig
	StateTTL time.Duration `envconfig:"OAUTH_STATE_TTL" default:"10m"`
}

// GoogleOAuthConfig holds Google OAuth configuration
type GoogleOAuthConfig struct {
	ClientID     string `envconfig:"GOOGLE_CLIENT_ID" default:""`
	ClientSecret string `envconfig:"GOOGLE_CLIENT_SECRET" default:""`
	RedirectURL  string `envconfig:"GOOGLE_REDIRECT_URL" default:"http://localhost:8080/v1/auth/google/callback"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	Expiry time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadDatabase loads only the database configuration. Tools that just need a
// connection, like the migrate CLI, use this instead of Load so they do not
// trip over AI and OAuth validation.
func LoadDatabase() (*DatabaseConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	dbConfig := &DatabaseConfig{}
	if err := envconfig.Process("", dbConfig); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return dbConfig, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.AI.Provider {
	case "gemini":
		if c.AI.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when AI_PROVIDER is gemini")
		}
	case "ollama":
		if c.AI.Ollama.BaseURL == "" {
			return fmt.Errorf("OLLAMA_BASE_URL is required when AI_PROVIDER is ollama")
		}
		if c.AI.FallbackEnabled && c.AI.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when AI_FALLBACK_ENABLED is true")
		}
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q (want gemini or ollama)", c.AI.Provider)
	}
	// OCR and summarization always run on Gemini, even in local mode.
	if c.AI.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required for OCR and summarization")
	}
	if c.OAuth.Google.ClientID == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID is required")
	}
	if c.OAuth.Google.ClientSecret == "" {
		return fmt.Errorf("GOOGLE_CLIENT_SECRET is required")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

// DSN returns the database connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
		d.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
