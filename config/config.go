package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"megabot/database"

	"github.com/joho/godotenv"
)

// DefaultStartingBalance is the implicit balance of an account that has never been written
const DefaultStartingBalance int64 = 1000

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string
	GuildID      string // Guild to register commands in; empty registers globally

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Economy configuration
	StartingBalance int64
	AdminDiscordIDs []int64 // Discord IDs allowed to run admin commands
	ItemCatalogPath string  // Optional TOML file with item classification overrides

	// Command execution
	CommandTimeout time.Duration

	// NATS configuration
	NATSServers string // NATS server addresses (comma-separated); empty disables publishing

	// Backup configuration
	BackupS3Bucket   string
	BackupS3Prefix   string
	BackupS3Region   string
	BackupS3Endpoint string // Custom endpoint for S3-compatible stores (MinIO, R2)

	// OpenTelemetry configuration
	OTelEnabled              bool
	OTelExporterType         string // "console", "otlp" or "none"
	OTelOTLPEndpoint         string
	OTelServiceName          string
	OTelExportIntervalMillis int

	// Logging
	LogLevel string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
				instance.DiscordToken = "test-token"
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// Load reads configuration from the environment without touching the global instance
func Load() (*Config, error) {
	return load()
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// BackupEnabled reports whether a backup bucket is configured
func (c *Config) BackupEnabled() bool {
	return c.BackupS3Bucket != ""
}

// load loads configuration from environment variables, reading .env first if present
func load() (*Config, error) {
	// A missing .env file is the normal case in containers
	_ = godotenv.Load()

	config := &Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		StartingBalance: DefaultStartingBalance,
		ItemCatalogPath: os.Getenv("ITEM_CATALOG_PATH"),

		CommandTimeout: 10 * time.Second,

		NATSServers: os.Getenv("NATS_SERVERS"),

		BackupS3Bucket:   os.Getenv("BACKUP_S3_BUCKET"),
		BackupS3Prefix:   getEnvWithDefault("BACKUP_S3_PREFIX", "megabot"),
		BackupS3Region:   getEnvWithDefault("BACKUP_S3_REGION", "us-east-1"),
		BackupS3Endpoint: os.Getenv("BACKUP_S3_ENDPOINT"),

		OTelEnabled:              os.Getenv("OTEL_ENABLED") == "true",
		OTelExporterType:         getEnvWithDefault("OTEL_EXPORTER_TYPE", "console"),
		OTelOTLPEndpoint:         getEnvWithDefault("OTEL_OTLP_ENDPOINT", "localhost:4317"),
		OTelServiceName:          getEnvWithDefault("OTEL_SERVICE_NAME", "megabot"),
		OTelExportIntervalMillis: 60000,

		LogLevel: getEnvWithDefault("LOG_LEVEL", "info"),

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		parsedBalance, err := strconv.ParseInt(balance, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid STARTING_BALANCE %q: %w", balance, err)
		}
		config.StartingBalance = parsedBalance
	}

	adminIDs, err := parseDiscordIDs(os.Getenv("ADMIN_DISCORD_IDS"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_DISCORD_IDS: %w", err)
	}
	config.AdminDiscordIDs = adminIDs

	if timeout := os.Getenv("COMMAND_TIMEOUT"); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid COMMAND_TIMEOUT %q: %w", timeout, err)
		}
		config.CommandTimeout = parsed
	}

	if interval := os.Getenv("OTEL_EXPORT_INTERVAL_MS"); interval != "" {
		if parsed, err := strconv.Atoi(interval); err == nil && parsed > 0 {
			config.OTelExportIntervalMillis = parsed
		}
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.DatabaseName != "" && strings.TrimSpace(config.DatabaseName) == "" {
			return nil, fmt.Errorf("DATABASE_NAME cannot be empty when provided")
		}
	}

	return config, nil
}

// parseDiscordIDs parses a comma-separated list of numeric Discord IDs
func parseDiscordIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, idStr := range strings.Split(raw, ",") {
		idStr = strings.TrimSpace(idStr)
		if idStr == "" {
			continue
		}
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a Discord ID: %w", idStr, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:      "test",
		StartingBalance:  DefaultStartingBalance,
		AdminDiscordIDs:  []int64{999999},
		CommandTimeout:   5 * time.Second,
		OTelExporterType: "none",
		LogLevel:         "debug",
	}
}
