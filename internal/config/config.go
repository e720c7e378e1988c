package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Storage backends understood by storage.Open
const (
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Storage configuration
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`
	DataDir        string `mapstructure:"DATA_DIR"`
	SQLitePath     string `mapstructure:"SQLITE_PATH"`

	// Database configuration (postgres backend)
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	DBConnectRetries int    `mapstructure:"DB_CONNECT_ATTEMPTS"`

	// Export configuration
	ExportDir    string `mapstructure:"EXPORT_DIR"`
	ExportFile   string `mapstructure:"EXPORT_FILE"`
	ExportFormat string `mapstructure:"EXPORT_FORMAT"`

	// Board rules
	AllowClosedBoardTaskUpdates bool `mapstructure:"ALLOW_CLOSED_BOARD_TASK_UPDATES"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Storage defaults match the on-disk layout of existing deployments
	viper.SetDefault("STORAGE_BACKEND", StorageFile)
	viper.SetDefault("DATA_DIR", "db")
	viper.SetDefault("SQLITE_PATH", "db/board.sqlite")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "team_board")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_CONNECT_ATTEMPTS", 30)

	// Export defaults
	viper.SetDefault("EXPORT_DIR", "output")
	viper.SetDefault("EXPORT_FILE", "output.txt")
	viper.SetDefault("EXPORT_FORMAT", "text")

	viper.SetDefault("ALLOW_CLOSED_BOARD_TASK_UPDATES", true)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	switch config.StorageBackend {
	case StorageFile:
		if config.DataDir == "" {
			return fmt.Errorf("DATA_DIR is required for the file storage backend")
		}
	case StorageSQLite:
		if config.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite storage backend")
		}
	case StoragePostgres:
		if config.DatabaseName == "" {
			return fmt.Errorf("database name is required")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND %q", config.StorageBackend)
	}

	switch config.ExportFormat {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unsupported EXPORT_FORMAT %q", config.ExportFormat)
	}

	if config.ExportFile == "" {
		return fmt.Errorf("EXPORT_FILE is required")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
