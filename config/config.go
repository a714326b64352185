package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DhavalSuthar-24/crease/internal/simulator"
)

type Config struct {
	App struct {
		Env         string `yaml:"env"`
		Port        string `yaml:"port"`
		FrontendURL string `yaml:"frontend_url"`
		LogLevel    string `yaml:"log_level"`
	} `yaml:"app"`
	DB struct {
		Driver   string `yaml:"driver"` // postgres or sqlite
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"-"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslmode"`
		Path     string `yaml:"path"` // sqlite file, ":memory:" for throwaway runs
	} `yaml:"database"`
	JWT struct {
		// ScorerSecret verifies externally issued scorer tokens. Empty leaves
		// write routes open.
		ScorerSecret string `yaml:"-"`
		Issuer       string `yaml:"issuer"`
	} `yaml:"jwt"`
	Jobs struct {
		ReconcileEnabled  bool          `yaml:"reconcile_enabled"`
		ReconcileInterval time.Duration `yaml:"reconcile_interval"`
	} `yaml:"jobs"`
	Simulator simulator.Profile `yaml:"simulator"`
}

// Global DB instance, accessible after ConnectDB() is called via Initialize.
var DB *gorm.DB

// Global AppConfig instance, accessible after LoadConfig() is called via Initialize.
var appConfig *Config
var once sync.Once // Used for singleton pattern to load config only once

// LoadConfig loads configuration from environment variables, then applies the
// YAML file named by CONFIG_FILE on top when one is set.
func LoadConfig() (*Config, error) {
	// Load .env file. It's okay if it doesn't exist, especially in production
	// where env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on system environment variables")
	}

	cfg := &Config{Simulator: simulator.DefaultProfile()}

	// --- App Configuration ---
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8088")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")
	cfg.App.LogLevel = getEnv("LOG_LEVEL", "info")

	// --- Database Configuration ---
	cfg.DB.Driver = getEnv("DB_DRIVER", "postgres")
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "crease_db")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.DB.Path = getEnv("DB_PATH", "crease.db")

	// --- JWT Configuration ---
	cfg.JWT.ScorerSecret = getEnv("JWT_SCORER_SECRET", "")
	cfg.JWT.Issuer = getEnv("JWT_ISSUER", "")

	// --- Jobs ---
	var err error
	cfg.Jobs.ReconcileEnabled, err = getEnvAsBool("JOBS_RECONCILE_ENABLED", true)
	if err != nil {
		return nil, err
	}
	seconds, err := getEnvAsInt("JOBS_RECONCILE_INTERVAL_SECONDS", 300)
	if err != nil {
		return nil, fmt.Errorf("invalid JOBS_RECONCILE_INTERVAL_SECONDS: %w", err)
	}
	cfg.Jobs.ReconcileInterval = time.Duration(seconds) * time.Second

	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.JWT.ScorerSecret == "" {
		log.Warn().Msg("JWT_SCORER_SECRET is not set, scoring routes accept unauthenticated writes")
	}
	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		log.Warn().Msg("using default DB password in production, set DB_PASSWORD")
	}

	appConfig = cfg // Set the global instance
	return cfg, nil
}

// applyFile overlays a YAML document. Keys absent from the file keep the
// values already loaded from the environment.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.App.Port == "" {
		return fmt.Errorf("app port is required")
	}
	if c.Jobs.ReconcileEnabled && c.Jobs.ReconcileInterval <= 0 {
		return fmt.Errorf("reconcile interval must be positive")
	}
	return c.Simulator.Validate()
}

// SetupLogger configures the global zerolog logger.
func SetupLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.App.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.App.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	// log.Ctx falls back to the global logger outside a request.
	zerolog.DefaultContextLogger = &log.Logger
}

// Dialector picks the gorm driver for the configured database.
func Dialector(cfg *Config) gorm.Dialector {
	if cfg.DB.Driver == "sqlite" {
		return sqlite.Open(cfg.DB.Path)
	}
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
	)
	return postgres.Open(dsn)
}

// ConnectDB establishes a connection to the database using the provided configuration.
// It sets the global DB variable.
func ConnectDB(dbCfg *Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		// Playoff fixtures reference teams that may not exist yet.
		DisableForeignKeyConstraintWhenMigrating: true,
	}
	if dbCfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent) // Less verbose in production
	}

	gormDB, err := gorm.Open(Dialector(dbCfg), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB // Set the global DB instance
	log.Info().Str("driver", dbCfg.DB.Driver).Msg("connected to database")
	return gormDB, nil
}

// Initialize loads all configurations and connects to the database.
// This should be called once at the start of your application (e.g., in main.go).
func Initialize() error {
	var loadErr error
	// Load configuration only once
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		SetupLogger(loadedCfg)

		_, err = ConnectDB(loadedCfg)
		if err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It exits if the configuration has not been loaded yet.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal().Msg("configuration not loaded, call config.Initialize() first")
	}
	return appConfig
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected boolean, got '%s'", key, valueStr)
	}
	return value, nil
}
