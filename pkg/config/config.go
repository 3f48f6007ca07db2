package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Log      LogConfig
	Sweeper  SweeperConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// Bounded startup retry. Per-request retries are intentionally absent.
	ConnectRetries int
	RetryDelay     time.Duration
}

// RedisConfig for the recent-activities feed cache. Leave URL empty to run
// without a cache.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// NATSConfig for board event fan-out. Leave URL empty to disable.
type NATSConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// SweeperConfig schedules the overdue-task report.
type SweeperConfig struct {
	Enabled bool
	Cron    string
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine, plain environment variables still apply.
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	connectRetries, _ := strconv.Atoi(getEnv("DB_CONNECT_RETRIES", "5"))
	retryDelaySec, _ := strconv.Atoi(getEnv("DB_RETRY_DELAY_SECONDS", "3"))

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	sweeperEnabled := getEnv("SWEEPER_ENABLED", "true") == "true"

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Kanban Board API"),
			Port: getEnv("APP_PORT", "5000"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", ""),
			DBName:         getEnv("DB_NAME", "kanban"),
			SSLMode:        getEnv("DB_SSL_MODE", "disable"),
			ConnectRetries: connectRetries,
			RetryDelay:     time.Duration(retryDelaySec) * time.Second,
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Sweeper: SweeperConfig{
			Enabled: sweeperEnabled,
			Cron:    getEnv("SWEEPER_CRON", "0 8 * * *"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
