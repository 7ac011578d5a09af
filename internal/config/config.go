package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	LogLevel       string
	LogFormat      string
	LogDir         string
	Environment    string
	ServiceName    string
	Version        string
	APIKey         string // API key for authentication
	TrustedProxies []string

	// Storage
	StoreBackend      string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	SQLitePath        string
	BoltPath          string
	CacheSize         int
	CacheTTL          time.Duration

	// Fight process
	StreamBaseURL            string
	HostURL                  string
	ProcessProfilePath       string
	ProcessInactivityTimeout time.Duration
	BettingWindow            time.Duration // 0 disables automatic start

	// Betting
	BetRateLimit float64 // bets per second per client
	BetRateBurst int

	// Events
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	// Workers and announcements
	WorkerPoolSize   int
	DiscordToken     string
	DiscordChannelID string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		LogDir:         getEnv("LOG_DIR", "logs"),
		Environment:    getEnv("ENVIRONMENT", "dev"),
		ServiceName:    getEnv("SERVICE_NAME", "fightbet"),
		Version:        getEnv("VERSION", "dev"),
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),

		StoreBackend:      strings.ToLower(getEnv("STORE_BACKEND", StoreBackendPostgres)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "fightbet"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 20),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
		SQLitePath:        getEnv("SQLITE_PATH", DefaultSQLitePath),
		BoltPath:          getEnv("BOLT_PATH", DefaultBoltPath),
		CacheSize:         getEnvAsInt("FIGHT_CACHE_SIZE", 256),
		CacheTTL:          getEnvAsDuration("FIGHT_CACHE_TTL", 10*time.Minute),

		StreamBaseURL:            strings.TrimRight(getEnv("STREAM_BASE_URL", DefaultStreamBaseURL), "/"),
		HostURL:                  getEnv("HOST_URL", "http://localhost:8080"),
		ProcessProfilePath:       getEnv("PROCESS_PROFILE_PATH", ConfigPathProcessProfile),
		ProcessInactivityTimeout: getEnvAsDuration("PROCESS_INACTIVITY_TIMEOUT", 2*time.Minute),
		BettingWindow:            getEnvAsDuration("BETTING_WINDOW", 0),

		BetRateLimit: getEnvAsFloat("BET_RATE_LIMIT", 5),
		BetRateBurst: getEnvAsInt("BET_RATE_BURST", 10),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", 5),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", 2*time.Second),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", "logs/event_deadletter.jsonl"),

		WorkerPoolSize:   getEnvAsInt("WORKER_POOL_SIZE", 4),
		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		DiscordChannelID: getEnv("DISCORD_CHANNEL_ID", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	switch cfg.StoreBackend {
	case StoreBackendPostgres, StoreBackendSQLite, StoreBackendBolt, StoreBackendMemory:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND value %q", cfg.StoreBackend)
	}

	return cfg, nil
}

// DiscordEnabled reports whether fight announcements should be posted
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
