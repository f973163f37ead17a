package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Logger    LoggerConfig    `yaml:"logger"`
	Auth      AuthConfig      `yaml:"auth"`
	CORS      CORSConfig      `yaml:"cors"`
	Crowd     CrowdConfig     `yaml:"crowd"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	Mode            string        `yaml:"mode"`
	BasePath        string        `yaml:"base_path"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver"`
	URL             string        `yaml:"url"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	DBName          string        `yaml:"dbname"`
	SSLMode         string        `yaml:"sslmode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// RedisConfig is optional. An empty URL and Host disables the cross-replica relay.
type RedisConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
}

type AuthConfig struct {
	// DevFallbackEnabled provisions an ADMIN identity for requests without a
	// valid session token. Never enable outside local development.
	DevFallbackEnabled bool     `yaml:"dev_fallback_enabled"`
	EntryQRTokens      []string `yaml:"entry_qr_tokens"`
}

type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins"`
}

type CrowdConfig struct {
	MediumThreshold          int `yaml:"medium_threshold"`
	HighThreshold            int `yaml:"high_threshold"`
	WindowMinutes            int `yaml:"window_minutes"`
	BroadcastIntervalSeconds int `yaml:"broadcast_interval_seconds"`
}

type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// Default returns the configuration used when no file or env override is present
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			Mode:            "debug",
			BasePath:        "/api/v1",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			User:            "fair",
			DBName:          "fair",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		CORS: CORSConfig{
			AllowedOrigins: "http://localhost:3000",
		},
		Crowd: CrowdConfig{
			MediumThreshold:          10,
			HighThreshold:            25,
			WindowMinutes:            30,
			BroadcastIntervalSeconds: 15,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 5,
			Burst:             10,
		},
	}
}

// Load reads the yaml file (if it exists) over the defaults, then applies env overrides
func Load(path string) (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if mode := os.Getenv("SERVER_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}
	if basePath := os.Getenv("SERVER_BASE_PATH"); basePath != "" {
		cfg.Server.BasePath = basePath
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.Logger.Level = logLevel
	}

	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		cfg.Database.Driver = driver
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Database.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Database.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.Database.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Database.DBName = name
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}
	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		cfg.Redis.Host = redisHost
	}
	if redisPort := os.Getenv("REDIS_PORT"); redisPort != "" {
		if p, err := strconv.Atoi(redisPort); err == nil {
			cfg.Redis.Port = p
		}
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}

	if v := os.Getenv("AUTH_DEV_FALLBACK_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Auth.DevFallbackEnabled = b
		}
	}
	if v := os.Getenv("AUTH_ENTRY_QR_TOKENS"); v != "" {
		cfg.Auth.EntryQRTokens = splitList(v)
	}

	if corsOrigins := os.Getenv("CORS_ORIGINS"); corsOrigins != "" {
		cfg.CORS.AllowedOrigins = corsOrigins
	}

	setInt(&cfg.Crowd.MediumThreshold, "CROWD_MEDIUM_THRESHOLD")
	setInt(&cfg.Crowd.HighThreshold, "CROWD_HIGH_THRESHOLD")
	setInt(&cfg.Crowd.WindowMinutes, "CROWD_WINDOW_MINUTES")
	setInt(&cfg.Crowd.BroadcastIntervalSeconds, "CROWD_BROADCAST_INTERVAL_SECONDS")

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.RateLimit.Enabled = b
		}
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimit.RequestsPerSecond = f
		}
	}
	setInt(&cfg.RateLimit.Burst, "RATE_LIMIT_BURST")
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate rejects settings the service cannot run with
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Crowd.MediumThreshold <= 0 || c.Crowd.HighThreshold <= c.Crowd.MediumThreshold {
		return fmt.Errorf("crowd thresholds must satisfy 0 < medium (%d) < high (%d)",
			c.Crowd.MediumThreshold, c.Crowd.HighThreshold)
	}
	if c.Crowd.WindowMinutes <= 0 {
		return fmt.Errorf("crowd window must be positive, got %d", c.Crowd.WindowMinutes)
	}
	if c.Crowd.BroadcastIntervalSeconds <= 0 {
		return fmt.Errorf("crowd broadcast interval must be positive, got %d", c.Crowd.BroadcastIntervalSeconds)
	}
	return nil
}

// GetDSN builds the driver specific connection string
func (d DatabaseConfig) GetDSN() string {
	if d.URL != "" {
		return d.URL
	}
	switch d.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.User, d.Password, d.Host, d.Port, d.DBName)
	case DriverSQLite:
		return d.DBName
	default:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
	}
}

// Origins returns the CORS allow-list
func (c CORSConfig) Origins() []string {
	return splitList(c.AllowedOrigins)
}

// Window is the trailing check-in window used for crowd levels
func (c CrowdConfig) Window() time.Duration {
	return time.Duration(c.WindowMinutes) * time.Minute
}

// BroadcastInterval is the crowd-status push cadence
func (c CrowdConfig) BroadcastInterval() time.Duration {
	return time.Duration(c.BroadcastIntervalSeconds) * time.Second
}

// Enabled reports whether a redis connection is configured
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Host != ""
}

// Addr returns host:port for the redis client
func (r RedisConfig) Addr() string {
	port := r.Port
	if port == 0 {
		port = 6379
	}
	return fmt.Sprintf("%s:%d", r.Host, port)
}
