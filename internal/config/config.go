package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
}

type AppConfig struct {
	AppName       string
	Environment   string
	HTTPPort      string
	LogLevel      string
	MigrationsDir string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

// RedisConfig locates the taxonomy cache. All fields are optional; an
// unreachable server just bypasses the cache.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

// AuthConfig gates the skill approval endpoints. When Enabled is false the
// approve/reject routes are open, which is the default for local and test
// environments.
type AuthConfig struct {
	Enabled   bool
	JWTSecret string
	TokenTTL  time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:       req("APP_NAME"),
		Environment:   req("APP_ENV"),
		HTTPPort:      req("HTTP_PORT"),
		LogLevel:      opt("LOG_LEVEL"),
		MigrationsDir: opt("MIGRATIONS_DIR"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT"),
		PoolMaxConns:          optInt32("DB_POOL_MAX_CONNS"),
		PoolMinConns:          optInt32("DB_POOL_MIN_CONNS"),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME"),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME"),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      optDuration("REDIS_TTL"),
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == "" {
		cfg.Redis.Port = "6379"
	}
	if cfg.Redis.TTL <= 0 {
		cfg.Redis.TTL = 600 * time.Second
	}

	cfg.Auth = AuthConfig{
		Enabled:   optBool("ADMIN_AUTH_ENABLED"),
		JWTSecret: opt("ADMIN_JWT_SECRET"),
		TokenTTL:  optDuration("ADMIN_TOKEN_TTL"),
	}

	if cfg.Auth.Enabled && cfg.Auth.JWTSecret == "" {
		missing = append(missing, "ADMIN_JWT_SECRET")
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = 12 * time.Hour
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optBool(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return false
	}
	return v
}

func optInt32(key string) int32 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		return 0
	}
	return int32(v)
}

func optDuration(key string) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
